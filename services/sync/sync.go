// Package sync drives the one-video metadata pipeline against YouTube: fetch
// the joined catalog record, upload staged subtitles, render and push the
// localized metadata, then write the remote-computed playback fields back.
package sync

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
	"github.com/bloggermandolin/catalog/services/describe"
	"github.com/bloggermandolin/catalog/services/subtitles"
	"github.com/bloggermandolin/catalog/services/youtube"
)

// Store is the slice of the record store the pipeline needs.
type Store interface {
	GetVideoMusic(ctx context.Context, videoID int64) (*models.VideoMusic, error)
	UpdateVideoPlayback(ctx context.Context, videoID int64, length int, uploadTime time.Time) error
}

// RemoteClient is the slice of the YouTube client the pipeline needs.
type RemoteClient interface {
	Authenticate(ctx context.Context) error
	GetSnippet(ctx context.Context, videoID string) (map[string]any, error)
	UpdateSnippet(ctx context.Context, videoID string, snippet map[string]any) error
	UpdateLocalizations(ctx context.Context, videoID string, locs map[string]youtube.Localization) error
	InsertCaption(ctx context.Context, videoID string, lang string, name string, body io.Reader) error
	GetPlayback(ctx context.Context, videoID string) (*youtube.Playback, error)
}

// SubtitleStore is the staged-subtitle access the pipeline needs.
type SubtitleStore interface {
	Open(videoID int64, locale string) (io.ReadCloser, bool, error)
	Discard(videoID int64) error
}

type Syncer struct {
	store Store
	yt    RemoteClient
	subs  SubtitleStore
}

func New(store Store, yt RemoteClient, subs SubtitleStore) *Syncer {
	return &Syncer{
		store: store,
		yt:    yt,
		subs:  subs,
	}
}

// Options tweak one sync invocation. They apply identically to single and
// batch entry points.
type Options struct {
	// SubtitleType overrides the video's stored subtitle-type tag for caption
	// display names. Empty keeps the stored tag.
	SubtitleType string
}

// Result is the structured outcome for one video. A failed step leaves the
// already-completed progress visible, nothing is rolled back.
type Result struct {
	VideoID           int64      `json:"video_id"`
	Success           bool       `json:"success"`
	Message           string     `json:"message"`
	SubtitlesUploaded int        `json:"subtitles_uploaded"`
	Duration          int        `json:"duration,omitempty"`
	PublishedAt       *time.Time `json:"published_at,omitempty"`
}

func failure(videoID int64, uploaded int, err error) (*Result, error) {
	return &Result{
		VideoID:           videoID,
		Success:           false,
		Message:           err.Error(),
		SubtitlesUploaded: uploaded,
	}, err
}

// Sync runs the pipeline for one video. The returned Result is always
// populated; err mirrors the failure carried in it.
func (s *Syncer) Sync(ctx context.Context, videoID int64, opts Options) (*Result, error) {
	// Fetch
	rec, err := s.store.GetVideoMusic(ctx, videoID)
	if err != nil {
		return failure(videoID, 0, err)
	}
	if rec.Video.YouTubeLink == nil || *rec.Video.YouTubeLink == "" {
		return failure(videoID, 0, apperr.Newf(apperr.Precondition, "video %d has no youtube link", videoID))
	}
	ytID := youtube.ExtractVideoID(*rec.Video.YouTubeLink)

	// Authenticate
	if err = s.yt.Authenticate(ctx); err != nil {
		return failure(videoID, 0, err)
	}

	// Subtitle upload, best effort per locale
	uploaded := s.uploadSubtitles(ctx, rec.Video, ytID, opts)

	// Metadata render
	instType := describe.TypePiano
	if rec.Video.InstrumentalType != nil && *rec.Video.InstrumentalType == models.InstrumentalTypeInst {
		instType = describe.TypeInstrumental
	}
	descs, err := describe.RenderAll(describe.InfoFromVideoMusic(rec), instType)
	if err != nil {
		return failure(videoID, uploaded, err)
	}
	locs := make(map[string]youtube.Localization, len(descs))
	for loc, d := range descs {
		locs[loc] = youtube.Localization{
			Title:       localizedTitle(rec.Video, loc),
			Description: d,
		}
	}

	// Metadata push
	if err = s.pushMetadata(ctx, ytID, locs); err != nil {
		return failure(videoID, uploaded, err)
	}

	// Readback
	playback, err := s.yt.GetPlayback(ctx, ytID)
	if err != nil {
		return failure(videoID, uploaded, err)
	}

	// Local writeback
	if err = s.store.UpdateVideoPlayback(ctx, videoID, playback.Duration, playback.PublishedAt); err != nil {
		return failure(videoID, uploaded, err)
	}

	if err = s.subs.Discard(videoID); err != nil {
		log.WithError(err).Warnf("failed to discard staged subtitles for video %d", videoID)
	}

	return &Result{
		VideoID:           videoID,
		Success:           true,
		Message:           "synced",
		SubtitlesUploaded: uploaded,
		Duration:          playback.Duration,
		PublishedAt:       &playback.PublishedAt,
	}, nil
}

func (s *Syncer) uploadSubtitles(ctx context.Context, v *models.Video, ytID string, opts Options) int {
	subType := opts.SubtitleType
	if subType == "" && v.SubtitleType != nil {
		subType = *v.SubtitleType
	}
	uploaded := 0
	for _, loc := range describe.Locales {
		f, ok, err := s.subs.Open(v.VideoID, loc)
		if err != nil {
			log.WithError(err).Warnf("failed to open staged subtitle %v for video %d", loc, v.VideoID)
			continue
		}
		if !ok {
			log.Infof("no staged subtitle %v for video %d", loc, v.VideoID)
			continue
		}
		err = s.yt.InsertCaption(ctx, ytID, loc, subtitles.CaptionName(subType, loc), f)
		_ = f.Close()
		if err != nil {
			log.WithError(err).Warnf("failed to upload subtitle %v for video %d", loc, v.VideoID)
			continue
		}
		uploaded++
	}
	return uploaded
}

// pushMetadata updates the main-language snippet first, then the
// localization map. The snippet is re-read so fields the catalog does not
// manage survive the write.
func (s *Syncer) pushMetadata(ctx context.Context, ytID string, locs map[string]youtube.Localization) error {
	sn, err := s.yt.GetSnippet(ctx, ytID)
	if err != nil {
		return err
	}
	if sn == nil {
		return apperr.Newf(apperr.RemoteService, "video %s not found on youtube", ytID)
	}
	main := locs[youtube.DefaultLanguage]
	sn["defaultLanguage"] = youtube.DefaultLanguage
	sn["title"] = main.Title
	sn["description"] = main.Description
	sn["categoryId"] = youtube.MusicCategoryID
	if err = s.yt.UpdateSnippet(ctx, ytID, sn); err != nil {
		return err
	}
	return s.yt.UpdateLocalizations(ctx, ytID, locs)
}

func localizedTitle(v *models.Video, locale string) string {
	var t *string
	switch locale {
	case describe.LocaleJa:
		t = v.JaTitle
	case describe.LocaleEn:
		t = v.EnTitle
	case describe.LocaleZhHant:
		t = v.ZhHantTitle
	}
	if t == nil {
		return ""
	}
	return *t
}

// BatchResult aggregates a sequential multi-video run.
type BatchResult struct {
	RunID        string    `json:"run_id"`
	Results      []*Result `json:"results"`
	SuccessCount int       `json:"success_count"`
	FailedCount  int       `json:"failed_count"`
}

// SyncBatch processes the ids one after another. A failed item records its
// error in its own result slot and never cancels its siblings.
func (s *Syncer) SyncBatch(ctx context.Context, ids []int64, opts Options) *BatchResult {
	br := &BatchResult{
		RunID:   uuid.NewString(),
		Results: make([]*Result, 0, len(ids)),
	}
	l := log.WithField("run", br.RunID)
	l.Infof("syncing %d videos", len(ids))
	for _, id := range ids {
		res, err := s.Sync(ctx, id, opts)
		if err != nil {
			l.WithError(err).Errorf("sync failed for video %d", id)
			br.FailedCount++
		} else {
			br.SuccessCount++
		}
		br.Results = append(br.Results, res)
	}
	l.Infof("sync finished: %d ok, %d failed", br.SuccessCount, br.FailedCount)
	return br
}
