package sync

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
	"github.com/bloggermandolin/catalog/services/youtube"
)

// --- Mock implementations ---

type mockStore struct {
	rec        *models.VideoMusic
	recErr     error
	playbacks  map[int64][2]any
	updateErr  error
	updateCall int
}

func (m *mockStore) GetVideoMusic(_ context.Context, _ int64) (*models.VideoMusic, error) {
	if m.recErr != nil {
		return nil, m.recErr
	}
	return m.rec, nil
}

func (m *mockStore) UpdateVideoPlayback(_ context.Context, videoID int64, length int, uploadTime time.Time) error {
	m.updateCall++
	if m.playbacks == nil {
		m.playbacks = map[int64][2]any{}
	}
	m.playbacks[videoID] = [2]any{length, uploadTime}
	return m.updateErr
}

type mockRemote struct {
	authErr      error
	snippet      map[string]any
	snippetErr   error
	updatedSnip  map[string]any
	updatedLocs  map[string]youtube.Localization
	captions     []string
	captionErr   error
	playback     *youtube.Playback
	playbackErr  error
	remoteCalled bool
}

func (m *mockRemote) Authenticate(_ context.Context) error {
	m.remoteCalled = true
	return m.authErr
}

func (m *mockRemote) GetSnippet(_ context.Context, _ string) (map[string]any, error) {
	m.remoteCalled = true
	if m.snippetErr != nil {
		return nil, m.snippetErr
	}
	if m.snippet == nil {
		return map[string]any{"title": "old"}, nil
	}
	return m.snippet, nil
}

func (m *mockRemote) UpdateSnippet(_ context.Context, _ string, snippet map[string]any) error {
	m.updatedSnip = snippet
	return nil
}

func (m *mockRemote) UpdateLocalizations(_ context.Context, _ string, locs map[string]youtube.Localization) error {
	m.updatedLocs = locs
	return nil
}

func (m *mockRemote) InsertCaption(_ context.Context, _ string, lang string, _ string, _ io.Reader) error {
	if m.captionErr != nil {
		return m.captionErr
	}
	m.captions = append(m.captions, lang)
	return nil
}

func (m *mockRemote) GetPlayback(_ context.Context, _ string) (*youtube.Playback, error) {
	if m.playbackErr != nil {
		return nil, m.playbackErr
	}
	if m.playback != nil {
		return m.playback, nil
	}
	return &youtube.Playback{Duration: 200, PublishedAt: time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)}, nil
}

type mockSubs struct {
	staged    map[string]string
	openErr   error
	discarded []int64
}

func (m *mockSubs) Open(_ int64, locale string) (io.ReadCloser, bool, error) {
	if m.openErr != nil {
		return nil, false, m.openErr
	}
	body, ok := m.staged[locale]
	if !ok {
		return nil, false, nil
	}
	return io.NopCloser(bytes.NewBufferString(body)), true, nil
}

func (m *mockSubs) Discard(videoID int64) error {
	m.discarded = append(m.discarded, videoID)
	return nil
}

func strPtr(s string) *string { return &s }

func syncableRecord() *models.VideoMusic {
	return &models.VideoMusic{
		Video: &models.Video{
			VideoID:          1,
			YouTubeLink:      strPtr("https://youtu.be/abc123"),
			JaTitle:          strPtr("タイトル"),
			EnTitle:          strPtr("Title"),
			ZhHantTitle:      strPtr("標題"),
			InstrumentalType: strPtr(models.InstrumentalTypeInst),
			SubtitleType:     strPtr("Lyrics"),
		},
		Music: &models.Music{MusicID: 2, EnName: strPtr("Song")},
	}
}

func TestSync(t *testing.T) {
	store := &mockStore{rec: syncableRecord()}
	remote := &mockRemote{}
	subs := &mockSubs{staged: map[string]string{"ja": "srt", "en": "srt"}}

	res, err := New(store, remote, subs).Sync(context.Background(), 1, Options{})
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if !res.Success {
		t.Fatalf("Sync() not successful: %v", res.Message)
	}
	if res.SubtitlesUploaded != 2 {
		t.Errorf("SubtitlesUploaded = %d, want 2", res.SubtitlesUploaded)
	}
	if res.Duration != 200 {
		t.Errorf("Duration = %d, want 200", res.Duration)
	}

	if remote.updatedSnip == nil {
		t.Fatal("snippet was not updated")
	}
	if got := remote.updatedSnip["defaultLanguage"]; got != youtube.DefaultLanguage {
		t.Errorf("defaultLanguage = %v, want %v", got, youtube.DefaultLanguage)
	}
	if got := remote.updatedSnip["categoryId"]; got != youtube.MusicCategoryID {
		t.Errorf("categoryId = %v, want %v", got, youtube.MusicCategoryID)
	}
	if got := remote.updatedSnip["title"]; got != "タイトル" {
		t.Errorf("title = %v, want ja title", got)
	}
	if len(remote.updatedLocs) != 3 {
		t.Errorf("localizations = %d, want 3", len(remote.updatedLocs))
	}
	if remote.updatedLocs["en"].Title != "Title" {
		t.Errorf("en localized title = %v, want Title", remote.updatedLocs["en"].Title)
	}

	if store.updateCall != 1 {
		t.Errorf("UpdateVideoPlayback calls = %d, want 1", store.updateCall)
	}
	if len(subs.discarded) != 1 || subs.discarded[0] != 1 {
		t.Errorf("Discard calls = %v, want [1]", subs.discarded)
	}
}

func TestSyncMissingYouTubeLink(t *testing.T) {
	rec := syncableRecord()
	rec.Video.YouTubeLink = nil
	store := &mockStore{rec: rec}
	remote := &mockRemote{}

	res, err := New(store, remote, &mockSubs{}).Sync(context.Background(), 1, Options{})
	if err == nil {
		t.Fatal("Sync() expected error")
	}
	if !apperr.Is(err, apperr.Precondition) {
		t.Errorf("error kind = %v, want Precondition", apperr.KindOf(err))
	}
	if res.Success {
		t.Error("Result.Success = true, want false")
	}
	if remote.remoteCalled {
		t.Error("remote was called before the precondition check")
	}
}

func TestSyncVideoNotFound(t *testing.T) {
	store := &mockStore{recErr: apperr.Newf(apperr.NotFound, "video 9")}
	remote := &mockRemote{}

	_, err := New(store, remote, &mockSubs{}).Sync(context.Background(), 9, Options{})
	if !apperr.Is(err, apperr.NotFound) {
		t.Errorf("error kind = %v, want NotFound", apperr.KindOf(err))
	}
	if remote.remoteCalled {
		t.Error("remote was called for a missing video")
	}
}

func TestSyncSubtitleFailureIsNotFatal(t *testing.T) {
	store := &mockStore{rec: syncableRecord()}
	remote := &mockRemote{captionErr: apperr.New(apperr.RemoteService, "quota exceeded")}
	subs := &mockSubs{staged: map[string]string{"ja": "srt"}}

	res, err := New(store, remote, subs).Sync(context.Background(), 1, Options{})
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if !res.Success {
		t.Fatalf("Sync() not successful: %v", res.Message)
	}
	if res.SubtitlesUploaded != 0 {
		t.Errorf("SubtitlesUploaded = %d, want 0", res.SubtitlesUploaded)
	}
}

func TestSyncPlaybackFailureKeepsProgress(t *testing.T) {
	store := &mockStore{rec: syncableRecord()}
	remote := &mockRemote{playbackErr: apperr.New(apperr.RemoteService, "remote down")}
	subs := &mockSubs{staged: map[string]string{"ja": "srt"}}

	res, err := New(store, remote, subs).Sync(context.Background(), 1, Options{})
	if err == nil {
		t.Fatal("Sync() expected error")
	}
	if res.SubtitlesUploaded != 1 {
		t.Errorf("SubtitlesUploaded = %d, want 1", res.SubtitlesUploaded)
	}
	if store.updateCall != 0 {
		t.Errorf("UpdateVideoPlayback calls = %d, want 0", store.updateCall)
	}
	if len(subs.discarded) != 0 {
		t.Errorf("Discard calls = %v, want none", subs.discarded)
	}
}

// batchStore fails specific ids while the rest succeed.
type batchStore struct {
	failing map[int64]error
}

func (m *batchStore) GetVideoMusic(_ context.Context, videoID int64) (*models.VideoMusic, error) {
	if err, ok := m.failing[videoID]; ok {
		return nil, err
	}
	rec := syncableRecord()
	rec.Video.VideoID = videoID
	return rec, nil
}

func (m *batchStore) UpdateVideoPlayback(_ context.Context, _ int64, _ int, _ time.Time) error {
	return nil
}

func TestSyncBatch(t *testing.T) {
	store := &batchStore{failing: map[int64]error{
		2: apperr.Newf(apperr.NotFound, "video 2"),
	}}
	br := New(store, &mockRemote{}, &mockSubs{}).SyncBatch(context.Background(), []int64{1, 2, 3}, Options{})

	if br.RunID == "" {
		t.Error("RunID is empty")
	}
	if len(br.Results) != 3 {
		t.Fatalf("Results = %d, want 3", len(br.Results))
	}
	if br.SuccessCount != 2 || br.FailedCount != 1 {
		t.Errorf("counts = %d ok / %d failed, want 2/1", br.SuccessCount, br.FailedCount)
	}
	if br.Results[0].VideoID != 1 || br.Results[1].VideoID != 2 || br.Results[2].VideoID != 3 {
		t.Error("results are not in request order")
	}
	if br.Results[1].Success {
		t.Error("failed id reported success")
	}
	if !br.Results[2].Success {
		t.Error("sibling after a failure did not run")
	}
}
