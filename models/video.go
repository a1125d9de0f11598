package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// Instrumentation type tags stored on Video and Streaming rows. "Inst" selects
// the instrumental description template family, anything else selects piano.
const (
	InstrumentalTypeInst  = "Inst"
	InstrumentalTypePiano = "Piano"
)

// Video is a produced video artifact. YouTubeLink stays empty until the video
// is published; UploadTime and Length are written back from YouTube only.
type Video struct {
	tableName struct{} `pg:"video"`

	VideoID           int64      `pg:"video_id,pk"`
	YouTubeLink       *string    `pg:"youtube_link"`
	UploadTime        *time.Time `pg:"upload_time"`
	ZhHantTitle       *string    `pg:"zh_hant_title"`
	JaTitle           *string    `pg:"ja_title"`
	EnTitle           *string    `pg:"en_title"`
	ZhHantDescription *string    `pg:"zh_hant_description"`
	JaDescription     *string    `pg:"ja_description"`
	EnDescription     *string    `pg:"en_description"`
	ZhHantSubSource   *string    `pg:"zh_hant_sub_source"`
	JaSubSource       *string    `pg:"ja_sub_source"`
	EnSubSource       *string    `pg:"en_sub_source"`
	Instrumental      *string    `pg:"instrumental"`
	Sheet             *string    `pg:"sheet"`
	InstrumentalType  *string    `pg:"instrumental_type"`
	SubtitleType      *string    `pg:"subtitle_type"`
	GumroadSheet      *string    `pg:"gumroad_sheet"`
	Length            *int       `pg:"length"`

	Styles []*Style `pg:"rel:has-many"`
}

func GetVideo(ctx context.Context, db *pg.DB, id int64) (*Video, error) {
	v := &Video{VideoID: id}
	err := db.Model(v).WherePK().Context(ctx).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, apperr.Newf(apperr.NotFound, "video %d", id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "select video")
	}
	return v, nil
}

func InsertVideo(ctx context.Context, db *pg.DB, v *Video) error {
	_, err := db.Model(v).Context(ctx).Insert()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert video")
	}
	return nil
}

func UpdateVideo(ctx context.Context, db *pg.DB, v *Video) error {
	res, err := db.Model(v).WherePK().Context(ctx).Update()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update video")
	}
	if res.RowsAffected() == 0 {
		return apperr.Newf(apperr.NotFound, "video %d", v.VideoID)
	}
	return nil
}

// UpdateVideoPlayback writes back the YouTube-computed duration and publish
// time. These two columns are never authored locally.
func UpdateVideoPlayback(ctx context.Context, db *pg.DB, id int64, length int, uploadTime time.Time) error {
	v := &Video{
		VideoID:    id,
		Length:     &length,
		UploadTime: &uploadTime,
	}
	res, err := db.Model(v).WherePK().Column("length", "upload_time").Context(ctx).Update()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update video playback")
	}
	if res.RowsAffected() == 0 {
		return apperr.Newf(apperr.NotFound, "video %d", id)
	}
	return nil
}

func ListVideos(ctx context.Context, db *pg.DB, limit, offset int) ([]*Video, error) {
	var list []*Video
	err := db.Model(&list).Order("video_id ASC").Limit(limit).Offset(offset).Context(ctx).Select()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list videos")
	}
	return list, nil
}
