package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// VideoMusic is the flattened video/style/music join record the sync
// orchestrator works with. When a video links several tracks the first style
// row by id wins, matching the single-row join the sync flow expects.
type VideoMusic struct {
	Video *Video
	Style *Style
	Music *Music
}

func GetVideoMusic(ctx context.Context, db *pg.DB, videoID int64) (*VideoMusic, error) {
	st := &Style{}
	err := db.Model(st).
		Relation("Video").
		Relation("Music").
		Where("style.video_id = ?", videoID).
		Order("style.id ASC").
		Limit(1).
		Context(ctx).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, apperr.Newf(apperr.NotFound, "video %d with linked music", videoID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "select video with music")
	}
	return &VideoMusic{
		Video: st.Video,
		Style: st,
		Music: st.Music,
	}, nil
}
