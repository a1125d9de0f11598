package sync

import (
	"context"
	"time"

	"github.com/pkg/errors"
	cs "github.com/webtor-io/common-services"

	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

// PGStore adapts the shared PG handle to the pipeline's Store slice.
type PGStore struct {
	pg *cs.PG
}

func NewPGStore(pg *cs.PG) *PGStore {
	return &PGStore{
		pg: pg,
	}
}

func (s *PGStore) GetVideoMusic(ctx context.Context, videoID int64) (*models.VideoMusic, error) {
	db := s.pg.Get()
	if db == nil {
		return nil, apperr.Wrap(apperr.Persistence, errors.New("db not initialized"), "get video with music")
	}
	return models.GetVideoMusic(ctx, db, videoID)
}

func (s *PGStore) UpdateVideoPlayback(ctx context.Context, videoID int64, length int, uploadTime time.Time) error {
	db := s.pg.Get()
	if db == nil {
		return apperr.Wrap(apperr.Persistence, errors.New("db not initialized"), "update video playback")
	}
	return models.UpdateVideoPlayback(ctx, db, videoID, length, uploadTime)
}
