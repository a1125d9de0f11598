package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// Streaming is a streaming-release grouping. Unlike Video it carries a fourth
// locale title (zh-Hans) for the stores that require simplified Chinese.
type Streaming struct {
	tableName struct{} `pg:"streaming"`

	StreamingID      int64   `pg:"streaming_id,pk"`
	EnTitle          *string `pg:"en_title"`
	JaTitle          *string `pg:"ja_title"`
	ZhHantTitle      *string `pg:"zh_hant_title"`
	ZhHansTitle      *string `pg:"zh_hans_title"`
	Instrumental     *string `pg:"instrumental"`
	InstrumentalType *string `pg:"instrumental_type"`
	SmartLink        *string `pg:"smart_link"`

	Versions []*Version `pg:"rel:has-many"`
}

func GetStreaming(ctx context.Context, db *pg.DB, id int64) (*Streaming, error) {
	s := &Streaming{StreamingID: id}
	err := db.Model(s).WherePK().Context(ctx).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, apperr.Newf(apperr.NotFound, "streaming %d", id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "select streaming")
	}
	return s, nil
}

func InsertStreaming(ctx context.Context, db *pg.DB, s *Streaming) error {
	_, err := db.Model(s).Context(ctx).Insert()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert streaming")
	}
	return nil
}

func UpdateStreaming(ctx context.Context, db *pg.DB, s *Streaming) error {
	res, err := db.Model(s).WherePK().Context(ctx).Update()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update streaming")
	}
	if res.RowsAffected() == 0 {
		return apperr.Newf(apperr.NotFound, "streaming %d", s.StreamingID)
	}
	return nil
}

func ListStreamings(ctx context.Context, db *pg.DB, limit, offset int) ([]*Streaming, error) {
	var list []*Streaming
	err := db.Model(&list).Order("streaming_id ASC").Limit(limit).Offset(offset).Context(ctx).Select()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list streamings")
	}
	return list, nil
}
