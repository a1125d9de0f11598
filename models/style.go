package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// Style links a Video to a Music track with a style-category tag.
type Style struct {
	tableName struct{} `pg:"style"`

	ID      int64  `pg:"id,pk"`
	VideoID int64  `pg:"video_id,use_zero"`
	MusicID int64  `pg:"music_id,use_zero"`
	Style   string `pg:"style,use_zero"`

	Video *Video `pg:"rel:has-one"`
	Music *Music `pg:"rel:has-one"`
}

func GetStyle(ctx context.Context, db *pg.DB, id int64) (*Style, error) {
	s := &Style{ID: id}
	err := db.Model(s).WherePK().Context(ctx).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, apperr.Newf(apperr.NotFound, "style %d", id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "select style")
	}
	return s, nil
}

func InsertStyle(ctx context.Context, db *pg.DB, s *Style) error {
	_, err := db.Model(s).Context(ctx).Insert()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert style")
	}
	return nil
}

func UpdateStyle(ctx context.Context, db *pg.DB, s *Style) error {
	res, err := db.Model(s).WherePK().Context(ctx).Update()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update style")
	}
	if res.RowsAffected() == 0 {
		return apperr.Newf(apperr.NotFound, "style %d", s.ID)
	}
	return nil
}

func ListStyles(ctx context.Context, db *pg.DB, limit, offset int) ([]*Style, error) {
	var list []*Style
	err := db.Model(&list).Order("id ASC").Limit(limit).Offset(offset).Context(ctx).Select()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list styles")
	}
	return list, nil
}
