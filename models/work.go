package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// Work is the source property (anime, game, ...) a Music track originates from.
type Work struct {
	tableName struct{} `pg:"work"`

	WorkID     int64   `pg:"work_id,pk"`
	Type       string  `pg:"type,use_zero"`
	ZhHantName *string `pg:"zh_hant_name"`
	JaName     *string `pg:"ja_name"`
	EnName     *string `pg:"en_name"`

	Music []*Music `pg:"rel:has-many"`
}

func GetWork(ctx context.Context, db *pg.DB, id int64) (*Work, error) {
	w := &Work{WorkID: id}
	err := db.Model(w).WherePK().Context(ctx).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, apperr.Newf(apperr.NotFound, "work %d", id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "select work")
	}
	return w, nil
}

func InsertWork(ctx context.Context, db *pg.DB, w *Work) error {
	_, err := db.Model(w).Context(ctx).Insert()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert work")
	}
	return nil
}

func UpdateWork(ctx context.Context, db *pg.DB, w *Work) error {
	res, err := db.Model(w).WherePK().Context(ctx).Update()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update work")
	}
	if res.RowsAffected() == 0 {
		return apperr.Newf(apperr.NotFound, "work %d", w.WorkID)
	}
	return nil
}

func ListWorks(ctx context.Context, db *pg.DB, limit, offset int) ([]*Work, error) {
	var list []*Work
	err := db.Model(&list).Order("work_id ASC").Limit(limit).Offset(offset).Context(ctx).Select()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list works")
	}
	return list, nil
}
