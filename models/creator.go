package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// Creator is a person or channel credited on Music tracks via Role rows.
type Creator struct {
	tableName struct{} `pg:"creator"`

	CreatorID   int64   `pg:"creator_id,pk"`
	CreatorName *string `pg:"creator_name"`
	ChannelName *string `pg:"channel_name"`
	ChannelLink *string `pg:"channel_link"`

	Roles []*Role `pg:"rel:has-many"`
}

func GetCreator(ctx context.Context, db *pg.DB, id int64) (*Creator, error) {
	c := &Creator{CreatorID: id}
	err := db.Model(c).WherePK().Context(ctx).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, apperr.Newf(apperr.NotFound, "creator %d", id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "select creator")
	}
	return c, nil
}

func InsertCreator(ctx context.Context, db *pg.DB, c *Creator) error {
	_, err := db.Model(c).Context(ctx).Insert()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert creator")
	}
	return nil
}

func UpdateCreator(ctx context.Context, db *pg.DB, c *Creator) error {
	res, err := db.Model(c).WherePK().Context(ctx).Update()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update creator")
	}
	if res.RowsAffected() == 0 {
		return apperr.Newf(apperr.NotFound, "creator %d", c.CreatorID)
	}
	return nil
}

func ListCreators(ctx context.Context, db *pg.DB, limit, offset int) ([]*Creator, error) {
	var list []*Creator
	err := db.Model(&list).Order("creator_id ASC").Limit(limit).Offset(offset).Context(ctx).Select()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list creators")
	}
	return list, nil
}
