package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// Version links a Streaming release to a Music track with a version-category tag.
type Version struct {
	tableName struct{} `pg:"version"`

	ID          int64  `pg:"id,pk"`
	StreamingID int64  `pg:"streaming_id,use_zero"`
	MusicID     int64  `pg:"music_id,use_zero"`
	Version     string `pg:"version,use_zero"`

	Streaming *Streaming `pg:"rel:has-one"`
	Music     *Music     `pg:"rel:has-one"`
}

func GetVersion(ctx context.Context, db *pg.DB, id int64) (*Version, error) {
	v := &Version{ID: id}
	err := db.Model(v).WherePK().Context(ctx).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, apperr.Newf(apperr.NotFound, "version %d", id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "select version")
	}
	return v, nil
}

func InsertVersion(ctx context.Context, db *pg.DB, v *Version) error {
	_, err := db.Model(v).Context(ctx).Insert()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert version")
	}
	return nil
}

func UpdateVersion(ctx context.Context, db *pg.DB, v *Version) error {
	res, err := db.Model(v).WherePK().Context(ctx).Update()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update version")
	}
	if res.RowsAffected() == 0 {
		return apperr.Newf(apperr.NotFound, "version %d", v.ID)
	}
	return nil
}

func ListVersions(ctx context.Context, db *pg.DB, limit, offset int) ([]*Version, error) {
	var list []*Version
	err := db.Model(&list).Order("id ASC").Limit(limit).Offset(offset).Context(ctx).Select()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list versions")
	}
	return list, nil
}
