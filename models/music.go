package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// Music is a track belonging to exactly one Work. Its video, streaming and
// creator usages are carried by the Style, Version and Role join rows.
type Music struct {
	tableName struct{} `pg:"music"`

	MusicID        int64   `pg:"music_id,pk"`
	WorkID         int64   `pg:"work_id,use_zero"`
	ZhHantName     *string `pg:"zh_hant_name"`
	JaName         *string `pg:"ja_name"`
	EnName         *string `pg:"en_name"`
	ThemeType      *string `pg:"theme_type"`
	SpotifyID      *string `pg:"spotify_id"`
	MV             *string `pg:"mv"`
	OfficialArtist *string `pg:"official_artist"`

	Work     *Work      `pg:"rel:has-one"`
	Styles   []*Style   `pg:"rel:has-many"`
	Roles    []*Role    `pg:"rel:has-many"`
	Versions []*Version `pg:"rel:has-many"`
}

func GetMusic(ctx context.Context, db *pg.DB, id int64) (*Music, error) {
	m := &Music{MusicID: id}
	err := db.Model(m).WherePK().Context(ctx).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, apperr.Newf(apperr.NotFound, "music %d", id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "select music")
	}
	return m, nil
}

func InsertMusic(ctx context.Context, db *pg.DB, m *Music) error {
	_, err := db.Model(m).Context(ctx).Insert()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert music")
	}
	return nil
}

func UpdateMusic(ctx context.Context, db *pg.DB, m *Music) error {
	res, err := db.Model(m).WherePK().Context(ctx).Update()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update music")
	}
	if res.RowsAffected() == 0 {
		return apperr.Newf(apperr.NotFound, "music %d", m.MusicID)
	}
	return nil
}

func ListMusic(ctx context.Context, db *pg.DB, limit, offset int) ([]*Music, error) {
	var list []*Music
	err := db.Model(&list).Order("music_id ASC").Limit(limit).Offset(offset).Context(ctx).Select()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list music")
	}
	return list, nil
}
