package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// Role links a Creator to a Music track with a role-category tag
// (composer, vocalist, ...).
type Role struct {
	tableName struct{} `pg:"role"`

	RoleID    int64  `pg:"role_id,pk"`
	CreatorID int64  `pg:"creator_id,use_zero"`
	MusicID   int64  `pg:"music_id,use_zero"`
	Role      string `pg:"role,use_zero"`

	Creator *Creator `pg:"rel:has-one"`
	Music   *Music   `pg:"rel:has-one"`
}

func GetRole(ctx context.Context, db *pg.DB, id int64) (*Role, error) {
	r := &Role{RoleID: id}
	err := db.Model(r).WherePK().Context(ctx).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, apperr.Newf(apperr.NotFound, "role %d", id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "select role")
	}
	return r, nil
}

func InsertRole(ctx context.Context, db *pg.DB, r *Role) error {
	_, err := db.Model(r).Context(ctx).Insert()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "insert role")
	}
	return nil
}

func UpdateRole(ctx context.Context, db *pg.DB, r *Role) error {
	res, err := db.Model(r).WherePK().Context(ctx).Update()
	if err != nil {
		return apperr.Wrap(apperr.Persistence, err, "update role")
	}
	if res.RowsAffected() == 0 {
		return apperr.Newf(apperr.NotFound, "role %d", r.RoleID)
	}
	return nil
}

func ListRoles(ctx context.Context, db *pg.DB, limit, offset int) ([]*Role, error) {
	var list []*Role
	err := db.Model(&list).Order("role_id ASC").Limit(limit).Offset(offset).Context(ctx).Select()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, err, "list roles")
	}
	return list, nil
}
