package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// EntityKind names a clonable catalog entity.
type EntityKind string

const (
	EntityWork      EntityKind = "work"
	EntityMusic     EntityKind = "music"
	EntityVideo     EntityKind = "video"
	EntityStreaming EntityKind = "streaming"
	EntityCreator   EntityKind = "creator"
)

const cloneNameSuffix = " (copy)"

// Clone deep-copies the entity row and its direct join rows into new rows and
// returns the new top-level id. The copy goes exactly one level deep: join rows
// pointing at the source id are repointed at the new id, their other foreign
// key is kept verbatim, and nothing beyond the join rows is duplicated.
// Identity-coupled fields are reset per entity so the copy is never mistaken
// for the published original.
func Clone(ctx context.Context, db *pg.DB, kind EntityKind, id int64) (int64, error) {
	switch kind {
	case EntityWork:
		return CloneWork(ctx, db, id)
	case EntityMusic:
		return CloneMusic(ctx, db, id)
	case EntityVideo:
		return CloneVideo(ctx, db, id)
	case EntityStreaming:
		return CloneStreaming(ctx, db, id)
	case EntityCreator:
		return CloneCreator(ctx, db, id)
	}
	return 0, apperr.Newf(apperr.Precondition, "entity %q is not clonable", kind)
}

// videoCopy resets the YouTube identity fields alongside the primary key, a
// cloned video has not been published yet.
func videoCopy(src *Video) Video {
	cp := *src
	cp.VideoID = 0
	cp.YouTubeLink = nil
	cp.UploadTime = nil
	cp.Length = nil
	cp.Styles = nil
	return cp
}

func musicCopy(src *Music) Music {
	cp := *src
	cp.MusicID = 0
	cp.Work = nil
	cp.Styles = nil
	cp.Roles = nil
	cp.Versions = nil
	return cp
}

// streamingCopy drops the smart-link, it points at the source's release.
func streamingCopy(src *Streaming) Streaming {
	cp := *src
	cp.StreamingID = 0
	cp.SmartLink = nil
	cp.Versions = nil
	return cp
}

// creatorCopy suffixes the display name so the copy is tellable apart in
// credit listings.
func creatorCopy(src *Creator) Creator {
	cp := *src
	cp.CreatorID = 0
	cp.Roles = nil
	if cp.CreatorName != nil {
		name := *cp.CreatorName + cloneNameSuffix
		cp.CreatorName = &name
	}
	return cp
}

// styleCopies maps source join rows to insertable copies: fresh pk, loaded
// relations dropped, the source-side fk swapped by repoint, the other fk
// kept verbatim.
func styleCopies(src []*Style, repoint func(*Style)) []*Style {
	out := make([]*Style, 0, len(src))
	for _, s := range src {
		cp := *s
		cp.ID = 0
		cp.Video = nil
		cp.Music = nil
		repoint(&cp)
		out = append(out, &cp)
	}
	return out
}

func roleCopies(src []*Role, repoint func(*Role)) []*Role {
	out := make([]*Role, 0, len(src))
	for _, r := range src {
		cp := *r
		cp.RoleID = 0
		cp.Creator = nil
		cp.Music = nil
		repoint(&cp)
		out = append(out, &cp)
	}
	return out
}

func versionCopies(src []*Version, repoint func(*Version)) []*Version {
	out := make([]*Version, 0, len(src))
	for _, v := range src {
		cp := *v
		cp.ID = 0
		cp.Streaming = nil
		cp.Music = nil
		repoint(&cp)
		out = append(out, &cp)
	}
	return out
}

// CloneVideo copies a video row without its YouTube identity (link, publish
// time, duration) and duplicates its Style rows against the new id. All rows
// are written in one transaction.
func CloneVideo(ctx context.Context, db *pg.DB, id int64) (int64, error) {
	var newID int64
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		src := &Video{VideoID: id}
		if err := tx.Model(src).WherePK().Context(ctx).Select(); err != nil {
			if errors.Is(err, pg.ErrNoRows) {
				return apperr.Newf(apperr.NotFound, "video %d", id)
			}
			return err
		}
		cp := videoCopy(src)
		if _, err := tx.Model(&cp).Context(ctx).Insert(); err != nil {
			return err
		}
		if err := cloneStyles(ctx, tx, "video_id = ?", id, func(s *Style) { s.VideoID = cp.VideoID }); err != nil {
			return err
		}
		newID = cp.VideoID
		return nil
	})
	if err != nil {
		return 0, persistence(err, "clone video")
	}
	return newID, nil
}

// CloneMusic copies a music row and duplicates its Style, Role and Version
// rows against the new id, preserving the video, creator and streaming sides.
func CloneMusic(ctx context.Context, db *pg.DB, id int64) (int64, error) {
	var newID int64
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		src := &Music{MusicID: id}
		if err := tx.Model(src).WherePK().Context(ctx).Select(); err != nil {
			if errors.Is(err, pg.ErrNoRows) {
				return apperr.Newf(apperr.NotFound, "music %d", id)
			}
			return err
		}
		cp := musicCopy(src)
		if _, err := tx.Model(&cp).Context(ctx).Insert(); err != nil {
			return err
		}
		if err := cloneStyles(ctx, tx, "music_id = ?", id, func(s *Style) { s.MusicID = cp.MusicID }); err != nil {
			return err
		}
		var roles []*Role
		if err := tx.Model(&roles).Where("music_id = ?", id).Order("role_id ASC").Context(ctx).Select(); err != nil {
			return err
		}
		roles = roleCopies(roles, func(r *Role) { r.MusicID = cp.MusicID })
		if len(roles) > 0 {
			if _, err := tx.Model(&roles).Context(ctx).Insert(); err != nil {
				return err
			}
		}
		var versions []*Version
		if err := tx.Model(&versions).Where("music_id = ?", id).Order("id ASC").Context(ctx).Select(); err != nil {
			return err
		}
		versions = versionCopies(versions, func(v *Version) { v.MusicID = cp.MusicID })
		if len(versions) > 0 {
			if _, err := tx.Model(&versions).Context(ctx).Insert(); err != nil {
				return err
			}
		}
		newID = cp.MusicID
		return nil
	})
	if err != nil {
		return 0, persistence(err, "clone music")
	}
	return newID, nil
}

// CloneStreaming copies a streaming row without its smart-link and duplicates
// its Version rows against the new id.
func CloneStreaming(ctx context.Context, db *pg.DB, id int64) (int64, error) {
	var newID int64
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		src := &Streaming{StreamingID: id}
		if err := tx.Model(src).WherePK().Context(ctx).Select(); err != nil {
			if errors.Is(err, pg.ErrNoRows) {
				return apperr.Newf(apperr.NotFound, "streaming %d", id)
			}
			return err
		}
		cp := streamingCopy(src)
		if _, err := tx.Model(&cp).Context(ctx).Insert(); err != nil {
			return err
		}
		var versions []*Version
		if err := tx.Model(&versions).Where("streaming_id = ?", id).Order("id ASC").Context(ctx).Select(); err != nil {
			return err
		}
		versions = versionCopies(versions, func(v *Version) { v.StreamingID = cp.StreamingID })
		if len(versions) > 0 {
			if _, err := tx.Model(&versions).Context(ctx).Insert(); err != nil {
				return err
			}
		}
		newID = cp.StreamingID
		return nil
	})
	if err != nil {
		return 0, persistence(err, "clone streaming")
	}
	return newID, nil
}

// CloneCreator copies a creator row with a suffixed display name and
// duplicates its Role rows against the new id.
func CloneCreator(ctx context.Context, db *pg.DB, id int64) (int64, error) {
	var newID int64
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		src := &Creator{CreatorID: id}
		if err := tx.Model(src).WherePK().Context(ctx).Select(); err != nil {
			if errors.Is(err, pg.ErrNoRows) {
				return apperr.Newf(apperr.NotFound, "creator %d", id)
			}
			return err
		}
		cp := creatorCopy(src)
		if _, err := tx.Model(&cp).Context(ctx).Insert(); err != nil {
			return err
		}
		var roles []*Role
		if err := tx.Model(&roles).Where("creator_id = ?", id).Order("role_id ASC").Context(ctx).Select(); err != nil {
			return err
		}
		roles = roleCopies(roles, func(r *Role) { r.CreatorID = cp.CreatorID })
		if len(roles) > 0 {
			if _, err := tx.Model(&roles).Context(ctx).Insert(); err != nil {
				return err
			}
		}
		newID = cp.CreatorID
		return nil
	})
	if err != nil {
		return 0, persistence(err, "clone creator")
	}
	return newID, nil
}

// CloneWork copies a work row. Music rows belonging to the work are left
// untouched, the copy rule never recurses past direct join rows and Music is
// a full entity, not a join row.
func CloneWork(ctx context.Context, db *pg.DB, id int64) (int64, error) {
	var newID int64
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		src := &Work{WorkID: id}
		if err := tx.Model(src).WherePK().Context(ctx).Select(); err != nil {
			if errors.Is(err, pg.ErrNoRows) {
				return apperr.Newf(apperr.NotFound, "work %d", id)
			}
			return err
		}
		cp := *src
		cp.WorkID = 0
		cp.Music = nil
		if _, err := tx.Model(&cp).Context(ctx).Insert(); err != nil {
			return err
		}
		newID = cp.WorkID
		return nil
	})
	if err != nil {
		return 0, persistence(err, "clone work")
	}
	return newID, nil
}

func cloneStyles(ctx context.Context, tx *pg.Tx, cond string, id int64, repoint func(*Style)) error {
	var styles []*Style
	if err := tx.Model(&styles).Where(cond, id).Order("id ASC").Context(ctx).Select(); err != nil {
		return err
	}
	styles = styleCopies(styles, repoint)
	if len(styles) == 0 {
		return nil
	}
	_, err := tx.Model(&styles).Context(ctx).Insert()
	return err
}

// persistence keeps already-classified errors and wraps raw engine errors.
func persistence(err error, msg string) error {
	if apperr.KindOf(err) != 0 {
		return err
	}
	return apperr.Wrap(apperr.Persistence, err, msg)
}
