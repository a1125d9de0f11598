package migrations

import (
	"github.com/go-pg/migrations/v8"
)

// CreateCatalogSchema registers the initial schema: the seven catalog tables
// with their primary and foreign keys. No extra indices, the catalog is small.
func CreateCatalogSchema(col *migrations.Collection) {
	up := []string{
		`CREATE TABLE IF NOT EXISTS work (
			work_id bigserial PRIMARY KEY,
			type varchar(20) NOT NULL,
			zh_hant_name varchar(100),
			ja_name varchar(100),
			en_name varchar(100)
		)`,
		`CREATE TABLE IF NOT EXISTS music (
			music_id bigserial PRIMARY KEY,
			work_id bigint NOT NULL REFERENCES work (work_id),
			zh_hant_name varchar(100),
			ja_name varchar(100),
			en_name varchar(100),
			theme_type varchar(20),
			spotify_id varchar(30),
			mv varchar(60),
			official_artist varchar(20)
		)`,
		`CREATE TABLE IF NOT EXISTS video (
			video_id bigserial PRIMARY KEY,
			youtube_link varchar(60),
			upload_time timestamptz,
			zh_hant_title varchar(100),
			ja_title varchar(100),
			en_title varchar(100),
			zh_hant_description varchar(300),
			ja_description varchar(300),
			en_description varchar(300),
			zh_hant_sub_source varchar(200),
			ja_sub_source varchar(200),
			en_sub_source varchar(200),
			instrumental varchar(200),
			sheet varchar(100),
			instrumental_type varchar(20),
			subtitle_type varchar(20),
			gumroad_sheet varchar(100),
			length integer
		)`,
		`CREATE TABLE IF NOT EXISTS style (
			id bigserial PRIMARY KEY,
			video_id bigint NOT NULL REFERENCES video (video_id),
			music_id bigint NOT NULL REFERENCES music (music_id),
			style varchar(20) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS streaming (
			streaming_id bigserial PRIMARY KEY,
			en_title varchar(300),
			ja_title varchar(300),
			zh_hant_title varchar(300),
			zh_hans_title varchar(300),
			instrumental varchar(100),
			instrumental_type varchar(20),
			smart_link varchar(300)
		)`,
		`CREATE TABLE IF NOT EXISTS version (
			id bigserial PRIMARY KEY,
			streaming_id bigint NOT NULL REFERENCES streaming (streaming_id),
			music_id bigint NOT NULL REFERENCES music (music_id),
			version varchar(20) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS creator (
			creator_id bigserial PRIMARY KEY,
			creator_name varchar(100),
			channel_name varchar(100),
			channel_link varchar(60)
		)`,
		`CREATE TABLE IF NOT EXISTS role (
			role_id bigserial PRIMARY KEY,
			creator_id bigint NOT NULL REFERENCES creator (creator_id),
			music_id bigint NOT NULL REFERENCES music (music_id),
			role varchar(20) NOT NULL
		)`,
	}
	down := []string{
		`DROP TABLE IF EXISTS role`,
		`DROP TABLE IF EXISTS creator`,
		`DROP TABLE IF EXISTS version`,
		`DROP TABLE IF EXISTS streaming`,
		`DROP TABLE IF EXISTS style`,
		`DROP TABLE IF EXISTS video`,
		`DROP TABLE IF EXISTS music`,
		`DROP TABLE IF EXISTS work`,
	}
	col.MustRegister(func(db migrations.DB) error {
		for _, q := range up {
			if _, err := db.Exec(q); err != nil {
				return err
			}
		}
		return nil
	}, func(db migrations.DB) error {
		for _, q := range down {
			if _, err := db.Exec(q); err != nil {
				return err
			}
		}
		return nil
	})
}
