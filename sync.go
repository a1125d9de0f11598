package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	ss "github.com/bloggermandolin/catalog/services/sync"
	"github.com/bloggermandolin/catalog/services/subtitles"
	"github.com/bloggermandolin/catalog/services/youtube"
)

func makeSyncCMD() cli.Command {
	syncCMD := cli.Command{
		Name:   "sync",
		Usage:  "Syncs video metadata to YouTube",
		Action: syncVideos,
	}
	configureSync(&syncCMD)
	return syncCMD
}

func configureSync(c *cli.Command) {
	c.Flags = append(c.Flags,
		cli.Int64Flag{
			Name:  "id",
			Usage: "video id to sync",
		},
		cli.StringFlag{
			Name:  "batch",
			Usage: "comma-separated video ids to sync",
		},
		cli.StringFlag{
			Name:  "subtitle-type",
			Usage: "override caption type (Lyrics or BloggerTalk)",
		},
	)
	c.Flags = cs.RegisterPGFlags(c.Flags)
	c.Flags = youtube.RegisterFlags(c.Flags)
	c.Flags = subtitles.RegisterFlags(c.Flags)
}

func syncVideos(c *cli.Context) error {
	ids, err := syncIDs(c)
	if err != nil {
		return err
	}

	// Setting DB
	pg := cs.NewPG(c)
	defer pg.Close()

	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting YouTube Api
	yt := youtube.New(c, cl)
	if yt == nil {
		return errors.New("youtube api not configured")
	}

	// Setting Syncer
	syncer := ss.New(ss.NewPGStore(pg), yt, subtitles.New(c))

	opts := ss.Options{SubtitleType: c.String("subtitle-type")}
	ctx := context.Background()

	if len(ids) == 1 {
		res, err := syncer.Sync(ctx, ids[0], opts)
		if res != nil {
			printSyncResult(res)
		}
		return err
	}
	br := syncer.SyncBatch(ctx, ids, opts)
	for _, res := range br.Results {
		printSyncResult(res)
	}
	fmt.Printf("run %v done: %d ok, %d failed\n", br.RunID, br.SuccessCount, br.FailedCount)
	if br.FailedCount > 0 {
		return errors.Errorf("%d of %d videos failed to sync", br.FailedCount, len(br.Results))
	}
	return nil
}

func syncIDs(c *cli.Context) ([]int64, error) {
	if b := c.String("batch"); b != "" {
		var ids []int64
		for _, p := range strings.Split(b, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "bad video id %v", p)
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	if id := c.Int64("id"); id != 0 {
		return []int64{id}, nil
	}
	return nil, errors.New("either --id or --batch is required")
}

func printSyncResult(res *ss.Result) {
	if !res.Success {
		fmt.Printf("video %d: failed: %v\n", res.VideoID, res.Message)
		return
	}
	line := fmt.Sprintf("video %d: synced, %d subtitles uploaded", res.VideoID, res.SubtitlesUploaded)
	if res.Duration > 0 {
		line += fmt.Sprintf(", %ds long", res.Duration)
	}
	if res.PublishedAt != nil {
		line += fmt.Sprintf(", published %v", humanize.Time(*res.PublishedAt))
	}
	fmt.Println(line)
}
