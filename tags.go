package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bloggermandolin/catalog/services/tags"
	"github.com/bloggermandolin/catalog/services/youtube"
)

func makeTagsCMD() cli.Command {
	tagsCMD := cli.Command{
		Name:   "tags",
		Usage:  "Grabs tags from a reference video and rewrites them",
		Action: grabTags,
	}
	configureTags(&tagsCMD)
	return tagsCMD
}

func configureTags(c *cli.Command) {
	c.Flags = append(c.Flags,
		cli.StringFlag{
			Name:  "ref",
			Usage: "reference video link or id to grab tags from",
		},
		cli.StringFlag{
			Name:  "apply",
			Usage: "video link or id to write the rewritten tags to",
		},
	)
	c.Flags = youtube.RegisterFlags(c.Flags)
	c.Flags = tags.RegisterFlags(c.Flags)
}

func grabTags(c *cli.Context) error {
	ref := c.String("ref")
	if ref == "" {
		return errors.New("--ref is required")
	}

	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting YouTube Api
	yt := youtube.New(c, cl)
	if yt == nil {
		return errors.New("youtube api not configured")
	}

	// Setting Rewriter
	rw, err := tags.New(c, yt)
	if err != nil {
		return err
	}

	// The tag read works with the API key alone, OAuth is only needed for
	// the write below.
	ctx := context.Background()
	tagString, ok, err := rw.Grab(ctx, ref)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("reference video has no tags")
		return nil
	}
	fmt.Println(tagString)

	target := c.String("apply")
	if target == "" {
		return nil
	}
	err = yt.Authenticate(ctx)
	if err != nil {
		return err
	}
	targetID := youtube.ExtractVideoID(strings.TrimSpace(target))
	err = yt.UpdateTags(ctx, targetID, tagString)
	if err != nil {
		return err
	}
	fmt.Printf("tags applied to %v\n", targetID)
	return nil
}
