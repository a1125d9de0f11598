// Package tags grabs the tag list of a reference YouTube video and rewrites
// it through a static, ordered find/replace map before reuse.
package tags

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/bloggermandolin/catalog/services/youtube"
)

const replacementCSVFlag = "tag-replacement-csv"

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   replacementCSVFlag,
			Usage:  "csv file with word,replacement pairs applied to grabbed tags",
			Value:  "",
			EnvVar: "TAG_REPLACEMENT_CSV",
		},
	)
}

// Replacement is one literal-to-literal substitution. Entries apply in file
// order and a later entry sees the output of earlier ones, so they compound.
type Replacement struct {
	Word        string
	Replacement string
}

// TagSource reads the tag list of a remote video.
type TagSource interface {
	GetTags(ctx context.Context, videoID string) ([]string, error)
}

type Rewriter struct {
	src  TagSource
	repl []Replacement
}

// New loads the replacement map once and returns the rewriter. An unset csv
// path means no rewriting, grabbed tags pass through untouched.
func New(c *cli.Context, src TagSource) (*Rewriter, error) {
	path := c.String(replacementCSVFlag)
	var repl []Replacement
	if path != "" {
		var err error
		repl, err = loadReplacements(path)
		if err != nil {
			return nil, err
		}
		log.Infof("loaded %d tag replacements from %v", len(repl), path)
	}
	return NewWithReplacements(src, repl), nil
}

func NewWithReplacements(src TagSource, repl []Replacement) *Rewriter {
	return &Rewriter{
		src:  src,
		repl: repl,
	}
}

func loadReplacements(path string) ([]Replacement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open tag replacement csv")
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var repl []Replacement
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read tag replacement csv")
		}
		if len(row) < 2 {
			continue
		}
		repl = append(repl, Replacement{Word: row[0], Replacement: row[1]})
	}
	return repl, nil
}

// Grab fetches the reference video's tags, rewrites them and joins the result
// with commas. ok is false when the remote record has no tags; the caller
// decides whether that is fatal.
func (s *Rewriter) Grab(ctx context.Context, ref string) (tagString string, ok bool, err error) {
	id := youtube.ExtractVideoID(ref)
	tags, err := s.src.GetTags(ctx, id)
	if err != nil {
		return "", false, err
	}
	if len(tags) == 0 {
		return "", false, nil
	}
	return strings.Join(s.Rewrite(tags), ","), true, nil
}

// Rewrite applies every replacement entry to every tag, in entry order.
func (s *Rewriter) Rewrite(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		for _, r := range s.repl {
			tag = strings.ReplaceAll(tag, r.Word, r.Replacement)
		}
		out = append(out, tag)
	}
	return out
}
