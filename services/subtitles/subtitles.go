// Package subtitles handles the local staging convention for subtitle files
// awaiting upload: <root>/<video id>/<locale>.srt, removed after a successful
// sync.
package subtitles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const stagingDirFlag = "subtitles-dir"

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   stagingDirFlag,
			Usage:  "directory with staged subtitle files per video",
			Value:  "subtitles",
			EnvVar: "SUBTITLES_DIR",
		},
	)
}

// Subtitle display name sets keyed by the video's subtitle-type tag.
const (
	TypeLyrics      = "Lyrics"
	TypeBloggerTalk = "BloggerTalk"
)

var captionNames = map[string]map[string]string{
	TypeLyrics: {
		"ja":      "歌詞",
		"en":      "English Lyrics Translation",
		"zh-Hant": "中文歌詞翻譯",
	},
	TypeBloggerTalk: {
		"ja":      "僕の心の話",
		"en":      "My heartfelt story",
		"zh-Hant": "我心裡的話",
	},
}

// CaptionName yields the display name for one uploaded caption track.
// Unknown subtitle types fall back to the Lyrics set.
func CaptionName(subtitleType, locale string) string {
	names, ok := captionNames[subtitleType]
	if !ok {
		names = captionNames[TypeLyrics]
	}
	return names[locale]
}

type Staging struct {
	root string
}

func New(c *cli.Context) *Staging {
	return &Staging{
		root: c.String(stagingDirFlag),
	}
}

func NewWithRoot(root string) *Staging {
	return &Staging{
		root: root,
	}
}

func (s *Staging) path(videoID int64, locale string) string {
	return filepath.Join(s.root, fmt.Sprintf("%d", videoID), locale+".srt")
}

// Open returns the staged subtitle file for a video and locale, or ok=false
// when nothing is staged for that pair.
func (s *Staging) Open(videoID int64, locale string) (r io.ReadCloser, ok bool, err error) {
	f, err := os.Open(s.path(videoID, locale))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "open staged subtitle")
	}
	return f, true, nil
}

// Discard drops the video's staging directory after a successful sync.
func (s *Staging) Discard(videoID int64) error {
	err := os.RemoveAll(filepath.Join(s.root, fmt.Sprintf("%d", videoID)))
	if err != nil {
		return errors.Wrap(err, "discard staged subtitles")
	}
	return nil
}
