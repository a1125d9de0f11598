package subtitles

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptionName(t *testing.T) {
	assert.Equal(t, "歌詞", CaptionName(TypeLyrics, "ja"))
	assert.Equal(t, "中文歌詞翻譯", CaptionName(TypeLyrics, "zh-Hant"))
	assert.Equal(t, "僕の心の話", CaptionName(TypeBloggerTalk, "ja"))
	assert.Equal(t, "My heartfelt story", CaptionName(TypeBloggerTalk, "en"))
}

func TestCaptionNameUnknownTypeFallsBackToLyrics(t *testing.T) {
	assert.Equal(t, CaptionName(TypeLyrics, "en"), CaptionName("Karaoke", "en"))
}

func TestStaging(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "42")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ja.srt"), []byte("1\n00:00:00,000 --> 00:00:01,000\nこんにちは\n"), 0o644))

	s := NewWithRoot(root)

	r, ok, err := s.Open(42, "ja")
	require.NoError(t, err)
	require.True(t, ok)
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Contains(t, string(body), "こんにちは")

	_, ok, err = s.Open(42, "en")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Discard(42))
	_, ok, err = s.Open(42, "ja")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDiscardMissingDir(t *testing.T) {
	s := NewWithRoot(t.TempDir())
	assert.NoError(t, s.Discard(7))
}
