package tags

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTagSource struct {
	tags    []string
	err     error
	gotID   string
}

func (m *mockTagSource) GetTags(_ context.Context, videoID string) ([]string, error) {
	m.gotID = videoID
	return m.tags, m.err
}

func TestRewrite(t *testing.T) {
	rw := NewWithReplacements(nil, []Replacement{
		{Word: "初音ミク", Replacement: "hatsune miku"},
		{Word: "miku", Replacement: "miku cover"},
	})
	out := rw.Rewrite([]string{"初音ミク", "vocaloid"})
	assert.Equal(t, []string{"hatsune miku cover", "vocaloid"}, out)
}

func TestRewriteAppliesEntriesInOrder(t *testing.T) {
	rw := NewWithReplacements(nil, []Replacement{
		{Word: "a", Replacement: "b"},
		{Word: "b", Replacement: "c"},
	})
	out := rw.Rewrite([]string{"a"})
	assert.Equal(t, []string{"c"}, out)
}

func TestGrab(t *testing.T) {
	src := &mockTagSource{tags: []string{"song", "cover"}}
	rw := NewWithReplacements(src, []Replacement{{Word: "cover", Replacement: "mandolin cover"}})

	out, ok, err := rw.Grab(context.Background(), "https://youtu.be/abc123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "song,mandolin cover", out)
	assert.Equal(t, "abc123", src.gotID)
}

func TestGrabNoTags(t *testing.T) {
	rw := NewWithReplacements(&mockTagSource{}, nil)
	out, ok, err := rw.Grab(context.Background(), "abc123")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestGrabSourceError(t *testing.T) {
	rw := NewWithReplacements(&mockTagSource{err: errors.New("remote down")}, nil)
	_, _, err := rw.Grab(context.Background(), "abc123")
	require.Error(t, err)
}
