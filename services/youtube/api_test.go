package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ"},
		{"watch link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch link with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL1", "dQw4w9WgXcQ"},
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVideoID(tt.link))
		})
	}
}

func testApi(u string) *Api {
	return &Api{
		url: u,
		key: "test-key",
		cl:  http.DefaultClient,
	}
}

func TestGetPlayback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "abc123", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{
			"contentDetails":{"duration":"PT4M13S"},
			"snippet":{"publishedAt":"2024-05-01T12:00:00Z"},
			"status":{}
		}]}`))
	}))
	defer srv.Close()

	pb, err := testApi(srv.URL).GetPlayback(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, 253, pb.Duration)
	assert.Equal(t, "2024-05-01T20:00:00+08:00", pb.PublishedAt.Format(time.RFC3339))
}

func TestGetPlaybackPrefersScheduledPublishTime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{
			"contentDetails":{"duration":"PT1M"},
			"snippet":{"publishedAt":"2024-05-01T12:00:00Z"},
			"status":{"publishAt":"2024-06-01T00:00:00Z"}
		}]}`))
	}))
	defer srv.Close()

	pb, err := testApi(srv.URL).GetPlayback(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, 2024, pb.PublishedAt.Year())
	assert.Equal(t, time.June, pb.PublishedAt.Month())
}

func TestGetPlaybackMissingVideo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := testApi(srv.URL).GetPlayback(context.Background(), "gone")
	require.Error(t, err)
}

func TestUpdateTagsMergesSnippet(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"items":[{"snippet":{"title":"keep me","categoryId":"10"}}]}`))
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	err := testApi(srv.URL).UpdateTags(context.Background(), "abc123", "one,two")
	require.NoError(t, err)
	require.NotNil(t, gotBody)
	snippet := gotBody["snippet"].(map[string]any)
	assert.Equal(t, "keep me", snippet["title"])
	assert.Equal(t, []any{"one", "two"}, snippet["tags"])
}

func TestGetTagsReadsWithKeyOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"snippet":{"tags":["song","cover"]}}]}`))
	}))
	defer srv.Close()

	tags, err := testApi(srv.URL).GetTags(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, []string{"song", "cover"}, tags)
}
