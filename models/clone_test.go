package models

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bloggermandolin/catalog/services/apperr"
)

func strPtr(s string) *string { return &s }

func TestVideoCopyResetsPublishIdentity(t *testing.T) {
	length := 200
	now := time.Now()
	src := &Video{
		VideoID:          5,
		YouTubeLink:      strPtr("https://youtu.be/abc123"),
		UploadTime:       &now,
		Length:           &length,
		EnTitle:          strPtr("Title"),
		InstrumentalType: strPtr(InstrumentalTypeInst),
		Styles:           []*Style{{ID: 1}},
	}
	cp := videoCopy(src)

	assert.Zero(t, cp.VideoID)
	assert.Nil(t, cp.YouTubeLink)
	assert.Nil(t, cp.UploadTime)
	assert.Nil(t, cp.Length)
	assert.Nil(t, cp.Styles)
	assert.Equal(t, src.EnTitle, cp.EnTitle)
	assert.Equal(t, src.InstrumentalType, cp.InstrumentalType)

	// source untouched
	assert.NotNil(t, src.YouTubeLink)
	assert.Equal(t, int64(5), src.VideoID)
}

func TestMusicCopyKeepsWorkID(t *testing.T) {
	src := &Music{
		MusicID:  7,
		WorkID:   3,
		EnName:   strPtr("Song"),
		Styles:   []*Style{{ID: 1}},
		Roles:    []*Role{{RoleID: 1}},
		Versions: []*Version{{ID: 1}},
	}
	cp := musicCopy(src)

	assert.Zero(t, cp.MusicID)
	assert.Equal(t, int64(3), cp.WorkID)
	assert.Equal(t, src.EnName, cp.EnName)
	assert.Nil(t, cp.Styles)
	assert.Nil(t, cp.Roles)
	assert.Nil(t, cp.Versions)
}

func TestStreamingCopyDropsSmartLink(t *testing.T) {
	src := &Streaming{
		StreamingID: 9,
		SmartLink:   strPtr("https://ffm.to/abc"),
	}
	cp := streamingCopy(src)

	assert.Zero(t, cp.StreamingID)
	assert.Nil(t, cp.SmartLink)
}

func TestCreatorCopySuffixesName(t *testing.T) {
	src := &Creator{
		CreatorID:   4,
		CreatorName: strPtr("Blogger Wang"),
	}
	cp := creatorCopy(src)

	assert.Zero(t, cp.CreatorID)
	assert.Equal(t, "Blogger Wang (copy)", *cp.CreatorName)
	assert.Equal(t, "Blogger Wang", *src.CreatorName)
}

func TestCreatorCopyNilName(t *testing.T) {
	cp := creatorCopy(&Creator{CreatorID: 4})
	assert.Nil(t, cp.CreatorName)
}

func TestStyleCopiesRepointsVideoSide(t *testing.T) {
	src := []*Style{
		{ID: 10, VideoID: 5, MusicID: 71, Style: "piano", Video: &Video{VideoID: 5}, Music: &Music{MusicID: 71}},
		{ID: 11, VideoID: 5, MusicID: 72, Style: "inst"},
		{ID: 12, VideoID: 5, MusicID: 73, Style: "vocal"},
	}
	newID := int64(99)
	out := styleCopies(src, func(s *Style) { s.VideoID = newID })

	assert.Len(t, out, len(src))
	for i, cp := range out {
		assert.Zero(t, cp.ID)
		assert.Equal(t, newID, cp.VideoID)
		assert.Equal(t, src[i].MusicID, cp.MusicID)
		assert.Equal(t, src[i].Style, cp.Style)
		assert.Nil(t, cp.Video)
		assert.Nil(t, cp.Music)
	}

	// source rows untouched
	assert.Equal(t, int64(10), src[0].ID)
	assert.Equal(t, int64(5), src[0].VideoID)
}

func TestStyleCopiesRepointsMusicSide(t *testing.T) {
	src := []*Style{{ID: 10, VideoID: 5, MusicID: 71, Style: "piano"}}
	out := styleCopies(src, func(s *Style) { s.MusicID = 88 })

	assert.Equal(t, int64(88), out[0].MusicID)
	assert.Equal(t, int64(5), out[0].VideoID)
}

func TestStyleCopiesEmpty(t *testing.T) {
	assert.Empty(t, styleCopies(nil, func(*Style) {}))
}

func TestRoleCopies(t *testing.T) {
	src := []*Role{
		{RoleID: 1, CreatorID: 4, MusicID: 71, Role: "arranger", Creator: &Creator{CreatorID: 4}},
		{RoleID: 2, CreatorID: 5, MusicID: 71, Role: "mixer"},
	}
	out := roleCopies(src, func(r *Role) { r.MusicID = 88 })

	assert.Len(t, out, 2)
	for i, cp := range out {
		assert.Zero(t, cp.RoleID)
		assert.Equal(t, int64(88), cp.MusicID)
		assert.Equal(t, src[i].CreatorID, cp.CreatorID)
		assert.Equal(t, src[i].Role, cp.Role)
		assert.Nil(t, cp.Creator)
		assert.Nil(t, cp.Music)
	}
}

func TestVersionCopies(t *testing.T) {
	src := []*Version{
		{ID: 1, StreamingID: 9, MusicID: 71, Version: "short", Streaming: &Streaming{StreamingID: 9}},
		{ID: 2, StreamingID: 9, MusicID: 72, Version: "full"},
	}
	out := versionCopies(src, func(v *Version) { v.StreamingID = 30 })

	assert.Len(t, out, 2)
	for i, cp := range out {
		assert.Zero(t, cp.ID)
		assert.Equal(t, int64(30), cp.StreamingID)
		assert.Equal(t, src[i].MusicID, cp.MusicID)
		assert.Nil(t, cp.Streaming)
		assert.Nil(t, cp.Music)
	}
}

func TestCloneUnknownKind(t *testing.T) {
	_, err := Clone(context.Background(), nil, "playlist", 1)
	assert.True(t, apperr.Is(err, apperr.Precondition))
}
