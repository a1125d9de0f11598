package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

func videoMusicFixture() *models.VideoMusic {
	return &models.VideoMusic{
		Video: &models.Video{VideoID: 1},
		Music: &models.Music{MusicID: 2},
	}
}

func testInfo() Info {
	return Info{
		OriginalSong:       "https://youtu.be/ref123",
		ChineseTranslation: "https://example.com/zh",
		EnglishTranslation: "https://example.com/en",
		Instrumental:       "https://youtu.be/inst456",
		JapaneseName:       "うた",
		ChineseName:        "曲名",
		EnglishName:        "Song",
		MusescoreSheet:     "https://musescore.com/sheet",
		GumroadSheetName:   "songsheet",
		JapaneseIntro:      "日本語の紹介\n",
		ChineseIntro:       "中文介紹\n",
		EnglishIntro:       "English intro\n",
	}
}

func TestRender(t *testing.T) {
	for _, instType := range []string{TypeInstrumental, TypePiano} {
		for _, locale := range Locales {
			t.Run(instType+"/"+locale, func(t *testing.T) {
				out, err := Render(testInfo(), instType, locale)
				require.NoError(t, err)
				assert.NotContains(t, out, "{{")
				assert.NotContains(t, out, "<no value>")
				assert.Contains(t, out, "https://bloggermandolin.gumroad.com/l/songsheet")
				assert.Contains(t, out, "https://youtu.be/ref123")
				assert.Contains(t, out, "bloggermandolin@proton.me")
			})
		}
	}
}

func TestRenderLocaleContent(t *testing.T) {
	zh, err := Render(testInfo(), TypeInstrumental, LocaleZhHant)
	require.NoError(t, err)
	assert.Contains(t, zh, "中文介紹")
	assert.Contains(t, zh, "–曲名–")

	en, err := Render(testInfo(), TypeInstrumental, LocaleEn)
	require.NoError(t, err)
	assert.Contains(t, en, "English intro")
	assert.Contains(t, en, "–Song–")
	assert.NotContains(t, en, "中文介紹")
}

func TestRenderFamilies(t *testing.T) {
	inst, err := Render(testInfo(), TypeInstrumental, LocaleEn)
	require.NoError(t, err)
	assert.Contains(t, inst, "Instrumental: https://youtu.be/inst456")

	piano, err := Render(testInfo(), TypePiano, LocaleEn)
	require.NoError(t, err)
	assert.Contains(t, piano, "Piano sheet music: https://youtu.be/inst456")
	assert.NotContains(t, piano, "Instrumental: ")
}

func TestRenderUnknownLocaleFallsBackToEnglish(t *testing.T) {
	en, err := Render(testInfo(), TypePiano, LocaleEn)
	require.NoError(t, err)

	fr, err := Render(testInfo(), TypePiano, "fr")
	require.NoError(t, err)
	assert.Equal(t, en, fr)
}

func TestRenderUnknownType(t *testing.T) {
	_, err := Render(testInfo(), "Orchestra", LocaleEn)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Template))
}

func TestRenderAll(t *testing.T) {
	all, err := RenderAll(testInfo(), TypePiano)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, locale := range Locales {
		assert.NotEmpty(t, all[locale])
	}
}

func TestInfoFromVideoMusicAppendsIntroNewline(t *testing.T) {
	intro := "an intro"
	rec := videoMusicFixture()
	rec.Video.EnDescription = &intro
	info := InfoFromVideoMusic(rec)
	assert.Equal(t, "an intro\n", info.EnglishIntro)
	assert.Equal(t, "\n", info.ChineseIntro)
}
