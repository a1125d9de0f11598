// Package describe renders the localized YouTube description bodies from a
// catalog record and an instrumentation-type selector.
package describe

import (
	"strings"
	"text/template"

	"golang.org/x/text/language"

	"github.com/bloggermandolin/catalog/models"
	"github.com/bloggermandolin/catalog/services/apperr"
)

// Instrumentation-type selectors. Anything else is unrenderable.
const (
	TypeInstrumental = "instrumental"
	TypePiano        = "piano"
)

// Supported description locales.
const (
	LocaleJa     = "ja"
	LocaleEn     = "en"
	LocaleZhHant = "zh-Hant"
)

// Locales lists the supported locales in sync order.
var Locales = []string{LocaleJa, LocaleEn, LocaleZhHant}

// Info is the fixed-shape record a template renders from. Unset source fields
// stay empty strings so placeholders collapse instead of leaking markers.
type Info struct {
	OriginalSong       string
	ChineseTranslation string
	EnglishTranslation string
	Instrumental       string
	JapaneseName       string
	ChineseName        string
	EnglishName        string
	MusescoreSheet     string
	GumroadSheetName   string
	JapaneseIntro      string
	ChineseIntro       string
	EnglishIntro       string
}

// InfoFromVideoMusic flattens the joined record into the template input.
// Intro fields keep the trailing newline the hand-written descriptions relied on.
func InfoFromVideoMusic(rec *models.VideoMusic) Info {
	return Info{
		OriginalSong:       strOrEmpty(rec.Music.MV),
		ChineseTranslation: strOrEmpty(rec.Video.ZhHantSubSource),
		EnglishTranslation: strOrEmpty(rec.Video.EnSubSource),
		Instrumental:       strOrEmpty(rec.Video.Instrumental),
		JapaneseName:       strOrEmpty(rec.Music.JaName),
		ChineseName:        strOrEmpty(rec.Music.ZhHantName),
		EnglishName:        strOrEmpty(rec.Music.EnName),
		MusescoreSheet:     strOrEmpty(rec.Video.Sheet),
		GumroadSheetName:   strOrEmpty(rec.Video.GumroadSheet),
		JapaneseIntro:      strOrEmpty(rec.Video.JaDescription) + "\n",
		ChineseIntro:       strOrEmpty(rec.Video.ZhHantDescription) + "\n",
		EnglishIntro:       strOrEmpty(rec.Video.EnDescription) + "\n",
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// localeMatcher resolves a requested locale against the supported set.
// English sits first so every unsupported locale falls back to the en body.
var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Japanese,
	language.TraditionalChinese,
})

var matcherLocales = []string{LocaleEn, LocaleJa, LocaleZhHant}

func resolveLocale(locale string) string {
	tag := language.Make(locale)
	_, i, _ := localeMatcher.Match(tag)
	return matcherLocales[i]
}

// Render produces the description text for one locale. Unknown locales fall
// back to en; an unknown instrumentation type has no template at all and fails.
func Render(info Info, instType string, locale string) (string, error) {
	family, ok := families[instType]
	if !ok {
		return "", apperr.Newf(apperr.Template, "no template family for instrumentation type %q", instType)
	}
	tpl := family[resolveLocale(locale)]
	var b strings.Builder
	if err := tpl.Execute(&b, info); err != nil {
		return "", apperr.Wrap(apperr.Template, err, "execute description template")
	}
	return b.String(), nil
}

// RenderAll renders every supported locale, keyed by locale code.
func RenderAll(info Info, instType string) (map[string]string, error) {
	out := make(map[string]string, len(Locales))
	for _, loc := range Locales {
		d, err := Render(info, instType, loc)
		if err != nil {
			return nil, err
		}
		out[loc] = d
	}
	return out, nil
}

var families map[string]map[string]*template.Template

func init() {
	families = map[string]map[string]*template.Template{
		TypeInstrumental: parseFamily(TypeInstrumental, instrumentalBodies),
		TypePiano:        parseFamily(TypePiano, pianoBodies),
	}
}

func parseFamily(name string, bodies map[string]string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(bodies))
	for loc, body := range bodies {
		out[loc] = template.Must(template.New(name + "/" + loc).Parse(body))
	}
	return out
}
