package describe

// Template bodies per instrumentation family and locale. The branding links
// and contact address are part of the published description format, not
// configuration.

var instrumentalBodies = map[string]string{
	LocaleZhHant: `
{{.ChineseIntro}}
–{{.ChineseName}}–
🎵免費樂譜（Gumroad）：https://bloggermandolin.gumroad.com/l/{{.GumroadSheetName}}
❤️訂閱Patreon：https://patreon.com/BloggerMandolin
🌟我的串流/社群平台們：https://ffm.bio/bloggermandolin

–更多資料–
曼陀林演奏：Blogger Wang
原曲：{{.OriginalSong}}
伴奏：{{.Instrumental}}
樂譜：{{.MusescoreSheet}}
中文歌詞翻譯：{{.ChineseTranslation}}
英文歌詞翻譯：{{.EnglishTranslation}}

–聯絡我–
bloggermandolin@proton.me
`,
	LocaleEn: `
{{.EnglishIntro}}
–{{.EnglishName}}–
🎵Free Sheet Music(Gumroad): https://bloggermandolin.gumroad.com/l/{{.GumroadSheetName}}
❤️Patreon: https://patreon.com/BloggerMandolin
🌟My Platforms: https://ffm.bio/bloggermandolin

–Info–
Mandolin: Blogger Wang
Original: {{.OriginalSong}}
Instrumental: {{.Instrumental}}
Sheet music: {{.MusescoreSheet}}
Traditional Chinese translation: {{.ChineseTranslation}}
English Translation: {{.EnglishTranslation}}

–Contact me–
bloggermandolin@proton.me
`,
	LocaleJa: `
{{.JapaneseIntro}}
–{{.JapaneseName}}–
🎵無料楽譜（Gumroad）：https://bloggermandolin.gumroad.com/l/{{.GumroadSheetName}}
❤️Patreon：https://patreon.com/BloggerMandolin
🌟プラットフォーム：https://ffm.bio/bloggermandolin

–インフォ–
マンドリン：Blogger Wang
本家様：{{.OriginalSong}}
インスト：{{.Instrumental}}
楽譜：{{.MusescoreSheet}}
中国語翻訳：{{.ChineseTranslation}}
英語翻訳：{{.EnglishTranslation}}

–Eメール–
bloggermandolin@proton.me
`,
}

var pianoBodies = map[string]string{
	LocaleZhHant: `
{{.ChineseIntro}}
–{{.ChineseName}}–
🎵免費樂譜（Gumroad）：https://bloggermandolin.gumroad.com/l/{{.GumroadSheetName}}
❤️訂閱Patreon：https://patreon.com/BloggerMandolin
🌟我的串流/社群平台們：https://ffm.bio/bloggermandolin

–更多資料–
曼陀林演奏：Blogger Wang
原曲：{{.OriginalSong}}
樂譜：{{.MusescoreSheet}}
鋼琴樂譜參考：{{.Instrumental}}
中文歌詞翻譯：{{.ChineseTranslation}}
英文歌詞翻譯：{{.EnglishTranslation}}

–聯絡我–
bloggermandolin@proton.me
`,
	LocaleEn: `
{{.EnglishIntro}}
–{{.EnglishName}}–
🎵Free Sheet Music(Gumroad): https://bloggermandolin.gumroad.com/l/{{.GumroadSheetName}}
❤️Patreon: https://patreon.com/BloggerMandolin
🌟My Platforms: https://ffm.bio/bloggermandolin

–Info–
Mandolin: Blogger Wang
Original: {{.OriginalSong}}
Sheet music: {{.MusescoreSheet}}
Piano sheet music: {{.Instrumental}}
Traditional Chinese translation: {{.ChineseTranslation}}
English Translation: {{.EnglishTranslation}}

–Contact me–
bloggermandolin@proton.me
`,
	LocaleJa: `
{{.JapaneseIntro}}
–{{.JapaneseName}}–
🎵無料楽譜（Gumroad）：https://bloggermandolin.gumroad.com/l/{{.GumroadSheetName}}
❤️Patreon：https://patreon.com/BloggerMandolin
🌟プラットフォーム：https://ffm.bio/bloggermandolin

–インフォ–
マンドリン：Blogger Wang
本家様：{{.OriginalSong}}
楽譜：{{.MusescoreSheet}}
ピアノ楽譜参考：{{.Instrumental}}
中国語翻訳：{{.ChineseTranslation}}
英語翻訳：{{.EnglishTranslation}}

–Eメール–
bloggermandolin@proton.me
`,
}
