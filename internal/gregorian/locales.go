package gregorian

import (
	"strings"

	"github.com/goodsign/monday"
)

// longDateFormats are the moment-style macros a locale expands LT, L, LL... into.
type longDateFormats struct {
	LT   string
	LTS  string
	L    string
	LL   string
	LLL  string
	LLLL string
}

type localeSpec struct {
	monday  monday.Locale
	formats longDateFormats
	week    weekRule

	// months and weekdays override monday's names (January..., Sunday...).
	months   []string
	weekdays []string
	am, pm   string
	digits   bool // render Persian digits
}

var (
	formatsEn = longDateFormats{
		LT: "h:mm A", LTS: "h:mm:ss A", L: "MM/DD/YYYY",
		LL: "MMMM D, YYYY", LLL: "MMMM D, YYYY h:mm A", LLLL: "dddd, MMMM D, YYYY h:mm A",
	}
	formatsEnGB = longDateFormats{
		LT: "HH:mm", LTS: "HH:mm:ss", L: "DD/MM/YYYY",
		LL: "D MMMM YYYY", LLL: "D MMMM YYYY HH:mm", LLLL: "dddd, D MMMM YYYY HH:mm",
	}
	formatsDe = longDateFormats{
		LT: "HH:mm", LTS: "HH:mm:ss", L: "DD.MM.YYYY",
		LL: "D. MMMM YYYY", LLL: "D. MMMM YYYY HH:mm", LLLL: "dddd, D. MMMM YYYY HH:mm",
	}
	formatsFr = longDateFormats{
		LT: "HH:mm", LTS: "HH:mm:ss", L: "DD/MM/YYYY",
		LL: "D MMMM YYYY", LLL: "D MMMM YYYY HH:mm", LLLL: "dddd D MMMM YYYY HH:mm",
	}
	formatsEs = longDateFormats{
		LT: "H:mm", LTS: "H:mm:ss", L: "DD/MM/YYYY",
		LL: "D [de] MMMM [de] YYYY", LLL: "D [de] MMMM [de] YYYY H:mm", LLLL: "dddd, D [de] MMMM [de] YYYY H:mm",
	}
	formatsNl = longDateFormats{
		LT: "HH:mm", LTS: "HH:mm:ss", L: "DD-MM-YYYY",
		LL: "D MMMM YYYY", LLL: "D MMMM YYYY HH:mm", LLLL: "dddd D MMMM YYYY HH:mm",
	}
	formatsRu = longDateFormats{
		LT: "H:mm", LTS: "H:mm:ss", L: "DD.MM.YYYY",
		LL: "D MMMM YYYY [г.]", LLL: "D MMMM YYYY [г.], H:mm", LLLL: "dddd, D MMMM YYYY [г.], H:mm",
	}
	formatsSv = longDateFormats{
		LT: "HH:mm", LTS: "HH:mm:ss", L: "YYYY-MM-DD",
		LL: "D MMMM YYYY", LLL: "D MMMM YYYY [kl.] HH:mm", LLLL: "dddd D MMMM YYYY [kl.] HH:mm",
	}
	formatsJa = longDateFormats{
		LT: "HH:mm", LTS: "HH:mm:ss", L: "YYYY/MM/DD",
		LL: "YYYY年M月D日", LLL: "YYYY年M月D日 HH:mm", LLLL: "YYYY年M月D日 dddd HH:mm",
	}
	formatsFa = longDateFormats{
		LT: "HH:mm", LTS: "HH:mm:ss", L: "DD/MM/YYYY",
		LL: "D MMMM YYYY", LLL: "D MMMM YYYY HH:mm", LLLL: "dddd, D MMMM YYYY HH:mm",
	}
)

var persianGregorianMonths = []string{
	"ژانویه", "فوریه", "مارس", "آوریل", "مه", "ژوئن",
	"ژوئیه", "اوت", "سپتامبر", "اکتبر", "نوامبر", "دسامبر",
}

var persianWeekdays = []string{
	"یک‌شنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه", "شنبه",
}

var locales = map[string]localeSpec{
	"en":    {monday: monday.LocaleEnUS, formats: formatsEn, week: weekSunday},
	"en_us": {monday: monday.LocaleEnUS, formats: formatsEn, week: weekSunday},
	"en_gb": {monday: monday.LocaleEnGB, formats: formatsEnGB, week: weekISO},
	"de":    {monday: monday.LocaleDeDE, formats: formatsDe, week: weekISO},
	"de_de": {monday: monday.LocaleDeDE, formats: formatsDe, week: weekISO},
	"de_at": {monday: monday.LocaleDeDE, formats: formatsDe, week: weekISO},
	"de_ch": {monday: monday.LocaleDeDE, formats: formatsDe, week: weekISO},
	"fr":    {monday: monday.LocaleFrFR, formats: formatsFr, week: weekISO},
	"fr_fr": {monday: monday.LocaleFrFR, formats: formatsFr, week: weekISO},
	"fr_ca": {monday: monday.LocaleFrCA, formats: formatsFr, week: weekSunday},
	"es":    {monday: monday.LocaleEsES, formats: formatsEs, week: weekISO},
	"es_es": {monday: monday.LocaleEsES, formats: formatsEs, week: weekISO},
	"it":    {monday: monday.LocaleItIT, formats: formatsFr, week: weekISO},
	"nl":    {monday: monday.LocaleNlNL, formats: formatsNl, week: weekISO},
	"nl_be": {monday: monday.LocaleNlBE, formats: formatsNl, week: weekISO},
	"pt":    {monday: monday.LocalePtPT, formats: formatsEnGB, week: weekISO},
	"pt_br": {monday: monday.LocalePtBR, formats: formatsEnGB, week: weekSunday},
	"ru":    {monday: monday.LocaleRuRU, formats: formatsRu, week: weekISO},
	"sv":    {monday: monday.LocaleSvSE, formats: formatsSv, week: weekISO},
	"ja":    {monday: monday.LocaleJaJP, formats: formatsJa, week: weekSunday},
	"fa": {
		monday:   monday.LocaleEnUS,
		formats:  formatsFa,
		week:     weekPersian,
		months:   persianGregorianMonths,
		weekdays: persianWeekdays,
		am:       "ق.ظ",
		pm:       "ب.ظ",
		digits:   true,
	},
}

// lookupLocale maps a locale identifier to its spec, trying the language
// part alone before falling back to American English.
func lookupLocale(locale string) localeSpec {
	locale = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(locale, "-", "_")))

	if spec, ok := locales[locale]; ok {
		return spec
	}

	if lang, _, found := strings.Cut(locale, "_"); found {
		if spec, ok := locales[lang]; ok {
			return spec
		}
	}

	return locales["en"]
}

// shorten derives a lowercase macro (l, ll, lll, llll) from its uppercase form.
func shorten(format string) string {
	return shortener.Replace(format)
}

var shortener = strings.NewReplacer("MMMM", "MMM", "dddd", "ddd", "MM", "M", "DD", "D")

func (f longDateFormats) macro(name string) (string, bool) {
	switch name {
	case "LT":
		return f.LT, true
	case "LTS":
		return f.LTS, true
	case "L":
		return f.L, true
	case "LL":
		return f.LL, true
	case "LLL":
		return f.LLL, true
	case "LLLL":
		return f.LLLL, true
	case "l":
		return shorten(f.L), true
	case "ll":
		return shorten(f.LL), true
	case "lll":
		return shorten(f.LLL), true
	case "llll":
		return shorten(f.LLLL), true
	}
	return "", false
}
