package jalali

import "strings"

const (
	// Locale is the locale every Jalali formatter renders for.
	Locale = "fa-IR"

	persianUnicodeExtension = "u-ca-persian"
)

func normalizeLocale(locale string) string {
	return strings.TrimSpace(strings.ToLower(strings.ReplaceAll(locale, "_", "-")))
}

// IsPersianLocale reports whether locale should be rendered with the Jalali calendar.
// "fa", "fa-IR", "FA_ir" and any tag carrying the u-ca-persian extension qualify.
func IsPersianLocale(locale string) bool {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return false
	}

	if normalized == "fa" || strings.HasPrefix(normalized, "fa-") {
		return true
	}

	return strings.Contains(normalized, persianUnicodeExtension)
}
