package helpers

import (
	"strconv"
	"strings"
)

// Persian digits: ۰۱۲۳۴۵۶۷۸۹
// Arabic digits:  ٠١٢٣٤٥٦٧٨٩
// Latin digits:   0123456789

var persianToLatin = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

var latinToPersian = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

// NormalizePersianNumbers converts Persian/Arabic numerals to Latin
func NormalizePersianNumbers(input string) string {
	return persianToLatin.Replace(input)
}

// LocalizeDigits converts Latin numerals to Persian (Eastern Arabic-Indic) numerals.
// Everything that is not an ASCII digit is left untouched.
func LocalizeDigits(input string) string {
	return latinToPersian.Replace(input)
}

// ParseInt parses a string to int after normalizing Persian numbers
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(NormalizePersianNumbers(s)))
}

// HasPersianDigits reports whether s contains at least one Persian or Arabic digit.
func HasPersianDigits(s string) bool {
	for _, r := range s {
		if (r >= '۰' && r <= '۹') || (r >= '٠' && r <= '٩') {
			return true
		}
	}
	return false
}
