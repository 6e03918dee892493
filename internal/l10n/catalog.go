package l10n

import (
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"

	"metargb/calendar-format/pkg/helpers"
)

// Catalog looks up translated message templates by source string. Templates
// use {name} placeholders, and %n for the count of plural messages.
type Catalog struct {
	// messages maps a base language to source string to plural forms.
	// Singular messages have exactly one form.
	messages map[string]map[string][]string
}

// NewCatalog returns a catalog preloaded with the bundled translations.
func NewCatalog() *Catalog {
	c := &Catalog{messages: make(map[string]map[string][]string)}
	for lang, msgs := range bundled {
		for id, forms := range msgs {
			c.Add(lang, id, forms...)
		}
	}
	return c
}

// Add registers the translation forms of msgid for a language.
func (c *Catalog) Add(lang, msgid string, forms ...string) {
	lang = baseLanguage(lang)
	if c.messages[lang] == nil {
		c.messages[lang] = make(map[string][]string)
	}
	c.messages[lang][msgid] = forms
}

// Translate returns the translation of msgid in locale with vars substituted.
// Missing translations fall back to msgid itself.
func (c *Catalog) Translate(locale, msgid string, vars map[string]string) string {
	text := msgid
	if forms := c.lookup(locale, msgid); len(forms) > 0 {
		text = forms[0]
	}
	return substitute(text, vars)
}

// TranslatePlural picks the plural form of singular/plural matching n in
// locale, replaces %n with n and substitutes vars.
func (c *Catalog) TranslatePlural(locale, singular, pluralText string, n int, vars map[string]string) string {
	tag := parseTag(locale)
	index := formIndex(tag, n)

	text := pluralText
	if index == 0 {
		text = singular
	}
	if forms := c.lookup(locale, singular); len(forms) > 0 {
		if index >= len(forms) {
			index = len(forms) - 1
		}
		text = forms[index]
	}

	count := strconv.Itoa(n)
	if base, _ := tag.Base(); base.String() == "fa" {
		count = helpers.LocalizeDigits(count)
	}
	return substitute(strings.ReplaceAll(text, "%n", count), vars)
}

func (c *Catalog) lookup(locale, msgid string) []string {
	msgs, ok := c.messages[baseLanguage(locale)]
	if !ok {
		return nil
	}
	return msgs[msgid]
}

// formIndex maps the CLDR cardinal category of n to a gettext-style index:
// 0 for "one", 1 otherwise.
func formIndex(tag language.Tag, n int) int {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	if plural.Cardinal.MatchPlural(tag, abs, 0, 0, 0, 0) == plural.One {
		return 0
	}
	return 1
}

func parseTag(locale string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return language.English
	}
	return tag
}

func baseLanguage(locale string) string {
	base, _ := parseTag(locale).Base()
	return base.String()
}

func substitute(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
