package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a BCP 47 tag understood by the movie API.
type Locale string

const (
	LocaleEnglish Locale = "en-US"
	LocaleChinese Locale = "zh-CN"
)

func ParseLocale(s string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "en-us":
		return LocaleEnglish, nil
	case "zh", "zh-cn":
		return LocaleChinese, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, s)
	}
}

func (l Locale) Toggle() Locale {
	if l == LocaleChinese {
		return LocaleEnglish
	}
	return LocaleChinese
}

func (l Locale) Tag() language.Tag {
	tag, err := language.Parse(string(l))
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func (l Locale) String() string {
	return string(l)
}
