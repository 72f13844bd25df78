// Package locale holds the supported site languages and the request
// middleware that keeps every page under a locale prefix.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported language code, also used as the first URL segment.
type Locale string

const (
	EN Locale = "en"
	RU Locale = "ru"
)

// Default is served whenever a request carries no usable locale.
const Default = EN

var supported = []Locale{EN, RU}

var tags = map[Locale]language.Tag{
	EN: language.English,
	RU: language.Russian,
}

// Supported returns the supported locales, default first.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse reports whether value is a supported locale code.
func Parse(value string) (Locale, bool) {
	candidate := Locale(strings.ToLower(strings.TrimSpace(value)))
	for _, l := range supported {
		if l == candidate {
			return l, true
		}
	}
	return "", false
}

// ParseOrDefault returns the locale for value, or Default when it is not
// supported.
func ParseOrDefault(value string) Locale {
	if l, ok := Parse(value); ok {
		return l
	}
	return Default
}

func (l Locale) String() string { return string(l) }

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if tag, ok := tags[l]; ok {
		return tag
	}
	return tags[Default]
}

// Root is the locale's landing path, e.g. "/en/".
func (l Locale) Root() string {
	return "/" + string(l) + "/"
}

// Detect picks a locale from an Accept-Language style header. A supported
// non-default code appearing anywhere in the header wins; anything else,
// including an empty header, yields Default.
func Detect(header string) Locale {
	lower := strings.ToLower(strings.TrimSpace(header))
	if lower == "" {
		return Default
	}
	for _, l := range supported {
		if l == Default {
			continue
		}
		if strings.Contains(lower, string(l)) {
			return l
		}
	}
	return Default
}
