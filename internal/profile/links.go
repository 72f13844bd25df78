package profile

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vladmesh/personal-site/internal/locale"
)

var telegramHandlePattern = regexp.MustCompile(`(?i)t\.me/([^/?#]+)`)

var telPrefixPattern = regexp.MustCompile(`(?i)^tel:`)

// BuildHref turns a raw contact value into a link target. Email and phone
// values gain their scheme exactly once; other types pass through trimmed.
// Empty values report false.
func BuildHref(contactType, value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	switch contactType {
	case "email":
		if strings.HasPrefix(trimmed, "mailto:") {
			return trimmed, true
		}
		return "mailto:" + trimmed, true
	case "phone":
		if strings.HasPrefix(trimmed, "tel:") {
			return trimmed, true
		}
		return "tel:" + trimmed, true
	default:
		return trimmed, true
	}
}

// PickLabel resolves a label: exact locale, then English, then the first
// translation carrying a label.
func PickLabel(translations []ContactTranslation, l locale.Locale) (string, bool) {
	if label, ok := labelFor(translations, string(l)); ok {
		return label, true
	}
	if label, ok := labelFor(translations, string(locale.EN)); ok {
		return label, true
	}
	for _, t := range translations {
		if t.Label != nil && *t.Label != "" {
			return *t.Label, true
		}
	}
	return "", false
}

func labelFor(translations []ContactTranslation, code string) (string, bool) {
	for _, t := range translations {
		if t.LanguageCode != code {
			continue
		}
		if t.Label != nil && *t.Label != "" {
			return *t.Label, true
		}
		return "", false
	}
	return "", false
}

// PrettifyType renders a type tag for display: "github_repo" -> "Github Repo".
func PrettifyType(contactType string) string {
	// Casers are stateful, so one is built per call.
	title := cases.Title(language.English, cases.NoLower)
	return strings.TrimSpace(title.String(strings.ReplaceAll(contactType, "_", " ")))
}

// FormatDisplay is the human-friendly text shown for a contact.
func FormatDisplay(contactType, value, href string) string {
	switch contactType {
	case "phone":
		return telPrefixPattern.ReplaceAllString(value, "")
	case "telegram":
		if handle, ok := extractTelegramHandle(href); ok {
			return handle
		}
		return value
	default:
		return value
	}
}

func extractTelegramHandle(href string) (string, bool) {
	if m := telegramHandlePattern.FindStringSubmatch(href); len(m) == 2 && m[1] != "" {
		return "@" + m[1], true
	}
	if strings.HasPrefix(href, "@") {
		return href, true
	}
	return "", false
}

// TelegramHandle is the display handle of a telegram contact.
func TelegramHandle(link ContactLink) string {
	return FormatDisplay(link.Type, link.Value, link.Href)
}

// SelectContact returns the first contact present among types, in priority
// order, else the first contact of the list.
func SelectContact(result ContactsResult, types ...string) (ContactLink, bool) {
	for _, t := range types {
		if link, ok := result.Lookup[t]; ok {
			return link, true
		}
	}
	if len(result.Items) > 0 {
		return result.Items[0], true
	}
	return ContactLink{}, false
}

func sortContacts(items []ContactLink) {
	slices.SortStableFunc(items, func(a, b ContactLink) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
}

func newContactsResult(items []ContactLink, source Source) ContactsResult {
	sortContacts(items)
	lookup := make(map[string]ContactLink, len(items))
	for _, item := range items {
		lookup[item.Type] = item
	}
	return ContactsResult{Items: items, Lookup: lookup, Source: source}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
