package profile

import "github.com/vladmesh/personal-site/internal/locale"

// FallbackLinks are the statically configured contact channels used when the
// API cannot be reached. Empty fields are left out of the fallback list.
type FallbackLinks struct {
	Email      string
	Telegram   string
	GitHub     string
	GitHubRepo string
	LinkedIn   string
	Phone      string
	WhatsApp   string
}

var fallbackLabels = map[locale.Locale]map[string]string{
	locale.EN: {
		"email":       "Email",
		"telegram":    "Telegram",
		"github":      "GitHub",
		"github_repo": "Source Code",
		"linkedin":    "LinkedIn",
		"phone":       "Phone",
		"whatsapp":    "WhatsApp",
	},
	locale.RU: {
		"email":       "Email",
		"telegram":    "Telegram",
		"github":      "GitHub",
		"github_repo": "Исходный код",
		"linkedin":    "LinkedIn",
		"phone":       "Телефон",
		"whatsapp":    "WhatsApp",
	},
}

// Contacts builds the fallback contact list for l, normalized the same way
// API contacts are.
func (f FallbackLinks) Contacts(l locale.Locale) ContactsResult {
	entries := []struct {
		contactType string
		icon        string
		value       string
	}{
		{"email", "email", f.Email},
		{"telegram", "telegram", f.Telegram},
		{"github", "github", f.GitHub},
		{"github_repo", "github", f.GitHubRepo},
		{"linkedin", "linkedin", f.LinkedIn},
		{"phone", "phone", f.Phone},
		{"whatsapp", "whatsapp", f.WhatsApp},
	}

	labels, ok := fallbackLabels[l]
	if !ok {
		labels = fallbackLabels[locale.Default]
	}

	items := make([]ContactLink, 0, len(entries))
	for i, e := range entries {
		href, ok := BuildHref(e.contactType, e.value)
		if !ok {
			continue
		}
		label := labels[e.contactType]
		if label == "" {
			label = PrettifyType(e.contactType)
		}
		items = append(items, ContactLink{
			Type:      e.contactType,
			Label:     label,
			Href:      href,
			Icon:      e.icon,
			SortOrder: i + 1,
			IsVisible: true,
			Value:     e.value,
			Display:   FormatDisplay(e.contactType, e.value, href),
		})
	}
	return newContactsResult(items, SourceFallback)
}
