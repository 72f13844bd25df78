// Package profile turns profile API payloads into the view models rendered
// by the site, degrading to static contact links when the API is down.
package profile

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vladmesh/personal-site/internal/apiclient"
	"github.com/vladmesh/personal-site/internal/locale"
	"github.com/vladmesh/personal-site/internal/metrics"
)

const (
	contactsEndpoint = "/api/v1/profile/contacts"
	fullEndpoint     = "/api/v1/profile/full"
)

var errNoContacts = errors.New("no contacts returned from API")

// Service fetches and normalizes profile content.
type Service struct {
	client   *apiclient.Client
	fallback FallbackLinks
	logger   *slog.Logger
}

// NewService creates a Service. fallback is served whenever contacts cannot
// be fetched.
func NewService(client *apiclient.Client, fallback FallbackLinks, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client:   client,
		fallback: fallback,
		logger:   logger.With(slog.String("component", "profile")),
	}
}

// FetchContacts returns the visible contacts for l. It never fails: any
// fetch problem, or an empty list, yields the fallback contacts.
func (s *Service) FetchContacts(ctx context.Context, l locale.Locale) ContactsResult {
	records, err := apiclient.FetchJSON[[]ContactRecord](ctx, s.client, contactsEndpoint)
	if err == nil {
		items := normalizeContacts(records, l)
		if len(items) > 0 {
			metrics.ContactsServed(string(SourceAPI))
			return newContactsResult(items, SourceAPI)
		}
		err = errNoContacts
	}

	s.logger.WarnContext(ctx, "contacts_fallback_used",
		slog.String("locale", l.String()),
		slog.Int("status", apiclient.StatusCode(err)),
		slog.Bool("timeout", apiclient.IsTimeout(err)),
		slog.Any("error", err),
	)
	metrics.ContactsServed(string(SourceFallback))
	return s.fallback.Contacts(l)
}

// FallbackContacts returns the static contact list without touching the API.
func (s *Service) FallbackContacts(l locale.Locale) ContactsResult {
	return s.fallback.Contacts(l)
}

func normalizeContacts(records []ContactRecord, l locale.Locale) []ContactLink {
	items := make([]ContactLink, 0, len(records))
	for _, r := range records {
		if !r.IsVisible {
			continue
		}
		href, ok := BuildHref(r.Type, r.Value)
		if !ok {
			continue
		}
		label, ok := PickLabel(r.Translations, l)
		if !ok {
			label = PrettifyType(r.Type)
		}
		items = append(items, ContactLink{
			Type:      r.Type,
			Label:     label,
			Href:      href,
			Icon:      derefString(r.Icon),
			SortOrder: r.SortOrder,
			IsVisible: r.IsVisible,
			Value:     r.Value,
			Display:   FormatDisplay(r.Type, r.Value, href),
		})
	}
	return items
}
