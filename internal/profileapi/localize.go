package profileapi

import (
	"github.com/vladmesh/personal-site/internal/locale"
	"github.com/vladmesh/personal-site/internal/store"
)

// Payload shapes for GET /api/v1/profile/full: every translatable record is
// flattened to a single language.

type localizedExperience struct {
	ID          string        `json:"id"`
	CompanyName string        `json:"company_name"`
	CompanyURL  *string       `json:"company_url"`
	StartDate   string        `json:"start_date"`
	EndDate     *string       `json:"end_date"`
	IsCurrent   bool          `json:"is_current"`
	Position    string        `json:"position"`
	Description string        `json:"description"`
	Location    *string       `json:"location"`
	Stacks      []store.Stack `json:"stacks"`
}

type localizedProject struct {
	ID          string        `json:"id"`
	Slug        string        `json:"slug"`
	Link        *string       `json:"link"`
	RepoLink    *string       `json:"repo_link"`
	StartDate   string        `json:"start_date"`
	EndDate     *string       `json:"end_date"`
	IsFeatured  bool          `json:"is_featured"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Role        *string       `json:"role"`
	Stacks      []store.Stack `json:"stacks"`
}

type localizedTestimonial struct {
	ID              string  `json:"id"`
	AuthorName      string  `json:"author_name"`
	AuthorURL       *string `json:"author_url"`
	AuthorAvatarURL *string `json:"author_avatar_url"`
	Kind            *string `json:"kind"`
	Date            string  `json:"date"`
	AuthorPosition  *string `json:"author_position"`
	Content         string  `json:"content"`
}

type localizedContact struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Value     string  `json:"value"`
	Icon      *string `json:"icon"`
	SortOrder int     `json:"sort_order"`
	Label     *string `json:"label"`
}

type fullPayload struct {
	Experience   []localizedExperience  `json:"experience"`
	Projects     []localizedProject     `json:"projects"`
	Stacks       []store.Stack          `json:"stacks"`
	Testimonials []localizedTestimonial `json:"testimonials"`
	Contacts     []localizedContact     `json:"contacts"`
	Resumes      []store.Resume         `json:"resumes"`
}

// pickTranslation returns the translation for l, else English, else the
// first one. ok is false only when there are none.
func pickTranslation[T any](items []T, code func(T) string, l locale.Locale) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	for _, want := range []string{string(l), string(locale.EN)} {
		for _, item := range items {
			if code(item) == want {
				return item, true
			}
		}
	}
	return items[0], true
}

func localizeExperience(items []store.Experience, l locale.Locale) []localizedExperience {
	out := make([]localizedExperience, 0, len(items))
	for _, e := range items {
		t, _ := pickTranslation(e.Translations, func(t store.ExperienceTranslation) string { return t.LanguageCode }, l)
		out = append(out, localizedExperience{
			ID:          e.ID,
			CompanyName: e.CompanyName,
			CompanyURL:  e.CompanyURL,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			IsCurrent:   e.IsCurrent,
			Position:    t.Position,
			Description: t.Description,
			Location:    t.Location,
			Stacks:      e.Stacks,
		})
	}
	return out
}

func localizeProjects(items []store.Project, l locale.Locale) []localizedProject {
	out := make([]localizedProject, 0, len(items))
	for _, p := range items {
		t, _ := pickTranslation(p.Translations, func(t store.ProjectTranslation) string { return t.LanguageCode }, l)
		out = append(out, localizedProject{
			ID:          p.ID,
			Slug:        p.Slug,
			Link:        p.Link,
			RepoLink:    p.RepoLink,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			IsFeatured:  p.IsFeatured,
			Title:       t.Title,
			Description: t.Description,
			Role:        t.Role,
			Stacks:      p.Stacks,
		})
	}
	return out
}

func localizeTestimonials(items []store.Testimonial, l locale.Locale) []localizedTestimonial {
	out := make([]localizedTestimonial, 0, len(items))
	for _, t := range items {
		tr, _ := pickTranslation(t.Translations, func(t store.TestimonialTranslation) string { return t.LanguageCode }, l)
		out = append(out, localizedTestimonial{
			ID:              t.ID,
			AuthorName:      t.AuthorName,
			AuthorURL:       t.AuthorURL,
			AuthorAvatarURL: t.AuthorAvatarURL,
			Kind:            t.Kind,
			Date:            t.Date,
			AuthorPosition:  tr.AuthorPosition,
			Content:         tr.Content,
		})
	}
	return out
}

func localizeContacts(items []store.Contact, l locale.Locale) []localizedContact {
	out := make([]localizedContact, 0, len(items))
	for _, c := range items {
		t, _ := pickTranslation(c.Translations, func(t store.ContactTranslation) string { return t.LanguageCode }, l)
		out = append(out, localizedContact{
			ID:        c.ID,
			Type:      c.Type,
			Value:     c.Value,
			Icon:      c.Icon,
			SortOrder: c.SortOrder,
			Label:     t.Label,
		})
	}
	return out
}
