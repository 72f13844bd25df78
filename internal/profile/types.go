package profile

import "github.com/vladmesh/personal-site/internal/locale"

// Raw shapes served by the profile API.

type ContactTranslation struct {
	LanguageCode string  `json:"language_code"`
	Label        *string `json:"label"`
}

// ContactRecord is one item of GET /api/v1/profile/contacts.
type ContactRecord struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	Value        string               `json:"value"`
	Icon         *string              `json:"icon"`
	IsVisible    bool                 `json:"is_visible"`
	SortOrder    int                  `json:"sort_order"`
	Translations []ContactTranslation `json:"translations"`
}

type APIStack struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	IconURL     *string `json:"icon_url"`
	Category    *string `json:"category"`
	Proficiency *int    `json:"proficiency"`
}

type APIWorkExperience struct {
	ID          string     `json:"id"`
	CompanyName string     `json:"company_name"`
	CompanyURL  *string    `json:"company_url"`
	StartDate   string     `json:"start_date"`
	EndDate     *string    `json:"end_date"`
	IsCurrent   bool       `json:"is_current"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	Location    *string    `json:"location"`
	Stacks      []APIStack `json:"stacks"`
}

type APIProject struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Link        *string    `json:"link"`
	RepoLink    *string    `json:"repo_link"`
	StartDate   string     `json:"start_date"`
	EndDate     *string    `json:"end_date"`
	IsFeatured  bool       `json:"is_featured"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Role        *string    `json:"role"`
	Stacks      []APIStack `json:"stacks"`
}

type APITestimonial struct {
	ID              string  `json:"id"`
	AuthorName      string  `json:"author_name"`
	AuthorURL       *string `json:"author_url"`
	AuthorAvatarURL *string `json:"author_avatar_url"`
	Kind            *string `json:"kind"`
	Date            string  `json:"date"`
	AuthorPosition  *string `json:"author_position"`
	Content         string  `json:"content"`
}

// APIContact is a contact already localized by the server.
type APIContact struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Value     string  `json:"value"`
	Icon      *string `json:"icon"`
	SortOrder int     `json:"sort_order"`
	Label     *string `json:"label"`
}

type APIResume struct {
	ID           string `json:"id"`
	LanguageCode string `json:"language_code"`
	FilePath     string `json:"file_path"`
	GeneratedAt  string `json:"generated_at"`
	IsActive     bool   `json:"is_active"`
}

// FullResponse is GET /api/v1/profile/full?lang=<locale>.
type FullResponse struct {
	Experience   []APIWorkExperience `json:"experience"`
	Projects     []APIProject        `json:"projects"`
	Stacks       []APIStack          `json:"stacks"`
	Testimonials []APITestimonial    `json:"testimonials"`
	Contacts     []APIContact        `json:"contacts"`
	Resumes      []APIResume         `json:"resumes"`
}

// View models consumed by the page templates.

// Source tells whether a contact list came from the API or the static
// fallback configuration.
type Source string

const (
	SourceAPI      Source = "api"
	SourceFallback Source = "fallback"
)

type ContactLink struct {
	Type      string
	Label     string
	Href      string
	Icon      string
	SortOrder int
	IsVisible bool
	Value     string
	Display   string
}

type ContactsResult struct {
	Items  []ContactLink
	Lookup map[string]ContactLink
	Source Source
}

type ExperienceItem struct {
	Company     string
	Title       string
	Description []string
	From        string
	To          string
	Location    string
}

type ExperienceSection struct {
	Title   string
	Summary string
	Items   []ExperienceItem
}

type ProjectLink struct {
	Href  string
	Label string
}

type Project struct {
	Slug        string
	Title       string
	Year        string
	Role        string
	Summary     string
	Description []string
	Stack       []string
	Links       []ProjectLink
}

// LocalizedText holds one string per supported locale.
type LocalizedText struct {
	EN string
	RU string
}

// In returns the text for l, falling back to English.
func (t LocalizedText) In(l locale.Locale) string {
	if l == locale.RU && t.RU != "" {
		return t.RU
	}
	return t.EN
}

type SkillGroup struct {
	Category    string
	Title       LocalizedText
	Description LocalizedText
	Items       []string
}

type TestimonialKind string

const (
	KindDev     TestimonialKind = "dev"
	KindTeacher TestimonialKind = "teacher"
)

type Testimonial struct {
	Kind   TestimonialKind
	Quote  LocalizedText
	Author string
	Role   string
	URL    string
}

// ProfileData is everything a page render needs, built fresh per request.
type ProfileData struct {
	Experience   ExperienceSection
	Projects     []Project
	Skills       []SkillGroup
	Testimonials []Testimonial
	Contacts     ContactsResult
	Resumes      map[locale.Locale]string
}
