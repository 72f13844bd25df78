package store

// Records mirror the JSON served under /api/v1/profile. Translation and
// stack lists are never nil.

type Stack struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	IconURL     *string `json:"icon_url"`
	Category    *string `json:"category"`
	Proficiency *int    `json:"proficiency"`
}

type ExperienceTranslation struct {
	LanguageCode string  `json:"language_code"`
	Position     string  `json:"position"`
	Description  string  `json:"description"`
	Location     *string `json:"location"`
}

type Experience struct {
	ID           string                  `json:"id"`
	CompanyName  string                  `json:"company_name"`
	CompanyURL   *string                 `json:"company_url"`
	StartDate    string                  `json:"start_date"`
	EndDate      *string                 `json:"end_date"`
	IsCurrent    bool                    `json:"is_current"`
	Translations []ExperienceTranslation `json:"translations"`
	Stacks       []Stack                 `json:"stacks"`
}

type ProjectTranslation struct {
	LanguageCode string  `json:"language_code"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Role         *string `json:"role"`
}

type Project struct {
	ID           string               `json:"id"`
	Slug         string               `json:"slug"`
	Link         *string              `json:"link"`
	RepoLink     *string              `json:"repo_link"`
	StartDate    string               `json:"start_date"`
	EndDate      *string              `json:"end_date"`
	IsFeatured   bool                 `json:"is_featured"`
	Translations []ProjectTranslation `json:"translations"`
	Stacks       []Stack              `json:"stacks"`
}

type TestimonialTranslation struct {
	LanguageCode   string  `json:"language_code"`
	AuthorPosition *string `json:"author_position"`
	Content        string  `json:"content"`
}

type Testimonial struct {
	ID              string                   `json:"id"`
	AuthorName      string                   `json:"author_name"`
	AuthorURL       *string                  `json:"author_url"`
	AuthorAvatarURL *string                  `json:"author_avatar_url"`
	Kind            *string                  `json:"kind"`
	Date            string                   `json:"date"`
	Translations    []TestimonialTranslation `json:"translations"`
}

type ContactTranslation struct {
	LanguageCode string  `json:"language_code"`
	Label        *string `json:"label"`
}

type Contact struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	Value        string               `json:"value"`
	Icon         *string              `json:"icon"`
	IsVisible    bool                 `json:"is_visible"`
	SortOrder    int                  `json:"sort_order"`
	Translations []ContactTranslation `json:"translations"`
}

type Resume struct {
	ID           string `json:"id"`
	LanguageCode string `json:"language_code"`
	FilePath     string `json:"file_path"`
	GeneratedAt  string `json:"generated_at"`
	IsActive     bool   `json:"is_active"`
}
