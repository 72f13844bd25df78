package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Seed is the YAML document the store is loaded from.
type Seed struct {
	Stacks       []StackSeed       `yaml:"stacks" validate:"unique=Name,dive"`
	Experience   []ExperienceSeed  `yaml:"experience" validate:"unique=Key,dive"`
	Projects     []ProjectSeed     `yaml:"projects" validate:"unique=Slug,dive"`
	Testimonials []TestimonialSeed `yaml:"testimonials" validate:"unique=Key,dive"`
	Contacts     []ContactSeed     `yaml:"contacts" validate:"unique=Key,dive"`
	Resumes      []ResumeSeed      `yaml:"resumes" validate:"dive"`
}

type StackSeed struct {
	Name        string `yaml:"name" validate:"required"`
	IconURL     string `yaml:"icon_url" validate:"omitempty,url"`
	Category    string `yaml:"category"`
	Proficiency *int   `yaml:"proficiency" validate:"omitempty,min=1,max=5"`
}

type ExperienceSeed struct {
	Key          string                      `yaml:"key" validate:"required"`
	CompanyName  string                      `yaml:"company_name" validate:"required"`
	CompanyURL   string                      `yaml:"company_url" validate:"omitempty,url"`
	StartDate    string                      `yaml:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string                      `yaml:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsCurrent    bool                        `yaml:"is_current"`
	Stacks       []string                    `yaml:"stacks"`
	Translations []ExperienceTranslationSeed `yaml:"translations" validate:"required,min=1,unique=LanguageCode,dive"`
}

type ExperienceTranslationSeed struct {
	LanguageCode string `yaml:"language_code" validate:"required,max=10"`
	Position     string `yaml:"position" validate:"required"`
	Description  string `yaml:"description" validate:"required"`
	Location     string `yaml:"location"`
}

type ProjectSeed struct {
	Slug         string                   `yaml:"slug" validate:"required"`
	Link         string                   `yaml:"link" validate:"omitempty,url"`
	RepoLink     string                   `yaml:"repo_link" validate:"omitempty,url"`
	StartDate    string                   `yaml:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string                   `yaml:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsFeatured   bool                     `yaml:"is_featured"`
	Stacks       []string                 `yaml:"stacks"`
	Translations []ProjectTranslationSeed `yaml:"translations" validate:"required,min=1,unique=LanguageCode,dive"`
}

type ProjectTranslationSeed struct {
	LanguageCode string `yaml:"language_code" validate:"required,max=10"`
	Title        string `yaml:"title" validate:"required"`
	Description  string `yaml:"description" validate:"required"`
	Role         string `yaml:"role"`
}

type TestimonialSeed struct {
	Key             string                       `yaml:"key" validate:"required"`
	AuthorName      string                       `yaml:"author_name" validate:"required"`
	AuthorURL       string                       `yaml:"author_url" validate:"omitempty,url"`
	AuthorAvatarURL string                       `yaml:"author_avatar_url" validate:"omitempty,url"`
	Kind            string                       `yaml:"kind" validate:"omitempty,oneof=dev teacher"`
	Date            string                       `yaml:"date" validate:"required,datetime=2006-01-02"`
	Translations    []TestimonialTranslationSeed `yaml:"translations" validate:"required,min=1,unique=LanguageCode,dive"`
}

type TestimonialTranslationSeed struct {
	LanguageCode   string `yaml:"language_code" validate:"required,max=10"`
	AuthorPosition string `yaml:"author_position"`
	Content        string `yaml:"content" validate:"required"`
}

type ContactSeed struct {
	Key          string                   `yaml:"key" validate:"required"`
	Type         string                   `yaml:"type" validate:"required"`
	Value        string                   `yaml:"value" validate:"required"`
	Icon         string                   `yaml:"icon"`
	Hidden       bool                     `yaml:"hidden"`
	SortOrder    int                      `yaml:"sort_order" validate:"min=0"`
	Translations []ContactTranslationSeed `yaml:"translations" validate:"unique=LanguageCode,dive"`
}

type ContactTranslationSeed struct {
	LanguageCode string `yaml:"language_code" validate:"required,max=10"`
	Label        string `yaml:"label"`
}

type ResumeSeed struct {
	LanguageCode string `yaml:"language_code" validate:"required,max=10"`
	FilePath     string `yaml:"file_path" validate:"required"`
	GeneratedAt  string `yaml:"generated_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Inactive     bool   `yaml:"inactive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// SeedID is the deterministic id of a seeded row: a name-based SHA-1 UUID of
// "profile-seed-<key>" in the DNS namespace.
func SeedID(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte("profile-seed-"+key)).String()
}

// LoadSeed reads and validates the seed file at path.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return seed, nil
}

// ParseSeed decodes a YAML seed document, rejecting unknown fields, and
// validates it.
func ParseSeed(data []byte) (*Seed, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate checks field constraints and that every referenced stack exists.
func (s *Seed) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validate seed: %w", err)
	}

	known := make(map[string]bool, len(s.Stacks))
	for _, st := range s.Stacks {
		known[st.Name] = true
	}
	var errs []error
	for _, e := range s.Experience {
		for _, name := range e.Stacks {
			if !known[name] {
				errs = append(errs, fmt.Errorf("experience %q: unknown stack %q", e.Key, name))
			}
		}
	}
	for _, p := range s.Projects {
		for _, name := range p.Stacks {
			if !known[name] {
				errs = append(errs, fmt.Errorf("project %q: unknown stack %q", p.Slug, name))
			}
		}
	}
	return errors.Join(errs...)
}

// Apply inserts seed in a single transaction.
func (s *Store) Apply(ctx context.Context, seed *Seed) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	steps := []struct {
		name string
		fn   func(context.Context, *sql.Tx, *Seed) error
	}{
		{"stacks", insertStacks},
		{"experience", insertExperience},
		{"projects", insertProjects},
		{"testimonials", insertTestimonials},
		{"contacts", insertContacts},
		{"resumes", func(ctx context.Context, tx *sql.Tx, seed *Seed) error {
			return insertResumes(ctx, tx, seed, now)
		}},
	}
	for _, step := range steps {
		if err := step.fn(ctx, tx, seed); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func stackID(name string) string { return SeedID("stack-" + name) }

func insertStacks(ctx context.Context, tx *sql.Tx, seed *Seed) error {
	for _, st := range seed.Stacks {
		var proficiency sql.NullInt64
		if st.Proficiency != nil {
			proficiency = sql.NullInt64{Int64: int64(*st.Proficiency), Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO stacks (id, name, icon_url, category, proficiency) VALUES (?, ?, ?, ?, ?)`,
			stackID(st.Name), st.Name, nullString(st.IconURL), nullString(st.Category), proficiency,
		); err != nil {
			return fmt.Errorf("insert stack %q: %w", st.Name, err)
		}
	}
	return nil
}

func insertExperience(ctx context.Context, tx *sql.Tx, seed *Seed) error {
	for _, e := range seed.Experience {
		key := "work-exp-" + e.Key
		id := SeedID(key)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO work_experiences (id, company_name, company_url, start_date, end_date, is_current)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, e.CompanyName, nullString(e.CompanyURL), e.StartDate, nullString(e.EndDate), e.IsCurrent,
		); err != nil {
			return fmt.Errorf("insert experience %q: %w", e.Key, err)
		}
		for _, t := range e.Translations {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO work_experience_translations (id, work_experience_id, language_code, position, description, location)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				SeedID(key+"-"+t.LanguageCode), id, t.LanguageCode, t.Position, strings.TrimSpace(t.Description), nullString(t.Location),
			); err != nil {
				return fmt.Errorf("insert experience %q translation %s: %w", e.Key, t.LanguageCode, err)
			}
		}
		if err := linkStacks(ctx, tx, "work_experience_stacks", "work_experience_id", id, e.Stacks); err != nil {
			return fmt.Errorf("experience %q: %w", e.Key, err)
		}
	}
	return nil
}

func insertProjects(ctx context.Context, tx *sql.Tx, seed *Seed) error {
	for _, p := range seed.Projects {
		key := "project-" + p.Slug
		id := SeedID(key)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, slug, link, repo_link, start_date, end_date, is_featured)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, p.Slug, nullString(p.Link), nullString(p.RepoLink), p.StartDate, nullString(p.EndDate), p.IsFeatured,
		); err != nil {
			return fmt.Errorf("insert project %q: %w", p.Slug, err)
		}
		for _, t := range p.Translations {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO project_translations (id, project_id, language_code, title, description, role)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				SeedID(key+"-"+t.LanguageCode), id, t.LanguageCode, t.Title, strings.TrimSpace(t.Description), nullString(t.Role),
			); err != nil {
				return fmt.Errorf("insert project %q translation %s: %w", p.Slug, t.LanguageCode, err)
			}
		}
		if err := linkStacks(ctx, tx, "project_stacks", "project_id", id, p.Stacks); err != nil {
			return fmt.Errorf("project %q: %w", p.Slug, err)
		}
	}
	return nil
}

// linkStacks fills an association table; table and column are constants
// chosen by the caller.
func linkStacks(ctx context.Context, tx *sql.Tx, table, column, ownerID string, names []string) error {
	query := fmt.Sprintf(`INSERT OR IGNORE INTO %s (%s, stack_id, position) VALUES (?, ?, ?)`, table, column)
	for i, name := range names {
		if _, err := tx.ExecContext(ctx, query, ownerID, stackID(name), i); err != nil {
			return fmt.Errorf("link stack %q: %w", name, err)
		}
	}
	return nil
}

func insertTestimonials(ctx context.Context, tx *sql.Tx, seed *Seed) error {
	for _, t := range seed.Testimonials {
		key := "testimonial-" + t.Key
		id := SeedID(key)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO testimonials (id, author_name, author_url, author_avatar_url, kind, date)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, t.AuthorName, nullString(t.AuthorURL), nullString(t.AuthorAvatarURL), nullString(t.Kind), t.Date,
		); err != nil {
			return fmt.Errorf("insert testimonial %q: %w", t.Key, err)
		}
		for _, tr := range t.Translations {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO testimonial_translations (id, testimonial_id, language_code, author_position, content)
				 VALUES (?, ?, ?, ?, ?)`,
				SeedID(key+"-"+tr.LanguageCode), id, tr.LanguageCode, nullString(tr.AuthorPosition), strings.TrimSpace(tr.Content),
			); err != nil {
				return fmt.Errorf("insert testimonial %q translation %s: %w", t.Key, tr.LanguageCode, err)
			}
		}
	}
	return nil
}

func insertContacts(ctx context.Context, tx *sql.Tx, seed *Seed) error {
	for _, c := range seed.Contacts {
		key := "contact-" + c.Key
		id := SeedID(key)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (id, type, value, icon, is_visible, sort_order) VALUES (?, ?, ?, ?, ?, ?)`,
			id, c.Type, c.Value, nullString(c.Icon), !c.Hidden, c.SortOrder,
		); err != nil {
			return fmt.Errorf("insert contact %q: %w", c.Key, err)
		}
		for _, t := range c.Translations {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO contact_translations (id, contact_id, language_code, label) VALUES (?, ?, ?, ?)`,
				SeedID(key+"-"+t.LanguageCode), id, t.LanguageCode, nullString(t.Label),
			); err != nil {
				return fmt.Errorf("insert contact %q translation %s: %w", c.Key, t.LanguageCode, err)
			}
		}
	}
	return nil
}

func insertResumes(ctx context.Context, tx *sql.Tx, seed *Seed, now string) error {
	for i, r := range seed.Resumes {
		generatedAt := r.GeneratedAt
		if generatedAt == "" {
			generatedAt = now
		}
		key := "resume-" + r.LanguageCode
		if i > 0 && seenResumeLang(seed.Resumes[:i], r.LanguageCode) {
			key = fmt.Sprintf("%s-%d", key, i)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO resumes (id, language_code, file_path, generated_at, is_active) VALUES (?, ?, ?, ?, ?)`,
			SeedID(key), r.LanguageCode, r.FilePath, generatedAt, !r.Inactive,
		); err != nil {
			return fmt.Errorf("insert resume %s: %w", r.FilePath, err)
		}
	}
	return nil
}

func seenResumeLang(prev []ResumeSeed, code string) bool {
	for _, r := range prev {
		if r.LanguageCode == code {
			return true
		}
	}
	return false
}
