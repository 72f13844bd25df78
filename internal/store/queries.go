package store

import (
	"context"
	"database/sql"
	"fmt"
)

// The pool holds a single connection, so every query drains and closes its
// rows before the next one starts.

// Stacks returns all stacks ordered by name.
func (s *Store) Stacks(ctx context.Context) ([]Stack, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, icon_url, category, proficiency FROM stacks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query stacks: %w", err)
	}
	defer rows.Close()

	out := []Stack{}
	for rows.Next() {
		st, err := scanStack(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stacks: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStack(row scanner) (Stack, error) {
	var (
		st          Stack
		iconURL     sql.NullString
		category    sql.NullString
		proficiency sql.NullInt64
	)
	if err := row.Scan(&st.ID, &st.Name, &iconURL, &category, &proficiency); err != nil {
		return Stack{}, fmt.Errorf("scan stack: %w", err)
	}
	st.IconURL = stringPtr(iconURL)
	st.Category = stringPtr(category)
	st.Proficiency = intPtr(proficiency)
	return st, nil
}

// linkedStacks maps owner id to its stacks in seed order.
func (s *Store) linkedStacks(ctx context.Context, table, column string) (map[string][]Stack, error) {
	query := fmt.Sprintf(`SELECT l.%s, st.id, st.name, st.icon_url, st.category, st.proficiency
		FROM %s l JOIN stacks st ON st.id = l.stack_id
		ORDER BY l.%s, l.position`, column, table, column)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	out := make(map[string][]Stack)
	for rows.Next() {
		var (
			ownerID     string
			st          Stack
			iconURL     sql.NullString
			category    sql.NullString
			proficiency sql.NullInt64
		)
		if err := rows.Scan(&ownerID, &st.ID, &st.Name, &iconURL, &category, &proficiency); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		st.IconURL = stringPtr(iconURL)
		st.Category = stringPtr(category)
		st.Proficiency = intPtr(proficiency)
		out[ownerID] = append(out[ownerID], st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

// Experience returns work experience, newest start date first.
func (s *Store) Experience(ctx context.Context) ([]Experience, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company_name, company_url, start_date, end_date, is_current
		 FROM work_experiences ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query experience: %w", err)
	}

	out := []Experience{}
	for rows.Next() {
		var (
			e          Experience
			companyURL sql.NullString
			endDate    sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.CompanyName, &companyURL, &e.StartDate, &endDate, &e.IsCurrent); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		e.CompanyURL = stringPtr(companyURL)
		e.EndDate = stringPtr(endDate)
		out = append(out, e)
	}
	if err := closeRows(rows, "experience"); err != nil {
		return nil, err
	}

	translations, err := s.experienceTranslations(ctx)
	if err != nil {
		return nil, err
	}
	stacks, err := s.linkedStacks(ctx, "work_experience_stacks", "work_experience_id")
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Translations = nonNil(translations[out[i].ID])
		out[i].Stacks = nonNil(stacks[out[i].ID])
	}
	return out, nil
}

func (s *Store) experienceTranslations(ctx context.Context) (map[string][]ExperienceTranslation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT work_experience_id, language_code, position, description, location
		 FROM work_experience_translations ORDER BY work_experience_id, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query experience translations: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]ExperienceTranslation)
	for rows.Next() {
		var (
			ownerID  string
			t        ExperienceTranslation
			location sql.NullString
		)
		if err := rows.Scan(&ownerID, &t.LanguageCode, &t.Position, &t.Description, &location); err != nil {
			return nil, fmt.Errorf("scan experience translation: %w", err)
		}
		t.Location = stringPtr(location)
		out[ownerID] = append(out[ownerID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experience translations: %w", err)
	}
	return out, nil
}

// Projects returns featured projects first, then newest start date first.
func (s *Store) Projects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, slug, link, repo_link, start_date, end_date, is_featured
		 FROM projects ORDER BY is_featured DESC, start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	out := []Project{}
	for rows.Next() {
		var (
			p        Project
			link     sql.NullString
			repoLink sql.NullString
			endDate  sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Slug, &link, &repoLink, &p.StartDate, &endDate, &p.IsFeatured); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Link = stringPtr(link)
		p.RepoLink = stringPtr(repoLink)
		p.EndDate = stringPtr(endDate)
		out = append(out, p)
	}
	if err := closeRows(rows, "projects"); err != nil {
		return nil, err
	}

	translations, err := s.projectTranslations(ctx)
	if err != nil {
		return nil, err
	}
	stacks, err := s.linkedStacks(ctx, "project_stacks", "project_id")
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Translations = nonNil(translations[out[i].ID])
		out[i].Stacks = nonNil(stacks[out[i].ID])
	}
	return out, nil
}

func (s *Store) projectTranslations(ctx context.Context) (map[string][]ProjectTranslation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT project_id, language_code, title, description, role
		 FROM project_translations ORDER BY project_id, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query project translations: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]ProjectTranslation)
	for rows.Next() {
		var (
			ownerID string
			t       ProjectTranslation
			role    sql.NullString
		)
		if err := rows.Scan(&ownerID, &t.LanguageCode, &t.Title, &t.Description, &role); err != nil {
			return nil, fmt.Errorf("scan project translation: %w", err)
		}
		t.Role = stringPtr(role)
		out[ownerID] = append(out[ownerID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project translations: %w", err)
	}
	return out, nil
}

// Testimonials returns testimonials, newest first.
func (s *Store) Testimonials(ctx context.Context) ([]Testimonial, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, author_name, author_url, author_avatar_url, kind, date
		 FROM testimonials ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}

	out := []Testimonial{}
	for rows.Next() {
		var (
			t         Testimonial
			authorURL sql.NullString
			avatarURL sql.NullString
			kind      sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.AuthorName, &authorURL, &avatarURL, &kind, &t.Date); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		t.AuthorURL = stringPtr(authorURL)
		t.AuthorAvatarURL = stringPtr(avatarURL)
		t.Kind = stringPtr(kind)
		out = append(out, t)
	}
	if err := closeRows(rows, "testimonials"); err != nil {
		return nil, err
	}

	trows, err := s.db.QueryContext(ctx,
		`SELECT testimonial_id, language_code, author_position, content
		 FROM testimonial_translations ORDER BY testimonial_id, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query testimonial translations: %w", err)
	}
	defer trows.Close()

	translations := make(map[string][]TestimonialTranslation)
	for trows.Next() {
		var (
			ownerID  string
			tr       TestimonialTranslation
			position sql.NullString
		)
		if err := trows.Scan(&ownerID, &tr.LanguageCode, &position, &tr.Content); err != nil {
			return nil, fmt.Errorf("scan testimonial translation: %w", err)
		}
		tr.AuthorPosition = stringPtr(position)
		translations[ownerID] = append(translations[ownerID], tr)
	}
	if err := trows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonial translations: %w", err)
	}

	for i := range out {
		out[i].Translations = nonNil(translations[out[i].ID])
	}
	return out, nil
}

// VisibleContacts returns visible contacts ordered by sort order.
func (s *Store) VisibleContacts(ctx context.Context) ([]Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, value, icon, is_visible, sort_order
		 FROM contacts WHERE is_visible = 1 ORDER BY sort_order, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	out := []Contact{}
	for rows.Next() {
		var (
			c    Contact
			icon sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Type, &c.Value, &icon, &c.IsVisible, &c.SortOrder); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		c.Icon = stringPtr(icon)
		out = append(out, c)
	}
	if err := closeRows(rows, "contacts"); err != nil {
		return nil, err
	}

	trows, err := s.db.QueryContext(ctx,
		`SELECT contact_id, language_code, label FROM contact_translations ORDER BY contact_id, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query contact translations: %w", err)
	}
	defer trows.Close()

	translations := make(map[string][]ContactTranslation)
	for trows.Next() {
		var (
			ownerID string
			t       ContactTranslation
			label   sql.NullString
		)
		if err := trows.Scan(&ownerID, &t.LanguageCode, &label); err != nil {
			return nil, fmt.Errorf("scan contact translation: %w", err)
		}
		t.Label = stringPtr(label)
		translations[ownerID] = append(translations[ownerID], t)
	}
	if err := trows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact translations: %w", err)
	}

	for i := range out {
		out[i].Translations = nonNil(translations[out[i].ID])
	}
	return out, nil
}

// ActiveResumes returns active resumes in seed order.
func (s *Store) ActiveResumes(ctx context.Context) ([]Resume, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, language_code, file_path, generated_at, is_active
		 FROM resumes WHERE is_active = 1 ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query resumes: %w", err)
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.LanguageCode, &r.FilePath, &r.GeneratedAt, &r.IsActive); err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resumes: %w", err)
	}
	return out, nil
}

func closeRows(rows *sql.Rows, what string) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fmt.Errorf("iterate %s: %w", what, err)
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("close %s rows: %w", what, err)
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
