package store

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `
stacks:
  - {name: Go, category: Backend, proficiency: 5}
  - {name: Docker, category: DevOps}
  - {name: Figma}
experience:
  - key: old
    company_name: Old Co
    start_date: "2019-01-01"
    end_date: "2020-12-31"
    stacks: [Docker]
    translations:
      - {language_code: en, position: Engineer, description: "Line one\nLine two"}
  - key: new
    company_name: New Co
    company_url: https://new.example.com
    start_date: "2023-01-01"
    is_current: true
    stacks: [Go, Docker]
    translations:
      - {language_code: ru, position: Лид, description: Руководил}
      - {language_code: en, position: Lead, description: Led, location: Remote}
projects:
  - slug: side
    start_date: "2024-01-01"
    translations: [{language_code: en, title: Side, description: Hobby}]
  - slug: main
    link: https://main.example.com
    start_date: "2020-01-01"
    is_featured: true
    stacks: [Go]
    translations: [{language_code: en, title: Main, description: Flagship, role: Author}]
testimonials:
  - key: a
    author_name: A
    kind: teacher
    date: "2022-01-01"
    translations: [{language_code: en, content: Good}]
  - key: b
    author_name: B
    date: "2024-01-01"
    translations: [{language_code: ru, content: Хорошо}]
contacts:
  - {key: gh, type: github, value: "https://github.com/x", sort_order: 3}
  - key: email
    type: email
    value: a@b.c
    icon: email
    sort_order: 1
    translations: [{language_code: en, label: Email}, {language_code: ru, label: Почта}]
  - {key: phone, type: phone, value: "+7900", hidden: true, sort_order: 0}
resumes:
  - {language_code: en, file_path: /cv/en.pdf, generated_at: "2024-01-01T00:00:00Z"}
  - {language_code: ru, file_path: /cv/ru-old.pdf, inactive: true}
`

func openTestStore(t *testing.T) *Store {
	t.Helper()
	seed, err := ParseSeed([]byte(testSeed))
	require.NoError(t, err)
	s, err := OpenSeeded(context.Background(), seed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSeedID_MatchesNameBasedUUID(t *testing.T) {
	id := SeedID("work-exp-dnk")
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
	assert.Equal(t, id, SeedID("work-exp-dnk"))
	assert.NotEqual(t, id, SeedID("work-exp-other"))
}

func TestStore_Ordering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	stacks, err := s.Stacks(ctx)
	require.NoError(t, err)
	require.Len(t, stacks, 3)
	assert.Equal(t, "Docker", stacks[0].Name)
	assert.Nil(t, stacks[1].Category, "Figma has no category")
	require.NotNil(t, stacks[2].Proficiency)
	assert.Equal(t, 5, *stacks[2].Proficiency)

	exp, err := s.Experience(ctx)
	require.NoError(t, err)
	require.Len(t, exp, 2)
	assert.Equal(t, "New Co", exp[0].CompanyName)
	assert.True(t, exp[0].IsCurrent)
	assert.Nil(t, exp[0].EndDate)
	assert.Equal(t, []string{"ru", "en"}, []string{exp[0].Translations[0].LanguageCode, exp[0].Translations[1].LanguageCode})
	assert.Equal(t, []string{"Go", "Docker"}, []string{exp[0].Stacks[0].Name, exp[0].Stacks[1].Name})
	assert.Equal(t, SeedID("work-exp-new"), exp[0].ID)

	projects, err := s.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "main", projects[0].Slug, "featured first")
	assert.NotNil(t, projects[1].Stacks)
	assert.Empty(t, projects[1].Stacks)

	testimonials, err := s.Testimonials(ctx)
	require.NoError(t, err)
	require.Len(t, testimonials, 2)
	assert.Equal(t, "B", testimonials[0].AuthorName)
	assert.Nil(t, testimonials[0].Kind)
}

func TestStore_VisibleContactsAndActiveResumes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	contacts, err := s.VisibleContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "email", contacts[0].Type)
	assert.Len(t, contacts[0].Translations, 2)
	assert.Equal(t, "github", contacts[1].Type)
	assert.NotNil(t, contacts[1].Translations)
	assert.Nil(t, contacts[1].Icon)

	resumes, err := s.ActiveResumes(ctx)
	require.NoError(t, err)
	require.Len(t, resumes, 1)
	assert.Equal(t, "/cv/en.pdf", resumes[0].FilePath)
	assert.Equal(t, "2024-01-01T00:00:00Z", resumes[0].GeneratedAt)
}

func TestParseSeed_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown field",
			yaml: "stacks:\n  - {name: Go, colour: blue}\n",
			want: "decode yaml",
		},
		{
			name: "bad date",
			yaml: "experience:\n  - {key: x, company_name: X, start_date: soon, translations: [{language_code: en, position: P, description: D}]}\n",
			want: "StartDate",
		},
		{
			name: "missing translations",
			yaml: "projects:\n  - {slug: x, start_date: \"2020-01-01\"}\n",
			want: "Translations",
		},
		{
			name: "duplicate stack",
			yaml: "stacks:\n  - {name: Go}\n  - {name: Go}\n",
			want: "Stacks",
		},
		{
			name: "unknown testimonial kind",
			yaml: "testimonials:\n  - {key: x, author_name: X, kind: boss, date: \"2020-01-01\", translations: [{language_code: en, content: C}]}\n",
			want: "Kind",
		},
		{
			name: "unknown stack reference",
			yaml: "projects:\n  - {slug: x, start_date: \"2020-01-01\", stacks: [Rust], translations: [{language_code: en, title: T, description: D}]}\n",
			want: `unknown stack "Rust"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadSeed_BundledProfile(t *testing.T) {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	path := filepath.Join(filepath.Dir(file), "..", "..", "data", "profile.yaml")

	seed, err := LoadSeed(path)
	require.NoError(t, err)

	s, err := OpenSeeded(context.Background(), seed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	contacts, err := s.VisibleContacts(context.Background())
	require.NoError(t, err)
	assert.Len(t, contacts, 5, "phone and whatsapp are hidden")

	exp, err := s.Experience(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, exp)
	assert.Equal(t, "DNK IT Solutions", exp[0].CompanyName)
	assert.Equal(t, SeedID("work-exp-dnk"), exp[0].ID)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read seed")
}
