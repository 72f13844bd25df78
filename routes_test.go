package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladmesh/personal-site/internal/config"
	"github.com/vladmesh/personal-site/internal/locale"
	"github.com/vladmesh/personal-site/internal/profile"
)

const fullJSON = `{
  "experience": [
    {"id":"e1","company_name":"DNK IT Solutions","company_url":null,"start_date":"2022-01-01","end_date":null,
     "is_current":true,"position":"Python разработчик","description":"Проектировал API\nПисал тесты","location":"Бишкек","stacks":[]}
  ],
  "projects": [
    {"id":"p1","slug":"site","link":"https://example.com","repo_link":null,"start_date":"2024-05-01","end_date":null,
     "is_featured":true,"title":"Личный сайт","description":"Портфолио","role":null,"stacks":[]}
  ],
  "stacks": [{"id":"s1","name":"Go","icon_url":null,"category":"Backend","proficiency":null}],
  "testimonials": [],
  "contacts": [
    {"id":"c1","type":"telegram","value":"https://t.me/vlad","icon":"telegram","sort_order":1,"label":"Telegram"},
    {"id":"c2","type":"email","value":"vlad@example.com","icon":"email","sort_order":2,"label":null}
  ],
  "resumes": [
    {"id":"r1","language_code":"ru","file_path":"/cv/api-ru.pdf","generated_at":"2024-01-01T00:00:00Z","is_active":true}
  ]
}`

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(apiURL string) config.SiteConfig {
	return config.SiteConfig{
		Env:           "test",
		APIBaseURL:    apiURL,
		APITimeout:    2 * time.Second,
		LocaleDetect:  true,
		TemplatesGlob: "templates/*",
		StaticDir:     "./static",
		ImagesDir:     "./images",
		CVDir:         "./public/cv",
		Links: config.LinksConfig{
			Email:      "fallback@example.com",
			Telegram:   "https://t.me/fallback",
			GitHubRepo: "https://github.com/vladmesh/personal-site",
			CVEN:       "/cv/cv-en.pdf",
			CVRU:       "/cv/cv-ru.pdf",
		},
	}
}

func newTestSite(t *testing.T, api http.HandlerFunc) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newRouter(testConfig(srv.URL), logger)
}

func request(h http.Handler, path, acceptLanguage string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome_RendersProfile(t *testing.T) {
	var gotQuery string
	r := newTestSite(t, func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, fullJSON)
	})

	rec := request(r, "/ru/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lang=ru", gotQuery)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "ru", rec.Header().Get("Content-Language"))
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="ru">`)
	assert.Contains(t, body, "Привет! Я Влад, разработчик и ментор.")
	assert.Contains(t, body, "DNK IT Solutions")
	assert.Contains(t, body, "по наст. время")
	assert.Contains(t, body, "Личный сайт")
	assert.Contains(t, body, `href="/cv/api-ru.pdf"`)
	assert.Contains(t, body, `href="https://t.me/vlad"`)
	assert.Contains(t, body, "@vlad")
	assert.Contains(t, body, `href="mailto:vlad@example.com"`)
	assert.Contains(t, body, `href="/en/"`)
}

func TestHome_APIOutageRendersErrorPageWithFallbackContacts(t *testing.T) {
	r := newTestSite(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"detail":"down"}`)
	})

	rec := request(r, "/en/", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="en">`)
	assert.Contains(t, body, "Something went wrong")
	assert.Contains(t, body, `data-source="fallback"`)
	assert.Contains(t, body, `href="mailto:fallback@example.com"`)
	assert.Contains(t, body, `href="https://t.me/fallback"`)
}

func TestProjectsPage(t *testing.T) {
	r := newTestSite(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, fullJSON)
	})

	rec := request(r, "/ru/projects", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ключевые проекты")
	assert.Contains(t, rec.Body.String(), "Личный сайт")
}

func TestLocaleRedirects(t *testing.T) {
	r := newTestSite(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, fullJSON)
	})

	tests := []struct {
		name           string
		path           string
		acceptLanguage string
		want           string
	}{
		{"root defaults to english", "/", "", "/en/"},
		{"root detects russian", "/", "ru-RU,ru;q=0.9", "/ru/"},
		{"unsupported locale", "/de/projects", "", "/en/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := request(r, tt.path, tt.acceptLanguage)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestHealthIsNotRedirected(t *testing.T) {
	r := newTestSite(t, func(http.ResponseWriter, *http.Request) {})

	rec := request(r, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBuildHomeCopy(t *testing.T) {
	contacts := profile.FallbackLinks{
		Email:    "me@example.com",
		Telegram: "https://t.me/me",
	}.Contacts(locale.EN)
	links := config.LinksConfig{CVEN: "/cv/cv-en.pdf", CVRU: "/cv/cv-ru.pdf"}

	home := buildHomeCopy(locale.EN, contacts, links, homeOverrides{})

	assert.Equal(t, "/cv/cv-en.pdf", home.Hero.CVHref)
	assert.Equal(t, "https://t.me/me", home.Hero.ContactHref)
	assert.Equal(t, "Experience", home.Experience.Title)
	want := []Fragment{
		{Kind: FragmentText, Text: "Message me on Telegram "},
		{Kind: FragmentLink, Text: "@me", Href: "https://t.me/me"},
		{Kind: FragmentText, Text: " or send an email to "},
		{Kind: FragmentLink, Text: "me@example.com", Href: "mailto:me@example.com"},
		{Kind: FragmentText, Text: "."},
	}
	if diff := cmp.Diff(want, home.Contact.Description); diff != "" {
		t.Errorf("description mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHomeCopy_Overrides(t *testing.T) {
	contacts := profile.FallbackLinks{Email: "me@example.com"}.Contacts(locale.RU)
	section := profile.ExperienceSection{Title: "Опыт работы", Items: []profile.ExperienceItem{{Company: "Acme"}}}

	home := buildHomeCopy(locale.RU, contacts, config.LinksConfig{CVRU: "/cv/cv-ru.pdf"}, homeOverrides{
		Experience: &section,
		ResumeHref: "/cv/fresh.pdf",
	})

	assert.Equal(t, "/cv/fresh.pdf", home.Hero.CVHref)
	assert.Equal(t, "mailto:me@example.com", home.Hero.ContactHref)
	assert.Equal(t, section, home.Experience)
	assert.Equal(t, []Fragment{
		{Kind: FragmentText, Text: "Пишите на почту "},
		{Kind: FragmentLink, Text: "me@example.com", Href: "mailto:me@example.com"},
		{Kind: FragmentText, Text: "."},
	}, home.Contact.Description)
}

func TestBuildHomeCopy_NoContacts(t *testing.T) {
	home := buildHomeCopy(locale.EN, profile.ContactsResult{}, config.LinksConfig{CVEN: "/cv/cv-en.pdf"}, homeOverrides{})

	assert.Empty(t, home.Hero.ContactHref)
	assert.Nil(t, home.Contact.Description)
}

func TestContactURL(t *testing.T) {
	assert.EqualValues(t, "tel:+100", contactURL("tel:+100"))
	assert.EqualValues(t, "mailto:a@b.c", contactURL("mailto:a@b.c"))
	assert.EqualValues(t, "https://t.me/x", contactURL("https://t.me/x"))
	assert.EqualValues(t, "#", contactURL("javascript:alert(1)"))
}

func TestLocaleSwitcher(t *testing.T) {
	links := localeSwitcher("/ru/projects", locale.RU)

	assert.Equal(t, []localeLink{
		{Code: "en", Href: "/en/projects"},
		{Code: "ru", Href: "/ru/projects", Active: true},
	}, links)
}
