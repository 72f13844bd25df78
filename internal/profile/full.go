package profile

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vladmesh/personal-site/internal/apiclient"
	"github.com/vladmesh/personal-site/internal/locale"
)

var lineBreakPattern = regexp.MustCompile(`\r?\n`)

var experienceTitles = map[locale.Locale]string{
	locale.EN: "Experience",
	locale.RU: "Опыт работы",
}

var presentMarkers = map[locale.Locale]string{
	locale.EN: "Present",
	locale.RU: "по наст. время",
}

var projectLinkLabels = map[locale.Locale]struct{ demo, source string }{
	locale.EN: {demo: "Demo", source: "Source"},
	locale.RU: {demo: "Демо", source: "Исходники"},
}

// FetchProfile loads the consolidated profile for l and shapes it into view
// models. Errors are returned as-is; there is no fallback for the aggregate.
func (s *Service) FetchProfile(ctx context.Context, l locale.Locale) (ProfileData, error) {
	path := fullEndpoint + "?lang=" + url.QueryEscape(l.String())
	payload, err := apiclient.FetchJSON[FullResponse](ctx, s.client, path)
	if err != nil {
		return ProfileData{}, fmt.Errorf("fetch profile %s: %w", l, err)
	}
	return BuildProfile(payload, l), nil
}

// BuildProfile reshapes a full payload into view models for l.
func BuildProfile(payload FullResponse, l locale.Locale) ProfileData {
	return ProfileData{
		Experience:   buildExperienceSection(payload.Experience, l),
		Projects:     buildProjects(payload.Projects, l),
		Skills:       BuildSkills(payload.Stacks),
		Testimonials: buildTestimonials(payload.Testimonials),
		Contacts:     buildContacts(payload.Contacts),
		Resumes:      buildResumeMap(payload.Resumes),
	}
}

func buildExperienceSection(entries []APIWorkExperience, l locale.Locale) ExperienceSection {
	items := make([]ExperienceItem, 0, len(entries))
	for _, e := range entries {
		to := formatYear(derefString(e.EndDate))
		if e.IsCurrent {
			to = localized(presentMarkers, l)
		}
		items = append(items, ExperienceItem{
			Company:     e.CompanyName,
			Title:       e.Position,
			Description: splitLines(e.Description),
			From:        formatYear(e.StartDate),
			To:          to,
			Location:    derefString(e.Location),
		})
	}

	title := localized(experienceTitles, l)
	return ExperienceSection{Title: title, Summary: title, Items: items}
}

func buildProjects(entries []APIProject, l locale.Locale) []Project {
	labels, ok := projectLinkLabels[l]
	if !ok {
		labels = projectLinkLabels[locale.Default]
	}

	projects := make([]Project, 0, len(entries))
	for _, e := range entries {
		lines := splitLines(e.Description)
		var summary string
		if len(lines) > 0 {
			summary = lines[0]
		}

		links := make([]ProjectLink, 0, 2)
		if link := derefString(e.Link); link != "" {
			links = append(links, ProjectLink{Href: link, Label: labels.demo})
		}
		if repo := derefString(e.RepoLink); repo != "" {
			links = append(links, ProjectLink{Href: repo, Label: labels.source})
		}

		stack := make([]string, 0, len(e.Stacks))
		for _, st := range e.Stacks {
			stack = append(stack, st.Name)
		}

		projects = append(projects, Project{
			Slug:        e.Slug,
			Title:       e.Title,
			Year:        formatYear(e.StartDate),
			Role:        derefString(e.Role),
			Summary:     summary,
			Description: lines,
			Stack:       stack,
			Links:       links,
		})
	}
	return projects
}

func buildTestimonials(entries []APITestimonial) []Testimonial {
	out := make([]Testimonial, 0, len(entries))
	for _, e := range entries {
		kind := KindDev
		if derefString(e.Kind) == string(KindTeacher) {
			kind = KindTeacher
		}
		out = append(out, Testimonial{
			Kind:   kind,
			Quote:  LocalizedText{EN: e.Content, RU: e.Content},
			Author: e.AuthorName,
			Role:   derefString(e.AuthorPosition),
			URL:    derefString(e.AuthorURL),
		})
	}
	return out
}

// buildContacts normalizes contacts already localized by the server. There
// is no fallback here: an empty list stays empty.
func buildContacts(contacts []APIContact) ContactsResult {
	items := make([]ContactLink, 0, len(contacts))
	for _, c := range contacts {
		href, ok := BuildHref(c.Type, c.Value)
		if !ok {
			continue
		}
		label := derefString(c.Label)
		if label == "" {
			label = PrettifyType(c.Type)
		}
		items = append(items, ContactLink{
			Type:      c.Type,
			Label:     label,
			Href:      href,
			Icon:      derefString(c.Icon),
			SortOrder: c.SortOrder,
			IsVisible: true,
			Value:     c.Value,
			Display:   FormatDisplay(c.Type, c.Value, href),
		})
	}
	return newContactsResult(items, SourceAPI)
}

func buildResumeMap(resumes []APIResume) map[locale.Locale]string {
	out := make(map[locale.Locale]string, len(resumes))
	for _, r := range resumes {
		l, ok := locale.Parse(r.LanguageCode)
		if !ok || string(l) != r.LanguageCode {
			continue
		}
		out[l] = r.FilePath
	}
	return out
}

func splitLines(value string) []string {
	parts := lineBreakPattern.Split(value, -1)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"2006-01",
}

// formatYear renders the year of an ISO-ish date; anything unparsable is "".
func formatYear(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return strconv.Itoa(t.Year())
		}
	}
	if len(value) == 4 {
		if y, err := strconv.Atoi(value); err == nil && y > 0 {
			return value
		}
	}
	return ""
}

func localized(table map[locale.Locale]string, l locale.Locale) string {
	if v, ok := table[l]; ok {
		return v
	}
	return table[locale.Default]
}
