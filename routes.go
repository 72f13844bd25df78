package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vladmesh/personal-site/internal/apiclient"
	"github.com/vladmesh/personal-site/internal/config"
	"github.com/vladmesh/personal-site/internal/locale"
	"github.com/vladmesh/personal-site/internal/metrics"
	"github.com/vladmesh/personal-site/internal/profile"
)

type pages struct {
	profiles *profile.Service
	links    config.LinksConfig
	logger   *slog.Logger
}

func setupRoutes(r *gin.Engine, cfg config.SiteConfig, p *pages) {
	r.Use(locale.Redirect(locale.RedirectOptions{
		ExemptPrefixes:   locale.DefaultExemptPrefixes,
		DetectFromHeader: cfg.LocaleDetect,
	}))
	r.Use(visitCounter())

	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)
	r.Static("/cv", cfg.CVDir)

	r.GET("/:lang/", p.home)
	r.GET("/:lang/projects", p.projects)
}

func (p *pages) home(c *gin.Context) {
	l := locale.ParseOrDefault(c.Param("lang"))
	data, err := p.profiles.FetchProfile(c.Request.Context(), l)
	if err != nil {
		p.renderError(c, l, "home", err)
		return
	}

	contacts := data.Contacts
	if len(contacts.Items) == 0 {
		contacts = p.profiles.FallbackContacts(l)
	}
	home := buildHomeCopy(l, contacts, p.links, homeOverrides{
		Experience: &data.Experience,
		ResumeHref: data.Resumes[l],
	})

	metrics.PageRendered("home", l.String(), "ok")
	c.HTML(http.StatusOK, "home.html", p.pageData(c, l, gin.H{
		"title":    uiFor(l).Brand,
		"home":     home,
		"profile":  data,
		"contacts": contacts,
		"featured": featuredProjects(data.Projects, 3),
	}))
}

func (p *pages) projects(c *gin.Context) {
	l := locale.ParseOrDefault(c.Param("lang"))
	data, err := p.profiles.FetchProfile(c.Request.Context(), l)
	if err != nil {
		p.renderError(c, l, "projects", err)
		return
	}

	ui := uiFor(l)
	metrics.PageRendered("projects", l.String(), "ok")
	c.HTML(http.StatusOK, "projects.html", p.pageData(c, l, gin.H{
		"title":       ui.ProjectsPage.MetaTitle,
		"description": ui.ProjectsPage.MetaDescription,
		"projects":    data.Projects,
	}))
}

// renderError serves the failure page with the contacts that are still
// reachable, from the API when it answers, else the configured fallback.
func (p *pages) renderError(c *gin.Context, l locale.Locale, page string, err error) {
	ctx := c.Request.Context()
	p.logger.ErrorContext(ctx, "profile_fetch_failed",
		slog.String("page", page),
		slog.String("locale", l.String()),
		slog.Int("status", apiclient.StatusCode(err)),
		slog.Bool("timeout", apiclient.IsTimeout(err)),
		slog.Any("error", err),
	)
	metrics.PageRendered(page, l.String(), "error")

	c.HTML(http.StatusBadGateway, "error.html", p.pageData(c, l, gin.H{
		"title":    uiFor(l).ErrorPage.Title,
		"contacts": p.profiles.FetchContacts(ctx, l),
	}))
}

// pageData adds the values every layout needs.
func (p *pages) pageData(c *gin.Context, l locale.Locale, data gin.H) gin.H {
	tag := l.Tag().String()
	c.Header("Content-Language", tag)
	data["htmlLang"] = tag
	data["lang"] = l.String()
	data["locale"] = l
	data["ui"] = uiFor(l)
	data["switcher"] = localeSwitcher(c.Request.URL.Path, l)
	data["sourceURL"] = p.links.GitHubRepo
	return data
}

type localeLink struct {
	Code   string
	Href   string
	Active bool
}

// localeSwitcher links the current page in every supported locale.
func localeSwitcher(path string, current locale.Locale) []localeLink {
	rest := strings.TrimPrefix(path, "/"+current.String())
	if rest == "" {
		rest = "/"
	}
	out := make([]localeLink, 0, len(locale.Supported()))
	for _, l := range locale.Supported() {
		out = append(out, localeLink{
			Code:   l.String(),
			Href:   "/" + l.String() + rest,
			Active: l == current,
		})
	}
	return out
}

func featuredProjects(projects []profile.Project, n int) []profile.Project {
	if len(projects) <= n {
		return projects
	}
	return projects[:n]
}

var contactSchemes = []string{"mailto:", "tel:", "https://", "http://"}

// contactURL marks contact hrefs with a known scheme as safe so tel: links
// survive template escaping. Anything else renders as "#".
func contactURL(href string) template.URL {
	lower := strings.ToLower(href)
	for _, scheme := range contactSchemes {
		if strings.HasPrefix(lower, scheme) {
			return template.URL(href)
		}
	}
	return "#"
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{"contactURL": contactURL}
}
