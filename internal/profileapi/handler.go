// Package profileapi serves the read-only profile endpoints under
// /api/v1/profile.
package profileapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/vladmesh/personal-site/internal/locale"
	"github.com/vladmesh/personal-site/internal/store"
)

// Reader is the store surface the handlers need.
type Reader interface {
	Stacks(ctx context.Context) ([]store.Stack, error)
	Experience(ctx context.Context) ([]store.Experience, error)
	Projects(ctx context.Context) ([]store.Project, error)
	Testimonials(ctx context.Context) ([]store.Testimonial, error)
	VisibleContacts(ctx context.Context) ([]store.Contact, error)
	ActiveResumes(ctx context.Context) ([]store.Resume, error)
	Ping(ctx context.Context) error
}

// Handler serves profile content from a Reader.
type Handler struct {
	reader Reader
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(reader Reader, logger *slog.Logger) *Handler {
	return &Handler{
		reader: reader,
		logger: logger.With(slog.String("component", "profileapi")),
	}
}

// Register mounts the API routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/api/health", func(c *gin.Context) {
		if err := h.reader.Ping(c.Request.Context()); err != nil {
			h.logger.ErrorContext(c.Request.Context(), "health_ping_failed", slog.Any("error", err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	profile := r.Group("/api/v1/profile")
	profile.GET("/experience", listHandler(h, "experience", h.reader.Experience))
	profile.GET("/projects", listHandler(h, "projects", h.reader.Projects))
	profile.GET("/stacks", listHandler(h, "stacks", h.reader.Stacks))
	profile.GET("/testimonials", listHandler(h, "testimonials", h.reader.Testimonials))
	profile.GET("/contacts", listHandler(h, "contacts", h.reader.VisibleContacts))
	profile.GET("/resume", listHandler(h, "resume", h.reader.ActiveResumes))
	profile.GET("/full", h.full)
}

// CORS builds the CORS middleware for the configured origins. An empty list
// allows no cross-origin callers.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Accept", "Content-Type"}
	cfg.MaxAge = 12 * time.Hour
	if len(origins) == 0 {
		cfg.AllowOriginFunc = func(string) bool { return false }
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func listHandler[T any](h *Handler, name string, load func(context.Context) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := load(c.Request.Context())
		if err != nil {
			h.fail(c, name, err)
			return
		}
		writeJSON(c, http.StatusOK, items)
	}
}

// full serves the consolidated payload localized to ?lang (English when
// absent).
func (h *Handler) full(c *gin.Context) {
	l := locale.Default
	if raw, ok := c.GetQuery("lang"); ok {
		parsed, ok := locale.Parse(raw)
		if !ok {
			writeJSON(c, http.StatusBadRequest, gin.H{"detail": "unsupported language: " + strings.TrimSpace(raw)})
			return
		}
		l = parsed
	}

	ctx := c.Request.Context()
	payload, err := h.loadFull(ctx, l)
	if err != nil {
		h.fail(c, "full", err)
		return
	}
	writeJSON(c, http.StatusOK, payload)
}

func (h *Handler) loadFull(ctx context.Context, l locale.Locale) (fullPayload, error) {
	experience, err := h.reader.Experience(ctx)
	if err != nil {
		return fullPayload{}, err
	}
	projects, err := h.reader.Projects(ctx)
	if err != nil {
		return fullPayload{}, err
	}
	stacks, err := h.reader.Stacks(ctx)
	if err != nil {
		return fullPayload{}, err
	}
	testimonials, err := h.reader.Testimonials(ctx)
	if err != nil {
		return fullPayload{}, err
	}
	contacts, err := h.reader.VisibleContacts(ctx)
	if err != nil {
		return fullPayload{}, err
	}
	resumes, err := h.reader.ActiveResumes(ctx)
	if err != nil {
		return fullPayload{}, err
	}

	return fullPayload{
		Experience:   localizeExperience(experience, l),
		Projects:     localizeProjects(projects, l),
		Stacks:       stacks,
		Testimonials: localizeTestimonials(testimonials, l),
		Contacts:     localizeContacts(contacts, l),
		Resumes:      resumes,
	}, nil
}

func (h *Handler) fail(c *gin.Context, endpoint string, err error) {
	h.logger.ErrorContext(c.Request.Context(), "profile_query_failed",
		slog.String("endpoint", endpoint),
		slog.Any("error", err),
	)
	writeJSON(c, http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}

func writeJSON(c *gin.Context, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}
