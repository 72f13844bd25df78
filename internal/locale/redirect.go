package locale

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RedirectOptions configures the locale redirect middleware.
type RedirectOptions struct {
	// ExemptPrefixes bypass locale checks entirely (static assets, CV files).
	ExemptPrefixes []string
	// DetectFromHeader chooses the root redirect target from Accept-Language.
	DetectFromHeader bool
}

// DefaultExemptPrefixes are the non-page paths served by the site.
var DefaultExemptPrefixes = []string{
	"/cv/",
	"/static/",
	"/images/",
	"/favicon",
	"/robots.txt",
	"/health",
	"/metrics",
}

// Resolve decides whether a request for path needs a redirect and where to.
func Resolve(path, acceptLanguage string, opts RedirectOptions) (string, bool) {
	for _, prefix := range opts.ExemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return "", false
		}
	}

	if path == "" || path == "/" {
		if opts.DetectFromHeader {
			return Detect(acceptLanguage).Root(), true
		}
		return Default.Root(), true
	}

	segment := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(segment, '/'); i >= 0 {
		segment = segment[:i]
	}
	if segment == "" {
		return "", false
	}
	// Segments are matched exactly; "/EN/" is not a supported prefix.
	for _, l := range supported {
		if string(l) == segment {
			return "", false
		}
	}
	return Default.Root(), true
}

// Redirect returns middleware that issues a 302 to the default locale for
// missing or unsupported locale prefixes and passes everything else through.
func Redirect(opts RedirectOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		target, ok := Resolve(c.Request.URL.Path, c.GetHeader("Accept-Language"), opts)
		if !ok {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}
