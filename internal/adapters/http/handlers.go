package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"experiencebuddy/internal/adapters/http/middleware"
	experienceStore "experiencebuddy/internal/adapters/storage/experience"
	domain "experiencebuddy/internal/domain/experience"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// Placeholder identity used when no one is signed in. Browsing and acting on
// listings never requires an account.
const (
	placeholderCreatorID    = "mockUser123"
	placeholderCreatorName  = "Current User"
	placeholderInterestUser = "mockUserInterest456"
)

// actingUser resolves the identity a request acts under: the session account
// when signed in, the placeholder otherwise.
func actingUser(r *http.Request, fallbackID, fallbackName string) (string, string) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		return sess.AccountID, sess.Name
	}
	return fallbackID, fallbackName
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// TemplatesDir locates the HTML templates. Browser tests run from a
// different working directory and point this at the real location.
var TemplatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	name := ""
	email := ""
	if ok {
		name = sess.Name
		email = sess.Email
	}

	funcMap := template.FuncMap{
		"currentName":  func() string { return name },
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return email != "" },
		"csrfToken":    func() string { return csrf.Token(r) },
		"categories":   func() []string { return domain.ValidCategories },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"shortDate": func(t time.Time) string { return t.Format("Mon, 2 Jan 2006") },
		"fieldError": func(fe domain.FieldErrors, field string) string {
			return fe.First(field)
		},
	}

	layoutPath := filepath.Join(TemplatesDir, "layout.html")
	pagePath := filepath.Join(TemplatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleHome renders the landing page with the three most recent experiences.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !isHTMLRequest(r) {
		http.Redirect(w, r, "/experiences", http.StatusSeeOther)
		return
	}

	list, err := stores.ExperienceStore.List(r.Context(), experienceStore.Filter{})
	if err != nil {
		internalError(w, err)
		return
	}
	if len(list) > 3 {
		list = list[:3]
	}
	renderTemplate(w, r, "home.html", map[string]any{
		"Featured": list,
	})
}
