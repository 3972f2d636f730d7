package server

import (
	"bytes"
	"log"
	"net/http"

	"github.com/musantuli/portfolio/internal/theme"
	"github.com/musantuli/portfolio/internal/types"
	"github.com/musantuli/portfolio/internal/view"
)

// maxFormBytes bounds contact submissions.
const maxFormBytes = 64 << 10

// handlePage renders the full portfolio page
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, theme.FromRequest(r), nil, http.StatusOK)
}

// handleContactForm handles the non-script contact form and re-renders the
// page with the outcome.
func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, theme.FromRequest(r), &types.Notification{
			Type:    types.NotificationError,
			Message: "Invalid form submission",
		}, http.StatusBadRequest)
		return
	}

	n, err := s.contact.Submit(r.Context(), types.ContactRequest{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	})
	s.renderPage(w, r, theme.FromRequest(r), &n, HTTPStatus(err))
}

// handleThemeToggleForm flips the theme cookie and returns to the page.
func (s *Server) handleThemeToggleForm(w http.ResponseWriter, r *http.Request) {
	next := theme.FromRequest(r).Toggle()
	theme.SetCookie(w, next)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleCV sends the visitor to the hosted CV document.
func (s *Server) handleCV(w http.ResponseWriter, r *http.Request) {
	if s.profile.CVURL == "" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, s.profile.CVURL, http.StatusFound)
}

// renderPage fetches projects once and writes the page. Rendering happens
// into a buffer so template errors never produce a half-written page.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, t theme.Theme, n *types.Notification, status int) {
	result := s.projects.FetchProjects(r.Context(), s.profile.GitHub.Username)

	page := view.BuildPage(view.PageInput{
		Profile:      s.profile,
		Projects:     result,
		Theme:        t,
		Category:     r.URL.Query().Get("category"),
		Notification: n,
		Now:          s.now(),
	})

	var buf bytes.Buffer
	if err := view.Render(&buf, page); err != nil {
		log.Printf("Error rendering page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing page: %v", err)
	}
}
