package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/musantuli/portfolio/internal/content"
	"github.com/musantuli/portfolio/internal/filter"
	"github.com/musantuli/portfolio/internal/theme"
	"github.com/musantuli/portfolio/internal/types"
)

// CertificatesResponse is the response for /api/certificates
type CertificatesResponse struct {
	Category     string              `json:"category"`
	Categories   []filter.Tab        `json:"categories"`
	Certificates []types.Certificate `json:"certificates"`
}

// ThemeRequest is the request and response body for /api/theme
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// handleProfile returns the content record without relay tokens
func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.profile.Public())
}

// handleListProjects returns the resolved project list, optionally narrowed
// to one topic with ?topic=
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	result := s.projects.FetchProjects(r.Context(), s.profile.GitHub.Username)
	if topic := r.URL.Query().Get("topic"); topic != "" {
		result.Projects = filter.ByTopic(result.Projects, topic)
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetProject returns one project of the resolved list
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	result := s.projects.FetchProjects(r.Context(), s.profile.GitHub.Username)

	repo := result.Find(name)
	if repo == nil {
		s.writeError(w, &ErrNotFound{Resource: "project", ID: name})
		return
	}
	s.jsonResponse(w, http.StatusOK, repo)
}

// handleListCertificates returns certificates filtered by ?category=
func (s *Server) handleListCertificates(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = filter.All
	}
	if !content.IsCategory(category) {
		s.writeError(w, &ErrValidation{Field: "category", Message: "unknown category " + strconv.Quote(category)})
		return
	}

	certs := filter.ByCategory(s.profile.Certificates, category, types.CertificateCategory)
	if certs == nil {
		certs = []types.Certificate{}
	}
	s.jsonResponse(w, http.StatusOK, CertificatesResponse{
		Category:     category,
		Categories:   content.CertificateCategories(),
		Certificates: certs,
	})
}

// handleGetCertificate returns one certificate by id
func (s *Server) handleGetCertificate(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "must be an integer"})
		return
	}

	cert := s.profile.Certificate(id)
	if cert == nil {
		s.writeError(w, &ErrNotFound{Resource: "certificate", ID: idStr})
		return
	}
	s.jsonResponse(w, http.StatusOK, cert)
}

// handleContact accepts a JSON or form-encoded submission and returns the
// notification. Validation failures are 400, relay failures 502.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	var req types.ContactRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			s.errorResponse(w, http.StatusBadRequest, "Invalid form body: "+err.Error())
			return
		}
		req = types.ContactRequest{
			Name:    r.FormValue("name"),
			Email:   r.FormValue("email"),
			Message: r.FormValue("message"),
		}
	default:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	n, err := s.contact.Submit(r.Context(), req)
	s.jsonResponse(w, HTTPStatus(err), n)
}

// handleGetTheme returns the theme from the visitor's cookie
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, ThemeRequest{Theme: theme.FromRequest(r).String()})
}

// handleSetTheme stores an explicit theme in the visitor's cookie
func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !theme.Valid(req.Theme) {
		s.writeError(w, &ErrValidation{Field: "theme", Message: `must be "dark" or "light"`})
		return
	}

	t := theme.Theme(req.Theme)
	theme.SetCookie(w, t)
	s.jsonResponse(w, http.StatusOK, ThemeRequest{Theme: t.String()})
}

// handleToggleTheme flips the theme in the visitor's cookie
func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := theme.FromRequest(r).Toggle()
	theme.SetCookie(w, next)
	s.jsonResponse(w, http.StatusOK, ThemeRequest{Theme: next.String()})
}
