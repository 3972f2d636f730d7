package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/musantuli/portfolio/internal/contact"
	"github.com/musantuli/portfolio/internal/projects"
	"github.com/musantuli/portfolio/internal/theme"
	"github.com/musantuli/portfolio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleProfile_OmitsRelayTokens(t *testing.T) {
	ts := newTestServer(t)
	ts.profile.EmailJS = types.EmailJS{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pk"}

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"svc"`)
	got := decode[types.Profile](t, w)
	assert.Equal(t, "Musa Ntuli", got.Name)
	assert.Empty(t, got.EmailJS.ServiceID)
	// The stored profile is unchanged.
	assert.Equal(t, "svc", ts.profile.EmailJS.ServiceID)
}

func TestHandleListProjects(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	require.Equal(t, http.StatusOK, w.Code)
	got := decode[projects.Result](t, w)
	assert.True(t, got.Fallback)
	assert.Equal(t, projects.AdvisoryFetchFailed, got.Advisory)
	require.Len(t, got.Projects, 3)
	assert.Equal(t, "ServeSA", got.Projects[0].Name)
}

func TestHandleListProjects_Topic(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/projects?topic=healthcare", nil))
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[projects.Result](t, w)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "PulseCare", got.Projects[0].Name)

	w = ts.do(httptest.NewRequest(http.MethodGet, "/api/projects?topic=rust", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", rawProjects(t, w.Body.Bytes()))
}

func rawProjects(t *testing.T, body []byte) string {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	return string(raw["projects"])
}

func TestHandleGetProject(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/projects/PulseCare", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PulseCare", decode[types.Repository](t, w).Name)

	w = ts.do(httptest.NewRequest(http.MethodGet, "/api/projects/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "project not found")
}

func TestHandleListCertificates(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantIDs    []int
		wantCat    string
	}{
		{name: "no filter", query: "", wantStatus: http.StatusOK, wantIDs: []int{1, 2}, wantCat: types.CategoryAll},
		{name: "all", query: "?category=all", wantStatus: http.StatusOK, wantIDs: []int{1, 2}, wantCat: types.CategoryAll},
		{name: "cloud", query: "?category=Cloud", wantStatus: http.StatusOK, wantIDs: []int{2}, wantCat: types.CategoryCloud},
		{name: "empty category", query: "?category=DevOps", wantStatus: http.StatusOK, wantIDs: []int{}, wantCat: types.CategoryDevOps},
		{name: "unknown", query: "?category=cloud", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			w := ts.do(httptest.NewRequest(http.MethodGet, "/api/certificates"+tt.query, nil))
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			got := decode[CertificatesResponse](t, w)
			assert.Equal(t, tt.wantCat, got.Category)
			assert.Len(t, got.Categories, 5)
			ids := []int{}
			for _, c := range got.Certificates {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestHandleListCertificates_EmptyIsArray(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/certificates?category=Management", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"certificates":[]`)
}

func TestHandleGetCertificate(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/certificates/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[types.Certificate](t, w)
	assert.Equal(t, "CERT-2024-001", got.CredentialID)

	w = ts.do(httptest.NewRequest(http.MethodGet, "/api/certificates/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(httptest.NewRequest(http.MethodGet, "/api/certificates/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleContact_JSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		relayErr   error
		wantStatus int
		wantType   string
		wantMsg    string
	}{
		{
			name:       "success",
			body:       `{"name":"Thandi","email":"t@example.com","message":"Hello"}`,
			wantStatus: http.StatusOK,
			wantType:   types.NotificationSuccess,
			wantMsg:    contact.MessageSent,
		},
		{
			name:       "invalid email",
			body:       `{"name":"Thandi","email":"t@example","message":"Hello"}`,
			wantStatus: http.StatusBadRequest,
			wantType:   types.NotificationError,
			wantMsg:    contact.MessageInvalidEmail,
		},
		{
			name:       "relay not configured",
			body:       `{"name":"Thandi","email":"t@example.com","message":"Hello"}`,
			relayErr:   contact.ErrRelayNotConfigured,
			wantStatus: http.StatusBadGateway,
			wantType:   types.NotificationError,
			wantMsg:    contact.MessageSendFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.relay.err = tt.relayErr

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := ts.do(req)

			require.Equal(t, tt.wantStatus, w.Code)
			got := decode[types.Notification](t, w)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestHandleContact_Form(t *testing.T) {
	ts := newTestServer(t)

	form := url.Values{"name": {"Thandi"}, "email": {"t@example.com"}, "message": {"Hello"}}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := ts.do(req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ts.relay.sent, 1)
	assert.Equal(t, "Musa Ntuli", ts.relay.sent[0].ToName)
}

func TestHandleContact_BadJSON(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ts.relay.sent)
}

func TestThemeAPI(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/theme", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dark", decode[ThemeRequest](t, w).Theme)

	w = ts.do(httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"theme":"light"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "light", cookies[0].Value)

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.AddCookie(cookies[0])
	w = ts.do(req)
	assert.Equal(t, "light", decode[ThemeRequest](t, w).Theme)

	req = httptest.NewRequest(http.MethodPost, "/api/theme/toggle", nil)
	req.AddCookie(cookies[0])
	w = ts.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dark", decode[ThemeRequest](t, w).Theme)

	w = ts.do(httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"theme":"blue"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestThemeAPI_CorruptCookieReadsDark(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.AddCookie(&http.Cookie{Name: theme.Key, Value: "neon"})
	w := ts.do(req)

	assert.Equal(t, "dark", decode[ThemeRequest](t, w).Theme)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "not found", err: &ErrNotFound{Resource: "project", ID: "x"}, want: http.StatusNotFound},
		{name: "validation", err: &ErrValidation{Field: "id"}, want: http.StatusBadRequest},
		{name: "contact validation", err: &contact.ValidationError{Field: "email"}, want: http.StatusBadRequest},
		{name: "send error", err: &contact.SendError{StatusCode: 500}, want: http.StatusBadGateway},
		{name: "not configured", err: contact.ErrRelayNotConfigured, want: http.StatusBadGateway},
		{name: "wrapped not found", err: errors.Join(errors.New("ctx"), &ErrNotFound{}), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
