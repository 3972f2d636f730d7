package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/musantuli/portfolio/internal/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listing = `[
  {"id": 11, "name": "alpha", "description": "first", "language": "Go",
   "stargazers_count": 4, "forks_count": 1, "html_url": "https://github.com/u/alpha",
   "topics": ["go", "cli"], "created_at": "2024-01-01T00:00:00Z", "updated_at": "2024-02-01T00:00:00Z"},
  {"id": 12, "name": "beta", "description": null, "language": null,
   "stargazers_count": 0, "forks_count": 0, "html_url": "https://github.com/u/beta",
   "topics": null, "created_at": "2023-01-01T00:00:00Z", "updated_at": "2023-06-01T00:00:00Z"}
]`

func TestListRepositories_Success(t *testing.T) {
	var gotPath, gotQuery, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listing))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	repos, err := client.ListRepositories(context.Background(), "Musa-Ntuli012")
	require.NoError(t, err)

	assert.Equal(t, "/users/Musa-Ntuli012/repos", gotPath)
	assert.Equal(t, "per_page=12&sort=updated", gotQuery)
	assert.Equal(t, "application/vnd.github+json", gotAccept)

	require.Len(t, repos, 2)
	assert.Equal(t, int64(11), repos[0].ID)
	assert.Equal(t, "alpha", repos[0].Name)
	require.NotNil(t, repos[0].Language)
	assert.Equal(t, "Go", *repos[0].Language)
	assert.Equal(t, []string{"go", "cli"}, repos[0].Topics)
	assert.Equal(t, 4, repos[0].StargazersCount)

	assert.Nil(t, repos[1].Description)
	assert.Nil(t, repos[1].Language)
	assert.Nil(t, repos[1].Topics)
}

func TestListRepositories_EmptyOwner(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil)
	_, err := client.ListRepositories(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyOwner)
}

func TestListRepositories_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, nil).ListRepositories(context.Background(), "ghost")
	require.Error(t, err)

	var fetchErr *fetch.Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestListRepositories_NotAList(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object", `{"message":"oops"}`},
		{"null", `null`},
		{"garbage", `<html>`},
		{"truncated list", `[{"id": 1,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL, nil).ListRepositories(context.Background(), "u")
			require.Error(t, err)

			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr))
		})
	}
}

func TestListURL_EscapesOwner(t *testing.T) {
	client := NewClient("https://api.github.com/", nil)
	assert.Equal(t,
		"https://api.github.com/users/a%2Fb/repos?per_page=12&sort=updated",
		client.ListURL("a/b"))
}
