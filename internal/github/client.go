// Package github reads the public repository listing of a user.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/musantuli/portfolio/internal/fetch"
	"github.com/musantuli/portfolio/internal/types"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

// PageSize caps the number of repositories requested.
const PageSize = 12

// ErrEmptyOwner is returned when no owner identity is configured.
var ErrEmptyOwner = errors.New("github: owner is empty")

// DecodeError indicates the listing body was not a JSON list of repositories.
type DecodeError struct {
	Owner string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("github: decoding repository list for %s: %v", e.Owner, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Client lists repositories through the REST API.
type Client struct {
	BaseURL string
	Options *fetch.Options
}

// NewClient creates a client for baseURL. An empty baseURL uses DefaultBaseURL.
// A nil httpClient uses a fresh client with the platform default timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts := fetch.DefaultOptions()
	opts.Client = httpClient
	opts.Headers = map[string]string{
		"Accept":               "application/vnd.github+json",
		"X-GitHub-Api-Version": "2022-11-28",
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Options: opts,
	}
}

// ListURL builds the listing URL for owner: newest-updated first, PageSize items.
func (c *Client) ListURL(owner string) string {
	q := url.Values{}
	q.Set("sort", "updated")
	q.Set("per_page", fmt.Sprintf("%d", PageSize))
	return fmt.Sprintf("%s/users/%s/repos?%s", c.BaseURL, url.PathEscape(owner), q.Encode())
}

// ListRepositories issues one request for owner's public repositories.
func (c *Client) ListRepositories(ctx context.Context, owner string) ([]types.Repository, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrEmptyOwner
	}

	result, err := fetch.URL(ctx, c.ListURL(owner), c.Options)
	if err != nil {
		return nil, err
	}

	// A JSON null or an object (error payload) is not a list.
	trimmed := strings.TrimSpace(string(result.Body))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, &DecodeError{Owner: owner, Cause: errors.New("response body is not a JSON array")}
	}

	var repos []types.Repository
	if err := json.Unmarshal(result.Body, &repos); err != nil {
		return nil, &DecodeError{Owner: owner, Cause: err}
	}
	return repos, nil
}
