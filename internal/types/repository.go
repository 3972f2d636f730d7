// Package types provides type definitions for structured data used throughout the portfolio.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Repository is a single entry of the public repository listing, either decoded
// from the GitHub API or taken from the curated fallback set.
type Repository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	Language        *string  `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	HTMLURL         string   `json:"html_url"`
	Topics          []string `json:"topics"`
	CreatedAt       string   `json:"created_at"` // ISO 8601
	UpdatedAt       string   `json:"updated_at"` // ISO 8601
}

// DescriptionOr returns the description, or def when the listing has none.
func (r Repository) DescriptionOr(def string) string {
	if r.Description == nil || *r.Description == "" {
		return def
	}
	return *r.Description
}

// LanguageOr returns the primary language, or def when the listing has none.
func (r Repository) LanguageOr(def string) string {
	if r.Language == nil || *r.Language == "" {
		return def
	}
	return *r.Language
}

// HasTopic reports whether the repository is tagged with topic.
func (r Repository) HasTopic(topic string) bool {
	for _, t := range r.Topics {
		if t == topic {
			return true
		}
	}
	return false
}
