// Package projects resolves the list of repositories shown on the portfolio:
// one attempt at the remote listing, and a curated fallback when the listing
// is unusable or too small.
package projects

import (
	"context"
	"log"
	"time"

	"github.com/musantuli/portfolio/internal/types"
)

// MinListed is the smallest remote listing used as-is. Anything shorter is
// treated as a private or empty account and replaced by the fallback set.
const MinListed = 3

// Advisory messages shown when curated data replaces the live listing.
const (
	AdvisoryFetchFailed = "Using custom project data (repositories may be private)"
	AdvisoryTooFew      = "Showing curated project data"
)

// Result is the resolved project list plus how it was obtained.
type Result struct {
	Projects  []types.Repository `json:"projects"`
	Fallback  bool               `json:"fallback"`
	Advisory  string             `json:"advisory,omitempty"`
	Featured  []string           `json:"featured,omitempty"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// Resolve turns one listing attempt into the list to display.
// It never fails: an error or a listing shorter than MinListed yields the
// fallback set with an advisory, anything else is returned unmodified.
func Resolve(repos []types.Repository, err error) Result {
	if err != nil {
		return Result{
			Projects: Fallback(),
			Fallback: true,
			Advisory: AdvisoryFetchFailed,
		}
	}
	if len(repos) < MinListed {
		return Result{
			Projects: Fallback(),
			Fallback: true,
			Advisory: AdvisoryTooFew,
		}
	}
	return Result{Projects: repos}
}

// Find returns the project named name, or nil.
func (r *Result) Find(name string) *types.Repository {
	for i := range r.Projects {
		if r.Projects[i].Name == name {
			return &r.Projects[i]
		}
	}
	return nil
}

// IsFeatured reports whether name is one of the featured repositories.
func (r *Result) IsFeatured(name string) bool {
	for _, f := range r.Featured {
		if f == name {
			return true
		}
	}
	return false
}

// Lister reads a repository listing for an owner.
type Lister interface {
	ListRepositories(ctx context.Context, owner string) ([]types.Repository, error)
}

// Fetcher performs the single listing attempt and resolves it.
type Fetcher struct {
	lister   Lister
	featured []string
	now      func() time.Time
}

// NewFetcher creates a Fetcher reading from lister. featured names the
// repositories to highlight.
func NewFetcher(lister Lister, featured []string) *Fetcher {
	return &Fetcher{
		lister:   lister,
		featured: featured,
		now:      time.Now,
	}
}

// FetchProjects issues exactly one listing request for owner and returns a
// non-empty list. Failures are logged and downgraded to the fallback set.
func (f *Fetcher) FetchProjects(ctx context.Context, owner string) Result {
	repos, err := f.lister.ListRepositories(ctx, owner)
	result := Resolve(repos, err)
	switch {
	case err != nil:
		log.Printf("[projects] listing for %q failed, using fallback: %v", owner, err)
	case result.Fallback:
		log.Printf("[projects] listing for %q has %d repositories, using fallback", owner, len(repos))
	}
	result.Featured = append([]string(nil), f.featured...)
	result.FetchedAt = f.now()
	return result
}
