// Package filter selects items of a list by category tag.
package filter

import "github.com/musantuli/portfolio/internal/types"

// All is the sentinel category that disables filtering.
const All = types.CategoryAll

// ByCategory returns the items whose field equals category, preserving their
// relative order. The All category returns items unchanged.
// No match yields an empty, non-nil slice.
func ByCategory[T any](items []T, category string, field func(T) string) []T {
	if category == All {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if field(item) == category {
			out = append(out, item)
		}
	}
	return out
}

// Tab is one entry of a filter bar.
type Tab struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// ByTab filters by the category of the tab at index. Index 0, or any index
// outside tabs, selects everything.
func ByTab[T any](items []T, tabs []Tab, index int, field func(T) string) []T {
	if index <= 0 || index >= len(tabs) {
		return items
	}
	return ByCategory(items, tabs[index].Value, field)
}

// TabIndex returns the index of the tab whose value is category, or 0.
func TabIndex(tabs []Tab, category string) int {
	for i, tab := range tabs {
		if tab.Value == category {
			return i
		}
	}
	return 0
}

// ByTopic returns the repositories tagged with topic. The All category
// returns repos unchanged.
func ByTopic(repos []types.Repository, topic string) []types.Repository {
	if topic == All {
		return repos
	}
	out := make([]types.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.HasTopic(topic) {
			out = append(out, repo)
		}
	}
	return out
}
