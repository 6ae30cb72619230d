package content

import (
	"sort"
	"strings"
)

// Filter returns the items whose title, category or any tag contains query,
// ignoring case. A non-empty category must also match exactly (ignoring case).
// Order is preserved; an empty query and category return every item.
func Filter[T Searchable](items []T, query, category string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if category != "" && !strings.EqualFold(item.SearchCategory(), category) {
			continue
		}
		if query != "" && !matches(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches(item Searchable, query string) bool {
	if strings.Contains(strings.ToLower(item.SearchTitle()), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.SearchCategory()), query) {
		return true
	}
	for _, tag := range item.SearchTags() {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Categories lists the distinct categories of items, sorted.
func Categories[T Searchable](items []T) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		cat := item.SearchCategory()
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Find returns the item with the given key.
func Find[T Searchable](items []T, key string) (T, bool) {
	for _, item := range items {
		if item.Key() == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}
