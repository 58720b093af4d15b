package catalog

import "strings"

// Page describes one page of a paginated list.
type Page struct {
	Number int // 1-based, clamped to [1, Total]
	Total  int // number of pages, at least 1
	Start  int // first index, inclusive
	End    int // last index, exclusive
}

// Paginate computes the bounds of page for n items split perPage at a
// time. Out-of-range pages are clamped. perPage < 1 puts everything on one
// page.
func Paginate(n, page, perPage int) Page {
	if n < 0 {
		n = 0
	}
	if perPage < 1 {
		perPage = n
		if perPage == 0 {
			perPage = 1
		}
	}

	total := (n + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > n {
		end = n
	}
	return Page{Number: page, Total: total, Start: start, End: end}
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool {
	return p.Number < p.Total
}

// HasPrev reports whether an earlier page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// FilterLTS keeps only LTS releases.
func FilterLTS(entries []Entry) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.LTS != "" {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Filter keeps entries whose version contains substr.
func Filter(entries []Entry, substr string) []Entry {
	if substr == "" {
		return entries
	}
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(e.Version, substr) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
