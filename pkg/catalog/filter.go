package catalog

import "strings"

// DefaultPerPage bounds result pages when the caller does not ask for a
// specific size.
const DefaultPerPage = 20

// Query describes one browse request over the merged catalog. Zero
// values mean "no constraint"; Page is 1-based.
type Query struct {
	Text       string
	Muscle     string
	Equipment  string
	Difficulty Difficulty
	Page       int
	PerPage    int
}

// Page is one window of filtered results plus enough metadata for the
// UI to paginate.
type Page struct {
	Items      []Exercise `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PerPage    int        `json:"perPage"`
	TotalPages int        `json:"totalPages"`
}

// Apply filters, then paginates. Filtering is case-insensitive; the free
// text term matches against name, muscle, equipment and overview. An
// over-range page yields an empty (not nil) item slice.
func Apply(items []Exercise, q Query) Page {
	filtered := Filter(items, q)

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * perPage
	if start >= total {
		return Page{Items: []Exercise{}, Total: total, Page: page, PerPage: perPage, TotalPages: totalPages}
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return Page{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// Filter returns the subset of items matching every constraint in q,
// preserving input order.
func Filter(items []Exercise, q Query) []Exercise {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	muscle := strings.ToLower(strings.TrimSpace(q.Muscle))
	equipment := strings.ToLower(strings.TrimSpace(q.Equipment))

	out := make([]Exercise, 0, len(items))
	for _, ex := range items {
		if muscle != "" && !strings.Contains(strings.ToLower(ex.Muscle), muscle) {
			continue
		}
		if equipment != "" && !matchesEquipment(ex, equipment) {
			continue
		}
		if q.Difficulty != "" && ex.Difficulty != q.Difficulty {
			continue
		}
		if text != "" && !matchesText(ex, text) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func matchesText(ex Exercise, term string) bool {
	for _, field := range []string{ex.Name, ex.Muscle, ex.Equipment, ex.Overview} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesEquipment(ex Exercise, term string) bool {
	if strings.Contains(strings.ToLower(ex.Equipment), term) {
		return true
	}
	for _, eq := range ex.EquipmentList {
		if strings.Contains(strings.ToLower(eq), term) {
			return true
		}
	}
	return false
}

// FindByID locates one exercise in the merged set.
func FindByID(items []Exercise, id string) (Exercise, bool) {
	for _, ex := range items {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}
