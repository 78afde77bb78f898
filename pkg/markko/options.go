package markko

import (
	"net/url"
	"strconv"
)

// ListOptions are the collection query parameters shared by most list
// endpoints: pagination, sorting, and relationship eager-loading.
type ListOptions struct {
	// Page selects the result page, starting at 1.
	Page int
	// Paginate sets the page size. Zero lets the server decide.
	Paginate int
	// Sort is a "column,direction" pair, e.g. "created_at,desc".
	Sort string
	// With eager-loads relationships, comma-separated.
	With string
	// Search filters by the server-side search term.
	Search string
}

func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.Paginate > 0 {
		v.Set("paginate", strconv.Itoa(o.Paginate))
	}
	if o.Sort != "" {
		v.Set("sort", o.Sort)
	}
	if o.With != "" {
		v.Set("with", o.With)
	}
	if o.Search != "" {
		v.Set("search", o.Search)
	}
	return v
}

// GetOptions are the query parameters for single-resource endpoints.
type GetOptions struct {
	// With eager-loads relationships, comma-separated.
	With string
}

func (o GetOptions) values() url.Values {
	v := url.Values{}
	if o.With != "" {
		v.Set("with", o.With)
	}
	return v
}
