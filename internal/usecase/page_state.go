package usecase

import "eventify/internal/domain/entity"

// PageState tracks the view state of one listing. Changing the search
// text or the category filter resets the current page to 1; a background
// refresh of the underlying data leaves the page untouched, so a live
// update never yanks the reader back to the first page.
type PageState struct {
	query PageQuery
}

// NewPageState creates a neutral state: no search, the All category and
// the first page.
func NewPageState() PageState {
	return PageState{query: PageQuery{Category: entity.CategoryAll, Page: 1}}
}

// Query returns the current settled query.
func (s *PageState) Query() PageQuery {
	return s.query
}

// SetSearch updates the search text, resetting to the first page when
// the text actually changes.
func (s *PageState) SetSearch(search string) {
	if s.query.Search == search {
		return
	}
	s.query.Search = search
	s.query.Page = 1
}

// SetCategory updates the category filter, resetting to the first page
// when the filter actually changes.
func (s *PageState) SetCategory(category entity.Category) {
	if s.query.Category == category {
		return
	}
	s.query.Category = category
	s.query.Page = 1
}

// SetPage moves to the requested page. Clamping against the filtered
// collection happens when the page is derived.
func (s *PageState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.query.Page = page
}
