package pagination

import (
	"github.com/cesardraw2/jaxon-core/request"
)

// Page couples a page number with the call expression that requests it.
type Page struct {
	Number int
	Script string
}

// Paginator renders one call expression per page by rewriting the
// page-number slot of a single request, so the parameter list is built
// once and reused across pages.
type Paginator struct {
	ItemsTotal   int
	ItemsPerPage int
	CurrentPage  int
	Request      *request.Request
}

// New returns a paginator over req. The request should carry a
// page-number parameter; without one every page renders the same script.
func New(total, perPage, current int, req *request.Request) *Paginator {
	return &Paginator{
		ItemsTotal:   total,
		ItemsPerPage: perPage,
		CurrentPage:  current,
		Request:      req,
	}
}

// PageCount returns the number of pages, zero when total or per-page is
// not positive.
func (p *Paginator) PageCount() int {
	if p.ItemsTotal <= 0 || p.ItemsPerPage <= 0 {
		return 0
	}
	return (p.ItemsTotal + p.ItemsPerPage - 1) / p.ItemsPerPage
}

// HasPages reports whether there is more than one page to link to.
func (p *Paginator) HasPages() bool {
	return p.PageCount() > 1
}

// Pages renders the call expression for every page in order. The
// request's page-number slot is left bound to the last rendered page.
func (p *Paginator) Pages() []Page {
	count := p.PageCount()
	pages := make([]Page, 0, count)

	for n := 1; n <= count; n++ {
		p.Request.SetPageNumber(n)
		pages = append(pages, Page{Number: n, Script: p.Request.Script()})
	}

	return pages
}
