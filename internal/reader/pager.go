// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package reader

// DefaultPerPage is the number of stories shown per page.
const DefaultPerPage = 20

// Pager slices a listing of story ids into pages.
type Pager struct {
	IDs     []int
	Page    int
	PerPage int
}

// NewPager creates an empty pager. A non-positive perPage selects
// DefaultPerPage.
func NewPager(perPage int) *Pager {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &Pager{PerPage: perPage}
}

func (p *Pager) size() int {
	if p.PerPage <= 0 {
		return DefaultPerPage
	}
	return p.PerPage
}

// Offset is the index of the first story of the current page. List
// numbering is Offset()+i+1.
func (p *Pager) Offset() int {
	return p.Page * p.size()
}

// Slice returns the ids of the current page.
func (p *Pager) Slice() []int {
	start := p.Offset()
	if start >= len(p.IDs) {
		return nil
	}
	end := min(start+p.size(), len(p.IDs))
	return p.IDs[start:end]
}

// HasNext reports whether a page follows the current one.
func (p *Pager) HasNext() bool {
	return (p.Page+1)*p.size() < len(p.IDs)
}

// HasPrev reports whether the current page is not the first.
func (p *Pager) HasPrev() bool {
	return p.Page > 0
}

// Next advances one page if possible.
func (p *Pager) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.Page++
	return true
}

// Prev goes back one page if possible.
func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.Page--
	return true
}

// Goto jumps to a zero-based page, clamped to the valid range.
func (p *Pager) Goto(page int) {
	last := p.Pages() - 1
	p.Page = max(0, min(page, last))
}

// Reset replaces the listing and returns to the first page.
func (p *Pager) Reset(ids []int) {
	p.IDs = ids
	p.Page = 0
}

// Pages is the number of pages, at least 1.
func (p *Pager) Pages() int {
	n := (len(p.IDs) + p.size() - 1) / p.size()
	return max(n, 1)
}
