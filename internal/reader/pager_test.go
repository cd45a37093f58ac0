// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package reader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seqIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func TestPager_Slice(t *testing.T) {
	p := NewPager(20)
	p.Reset(seqIDs(45))

	if diff := cmp.Diff(seqIDs(20), p.Slice()); diff != "" {
		t.Errorf("page 0 (-want +got):\n%s", diff)
	}
	p.Page = 2
	if diff := cmp.Diff([]int{41, 42, 43, 44, 45}, p.Slice()); diff != "" {
		t.Errorf("page 2 (-want +got):\n%s", diff)
	}
	p.Page = 3
	if got := p.Slice(); got != nil {
		t.Errorf("page past end = %v, want nil", got)
	}
}

func TestPager_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		page     int
		wantNext bool
		wantPrev bool
	}{
		{"empty", 0, 0, false, false},
		{"single short page", 5, 0, false, false},
		{"exactly one page", 20, 0, false, false},
		{"one over", 21, 0, true, false},
		{"last page", 40, 1, false, true},
		{"middle", 100, 2, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pager{IDs: seqIDs(tt.n), Page: tt.page, PerPage: 20}
			if got := p.HasNext(); got != tt.wantNext {
				t.Errorf("HasNext() = %v, want %v", got, tt.wantNext)
			}
			if got := p.HasPrev(); got != tt.wantPrev {
				t.Errorf("HasPrev() = %v, want %v", got, tt.wantPrev)
			}
		})
	}
}

func TestPager_NextPrev(t *testing.T) {
	p := NewPager(0)
	if p.PerPage != DefaultPerPage {
		t.Fatalf("PerPage = %d, want %d", p.PerPage, DefaultPerPage)
	}
	p.Reset(seqIDs(50))

	if p.Prev() {
		t.Error("Prev() on first page should not move")
	}
	if !p.Next() || !p.Next() {
		t.Fatal("Next() should move twice")
	}
	if p.Next() {
		t.Error("Next() on last page should not move")
	}
	if p.Page != 2 || p.Offset() != 40 {
		t.Errorf("Page = %d, Offset = %d", p.Page, p.Offset())
	}
	if p.Pages() != 3 {
		t.Errorf("Pages() = %d, want 3", p.Pages())
	}

	p.Reset(seqIDs(3))
	if p.Page != 0 {
		t.Errorf("Reset should return to page 0, got %d", p.Page)
	}
}

func TestPager_Goto(t *testing.T) {
	p := &Pager{IDs: seqIDs(30), PerPage: 10}
	p.Goto(7)
	if p.Page != 2 {
		t.Errorf("Goto(7) = %d, want 2", p.Page)
	}
	p.Goto(-1)
	if p.Page != 0 {
		t.Errorf("Goto(-1) = %d, want 0", p.Page)
	}
	empty := &Pager{PerPage: 10}
	if empty.Pages() != 1 {
		t.Errorf("empty Pages() = %d, want 1", empty.Pages())
	}
}
