package model

import (
	"math"
	"testing"
)

func TestItemFilterDone(t *testing.T) {
	if FilterAll.Done() != nil {
		t.Error("FilterAll.Done() should be nil")
	}
	if d := FilterActive.Done(); d == nil || *d {
		t.Errorf("FilterActive.Done() = %v, want false", d)
	}
	if d := FilterCompleted.Done(); d == nil || !*d {
		t.Errorf("FilterCompleted.Done() = %v, want true", d)
	}
}

func TestItemPageNavigation(t *testing.T) {
	tests := []struct {
		name      string
		page      ItemPage
		wantPages int
		wantPrev  bool
		wantNext  bool
	}{
		{name: "empty", page: ItemPage{Page: 1, PerPage: 2, Total: 0}, wantPages: 1},
		{name: "first of three", page: ItemPage{Page: 1, PerPage: 2, Total: 5}, wantPages: 3, wantNext: true},
		{name: "middle", page: ItemPage{Page: 2, PerPage: 2, Total: 5}, wantPages: 3, wantPrev: true, wantNext: true},
		{name: "last partial", page: ItemPage{Page: 3, PerPage: 2, Total: 5}, wantPages: 3, wantPrev: true},
		{name: "exact fit", page: ItemPage{Page: 2, PerPage: 2, Total: 4}, wantPages: 2, wantPrev: true},
		{name: "huge page number", page: ItemPage{Page: math.MaxInt, PerPage: 20, Total: 3}, wantPages: 1, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.Pages(); got != tt.wantPages {
				t.Errorf("Pages() = %d, want %d", got, tt.wantPages)
			}
			if got := tt.page.HasPrev(); got != tt.wantPrev {
				t.Errorf("HasPrev() = %v, want %v", got, tt.wantPrev)
			}
			if got := tt.page.HasNext(); got != tt.wantNext {
				t.Errorf("HasNext() = %v, want %v", got, tt.wantNext)
			}
		})
	}
}
