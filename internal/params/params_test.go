package params

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantPage  int
		wantOff   int
		wantAsked bool
	}{
		{"absent", "", defaultLimit, 1, 0, false},
		{"page only", "page=3", defaultLimit, 3, 2 * defaultLimit, true},
		{"limit clamped", "limit=1000", maxLimit, 1, 0, true},
		{"bad values", "limit=-4&page=abc", defaultLimit, 1, 0, true},
		{"both", "limit=10&page=2", 10, 2, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			p, asked := ParsePagination(q)

			if asked != tt.wantAsked {
				t.Errorf("asked = %v, want %v", asked, tt.wantAsked)
			}
			if p.Limit != tt.wantLimit || p.Page != tt.wantPage || p.Offset != tt.wantOff {
				t.Errorf("got limit=%d page=%d offset=%d", p.Limit, p.Page, p.Offset)
			}
		})
	}
}

func TestPagination_WindowAndMeta(t *testing.T) {
	p := Pagination{Limit: 10, Page: 3, Offset: 20}

	if start, end := p.Window(25); start != 20 || end != 25 {
		t.Errorf("Window(25) = %d,%d, want 20,25", start, end)
	}
	if start, end := p.Window(5); start != 5 || end != 5 {
		t.Errorf("Window(5) = %d,%d, want 5,5", start, end)
	}

	p.ComputeMeta(25)
	if p.TotalPages != 3 || p.HasNext || !p.HasPrev {
		t.Errorf("unexpected meta %+v", p)
	}
}

func TestDecimal(t *testing.T) {
	q := url.Values{"min": {"1500.50"}, "bad": {"lots"}}

	d, err := Decimal(q, "min")
	if err != nil || d == nil || d.String() != "1500.5" {
		t.Fatalf("Decimal(min) = %v, %v", d, err)
	}

	if d, err := Decimal(q, "missing"); err != nil || d != nil {
		t.Errorf("Decimal(missing) = %v, %v, want nil, nil", d, err)
	}

	if _, err := Decimal(q, "bad"); err == nil {
		t.Error("expected an error for a non-numeric value")
	}
}

func TestUUID(t *testing.T) {
	if _, err := UUID("not-a-uuid", "customer id"); err == nil || err.Error() != "invalid customer id" {
		t.Errorf("UUID() error = %v", err)
	}
	if _, err := UUID("3f2b7c52-9d0e-4c61-8f3f-0f6f1d6b2f11", "id"); err != nil {
		t.Errorf("UUID() unexpected error %v", err)
	}
}

func TestParsePagination_HugePage(t *testing.T) {
	tests := []string{
		"page=92233720368547758&limit=200",
		"page=9223372036854775807&limit=1",
	}

	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			q, _ := url.ParseQuery(query)
			p, _ := ParsePagination(q)

			if p.Offset < 0 {
				t.Fatalf("offset overflowed to %d", p.Offset)
			}

			items := make([]int, 3)
			start, end := p.Window(len(items))
			if got := items[start:end]; len(got) != 0 {
				t.Errorf("expected an empty page, got %v", got)
			}

			p.ComputeMeta(len(items))
			if p.HasNext {
				t.Error("HasNext should be false past the end")
			}
		})
	}
}

func TestPagination_WindowNegativeOffset(t *testing.T) {
	p := Pagination{Limit: 10, Page: 1, Offset: -216}

	if start, end := p.Window(5); start != 0 || end != 5 {
		t.Errorf("Window(5) = %d,%d, want 0,5", start, end)
	}
}
