package model

import "testing"

func strPtr(s string) *string { return &s }

func TestLineTextOrEmpty(t *testing.T) {
	tests := []struct {
		name string
		text *string
		want string
	}{
		{"nil text", nil, ""},
		{"empty text", strPtr(""), ""},
		{"real text", strPtr("hello"), "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Line{Text: tt.text}
			if got := l.TextOrEmpty(); got != tt.want {
				t.Errorf("TextOrEmpty() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegionHasText(t *testing.T) {
	r := Region{}
	if r.HasText() {
		t.Error("region without annotation should have no text")
	}

	r.FullText = strPtr("")
	if r.HasText() {
		t.Error("region annotated as blank should have no text")
	}

	r.FullText = strPtr("x")
	if !r.HasText() {
		t.Error("annotated region should have text")
	}
}

func TestPageText(t *testing.T) {
	page := Page{
		Regions: []Region{
			{ID: "r1", FullText: strPtr("first")},
			{ID: "r2"}, // no annotation, contributes nothing
			{ID: "r3", FullText: strPtr("third")},
		},
	}

	if got, want := page.Text(), "first\nthird"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestPageTextEmpty(t *testing.T) {
	if got := (Page{}).Text(); got != "" {
		t.Errorf("Text() on empty page = %q, want empty", got)
	}
}

func TestPageLineCount(t *testing.T) {
	page := Page{
		Regions: []Region{
			{Lines: []Line{{ID: "l1"}, {ID: "l2"}}},
			{},
			{Lines: []Line{{ID: "l3"}}},
		},
	}
	if got := page.LineCount(); got != 3 {
		t.Errorf("LineCount() = %d, want 3", got)
	}
}

func TestPolygonClone(t *testing.T) {
	p := Polygon{{1, 2}, {3, 4}}
	c := p.Clone()
	c[0].X = 99
	if p[0].X != 1 {
		t.Error("Clone should not share backing storage")
	}

	if Polygon(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
