package iri

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple http IRI", input: "http://example.org/resource", wantErr: false},
		{name: "scheme only", input: "tag:", wantErr: false},
		{name: "opaque path", input: "tag:a-b", wantErr: false},
		{name: "unicode path segment", input: "http://example.org/résumé", wantErr: false},
		{name: "relative reference rejected", input: "/a/b", wantErr: true},
		{name: "empty input rejected", input: "", wantErr: true},
		{name: "invalid character rejected", input: "http://example.org/a<b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty reference", input: "", wantErr: false},
		{name: "fragment only", input: "#frag", wantErr: false},
		{name: "relative path", input: "../g", wantErr: false},
		{name: "network path", input: "//example.org/a", wantErr: false},
		{name: "invalid percent encoding", input: "%zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRef(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRef(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestRefComponents(t *testing.T) {
	r, err := ParseRef("http://user@example.org:8080/path/to/r?q=1#frag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := r.Scheme(); !ok || got != "http" {
		t.Errorf("Scheme() = %q, %v, want %q, true", got, ok, "http")
	}
	if got, ok := r.Authority(); !ok || got != "user@example.org:8080" {
		t.Errorf("Authority() = %q, %v, want %q, true", got, ok, "user@example.org:8080")
	}
	if got := r.Path(); got != "/path/to/r" {
		t.Errorf("Path() = %q, want %q", got, "/path/to/r")
	}
	if got, ok := r.Query(); !ok || got != "q=1" {
		t.Errorf("Query() = %q, %v, want %q, true", got, ok, "q=1")
	}
	if got, ok := r.Fragment(); !ok || got != "frag" {
		t.Errorf("Fragment() = %q, %v, want %q, true", got, ok, "frag")
	}
	if !r.IsAbsolute() {
		t.Errorf("IsAbsolute() = false, want true")
	}
	if got := r.String(); got != "http://user@example.org:8080/path/to/r?q=1#frag" {
		t.Errorf("String() = %q", got)
	}
}

func TestRefComponents_Absent(t *testing.T) {
	r, err := ParseRef("a/b/c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := r.Scheme(); ok {
		t.Errorf("Scheme() ok = true, want false")
	}
	if _, ok := r.Authority(); ok {
		t.Errorf("Authority() ok = true, want false")
	}
	if _, ok := r.Query(); ok {
		t.Errorf("Query() ok = true, want false")
	}
	if _, ok := r.Fragment(); ok {
		t.Errorf("Fragment() ok = true, want false")
	}
	if r.IsAbsolute() {
		t.Errorf("IsAbsolute() = true, want false")
	}
}

func TestAsIri(t *testing.T) {
	abs, err := ParseRef("http://example.org/a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := abs.AsIri(); !ok {
		t.Errorf("AsIri() ok = false, want true")
	}

	rel, err := ParseRef("/a/b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rel.AsIri(); ok {
		t.Errorf("AsIri() ok = true, want false")
	}
}

func TestParseUnchecked(t *testing.T) {
	i := ParseUnchecked("http://example.org/a?b#c")
	if got, want := i.Scheme(), "http"; got != want {
		t.Errorf("Scheme() = %q, want %q", got, want)
	}
	if got, want := i.Path(), "/a"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestCode(t *testing.T) {
	_, err := Parse("123:abc")
	if got, want := Code(err), ErrSchemeRequired; got != want {
		t.Errorf("Code(err) = %q, want %q", got, want)
	}
	if got := Code(nil); got != "" {
		t.Errorf("Code(nil) = %q, want empty", got)
	}
}
