package iri

import (
	"github.com/geoknoesis/iri-go/internal/iriparse"
)

// Ref is a parsed IRI reference: either an absolute IRI (with a scheme)
// or a relative reference (network-path, absolute-path, relative-path,
// or same-document). The zero Ref is not meaningful; construct one with
// ParseRef or ParseUncheckedRef.
type Ref struct {
	s   string
	pos iriparse.Positions
}

// ParseRef parses s against the IRI-reference grammar. It returns a
// *ParseError wrapped error on the first grammar violation.
func ParseRef(s string) (Ref, error) {
	pos, err := iriparse.Scan(s, iriparse.ModeReference)
	if err != nil {
		return Ref{}, wrapParseError(s, err)
	}
	return Ref{s: s, pos: pos}, nil
}

// ParseUncheckedRef locates component boundaries in s without validating
// character classes. The caller must guarantee s already conforms to the
// IRI-reference grammar; passing malformed input yields a Ref with
// unspecified (but in-bounds) component boundaries, never a panic.
func ParseUncheckedRef(s string) Ref {
	return Ref{s: s, pos: iriparse.ScanUnchecked(s)}
}

// IsAbsolute reports whether the reference carries a scheme. A Ref for
// which IsAbsolute is true can be promoted to an Iri with AsIri.
func (r Ref) IsAbsolute() bool {
	return r.pos.HasScheme()
}

// Scheme returns the scheme component, without its trailing ':', and
// whether one was present.
func (r Ref) Scheme() (string, bool) {
	if !r.pos.HasScheme() {
		return "", false
	}
	return r.s[:r.pos.SchemeEnd-1], true
}

// Authority returns the authority component, without its leading "//",
// and whether one was present.
func (r Ref) Authority() (string, bool) {
	if !r.pos.HasAuthority() {
		return "", false
	}
	return r.s[r.pos.SchemeEnd+2 : r.pos.AuthorityEnd], true
}

// Path returns the path component. It is always present, though it may
// be empty.
func (r Ref) Path() string {
	return r.s[r.pos.AuthorityEnd:r.pos.PathEnd]
}

// Query returns the query component, without its leading '?', and
// whether one was present.
func (r Ref) Query() (string, bool) {
	if !r.pos.HasQuery() {
		return "", false
	}
	return r.s[r.pos.PathEnd+1 : r.pos.QueryEnd], true
}

// Fragment returns the fragment component, without its leading '#', and
// whether one was present.
func (r Ref) Fragment() (string, bool) {
	if !r.pos.HasFragment(r.s) {
		return "", false
	}
	return r.s[r.pos.QueryEnd+1:], true
}

// String returns the original, unmodified reference string.
func (r Ref) String() string {
	return r.s
}

// AsIri promotes r to an Iri if it carries a scheme. ok is false, and the
// returned Iri is the zero value, if r is a relative reference.
func (r Ref) AsIri() (iri Iri, ok bool) {
	if !r.pos.HasScheme() {
		return Iri{}, false
	}
	return Iri{r}, true
}

// hasAuthority reports whether r has an authority component; shared by
// the resolve and relativize algorithms.
func (r Ref) hasAuthority() bool {
	return r.pos.HasAuthority()
}
