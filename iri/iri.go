package iri

import "github.com/geoknoesis/iri-go/internal/iriparse"

// Iri is a Ref known to carry a scheme: the "absolute" form required as
// the base argument of Resolve and Relativize. It embeds Ref, so all of
// Ref's accessors are available on an Iri.
type Iri struct {
	Ref
}

// Parse parses s against the IRI grammar, which requires a scheme. Use
// ParseRef to accept relative references as well.
func Parse(s string) (Iri, error) {
	pos, err := iriparse.Scan(s, iriparse.ModeAbsolute)
	if err != nil {
		return Iri{}, wrapParseError(s, err)
	}
	return Iri{Ref{s: s, pos: pos}}, nil
}

// ParseUnchecked locates component boundaries in s without validating
// character classes or the presence of a scheme. The caller must
// guarantee s already conforms to the IRI grammar.
func ParseUnchecked(s string) Iri {
	return Iri{Ref{s: s, pos: iriparse.ScanUnchecked(s)}}
}

// Scheme returns the scheme component, without its trailing ':'. Unlike
// Ref.Scheme, an Iri is guaranteed to carry one, so there is no ok
// result.
func (i Iri) Scheme() string {
	scheme, _ := i.Ref.Scheme()
	return scheme
}
