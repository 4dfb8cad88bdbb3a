package iri

import (
	"strings"

	"github.com/geoknoesis/iri-go/internal/iriparse"
)

// Resolve resolves ref against r as the base. r must itself be absolute
// (carry a scheme); callers that already hold an Iri should call Iri's
// Resolve directly. This exists for code that only has a Ref in hand —
// e.g. one parsed from untrusted input with ParseRef — and wants to use
// it as a base without a separate AsIri check: a non-absolute r reports
// ErrInvalidBaseIri instead of panicking or silently doing the wrong
// thing.
func (r Ref) Resolve(ref string) (Iri, error) {
	base, ok := r.AsIri()
	if !ok {
		return Iri{}, &ParseError{Kind: ErrInvalidBaseIri, Offset: 0, Input: r.String(), Err: errNonAbsoluteBase}
	}
	return base.Resolve(ref)
}

// Resolve resolves ref against i as the base IRI, per RFC 3986 Section
// 5.2.2 (Transform References). ref may be absolute or relative; the
// result is always absolute.
func (i Iri) Resolve(ref string) (Iri, error) {
	var buf strings.Builder
	buf.Grow(len(i.String()) + len(ref))
	if err := i.ResolveInto(ref, &buf); err != nil {
		return Iri{}, err
	}
	return ParseUnchecked(buf.String()), nil
}

// ResolveInto resolves ref against i and appends the result to buf,
// avoiding the intermediate allocation Resolve's return value requires.
// buf is not reset first; callers reusing a Builder across calls must
// do so themselves.
func (i Iri) ResolveInto(ref string, buf *strings.Builder) error {
	r, err := ParseRef(ref)
	if err != nil {
		return err
	}
	i.resolveRefInto(r, buf)
	return nil
}

// ResolveUnchecked resolves ref against i without validating ref's
// grammar. The caller must guarantee ref already conforms to the
// IRI-reference grammar, such as a string this package produced itself.
func (i Iri) ResolveUnchecked(ref string) Iri {
	var buf strings.Builder
	buf.Grow(len(i.String()) + len(ref))
	i.resolveRefInto(ParseUncheckedRef(ref), &buf)
	return ParseUnchecked(buf.String())
}

// ResolveIntoUnchecked is the unchecked counterpart of ResolveInto.
func (i Iri) ResolveIntoUnchecked(ref string, buf *strings.Builder) {
	i.resolveRefInto(ParseUncheckedRef(ref), buf)
}

// resolveRefInto implements the five-component merge of RFC 3986 Section
// 5.2.2. It never fails: r has already been validated as an IRI
// reference by the caller.
func (i Iri) resolveRefInto(r Ref, buf *strings.Builder) {
	switch {
	case r.IsAbsolute():
		scheme, _ := r.Scheme()
		buf.WriteString(scheme)
		buf.WriteByte(':')
		writeAuthorityAndPath(buf, r)
		writeQuery(buf, r)

	case r.hasAuthority():
		buf.WriteString(i.Scheme())
		buf.WriteByte(':')
		writeAuthorityAndPath(buf, r)
		writeQuery(buf, r)

	default:
		buf.WriteString(i.Scheme())
		buf.WriteByte(':')
		baseAuth, baseHasAuth := i.Authority()
		if baseHasAuth {
			buf.WriteString("//")
			buf.WriteString(baseAuth)
		}

		refPath := r.Path()
		switch {
		case refPath == "":
			buf.WriteString(i.Path())
			if q, ok := r.Query(); ok {
				buf.WriteByte('?')
				buf.WriteString(q)
			} else if q, ok := i.Query(); ok {
				buf.WriteByte('?')
				buf.WriteString(q)
			}
		case strings.HasPrefix(refPath, "/"):
			buf.WriteString(iriparse.RemoveDotSegments(refPath))
			writeQuery(buf, r)
		default:
			merged := iriparse.Merge(i.Path(), refPath, baseHasAuth)
			buf.WriteString(iriparse.RemoveDotSegments(merged))
			writeQuery(buf, r)
		}
	}

	if frag, ok := r.Fragment(); ok {
		buf.WriteByte('#')
		buf.WriteString(frag)
	}
}

// writeAuthorityAndPath writes r's authority (if any) and path. Dot
// segments are only removed when the path is hierarchical — it follows
// an authority or starts with "/" — per RFC 3986 Section 5.2.2's use of
// remove_dot_segments only on path-abempty/path-absolute. An opaque path
// like "a-b" in "tag:a-b" is passed through unmodified, so "../"-looking
// sequences inside it are not a dot-segment syntax there at all.
func writeAuthorityAndPath(buf *strings.Builder, r Ref) {
	auth, hasAuth := r.Authority()
	if hasAuth {
		buf.WriteString("//")
		buf.WriteString(auth)
	}
	path := r.Path()
	if hasAuth || strings.HasPrefix(path, "/") {
		buf.WriteString(iriparse.RemoveDotSegments(path))
	} else {
		buf.WriteString(path)
	}
}

func writeQuery(buf *strings.Builder, r Ref) {
	if q, ok := r.Query(); ok {
		buf.WriteByte('?')
		buf.WriteString(q)
	}
}
