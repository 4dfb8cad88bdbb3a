// Package iri parses, resolves, and relativizes Internationalized
// Resource Identifiers as defined by RFC 3987, layered on RFC 3986's
// reference-resolution algorithm.
//
// A Ref is a parsed IRI reference: absolute, network-path, absolute-path,
// relative-path, or same-document. An Iri is a Ref known to carry a
// scheme, the form required as the base argument of Resolve and
// Relativize. Both are immutable values holding the original string plus
// the byte offsets of its components, so Scheme, Authority, Path, Query,
// and Fragment never allocate or copy. Because they are never modified
// after construction, Refs and Iris may be read concurrently from any
// number of goroutines.
//
// Example (parsing and resolving):
//
//	base, err := iri.Parse("http://a/b/c/d;p?q")
//	if err != nil {
//	    // handle error
//	}
//	target, err := base.Resolve("../g")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(target) // http://a/b/g
//
// Example (relativizing):
//
//	rel := base.Relativize(target)
//	fmt.Println(rel) // ../g
//
// Parse and ParseRef validate every character against the IRI grammar,
// including percent-encoding and IP-literal well-formedness.
// ParseUnchecked and ParseUncheckedRef skip validation for input already
// known to conform, such as output this package produced itself.
//
// This package does not decode percent-encoded octets, perform IDNA or
// punycode conversion, normalize case, or validate bidirectional text: it
// recognizes and manipulates IRI syntax, not the meaning of what it
// encodes.
package iri
