package iri

import "strings"

// Relativize computes a reference that, when resolved against i, yields
// target. It never fails: when no shorter reference can be proven
// correct, Relativize falls back to target's full, unmodified form. This
// differs deliberately from the "attempt and fail" relativizers some IRI
// libraries expose; a relativizer callers can treat as always safe to
// call is more useful in practice, and the cost of a wrong guess is paid
// by producing a longer-than-necessary reference, never an incorrect
// one.
func (i Iri) Relativize(target Iri) Ref {
	if i.Scheme() != target.Scheme() {
		return target.Ref
	}

	baseAuth, baseHasAuth := i.Authority()
	targetAuth, targetHasAuth := target.Authority()
	if baseHasAuth != targetHasAuth {
		return target.Ref
	}

	if baseHasAuth && baseAuth != targetAuth {
		// Same scheme, different authority: a network-path reference
		// carries the new authority explicitly (RFC 3986 Section 4.2),
		// shorter than repeating the scheme.
		if ref, ok := i.verifyRelative(networkPathReference(target), target); ok {
			return ref
		}
		return target.Ref
	}

	if ref, ok := i.verifyRelative(buildRelative(i, target), target); ok {
		return ref
	}
	return target.Ref
}

// verifyRelative is the correctness guard every candidate must pass
// before Relativize trusts it: candidate must itself parse as a
// reference, and resolving it against i must reproduce target exactly.
func (i Iri) verifyRelative(candidate string, target Iri) (Ref, bool) {
	ref, err := ParseRef(candidate)
	if err != nil {
		return Ref{}, false
	}
	resolved, err := i.Resolve(candidate)
	if err != nil || resolved.String() != target.String() {
		return Ref{}, false
	}
	return ref, true
}

// networkPathReference builds "//" authority path [ "?" query ] [ "#"
// fragment ] for target, used when base and target share a scheme but
// not an authority.
func networkPathReference(target Iri) string {
	targetAuth, _ := target.Authority()
	targetQuery, targetHasQuery := target.Query()
	targetFragment, targetHasFragment := target.Fragment()

	var b strings.Builder
	b.WriteString("//")
	b.WriteString(targetAuth)
	b.WriteString(target.Path())
	b.WriteString(queryAndFragment(targetQuery, targetHasQuery, targetFragment, targetHasFragment))
	return b.String()
}

// buildRelative constructs the shortest same-document, query, or path
// reference that resolves to target against base, without yet verifying
// it. Verification happens in Relativize, via verifyRelative.
func buildRelative(base, target Iri) string {
	basePath, targetPath := base.Path(), target.Path()
	baseQuery, baseHasQuery := base.Query()
	targetQuery, targetHasQuery := target.Query()
	targetFragment, targetHasFragment := target.Fragment()

	if basePath == targetPath {
		if baseHasQuery == targetHasQuery && baseQuery == targetQuery {
			return fragmentSuffix(targetFragment, targetHasFragment)
		}
		return queryAndFragment(targetQuery, targetHasQuery, targetFragment, targetHasFragment)
	}

	rel := relativizePath(basePath, targetPath)
	return rel + queryAndFragment(targetQuery, targetHasQuery, targetFragment, targetHasFragment)
}

func queryAndFragment(query string, hasQuery bool, fragment string, hasFragment bool) string {
	var b strings.Builder
	if hasQuery {
		b.WriteByte('?')
		b.WriteString(query)
	}
	b.WriteString(fragmentSuffix(fragment, hasFragment))
	return b.String()
}

func fragmentSuffix(fragment string, hasFragment bool) string {
	if !hasFragment {
		return ""
	}
	return "#" + fragment
}

// relativizePath computes a relative-reference path that, merged with
// basePath per RFC 3986 Section 5.3, reproduces targetPath. It walks the
// two paths' "/"-separated segments, dropping the common directory
// prefix and emitting one ".." per remaining base directory. It is only
// called when basePath != targetPath.
func relativizePath(basePath, targetPath string) string {
	baseDirs := strings.Split(basePath, "/")
	if len(baseDirs) > 0 {
		baseDirs = baseDirs[:len(baseDirs)-1] // drop the base's own filename
	}
	targetSegs := strings.Split(targetPath, "/")
	targetDirs := targetSegs[:len(targetSegs)-1]
	targetFile := targetSegs[len(targetSegs)-1]

	common := 0
	for common < len(baseDirs) && common < len(targetDirs) && baseDirs[common] == targetDirs[common] {
		common++
	}

	var b strings.Builder
	for range baseDirs[common:] {
		b.WriteString("../")
	}
	for _, seg := range targetDirs[common:] {
		b.WriteString(seg)
		b.WriteByte('/')
	}

	if b.Len() == 0 {
		if targetFile == "" {
			// basePath != targetPath, yet no directory or filename
			// difference survived the walk: targetPath is exactly
			// base's directory (e.g. base "/a/b", target "/a/"). The
			// empty string would read back as "same document" instead,
			// so use "." (RFC 3986 Section 4.2 / Section 5.3's
			// resolution of a dot-only relative-path reference).
			return "."
		}
		if looksLikeScheme(targetFile) {
			// A bare first segment containing ':' would be read back as
			// a scheme (RFC 3986 Section 4.2), and the guard would then
			// fall back to target's full form; force it into a
			// same-directory relative path instead.
			b.WriteString("./")
		}
	}
	b.WriteString(targetFile)
	return b.String()
}

func looksLikeScheme(segment string) bool {
	return strings.ContainsRune(segment, ':')
}
