package iriparse

import "strings"

// RemoveDotSegments implements the "Remove Dot Segments" algorithm of
// RFC 3986, Section 5.2.4. It normalizes a path by resolving "." and ".."
// segments, without requiring a leading "/" (relative paths produced by
// Merge are normalized the same way as absolute ones).
func RemoveDotSegments(path string) string {
	var out []string
	in := path

	for len(in) > 0 {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"), in == "/..":
			if len(in) > len("/..") {
				in = "/" + in[4:]
			} else {
				in = "/"
			}
			if len(out) > 0 {
				last := out[len(out)-1]
				out = out[:len(out)-1]
				if len(out) == 0 && !strings.HasPrefix(last, "/") {
					in = strings.TrimPrefix(in, "/")
				}
			}
		case in == ".", in == "..":
			in = ""
		default:
			seg, rest := firstSegment(in)
			in = rest
			out = append(out, seg)
		}
	}

	return strings.Join(out, "")
}

// firstSegment splits off the first path segment of in, per RFC 3986
// Section 5.2.4 rule 2E. A segment beginning with "/" carries that slash
// with it; the returned remainder starts at the next "/", if any.
func firstSegment(in string) (segment, remainder string) {
	if strings.HasPrefix(in, "/") {
		if next := strings.Index(in[1:], "/"); next != -1 {
			return in[:next+1], in[next+1:]
		}
		return in, ""
	}
	if idx := strings.Index(in, "/"); idx != -1 {
		return in[:idx], in[idx:]
	}
	return in, ""
}

// Merge implements RFC 3986, Section 5.3's path merge routine: it joins a
// base path with a relative-reference path R.path when R has no
// authority. hasBaseAuthority distinguishes the case where an empty base
// path is implicitly "/".
func Merge(basePath, refPath string, hasBaseAuthority bool) string {
	if hasBaseAuthority && basePath == "" {
		return "/" + refPath
	}
	if i := strings.LastIndex(basePath, "/"); i != -1 {
		return basePath[:i+1] + refPath
	}
	return refPath
}
