// Package match associates image files with the artwork document that
// describes them, by filename similarity.
package match

import (
	"regexp"
	"strings"
)

// imageExts are the recognized raster-image extensions, lower-case.
var imageExts = []string{".jpg", ".jpeg"}

// Images returns, in input order, the candidates that belong to the
// document named docName: raster images whose base name equals the
// document's base name, or carries a numeric sequence suffix on it
// ("workname-01.jpg", "workname-2.jpeg").
//
// Base names are taken up to the first dot and compared case-insensitively.
// The sequence check is an unanchored search, which deliberately also
// accepts names that merely contain the "base-NN" fragment. Candidates are
// not consumed here; preventing a file from being claimed twice is the
// caller's job.
func Images(candidates []string, docName string) []string {
	docBase := baseName(docName)
	seq := regexp.MustCompile(regexp.QuoteMeta(docBase) + `-\d+`)

	var matched []string
	for _, name := range candidates {
		if !isImage(name) {
			continue
		}
		base := baseName(name)
		if base == docBase || seq.MatchString(base) {
			matched = append(matched, name)
		}
	}
	return matched
}

// baseName lowercases and truncates at the first dot, so multi-dot names
// like "obra.final.jpg" reduce to "obra".
func baseName(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}

func isImage(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
