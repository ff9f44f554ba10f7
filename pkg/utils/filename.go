package utils

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

var allowedImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

// ImageExtension returns the lowercased extension of filename without the dot
// and whether it is one of the accepted image types.
func ImageExtension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[idx+1:])
	_, ok := allowedImageExtensions[ext]
	return ext, ok
}

// SanitizeFilename reduces an uploaded filename to a single safe path segment.
// Path separators become underscores, anything outside [A-Za-z0-9._-] is
// dropped and leading dots or underscores are trimmed, so the result never
// points outside the directory it is joined to. An empty string means nothing
// usable was left.
func SanitizeFilename(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)

	var b strings.Builder
	for _, r := range strings.Join(strings.Fields(name), "_") {
		switch {
		case r > unicode.MaxASCII:
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "._")
}

// UniqueFilename appends -1, -2, ... before the extension of name until exists
// reports false.
func UniqueFilename(name string, exists func(string) bool) string {
	if !exists(name) {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i) + ext
		if !exists(candidate) {
			return candidate
		}
	}
}
