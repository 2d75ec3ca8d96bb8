package postport

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// CreatedLayout is the layout of the date token that prefixes export filenames.
const CreatedLayout = "2006-01-02"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// CreatedFromFilename parses the date token before the first underscore of
// the base filename, e.g. "2019-05-10_my-title.html".
func CreatedFromFilename(name string) (time.Time, error) {
	base := filepath.Base(name)
	token, _, ok := strings.Cut(base, "_")
	if !ok {
		return time.Time{}, Errorf(EINVALID, "filename %q has no date prefix", base)
	}
	t, err := time.Parse(CreatedLayout, token)
	if err != nil {
		return time.Time{}, Errorf(EINVALID, "filename %q: invalid date %q", base, token)
	}
	return t, nil
}

// TitleFromFilename returns the base filename without its extension.
func TitleFromFilename(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SanitizeFilename replaces every character outside [A-Za-z0-9._-] with '_'.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// AssetFilename derives a storage filename from the final path segment of
// an image URL path. Returns "image" when the path has no usable segment.
func AssetFilename(urlPath string) string {
	base := path.Base(urlPath)
	if base == "." || base == "/" || base == "" {
		return "image"
	}
	return SanitizeFilename(base)
}
