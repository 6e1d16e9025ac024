package constants

import "strings"

// SourceKinds holds the allowed values for the source_kind field in documents.
var SourceKinds = []string{"TXT", "HTML", "MD"}

// IsSourceKind reports whether kind is a storable source_kind value.
func IsSourceKind(kind string) bool {
	for _, k := range SourceKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// AllowedExtensions holds the default allowed file extensions for document
// ingestion. Binary formats are out of scope: text arrives already extracted
// by the upstream OCR pipeline.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"text": {},
	"html": {},
	"htm":  {},
	"md":   {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToKind maps a file extension to the stored source kind, or "" when
// the extension is not in AllowedExtensions.
func MapExtToKind(ext string) string {
	e := NormalizeExt(ext)
	if _, ok := AllowedExtensions[e]; !ok {
		return ""
	}
	switch e {
	case "txt", "text":
		return "TXT"
	case "html", "htm":
		return "HTML"
	case "md":
		return "MD"
	default:
		return ""
	}
}
