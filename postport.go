// Package postport imports blog export files into content records.
// It parses exported HTML, extracts title, summary and creation date,
// normalizes the article body, downloads inline images into a local
// asset store and rewrites them as placeholder references.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package postport
