// Package docscrape turns rendered documentation websites into a single
// Markdown document. It discovers documentation pages (via sitemap or by
// following links), extracts the primary content of each page, converts it
// to Markdown and assembles the result.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, htmltomarkdown/).
package docscrape
