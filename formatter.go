package docscrape

import (
	"strings"
	"time"
)

// DateFormat is the ISO-8601 layout used in document headers.
const DateFormat = "2006-01-02T15:04:05.000Z07:00"

// Header is the optional metadata block at the top of a document.
type Header struct {
	BaseURL  string
	Platform Platform
	Date     time.Time
}

// FormatDocument assembles the output document. The header is written when
// non-nil and an unresolved platform is marked as not detected. Sections are
// written in the given order; none are reordered or dropped.
func FormatDocument(header *Header, sections []*Section) string {
	var b strings.Builder
	if header != nil {
		b.WriteString("# Documentation from: ")
		b.WriteString(header.BaseURL)
		b.WriteString("\nPlatform: ")
		b.WriteString(string(header.Platform))
		if header.Platform == PlatformAuto {
			b.WriteString(" (not detected)")
		}
		b.WriteString("\nDate: ")
		b.WriteString(header.Date.UTC().Format(DateFormat))
		b.WriteString("\n\n---\n\n")
	}
	for _, s := range sections {
		b.WriteString("## ")
		b.WriteString(s.Title)
		b.WriteString("\n\n**URL:** ")
		b.WriteString(s.URL)
		b.WriteString("\n**Ruta:** ")
		b.WriteString(s.Path)
		b.WriteString("\n\n")
		b.WriteString(s.Body)
		b.WriteString("\n\n---\n\n")
	}
	return b.String()
}
