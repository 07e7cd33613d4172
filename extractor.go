package docscrape

// DefaultMinContentLength is the minimum text length, in characters, a
// content selector match needs for a page to count as documentation.
const DefaultMinContentLength = 100

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the inner HTML of the first matching content selector.
	// Empty when no selector matched.
	ContentHTML string

	// Selector is the content selector that matched.
	Selector string
}

// Extractor locates the primary content of a rendered page.
type Extractor interface {
	// Extract returns the inner HTML of the first selector that matches any
	// element. A page without a match yields an empty ContentHTML and no error.
	Extract(html string, selectors []string) (*ExtractResult, error)

	// HasContent reports whether any selector matches an element whose text
	// is at least minLength characters long.
	HasContent(html string, selectors []string, minLength int) bool
}
