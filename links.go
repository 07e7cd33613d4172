package docscrape

// DiscoveredLink represents an absolute address harvested from a page.
type DiscoveredLink struct {
	URL    string
	Text   string
	Source string // selector that produced the link
}

// AllAnchorsSelector matches every anchor with an href. It is evaluated in
// addition to a platform's navigation selectors.
const AllAnchorsSelector = "a[href]"

// LinkHarvester extracts links from HTML.
type LinkHarvester interface {
	// Harvest evaluates the selectors against the HTML and returns the
	// resolved absolute addresses in document order, deduplicated.
	// The pageURL is used to resolve relative URLs.
	Harvest(html string, pageURL string, selectors []string) ([]DiscoveredLink, error)
}
