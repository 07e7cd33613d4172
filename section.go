package docscrape

// Section is the converted content of one documentation page.
type Section struct {
	Title string
	URL   string
	Path  string // path component of URL
	Body  string // Markdown
}

// NewSection builds a Section for a page, falling back to the URL when the
// page has no title.
func NewSection(title, url, body string) *Section {
	if title == "" {
		title = url
	}
	return &Section{
		Title: title,
		URL:   url,
		Path:  URLPath(url),
		Body:  body,
	}
}
