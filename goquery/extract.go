package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

var _ docscrape.Extractor = (*Extractor)(nil)

// Extractor locates primary page content with a CSS selector cascade.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the inner HTML of the first selector that matches any
// element. Invalid selectors match nothing. No fallback content is
// synthesized: when nothing matches the result has an empty ContentHTML.
func (e *Extractor) Extract(html string, selectors []string) (*docscrape.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &docscrape.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	for _, selector := range selectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		inner, err := sel.First().Html()
		if err != nil {
			return nil, err
		}
		result.ContentHTML = strings.TrimSpace(inner)
		result.Selector = selector
		break
	}

	return result, nil
}

// HasContent reports whether any selector matches an element whose trimmed
// text is at least minLength characters long.
func (e *Extractor) HasContent(html string, selectors []string, minLength int) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}

	for _, selector := range selectors {
		found := false
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if utf8.RuneCountInString(strings.TrimSpace(s.Text())) >= minLength {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}
