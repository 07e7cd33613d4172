package htmltomarkdown

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CalloutMarkers are the class names that mark an element as a callout
// container. The subtype is read from a sibling class "<marker>-<subtype>".
var CalloutMarkers = []string{"callout", "admonition", "theme-admonition"}

// DefaultCalloutType is used when a callout carries no subtype class.
const DefaultCalloutType = "note"

// DocsPlugin overrides the rendering of code blocks and callouts.
type DocsPlugin struct{}

// NewDocsPlugin creates a new DocsPlugin.
func NewDocsPlugin() *DocsPlugin {
	return &DocsPlugin{}
}

// Name implements converter.Plugin.
func (p *DocsPlugin) Name() string {
	return "docs"
}

// Init implements converter.Plugin.
func (p *DocsPlugin) Init(conv *converter.Converter) error {
	conv.Register.RendererFor("pre", converter.TagTypeBlock, p.renderCodeBlock, converter.PriorityEarly)
	conv.Register.Renderer(p.renderCallout, converter.PriorityEarly)
	return nil
}

func (p *DocsPlugin) renderCodeBlock(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	code := findChild(n, atom.Code)
	if code == nil {
		return converter.RenderTryNext
	}

	lang := languageOf(code)
	if lang == "" {
		lang = languageOf(n)
	}

	text := rawText(code)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	w.WriteString("\n\n```" + lang + "\n")
	w.WriteString(text)
	w.WriteString("```\n\n")
	return converter.RenderSuccess
}

func (p *DocsPlugin) renderCallout(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	if n.Type != html.ElementNode {
		return converter.RenderTryNext
	}
	subtype, ok := calloutType(classes(n))
	if !ok {
		return converter.RenderTryNext
	}

	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)

	w.WriteString("\n\n:::" + subtype + "\n")
	w.WriteString(strings.TrimSpace(buf.String()))
	w.WriteString("\n:::\n\n")
	return converter.RenderSuccess
}

// calloutType returns the callout subtype for a class list and whether the
// classes mark a callout at all.
func calloutType(class []string) (string, bool) {
	for _, marker := range CalloutMarkers {
		found := false
		for _, c := range class {
			if c == marker {
				found = true
				break
			}
		}
		if !found {
			continue
		}
		for _, c := range class {
			if sub, ok := strings.CutPrefix(c, marker+"-"); ok && sub != "" {
				return sub, true
			}
		}
		return DefaultCalloutType, true
	}
	return "", false
}

// languageOf returns the language from a "language-<name>" class.
func languageOf(n *html.Node) string {
	for _, c := range classes(n) {
		if lang, ok := strings.CutPrefix(c, "language-"); ok {
			return lang
		}
	}
	return ""
}

func classes(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

// findChild returns the first descendant element with the given tag.
func findChild(n *html.Node, tag atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == tag {
			return c
		}
		if found := findChild(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// rawText returns the text content of n. Line break elements count as
// newlines so highlighted blocks that render one span per line keep their
// line structure.
func rawText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			sb.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
