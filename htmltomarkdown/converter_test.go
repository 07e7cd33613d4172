package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ docscrape.Converter = (*htmltomarkdown.Converter)(nil)

// convert runs html through a fresh Converter.
func convert(t *testing.T, html string) string {
	t.Helper()
	md, err := htmltomarkdown.NewConverter().Convert(html)
	require.NoError(t, err)
	return md
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		html string
		want []string
	}{
		{"paragraph", `<p>Hello, world!</p>`, []string{"Hello, world!"}},
		{"ATX headings", `<h1>Guide</h1><h2>Setup</h2><h3>Linux</h3>`, []string{"# Guide", "## Setup", "### Linux"}},
		{"links", `<p>See <a href="https://docs.example.com/api">the API</a>.</p>`, []string{"[the API](https://docs.example.com/api)"}},
		{"hyphen bullets", `<ul><li>npm</li><li>yarn</li></ul>`, []string{"- npm", "- yarn"}},
		{"ordered lists", `<ol><li>Install</li><li>Run</li></ol>`, []string{"1. Install", "2. Run"}},
		{"inline code", `<p>Call <code>init()</code> first.</p>`, []string{"`init()`"}},
		{"emphasis", `<p><strong>Never</strong> edit <em>generated</em> files.</p>`, []string{"**Never**", "*generated*"}},
		{"blockquote", `<blockquote><p>Deprecated since v2.</p></blockquote>`, []string{"> Deprecated since v2."}},
		{"tables", `<table><thead><tr><th>Flag</th><th>Default</th></tr></thead><tbody><tr><td>--port</td><td>3000</td></tr></tbody></table>`, []string{"Flag", "Default", "--port", "3000", "|", "---"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			md := convert(t, tc.html)
			for _, w := range tc.want {
				assert.Contains(t, md, w)
			}
		})
	}

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()

		for _, html := range []string{"", "  \n\t"} {
			_, err := htmltomarkdown.NewConverter().Convert(html)
			assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
		}
	})
}

func TestConverter_CodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("fence carries the language from the code element", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<pre><code class="language-go">package main

func main() {}</code></pre>`)

		assert.Contains(t, md, "```go\npackage main\n\nfunc main() {}\n```")
	})

	t.Run("fence without a language", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<pre><code>make build</code></pre>`)

		assert.Contains(t, md, "```\nmake build\n```")
	})

	t.Run("code text is emitted raw", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<pre><code class="language-python">def greet(name):
    return f"&lt;b&gt;{name}&lt;/b&gt;" * 2</code></pre>`)

		assert.Contains(t, md, "```python\ndef greet(name):\n    return f\"<b>{name}</b>\" * 2\n```")
	})

	t.Run("highlighter spans are dropped and br is a newline", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<pre class="prism-code language-js"><code><span class="token-line"><span class="token keyword">const</span> a = 1;<br></span><span class="token-line">a++;</span></code></pre>`)

		assert.Contains(t, md, "```js\nconst a = 1;\na++;\n```")
	})
}

func TestConverter_Callouts(t *testing.T) {
	t.Parallel()

	t.Run("callout subtype tags the block", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<p>Before</p><div class="callout callout-warning"><p>Do <strong>not</strong> delete.</p></div><p>After</p>`)

		assert.Contains(t, md, "\n\n:::warning\nDo **not** delete.\n:::\n\n")
		assert.Contains(t, md, "Before")
		assert.Contains(t, md, "After")
	})

	t.Run("subtype defaults to note", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<div class="admonition"><p>Remember this.</p></div>`)

		assert.Contains(t, md, ":::note\nRemember this.\n:::")
	})

	t.Run("docusaurus theme admonitions", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<div class="theme-admonition theme-admonition-tip alert alert--success"><p>Use the CLI.</p></div>`)

		assert.Contains(t, md, ":::tip\nUse the CLI.\n:::")
	})
}

func TestConverter_DocumentationPage(t *testing.T) {
	t.Parallel()

	md := convert(t, `<div class="theme-doc-markdown markdown">
<header><h1>Installation</h1></header>
<p>Docusaurus needs Node.js 18 or above.</p>
<div class="theme-admonition theme-admonition-info alert alert--info"><p>Check with <code>node -v</code>.</p></div>
<h2>Scaffold a site</h2>
<pre class="prism-code language-bash"><code><span class="token-line">npx create-docusaurus@latest my-website classic</span></code></pre>
<table>
<thead><tr><th>Template</th><th>Language</th></tr></thead>
<tbody><tr><td>classic</td><td>JavaScript</td></tr></tbody>
</table>
</div>`)

	assert.Contains(t, md, "# Installation")
	assert.Contains(t, md, ":::info\nCheck with `node -v`.\n:::")
	assert.Contains(t, md, "## Scaffold a site")
	assert.Contains(t, md, "```bash\nnpx create-docusaurus@latest my-website classic\n```")
	assert.Contains(t, md, "Template")
	assert.Contains(t, md, "classic")
}
