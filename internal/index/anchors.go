package index

import (
	"io"

	"golang.org/x/net/html"
)

// AnchorParser extracts anchor href values from an index document. It is an
// interface so the scraper can be swapped for a structured API client if the
// bootstrap index ever grows one; it is deliberately not a general HTML
// parsing abstraction.
type AnchorParser interface {
	Anchors(r io.Reader) ([]string, error)
}

// HTMLAnchorParser collects the href attribute of every anchor tag in an
// HTML document. Malformed markup is tolerated: attributes the tokenizer
// cannot make sense of are simply not collected.
type HTMLAnchorParser struct{}

// Anchors returns the href values of all anchor tags in r, in document order.
func (HTMLAnchorParser) Anchors(r io.Reader) ([]string, error) {
	tokenizer := html.NewTokenizer(r)
	var hrefs []string
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); err != io.EOF {
				return nil, err
			}
			return hrefs, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tokenizer.TagName()
			if len(name) != 1 || name[0] != 'a' {
				continue
			}
			for hasAttr {
				var key, value []byte
				key, value, hasAttr = tokenizer.TagAttr()
				if string(key) == "href" {
					hrefs = append(hrefs, string(value))
				}
			}
		}
	}
}
