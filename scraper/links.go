package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tscribe-cli/tscribe/log"
	"github.com/tscribe-cli/tscribe/provider"
	"github.com/tscribe-cli/tscribe/source"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractIndex groups the transcript links of a category page by season.
//
// Headings matching p.HeadingSelector are scanned in document order. A heading
// whose text contains a season token opens a season and the first table after
// it supplies the links. Headings without a table produce an empty season.
func ExtractIndex(doc *goquery.Document, base *url.URL, p *provider.Provider) *source.Index {
	index := source.NewIndex()

	doc.Find(p.HeadingSelector).Each(func(_ int, heading *goquery.Selection) {
		label := strings.TrimSpace(heading.Text())
		if !p.IsSeason(label) {
			return
		}

		season := index.Open(label)

		table := nextTable(heading.Nodes[0])
		if table == nil {
			log.Debugf("no table after heading %q", label)
			return
		}

		doc.FindNodes(table).Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			if !strings.HasSuffix(href, p.LinkSuffix) {
				return
			}

			resolved, err := resolve(base, href)
			if err != nil {
				log.Debugf("skipping malformed link %q under %q: %s", href, label, err)
				return
			}

			season.Add(strings.TrimSpace(a.Text()), resolved)
		})
	})

	return index
}

func resolve(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// nextTable returns the first table element after n in document order,
// looking inside n before the nodes that follow it.
func nextTable(n *html.Node) *html.Node {
	for cur := following(n); cur != nil; cur = following(cur) {
		if cur.Type == html.ElementNode && cur.DataAtom == atom.Table {
			return cur
		}
	}
	return nil
}

// following is the pre-order successor of n.
func following(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
