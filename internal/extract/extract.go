// Package extract turns one fetched product page into a RawItem. Each
// field is looked up independently through an ordered list of strategies;
// the first strategy returning a non-empty value wins and a field whose
// strategies all fail is simply left empty.
package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jonesrussell/cleverscrape/internal/models"
)

const (
	currencySymbol   = "€"
	productIDLabel   = "Produkt ID:"
	ingredientsLabel = "Zutaten:"
	detailsHeading   = "Produktinformation"
	// marketingPhrase anchors the last-resort description lookup: the
	// paragraph immediately preceding the slogan heading.
	marketingPhrase = "Einfach clever"
)

var (
	productIDRe   = regexp.MustCompile(`Produkt ID:\s*([A-Za-z0-9\-]+)`)
	trailingIDRe  = regexp.MustCompile(`(\d+)/?$`)
	inlinePriceRe = regexp.MustCompile(`([\d.,]+)`)
)

// strategy is one independent way of pulling a field out of the page.
type strategy func(root *html.Node) string

// firstOf applies strategies in order and returns the first non-empty result.
func firstOf(root *html.Node, strategies ...strategy) string {
	for _, s := range strategies {
		if v := s(root); v != "" {
			return v
		}
	}
	return ""
}

// Product extracts a RawItem from a fetched product page.
func Product(doc *goquery.Document, pageURL *url.URL) models.RawItem {
	root := doc.Get(0)

	item := models.RawItem{
		ProductURL: pageURL.String(),
	}

	item.ProductName = Name(root)
	item.Price = PriceText(root)
	if strings.Contains(item.Price, currencySymbol) {
		item.Currency = currencySymbol
	}
	item.RegularPrice = InlineRegularPrice(item.Price)
	item.ProductDescription = Description(root)
	item.ProductID = ProductID(root)
	item.UniqueID = UniqueID(pageURL)
	item.Ingredients = Ingredients(root)
	item.Details = Details(root)
	item.Images = Images(doc, pageURL)
	if len(item.Images) > 0 {
		item.Image = item.Images[0]
	}

	return item
}

// Name returns the page's top-level heading text: first the heading's own
// text nodes, then any text inside it.
func Name(root *html.Node) string {
	return firstOf(root,
		func(root *html.Node) string {
			for _, n := range allNodes(root) {
				if isElement(n, "h1") {
					if t := directText(n); t != "" {
						return t
					}
				}
			}
			return ""
		},
		func(root *html.Node) string {
			for _, n := range allNodes(root) {
				if isElement(n, "h1") {
					for _, tn := range textNodes(n) {
						if t := CollapseSpace(tn.Data); t != "" {
							return t
						}
					}
				}
			}
			return ""
		},
	)
}

// PriceText returns the first text node on the page containing the
// currency symbol.
func PriceText(root *html.Node) string {
	for _, tn := range textNodes(root) {
		if !strings.Contains(tn.Data, currencySymbol) {
			continue
		}
		if t := CollapseSpace(tn.Data); t != "" {
			return t
		}
	}
	return ""
}

// InlineRegularPrice extracts the first digits/dots/commas run from the
// price text and replaces commas with dots. This quick inline rule is
// superseded by the cleaning pass, which re-derives the value with full
// separator disambiguation.
func InlineRegularPrice(price string) string {
	if price == "" {
		return ""
	}
	m := inlinePriceRe.FindStringSubmatch(price)
	if m == nil {
		return ""
	}
	return strings.ReplaceAll(m[1], ",", ".")
}

// Description returns the product description paragraph: the paragraph
// right after the heading, else the first non-empty paragraph, else the
// paragraph right before the slogan heading.
func Description(root *html.Node) string {
	return firstOf(root,
		func(root *html.Node) string {
			h1 := findElement(root, "h1")
			if h1 == nil {
				return ""
			}
			for _, n := range following(root, h1) {
				if isElement(n, "p") {
					return directText(n)
				}
			}
			return ""
		},
		func(root *html.Node) string {
			for _, n := range allNodes(root) {
				if isElement(n, "p") && fullText(n) != "" {
					return directText(n)
				}
			}
			return ""
		},
		func(root *html.Node) string {
			var slogan *html.Node
			for _, n := range allNodes(root) {
				if isElement(n, "h2") && strings.Contains(fullText(n), marketingPhrase) {
					slogan = n
					break
				}
			}
			if slogan == nil {
				return ""
			}
			var last *html.Node
			for _, n := range preceding(root, slogan) {
				if isElement(n, "p") {
					last = n
				}
			}
			if last == nil {
				return ""
			}
			return directText(last)
		},
	)
}

// ProductID scans the page's text nodes for the product-ID label and
// returns the alphanumeric-and-hyphen token after it.
func ProductID(root *html.Node) string {
	for _, tn := range textNodes(root) {
		if !strings.Contains(tn.Data, productIDLabel) {
			continue
		}
		t := CollapseSpace(tn.Data)
		if t == "" {
			continue
		}
		if m := productIDRe.FindStringSubmatch(t); m != nil {
			return m[1]
		}
	}
	return ""
}

// UniqueID returns the trailing run of digits in the URL path.
func UniqueID(pageURL *url.URL) string {
	if m := trailingIDRe.FindStringSubmatch(pageURL.Path); m != nil {
		return m[1]
	}
	return ""
}

// Ingredients returns the text node starting with the ingredients label.
func Ingredients(root *html.Node) string {
	for _, tn := range textNodes(root) {
		t := CollapseSpace(tn.Data)
		if strings.HasPrefix(t, ingredientsLabel) {
			return t
		}
	}
	return ""
}

// Details returns the first text content after the "Produktinformation"
// heading (h2 or h3, exact text match).
func Details(root *html.Node) string {
	var heading *html.Node
	for _, n := range allNodes(root) {
		if isElement(n, "h2", "h3") && fullText(n) == detailsHeading {
			heading = n
			break
		}
	}
	if heading == nil {
		return ""
	}
	for _, n := range following(root, heading) {
		if n.Type != html.ElementNode {
			continue
		}
		if fullText(n) == "" {
			continue
		}
		return directText(n)
	}
	return ""
}

// Images returns the union of the social-preview image and every CDN
// image on the page, absolutized against the page URL and deduplicated
// in first-seen order.
func Images(doc *goquery.Document, pageURL *url.URL) []string {
	var raw []string
	doc.Find(`meta[property="og:image"]`).Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			raw = append(raw, content)
		}
	})
	doc.Find(`img[src*="commercetools"]`).Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok {
			raw = append(raw, src)
		}
	})

	var out []string
	seen := make(map[string]struct{}, len(raw))
	for _, u := range raw {
		if u == "" {
			continue
		}
		abs := absoluteURL(pageURL, u)
		if abs == "" {
			continue
		}
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		out = append(out, abs)
	}
	return out
}

// absoluteURL resolves ref against base, returning "" when ref is not a
// parseable URL.
func absoluteURL(base *url.URL, ref string) string {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}

// findElement returns the first element with the given name in document
// order, or nil.
func findElement(root *html.Node, name string) *html.Node {
	for _, n := range allNodes(root) {
		if isElement(n, name) {
			return n
		}
	}
	return nil
}
