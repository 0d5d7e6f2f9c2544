package spider

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Category path prefixes followed from the start page: the four known
// top-level categories plus the catch-all produkte prefix.
var startSelectors = []string{
	`a[href*="/lebensmittel"]`,
	`a[href*="/getr"]`,
	`a[href*="/haushalt"]`,
	`a[href*="/tier"]`,
	`a[href^="/produkte/"]`,
}

const (
	subcategorySelector = `a[href^="/produkte/"]`
	productSelector     = `a[href^="/produkt/"]`
	paginationSelector  = `a[href*="?page="]`
)

var pageParamRe = regexp.MustCompile(`[?&]page=(\d+)`)

// nextAnchorTexts marks anchors that look like a "next page" control, in
// either site language plus the icon-font glyph name.
var nextAnchorTexts = []string{"Next", "Weiter", "chevron_right"}

// StartLinks returns the category links on the start page, deduplicated
// in first-seen order.
func StartLinks(doc *goquery.Document) []string {
	var hrefs []string
	for _, sel := range startSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if href, ok := s.Attr("href"); ok && href != "" {
				hrefs = append(hrefs, href)
			}
		})
	}
	return dedupe(hrefs)
}

// SubcategoryLinks returns the sub-category links on a category page,
// deduplicated in first-seen order. An empty result means the page should
// be treated as a listing page itself.
func SubcategoryLinks(doc *goquery.Document) []string {
	return dedupe(attrAll(doc, subcategorySelector, "href"))
}

// ProductLinks returns every product link on a listing page.
func ProductLinks(doc *goquery.Document) []string {
	return attrAll(doc, productSelector, "href")
}

// NextPageURL locates the "next page" link of a listing page: first an
// anchor whose text suggests "next", then the ?page=N link whose page
// number is exactly one greater than the current page (current defaults
// to 1 when the URL carries no page parameter). Returns "" if no next
// page was found.
func NextPageURL(doc *goquery.Document, pageURL *url.URL) string {
	next := ""
	doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		for _, marker := range nextAnchorTexts {
			if strings.Contains(text, marker) {
				if href, ok := s.Attr("href"); ok && href != "" {
					next = href
					return false
				}
			}
		}
		return true
	})
	if next != "" {
		return next
	}

	current := 1
	if m := pageParamRe.FindStringSubmatch(pageURL.String()); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			current = n
		}
	}

	candidates := dedupe(attrAll(doc, paginationSelector, "href"))
	sort.Strings(candidates)
	for _, href := range candidates {
		m := pageParamRe.FindStringSubmatch(href)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n == current+1 {
			return href
		}
	}
	return ""
}

// attrAll collects the given attribute from every match of sel.
func attrAll(doc *goquery.Document, sel, attr string) []string {
	var out []string
	doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(attr); ok && v != "" {
			out = append(out, v)
		}
	})
	return out
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
