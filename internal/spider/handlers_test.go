package spider_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/cleverscrape/internal/spider"
)

const startPageHTML = `<!DOCTYPE html>
<html><body>
  <a href="/lebensmittel">Lebensmittel</a>
  <a href="/getraenke">Getränke</a>
  <a href="/haushalt">Haushalt</a>
  <a href="/tier">Tier</a>
  <a href="/produkte/neuheiten">Neuheiten</a>
  <a href="/lebensmittel">Lebensmittel nochmal</a>
  <a href="/kontakt">Kontakt</a>
</body></html>`

const categoryPageHTML = `<!DOCTYPE html>
<html><body>
  <a href="/produkte/saefte">Säfte</a>
  <a href="/produkte/wasser">Wasser</a>
  <a href="/produkte/saefte">Säfte nochmal</a>
</body></html>`

const listingPageHTML = `<!DOCTYPE html>
<html><body>
  <a href="/produkt/clever-apfelsaft-19989">Apfelsaft</a>
  <a href="/produkt/clever-orangensaft-20001">Orangensaft</a>
  <a href="/produkte/saefte?page=2">2</a>
  <a href="/produkte/saefte?page=3">3</a>
</body></html>`

const listingWithNextAnchorHTML = `<!DOCTYPE html>
<html><body>
  <a href="/produkt/clever-wasser-333">Wasser</a>
  <a href="/produkte/wasser?page=7">Weiter</a>
</body></html>`

const listingChevronHTML = `<!DOCTYPE html>
<html><body>
  <a href="/produkte/wasser?page=4"><i>chevron_right</i></a>
</body></html>`

func parseDoc(t *testing.T, rawHTML string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		t.Fatalf("failed to parse fixture HTML: %v", err)
	}
	return doc
}

func mustParse(t *testing.T, rawURL string) *url.URL {
	t.Helper()

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("failed to parse URL: %v", err)
	}
	return u
}

func TestStartLinks(t *testing.T) {
	t.Parallel()

	links := spider.StartLinks(parseDoc(t, startPageHTML))

	want := []string{"/lebensmittel", "/getraenke", "/haushalt", "/tier", "/produkte/neuheiten"}
	if len(links) != len(want) {
		t.Fatalf("links = %v, want %v", links, want)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("links[%d] = %q, want %q", i, links[i], want[i])
		}
	}
}

func TestSubcategoryLinks_Deduplicated(t *testing.T) {
	t.Parallel()

	links := spider.SubcategoryLinks(parseDoc(t, categoryPageHTML))
	if len(links) != 2 {
		t.Fatalf("expected 2 subcategory links, got %v", links)
	}
	if links[0] != "/produkte/saefte" || links[1] != "/produkte/wasser" {
		t.Errorf("links = %v", links)
	}
}

func TestSubcategoryLinks_NoneOnListingPage(t *testing.T) {
	t.Parallel()

	// Listing pages only carry /produkt/ links plus pagination; the
	// /produkte/ pagination hrefs still match the subcategory prefix, so
	// a truly bare page is used here.
	links := spider.SubcategoryLinks(parseDoc(t, startPageHTML))
	if len(links) != 1 || links[0] != "/produkte/neuheiten" {
		t.Errorf("links = %v", links)
	}
}

func TestProductLinks(t *testing.T) {
	t.Parallel()

	links := spider.ProductLinks(parseDoc(t, listingPageHTML))
	if len(links) != 2 {
		t.Fatalf("expected 2 product links, got %v", links)
	}
	if links[0] != "/produkt/clever-apfelsaft-19989" {
		t.Errorf("links[0] = %q", links[0])
	}
}

func TestNextPageURL_NextAnchor(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, listingWithNextAnchorHTML)
	pageURL := mustParse(t, "https://www.cleverleben.at/produkte/wasser")

	if got := spider.NextPageURL(doc, pageURL); got != "/produkte/wasser?page=7" {
		t.Errorf("NextPageURL = %q", got)
	}
}

func TestNextPageURL_ChevronAnchor(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, listingChevronHTML)
	pageURL := mustParse(t, "https://www.cleverleben.at/produkte/wasser?page=3")

	if got := spider.NextPageURL(doc, pageURL); got != "/produkte/wasser?page=4" {
		t.Errorf("NextPageURL = %q", got)
	}
}

func TestNextPageURL_NumericScheme(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, listingPageHTML)

	// No page parameter on the current URL: current defaults to 1, so
	// page=2 is the next page.
	first := mustParse(t, "https://www.cleverleben.at/produkte/saefte")
	if got := spider.NextPageURL(doc, first); got != "/produkte/saefte?page=2" {
		t.Errorf("NextPageURL from page 1 = %q", got)
	}

	second := mustParse(t, "https://www.cleverleben.at/produkte/saefte?page=2")
	if got := spider.NextPageURL(doc, second); got != "/produkte/saefte?page=3" {
		t.Errorf("NextPageURL from page 2 = %q", got)
	}

	// From page 3 there is no page=4 link.
	third := mustParse(t, "https://www.cleverleben.at/produkte/saefte?page=3")
	if got := spider.NextPageURL(doc, third); got != "" {
		t.Errorf("NextPageURL from page 3 = %q", got)
	}
}
