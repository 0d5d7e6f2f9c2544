// Package spider walks the product catalog: start page to categories to
// listings to product pages, with listing pagination. Request scheduling,
// URL-level dedup, rate limiting, and robots handling are delegated to
// colly; the spider only emits "follow this URL with handler X"
// instructions and extracts records from fetched pages.
package spider

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"
	colly "github.com/gocolly/colly/v2"

	"github.com/jonesrussell/cleverscrape/internal/config"
	"github.com/jonesrussell/cleverscrape/internal/extract"
	"github.com/jonesrussell/cleverscrape/internal/logger"
	"github.com/jonesrussell/cleverscrape/internal/models"
)

// handlerCtxKey is the colly request-context key naming the parse handler
// for the response, mirroring a callback-per-page-type crawl.
const handlerCtxKey = "handler"

// Handler names for the traversal states.
const (
	handlerStart    = "start"
	handlerCategory = "category"
	handlerListing  = "listing"
	handlerProduct  = "product"
)

// RandomDelayDivisor derives the random delay from the rate limit.
const RandomDelayDivisor = 2

// Spider crawls the catalog and collects raw product records.
type Spider struct {
	cfg       *config.CrawlerConfig
	logger    logger.Interface
	session   *Session
	collector *colly.Collector

	mu    sync.Mutex
	items []models.RawItem
}

// New creates a spider with a configured collector.
func New(cfg *config.CrawlerConfig, log logger.Interface) (*Spider, error) {
	s := &Spider{
		cfg:     cfg,
		logger:  log,
		session: NewSession(cfg.MaxItems),
	}

	c := colly.NewCollector(
		colly.AllowedDomains(cfg.AllowedDomain),
		colly.UserAgent(cfg.UserAgent),
	)
	if err := c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Delay:       cfg.RateLimit,
		RandomDelay: cfg.RateLimit / RandomDelayDivisor,
	}); err != nil {
		return nil, fmt.Errorf("failed to set rate limit: %w", err)
	}

	c.OnRequest(func(r *colly.Request) {
		s.logger.Debug("Visiting", "url", r.URL.String(), "handler", r.Ctx.Get(handlerCtxKey))
	})
	c.OnError(func(r *colly.Response, err error) {
		s.logger.Warn("Request failed",
			"url", r.Request.URL.String(),
			"status", r.StatusCode,
			"error", err,
		)
	})
	c.OnResponse(s.dispatch)

	s.collector = c
	return s, nil
}

// Run crawls from the configured start URL until the traversal is
// exhausted or the item cap suppresses further emission, then returns
// the collected records.
func (s *Spider) Run() ([]models.RawItem, error) {
	if err := s.follow(s.cfg.StartURL, handlerStart); err != nil {
		return nil, fmt.Errorf("failed to fetch start page: %w", err)
	}
	s.collector.Wait()

	s.logger.Info("Crawl finished",
		"products_seen", s.session.SeenCount(),
		"items", s.session.Emitted(),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items, nil
}

// follow issues a request carrying the handler name in the colly context.
func (s *Spider) follow(url, handler string) error {
	ctx := colly.NewContext()
	ctx.Put(handlerCtxKey, handler)
	return s.collector.Request("GET", url, nil, ctx, nil)
}

// followLink absolutizes href against the response and follows it.
// Errors such as "already visited" or "forbidden domain" are the
// framework declining the request, not failures; they are logged and
// dropped.
func (s *Spider) followLink(r *colly.Response, href, handler string) {
	abs := r.Request.AbsoluteURL(href)
	if abs == "" {
		return
	}
	if err := s.follow(abs, handler); err != nil {
		s.logger.Debug("Link not followed", "url", abs, "error", err)
	}
}

// dispatch parses the response body and routes it to the handler named
// when the request was issued.
func (s *Spider) dispatch(r *colly.Response) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
	if err != nil {
		s.logger.Warn("Failed to parse page", "url", r.Request.URL.String(), "error", err)
		return
	}

	switch handler := r.Ctx.Get(handlerCtxKey); handler {
	case handlerStart:
		s.handleStart(r, doc)
	case handlerCategory:
		s.handleCategory(r, doc)
	case handlerListing:
		s.handleListing(r, doc)
	case handlerProduct:
		s.handleProduct(r, doc)
	default:
		s.logger.Warn("Response without handler", "url", r.Request.URL.String())
	}
}

// handleStart follows every category link on the start page.
func (s *Spider) handleStart(r *colly.Response, doc *goquery.Document) {
	links := StartLinks(doc)
	s.logger.Debug("Start page parsed", "categories", len(links))
	for _, href := range links {
		s.followLink(r, href, handlerCategory)
	}
}

// handleCategory follows sub-category links, or treats the page itself as
// a listing when there are none.
func (s *Spider) handleCategory(r *colly.Response, doc *goquery.Document) {
	subcats := SubcategoryLinks(doc)
	if len(subcats) == 0 {
		s.handleListing(r, doc)
		return
	}
	for _, href := range subcats {
		s.followLink(r, href, handlerListing)
	}
}

// handleListing follows unseen product links, then the next listing page
// unless the item cap has been reached.
func (s *Spider) handleListing(r *colly.Response, doc *goquery.Document) {
	for _, href := range ProductLinks(doc) {
		abs := r.Request.AbsoluteURL(href)
		if abs == "" {
			continue
		}
		if !s.session.MarkSeen(abs) {
			continue
		}
		if err := s.follow(abs, handlerProduct); err != nil {
			s.logger.Debug("Product link not followed", "url", abs, "error", err)
		}
	}

	if s.session.ReachedMax() {
		return
	}

	if next := NextPageURL(doc, r.Request.URL); next != "" {
		s.followLink(r, next, handlerListing)
	}
}

// handleProduct extracts one record from a product page. Emission is
// suppressed once the item cap has been reached.
func (s *Spider) handleProduct(r *colly.Response, doc *goquery.Document) {
	if s.session.ReachedMax() {
		return
	}

	item := extract.Product(doc, r.Request.URL)

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	s.session.RecordEmit()

	s.logger.Debug("Product extracted",
		"url", item.ProductURL,
		"name", item.ProductName,
		"images", len(item.Images),
	)
}
