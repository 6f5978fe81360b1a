package youtube

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
	"github.com/gocolly/colly/extensions"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/varoOP/videoplayer/internal/domain"
)

const (
	DefaultBaseURL = "https://www.youtube.com"

	lookupInterval = 500 * time.Millisecond
	lookupBurst    = 4
)

var _ domain.TitleResolver = (*CollyResolver)(nil)

// CollyResolver scrapes the title of a video from its watch page
type CollyResolver struct {
	log     zerolog.Logger
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
}

func NewCollyResolver(log zerolog.Logger, baseURL string) *CollyResolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &CollyResolver{
		log:     log.With().Str("module", "youtube").Logger(),
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: 10 * time.Second,
		limiter: rate.NewLimiter(rate.Every(lookupInterval), lookupBurst),
	}
}

func (r *CollyResolver) watchURL(videoID string) string {
	return r.baseURL + "/watch?v=" + url.QueryEscape(videoID)
}

// ResolveTitle scrapes the watch page of videoID. Lookups are rate limited.
func (r *CollyResolver) ResolveTitle(ctx context.Context, videoID string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	// a fresh collector per lookup, colly refuses to revisit a url
	cc := colly.NewCollector()
	cc.SetRequestTimeout(r.timeout)
	extensions.RandomUserAgent(cc)

	var title string
	var scrapeErr error

	cc.OnHTML("head", func(e *colly.HTMLElement) {
		if title == "" {
			title = headTitle(e.DOM)
		}
	})

	cc.OnRequest(func(req *colly.Request) {
		r.log.Debug().Str("url", req.URL.String()).Msg("visiting")
	})

	cc.OnError(func(resp *colly.Response, err error) {
		if resp != nil && resp.StatusCode != 0 {
			scrapeErr = errors.Wrapf(err, "status %d", resp.StatusCode)
			return
		}
		scrapeErr = err
	})

	target := r.watchURL(videoID)
	if err := cc.Visit(target); err != nil {
		if scrapeErr != nil {
			err = scrapeErr
		}
		return "", errors.Wrapf(err, "failed to fetch %s", target)
	}
	if scrapeErr != nil {
		return "", errors.Wrapf(scrapeErr, "failed to fetch %s", target)
	}

	if title == "" {
		return "", errors.Errorf("no title found for video %s", videoID)
	}

	return title, nil
}

// headTitle prefers og:title and falls back to the document title
func headTitle(head *goquery.Selection) string {
	if og := strings.TrimSpace(head.Find(`meta[property="og:title"]`).AttrOr("content", "")); og != "" {
		return og
	}

	doc := strings.TrimSpace(head.Find("title").First().Text())
	return strings.TrimSpace(strings.TrimSuffix(doc, "- YouTube"))
}
