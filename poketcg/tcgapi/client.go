package tcgapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "https://api.pokemontcg.io/v2"
	cacheSize      = 2048
	cacheExpiry    = 15 * time.Minute
)

// Client talks to the external card-data API. Responses are cached and
// concurrent requests for the same key are coalesced, so a burst of
// commands touching the same card costs one upstream call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      *lru.Cache
	group      singleflight.Group
}

type cachedEntry struct {
	value     any
	timestamp time.Time
}

type Opt func(*Client)

func WithBaseURL(baseURL string) Opt {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Opt {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(apiKey string, opts ...Opt) *Client {
	cache, _ := lru.New(cacheSize)
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		cache:      cache,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Card fetches one catalog entry by its id.
func (c *Client) Card(ctx context.Context, id string) (*Card, error) {
	key := "card:" + id
	if card, ok := c.cached(key); ok {
		return card.(*Card), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		var resp struct {
			Data Card `json:"data"`
		}
		if err := c.get(ctx, "cards/"+url.PathEscape(id), nil, &resp); err != nil {
			return nil, err
		}
		card := resp.Data
		c.cache.Add(key, cachedEntry{value: &card, timestamp: time.Now()})
		return &card, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Card), nil
}

// Search queries the catalog. A query containing ':' is passed through as
// the API's structured query syntax; a plain query searches by name
// wildcard and ranks the results fuzzily against what was typed.
func (c *Client) Search(ctx context.Context, query string) ([]Card, error) {
	query = strings.TrimSpace(query)
	key := "search:" + query
	if cards, ok := c.cached(key); ok {
		return cards.([]Card), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		q := query
		plain := !strings.Contains(query, ":")
		if plain {
			q = fmt.Sprintf("name:%s*", query)
		}

		var resp struct {
			Data []Card `json:"data"`
		}
		params := url.Values{"q": []string{q}}
		if err := c.get(ctx, "cards", params, &resp); err != nil {
			return nil, err
		}

		cards := resp.Data
		if plain {
			cards = rankByName(query, cards)
		}

		c.cache.Add(key, cachedEntry{value: cards, timestamp: time.Now()})
		for i := range cards {
			card := cards[i]
			c.cache.Add("card:"+card.ID, cachedEntry{value: &card, timestamp: time.Now()})
		}
		return cards, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Card), nil
}

func (c *Client) cached(key string) (any, bool) {
	v, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	entry := v.(cachedEntry)
	if time.Since(entry.timestamp) > cacheExpiry {
		c.cache.Remove(key)
		return nil, false
	}
	return entry.value, true
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("card api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("card api returned %d for %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("card api response decode failed: %w", err)
	}
	return nil
}

// cardNames implements fuzzy.Source over catalog results.
type cardNames []Card

func (c cardNames) Len() int            { return len(c) }
func (c cardNames) String(i int) string { return c[i].Name }

// rankByName orders cards by fuzzy match quality against the typed query.
// Cards that do not match at all keep their API order after the matches.
func rankByName(query string, cards []Card) []Card {
	matches := fuzzy.FindFrom(query, cardNames(cards))
	if len(matches) == 0 {
		return cards
	}

	ranked := make([]Card, 0, len(cards))
	seen := make(map[int]bool, len(matches))
	for _, m := range matches {
		ranked = append(ranked, cards[m.Index])
		seen[m.Index] = true
	}
	for i, card := range cards {
		if !seen[i] {
			ranked = append(ranked, card)
		}
	}
	return ranked
}
