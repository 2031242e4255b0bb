package tcgapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardJSON = `{
	"id": "base1-4",
	"name": "Charizard",
	"rarity": "Rare Holo",
	"images": {"small": "https://img.example/s.png", "large": "https://img.example/l.png"},
	"cardmarket": {"prices": {"averageSellPrice": 150.5}}
}`

func TestCard(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "secret-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "/cards/base1-4", r.URL.Path)
		fmt.Fprintf(w, `{"data": %s}`, cardJSON)
	}))
	defer srv.Close()

	c := New("secret-key", WithBaseURL(srv.URL))

	card, err := c.Card(context.Background(), "base1-4")
	require.NoError(t, err)
	assert.Equal(t, "Charizard", card.Name)
	assert.Equal(t, 150.5, card.Price())
	assert.Equal(t, "https://img.example/l.png", card.Image())

	// Second lookup is served from cache.
	_, err = c.Card(context.Background(), "base1-4")
	require.NoError(t, err)
	assert.EqualValues(t, 1, requests.Load())
}

func TestSearchPlainQuery(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/cards", r.URL.Path)
		assert.Equal(t, "name:char*", r.URL.Query().Get("q"))
		fmt.Fprintf(w, `{"data": [
			{"id": "base1-1", "name": "Alakazam"},
			%s
		]}`, cardJSON)
	}))
	defer srv.Close()

	c := New("secret-key", WithBaseURL(srv.URL))

	cards, err := c.Search(context.Background(), "char")
	require.NoError(t, err)
	require.Len(t, cards, 2)

	// Fuzzy ranking puts the matching name first; unmatched results keep
	// their API order after it.
	assert.Equal(t, "Charizard", cards[0].Name)
	assert.Equal(t, "Alakazam", cards[1].Name)

	// The search result and the individual cards are now cached.
	_, err = c.Search(context.Background(), "char")
	require.NoError(t, err)
	card, err := c.Card(context.Background(), "base1-4")
	require.NoError(t, err)
	assert.Equal(t, "Charizard", card.Name)
	assert.EqualValues(t, 1, requests.Load())
}

func TestSearchStructuredQueryPassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "set.id:base1", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"data": []}`)
	}))
	defer srv.Close()

	c := New("secret-key", WithBaseURL(srv.URL))

	cards, err := c.Search(context.Background(), "set.id:base1")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestAPIErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := New("bad-key", WithBaseURL(srv.URL))

	_, err := c.Card(context.Background(), "base1-4")
	assert.Error(t, err)
}

func TestRankByName(t *testing.T) {
	cards := []Card{
		{ID: "a", Name: "Pikachu"},
		{ID: "b", Name: "Charizard"},
		{ID: "c", Name: "Charmander"},
	}

	ranked := rankByName("charizard", cards)
	require.Len(t, ranked, 3)
	assert.Equal(t, "Charizard", ranked[0].Name)
}
