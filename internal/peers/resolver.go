// Package peers resolves industry peers for a seed ticker via the Finnhub
// peers endpoint, with a static fallback table for well-known symbols.
package peers

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"PivotPeers/internal/model"
)

// maxSymbolLen bounds accepted peer symbol length, defending against
// malformed payloads.
const maxSymbolLen = 12

// Resolver finds peer tickers for a seed symbol.
type Resolver struct {
	client *resty.Client
	apiKey string
	limit  int
	log    *logrus.Entry
}

// NewResolver creates a Resolver. An empty apiKey disables the live lookup,
// leaving only the static fallback table.
func NewResolver(apiKey string, limit int, timeout time.Duration, proxyURL string, log *logrus.Entry) *Resolver {
	client := resty.New().
		SetBaseURL("https://finnhub.io/api/v1").
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &Resolver{
		client: client,
		apiKey: apiKey,
		limit:  limit,
		log:    log,
	}
}

// Resolve returns an ordered, de-duplicated peer list for the seed, never
// including the seed itself and never longer than the configured limit.
// Failures of the live lookup are absorbed: the fallback table answers, and
// a seed unknown to both yields an empty list, which is a valid outcome.
func (r *Resolver) Resolve(ctx context.Context, seed string) []string {
	seed = model.NormalizeSymbol(seed)

	peers := r.fromService(ctx, seed)
	if len(peers) == 0 {
		peers = r.fromFallback(seed)
	}
	if len(peers) > r.limit {
		peers = peers[:r.limit]
	}
	return peers
}

func (r *Resolver) fromService(ctx context.Context, seed string) []string {
	if r.apiKey == "" {
		return nil
	}

	// Finnhub returns a plain JSON array; decode loosely so non-string
	// entries can be dropped instead of failing the whole payload.
	var raw []interface{}
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol": seed,
			"token":  r.apiKey,
		}).
		SetResult(&raw).
		Get("/stock/peers")
	if err != nil {
		r.log.WithField("seed", seed).Warnf("peer lookup failed: %v", err)
		return nil
	}
	if !resp.IsSuccess() {
		r.log.WithField("seed", seed).Warnf("peer lookup status %d", resp.StatusCode())
		return nil
	}

	out := make([]string, 0, len(raw))
	seen := map[string]bool{seed: true}
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		sym := model.NormalizeSymbol(s)
		if sym == "" || len(sym) > maxSymbolLen || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
		if len(out) >= r.limit {
			break
		}
	}
	return out
}

func (r *Resolver) fromFallback(seed string) []string {
	fb, ok := fallbackPeers[seed]
	if !ok {
		return nil
	}
	// Copy so callers can never mutate the table.
	out := make([]string, len(fb))
	copy(out, fb)
	return out
}
