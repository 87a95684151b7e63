// Package report builds pivot-level groups for seed tickers and renders them
// as CSV, HTML and PDF outputs.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"PivotPeers/internal/calculator"
	"PivotPeers/internal/collector"
	"PivotPeers/internal/model"
)

// PeerResolver supplies the peer tickers for a seed symbol.
type PeerResolver interface {
	Resolve(ctx context.Context, seed string) []string
}

// Builder assembles report groups: peers resolved per seed, one pivot row
// computed per ticker.
type Builder struct {
	Fetcher  collector.Fetcher
	Resolver PeerResolver
	Lookback int
	log      *logrus.Entry
}

// NewBuilder creates a Builder.
func NewBuilder(fetcher collector.Fetcher, resolver PeerResolver, lookback int, log *logrus.Entry) *Builder {
	return &Builder{
		Fetcher:  fetcher,
		Resolver: resolver,
		Lookback: lookback,
		log:      log,
	}
}

// ComputeRow fetches the recent daily history of a symbol and derives its
// pivot row from the latest bar. The previous bar supplies prevClose; with a
// single bar available prevClose degrades to the close itself, reporting a
// 0% change rather than failing.
func (b *Builder) ComputeRow(ctx context.Context, symbol string) (model.Row, error) {
	symbol = model.NormalizeSymbol(symbol)

	bars, err := b.Fetcher.FetchDailyBars(ctx, symbol, b.Lookback)
	if err != nil {
		return model.Row{}, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return model.Row{}, fmt.Errorf("empty data for %s", symbol)
	}

	last := bars[len(bars)-1]
	prevClose := last.Close
	if len(bars) >= 2 {
		prevClose = bars[len(bars)-2].Close
	}

	chg := calculator.CalculateChangePct(last.Close, prevClose)
	pv := calculator.CalculatePivots(last.High, last.Low, last.Close)

	return model.Row{
		Symbol:    symbol,
		Date:      last.Time.Format("2006-01-02"),
		High:      calculator.Round2(last.High),
		Low:       calculator.Round2(last.Low),
		Close:     calculator.Round2(last.Close),
		PrevClose: calculator.Round2(prevClose),
		ChangePct: calculator.Round2(chg),
		Pivot: model.PivotLevels{
			P:  calculator.Round2(pv.P),
			S1: calculator.Round2(pv.S1),
			S2: calculator.Round2(pv.S2),
			R1: calculator.Round2(pv.R1),
			R2: calculator.Round2(pv.R2),
		},
	}, nil
}

// rowResult is the per-ticker outcome within a group: either a computed row
// or the reason it was dropped.
type rowResult struct {
	symbol string
	row    model.Row
	err    error
}

// BuildGroup resolves the seed's peers and computes one row per ticker.
// Individual fetch failures are logged and dropped; a group with zero rows
// fails as a whole.
func (b *Builder) BuildGroup(ctx context.Context, seed string) (*model.Group, error) {
	seed = model.NormalizeSymbol(seed)

	candidates := model.DedupeSymbols(append([]string{seed}, b.Resolver.Resolve(ctx, seed)...))

	results := make([]rowResult, 0, len(candidates))
	for _, sym := range candidates {
		row, err := b.ComputeRow(ctx, sym)
		results = append(results, rowResult{symbol: sym, row: row, err: err})
	}

	rows := make([]model.Row, 0, len(results))
	for _, res := range results {
		if res.err != nil {
			b.log.WithField("seed", seed).Warnf("skipping %s: %v", res.symbol, res.err)
			continue
		}
		res.row.IsSeed = res.row.Symbol == seed
		rows = append(rows, res.row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid rows for %s", seed)
	}

	// Seed row first, remainder alphabetical by symbol.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].IsSeed != rows[j].IsSeed {
			return rows[i].IsSeed
		}
		return rows[i].Symbol < rows[j].Symbol
	})

	b.log.WithField("seed", seed).Infof("group built with %d rows", len(rows))
	return &model.Group{Seed: seed, Rows: rows}, nil
}

// Build assembles one group per seed. Seeds whose group fails are skipped;
// a run producing zero groups is a fatal error.
func (b *Builder) Build(ctx context.Context, seeds []string) ([]*model.Group, error) {
	seeds = model.DedupeSymbols(seeds)
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds provided")
	}

	groups := make([]*model.Group, 0, len(seeds))
	for _, seed := range seeds {
		g, err := b.BuildGroup(ctx, seed)
		if err != nil {
			b.log.Errorf("group %s failed: %v", seed, err)
			continue
		}
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("all %d seed groups failed", len(seeds))
	}
	return groups, nil
}
