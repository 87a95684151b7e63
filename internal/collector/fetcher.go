package collector

import (
	"context"

	"PivotPeers/internal/model"
)

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	// FetchDailyBars returns up to `days` daily bars for the symbol, oldest
	// first. An empty result without error means the provider had no data.
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
