package peers

// fallbackPeers is a hand-curated mapping of well-known tickers to plausible
// industry peers, used when the live peer lookup is unconfigured or fails.
// Treat as immutable.
var fallbackPeers = map[string][]string{
	"NVDA":  {"AMD", "INTC", "AVGO", "QCOM", "TSM"},
	"AMD":   {"NVDA", "INTC", "AVGO", "QCOM", "TSM"},
	"INTC":  {"AMD", "NVDA", "TSM", "QCOM", "MU"},
	"AAPL":  {"MSFT", "GOOGL", "AMZN", "META", "NVDA"},
	"MSFT":  {"AAPL", "GOOGL", "AMZN", "ORCL", "CRM"},
	"GOOGL": {"MSFT", "META", "AMZN", "AAPL", "NFLX"},
	"AMZN":  {"MSFT", "GOOGL", "AAPL", "WMT", "BABA"},
	"META":  {"GOOGL", "SNAP", "PINS", "NFLX", "MSFT"},
	"TSLA":  {"F", "GM", "RIVN", "LCID", "NIO"},
	"JPM":   {"BAC", "WFC", "C", "GS", "MS"},
	"XOM":   {"CVX", "COP", "SLB", "OXY", "BP"},
}
