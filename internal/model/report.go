package model

// PivotLevels holds the five classic floor-trader levels derived from one bar.
type PivotLevels struct {
	P  float64
	S1 float64
	S2 float64
	R1 float64
	R2 float64
}

// Row is one computed line of the report: the latest bar of one ticker plus
// its pivot levels. Price and level fields are rounded to 2 decimals for
// display; Date is the bar's trading date in YYYY-MM-DD form.
type Row struct {
	Symbol    string
	Date      string
	High      float64
	Low       float64
	Close     float64
	PrevClose float64
	ChangePct float64
	Pivot     PivotLevels
	IsSeed    bool
}

// Group is one seed ticker together with the rows of its resolved peers.
// Rows are ordered seed-first, then alphabetically by symbol.
type Group struct {
	Seed string
	Rows []Row
}

// Label returns the display label used for the group in all outputs.
func (g *Group) Label() string {
	return g.Seed + " + Peers"
}
