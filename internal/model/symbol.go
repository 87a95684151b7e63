package model

import "strings"

// NormalizeSymbol trims whitespace and upper-cases a ticker symbol.
// Symbols compare equal after normalization regardless of input casing.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// DedupeSymbols normalizes a list of symbols and removes duplicates,
// preserving first-seen order. Empty entries are dropped.
func DedupeSymbols(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		n := NormalizeSymbol(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// SplitSymbolList parses a comma-separated ticker list into normalized,
// de-duplicated symbols. Returns nil for a blank input.
func SplitSymbolList(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return DedupeSymbols(strings.Split(csv, ","))
}
