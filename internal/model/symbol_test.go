package model

import (
	"reflect"
	"testing"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"nvda", "NVDA"},
		{"  aapl  ", "AAPL"},
		{"MSFT", "MSFT"},
		{"  ", ""},
		{"brk.b", "BRK.B"},
	}
	for _, tt := range tests {
		if got := NormalizeSymbol(tt.in); got != tt.want {
			t.Errorf("NormalizeSymbol(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestDedupeSymbols(t *testing.T) {
	got := DedupeSymbols([]string{"nvda", "AMD", "NVDA", " amd ", "", "intc"})
	want := []string{"NVDA", "AMD", "INTC"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSplitSymbolList(t *testing.T) {
	got := SplitSymbolList(" nvda, amd ,NVDA,, tsm ")
	want := []string{"NVDA", "AMD", "TSM"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if SplitSymbolList("") != nil {
		t.Error("expected nil for blank input")
	}
	if got := SplitSymbolList("  ,  , "); len(got) != 0 {
		t.Errorf("expected no symbols for list of blanks, got %v", got)
	}
}
