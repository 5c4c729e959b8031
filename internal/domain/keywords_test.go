package domain

import (
	"reflect"
	"testing"
)

func TestKeywordExtractor_Extract(t *testing.T) {
	e := NewKeywordExtractor(DefaultMaxKeywords, DefaultStopWords)

	tests := []struct {
		name  string
		parts []string
		want  []string
	}{
		{
			name:  "frequency then first occurrence",
			parts: []string{"Stock control", "Inventory and stock for warehouse teams", "Inventory stock"},
			want:  []string{"stock", "inventory", "control", "warehouse", "teams"},
		},
		{
			name:  "drops short tokens and stop words",
			parts: []string{"How to do it with the POS", "", ""},
			want:  []string{"pos"},
		},
		{
			name:  "strips tags, expressions and punctuation",
			parts: []string{"", "Barcode <strong>scanning</strong>, {siteName} explained!", "Scanning"},
			want:  []string{"scanning", "barcode", "explained"},
		},
		{
			name:  "empty input",
			parts: []string{"", "", ""},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.parts...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKeywordExtractor_Cap(t *testing.T) {
	e := NewKeywordExtractor(3, nil)

	got := e.Extract("alpha beta gamma delta epsilon alpha")
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestKeywordExtractor_DefaultCap(t *testing.T) {
	e := NewKeywordExtractor(0, nil)

	got := e.Extract("one1 two2 three3 four4 five5 six6 seven7 eight8 nine9 ten10 eleven11 twelve12")
	if len(got) != DefaultMaxKeywords {
		t.Errorf("expected %d keywords, got %d", DefaultMaxKeywords, len(got))
	}
}
