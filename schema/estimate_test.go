package schema

import (
	"bytes"
	"testing"
)

func TestTokenEstimate(t *testing.T) {
	serialized := bytes.Repeat([]byte{'x'}, 100)
	tests := []struct {
		tier Tier
		want int
	}{
		{
			tier: TierFull,
			want: 25,
		},
		{
			tier: TierEnhanced,
			want: 28,
		},
		{
			tier: TierUltra,
			want: 33,
		},
	}
	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			est := TokenEstimate(serialized, tt.tier)
			if est != tt.want {
				t.Fatalf("unexpected estimate; want: %v, got: %v", tt.want, est)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		caption string
		value   any
		want    int
	}{
		{
			caption: "string counts whitespace words",
			value:   "DEFINE TABLE users",
			want:    3,
		},
		{
			caption: "map counts key words plus one per key",
			value: map[string]string{
				"if not": "exists",
			},
			want: 4,
		},
		{
			caption: "struct counts two per exported field",
			value: struct {
				Symbol string
				Desc   string
			}{
				Symbol: "&&",
				Desc:   "both values",
			},
			want: 7,
		},
		{
			caption: "slice sums its elements",
			value:   []string{"SELECT", "FROM targets"},
			want:    3,
		},
		{
			caption: "nil pointer counts nothing",
			value:   (*Route)(nil),
			want:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			n := WordCount(tt.value)
			if n != tt.want {
				t.Fatalf("unexpected count; want: %v, got: %v", tt.want, n)
			}
		})
	}
}

func TestCompressedFootprint(t *testing.T) {
	serialized := bytes.Repeat([]byte("statements keywords variables "), 100)
	n, err := CompressedFootprint(serialized)
	if err != nil {
		t.Fatal(err)
	}
	if n <= 0 || n >= len(serialized) {
		t.Fatalf("repetitive input must compress below its raw size; raw: %v, compressed: %v", len(serialized), n)
	}
}

func TestEstimateSchema(t *testing.T) {
	var chars [3]int
	for i, tier := range Tiers() {
		est, err := EstimateSchema(encodeTier(t, tier))
		if err != nil {
			t.Fatal(err)
		}
		if est.Tier != tier.String() {
			t.Fatalf("unexpected tier label: %v", est.Tier)
		}
		if est.Chars <= 0 || est.Words <= 0 || est.CompressedBytes <= 0 || est.EstimatedSize <= 0 {
			t.Fatalf("every heuristic must be positive; got: %#v", est)
		}
		chars[i] = est.Chars
	}
	full, ultra := chars[0], chars[2]
	if ultra >= full {
		t.Fatalf("the ultra tier must serialize smaller than the full tier; full: %v, ultra: %v", full, ultra)
	}
}
