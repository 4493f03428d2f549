package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atlasledger/go-bank-recon/internal/common/textnorm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips legal suffix and punctuation",
			in:   "Alpha Consulting Ltd.",
			want: "alpha consulting",
		},
		{
			name: "folds greek diacritics including final tonos",
			in:   "ΤΟΠΟΓΡΑΦΙΚΌ Διάγραμμα",
			want: "τοπογραφικο διαγραμμα",
		},
		{
			name: "drops greek legal form after punctuation split",
			in:   "A.P. Andreou & Sons ΕΠΕ",
			want: "a p andreou sons",
		},
		{
			name: "collapses whitespace",
			in:   "  Multiple \t  Spaces  ",
			want: "multiple spaces",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Normalize(tt.in))
		})
	}
}

func TestKeywords(t *testing.T) {
	got := textnorm.Keywords("Payment for τοπογραφικό")

	assert.Equal(t, []string{"payment", "πληρωμη", "for", "τοπογραφικο", "topographical"}, got)
	assert.Nil(t, textnorm.Keywords("  "))
}

func TestOverlap(t *testing.T) {
	shared, ratio := textnorm.Overlap(
		"Τοπογραφικό διάγραμμα for plot 123",
		"Topographical diagram preparation",
	)

	assert.Equal(t, 2, shared)
	assert.InDelta(t, 2.0/3.0, ratio, 0.0001)

	shared, ratio = textnorm.Overlap("something", "")
	assert.Equal(t, 0, shared)
	assert.Zero(t, ratio)
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		a     string
		b     string
		want  float64
		delta float64
	}{
		{
			name: "identical after normalization",
			a:    "Πληρωμή",
			b:    "πληρωμη",
			want: 1,
		},
		{
			name: "legal suffix ignored",
			a:    "Alpha Consulting Ltd",
			b:    "ALPHA CONSULTING",
			want: 1,
		},
		{
			name: "substring containment",
			a:    "Acme",
			b:    "Acme Holdings",
			want: 0.90,
		},
		{
			name:  "near miss by edit distance",
			a:     "Nicosia Engineering",
			b:     "Nicosia Enginering",
			want:  1 - 1.0/19.0,
			delta: 0.0001,
		},
		{
			name: "empty side scores zero",
			a:    "",
			b:    "anything",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textnorm.Similarity(tt.a, tt.b)
			if tt.delta > 0 {
				assert.InDelta(t, tt.want, got, tt.delta)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
