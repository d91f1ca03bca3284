package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econome/internal/model"
)

func TestNormalizePrice(t *testing.T) {
	n := &Normalizer{}

	cases := []struct {
		raw  string
		want string
	}{
		{"$5.89", "5.89"},
		{"$0.50", "0.50"},
		{"USD 12", "12.00"},
		{" $1,299.99 ", "1299.99"},
		{".50", "0.50"},
		// limpeza por caractere, sem locale: vírgula decimal é descartada
		{"5,89", "589.00"},
		// o sinal é removido junto com o resto do lixo
		{"-3.50", "3.50"},
	}

	for _, c := range cases {
		p, err := n.Normalize(model.RawRecord{
			StoreName:   "Target",
			ProductName: "Apple",
			URL:         "http://x",
			Price:       c.raw,
		})
		require.NoError(t, err, "preço %q", c.raw)
		assert.Equal(t, c.want, p.Price.StringFixed(2), "preço %q", c.raw)
	}
}

func TestNormalizeInvalidPrice(t *testing.T) {
	n := &Normalizer{}

	for _, raw := range []string{"", "N/A", "No price available", "$", "1.2.3", "..."} {
		_, err := n.Normalize(model.RawRecord{
			StoreName:   "Target",
			ProductName: "Apple",
			Price:       raw,
		})
		assert.ErrorIs(t, err, ErrInvalidPrice, "preço %q", raw)
	}
}

func TestNormalizeMissingFields(t *testing.T) {
	n := &Normalizer{}

	_, err := n.Normalize(model.RawRecord{ProductName: "Apple", Price: "$1.00"})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = n.Normalize(model.RawRecord{StoreName: "Target", Price: "$1.00"})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestNormalizePassesFieldsThrough(t *testing.T) {
	n := &Normalizer{}

	p, err := n.Normalize(model.RawRecord{
		StoreName:   " Target ",
		ProductName: "Apple",
		URL:         "http://x",
		Price:       "$0.50",
	})
	require.NoError(t, err)

	// sem trim: os campos seguem exatamente como vieram
	assert.Equal(t, " Target ", p.StoreName)
	assert.Equal(t, "Apple", p.ProductName)
	assert.Equal(t, "http://x", p.URL)
}

func TestNormalizeTimestamp(t *testing.T) {
	fixed := time.Date(2024, 11, 3, 14, 30, 12, 987654321, time.UTC)
	n := &Normalizer{Now: func() time.Time { return fixed }}

	p, err := n.Normalize(model.RawRecord{
		StoreName:   "Target",
		ProductName: "Apple",
		Price:       "$0.50",
	})
	require.NoError(t, err)

	// granularidade de segundo
	assert.True(t, p.LastCheckedAt.Equal(fixed.Truncate(time.Second)))
}
