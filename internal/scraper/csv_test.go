package scraper

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econome/internal/model"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target_products.csv")

	err := WriteCSV(path, []model.RawRecord{
		{StoreName: "Target", ProductName: "Apple", URL: "http://t/apple", Price: "$0.50"},
		{StoreName: "Target", ProductName: "Banana", URL: "http://t/banana", Price: "$0.25"},
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"1", "Target", "Apple", "http://t/apple", "$0.50", rows[1][5]}, rows[1])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "Banana", rows[2][2])

	// timestamp no formato de segundo que a ingestão espera
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, rows[1][5])
}
