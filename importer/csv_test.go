package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz/lzma"
)

const sampleCSV = `account,entry_date,pnl,commission
EVAL-001,2024-03-10,500,4.5
EVAL-001,2024-03-11T14:30:00Z,-200,4.5
`

func TestReadSample(t *testing.T) {
	t.Parallel()

	trades, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, trades, 2)

	assert.Equal(t, "EVAL-001", trades[0].AccountNumber)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), trades[0].EntryDate)
	assert.InDelta(t, 500.0, trades[0].PnL, 1e-9)
	assert.InDelta(t, 4.5, trades[0].Commission, 1e-9)

	assert.Equal(t, time.Date(2024, 3, 11, 14, 30, 0, 0, time.UTC), trades[1].EntryDate)
	assert.InDelta(t, -200.0, trades[1].PnL, 1e-9)
	assert.InDelta(t, 495.5, trades[0].Net(), 1e-9)
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()

	_, err := Read(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing header")
}

func TestReadHeaderOnly(t *testing.T) {
	t.Parallel()

	trades, err := Read(strings.NewReader("account,entry_date,pnl,commission\n"))
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestReadBadHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"wrong column name", "acct,entry_date,pnl,commission\n"},
		{"missing column", "account,entry_date,pnl\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bad header")
		})
	}
}

func TestReadBadRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  string
		want string
	}{
		{"empty account", ",2024-03-10,500,4.5", "line 2"},
		{"bad date", "EVAL-001,10/03/2024,500,4.5", "bad date"},
		{"bad pnl", "EVAL-001,2024-03-10,abc,4.5", "pnl"},
		{"bad commission", "EVAL-001,2024-03-10,500,abc", "commission"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := "account,entry_date,pnl,commission\n" + tt.row + "\n"
			_, err := Read(strings.NewReader(input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadFilePlain(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fills.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	trades, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, trades, 2)
}

func TestReadFileLZMA(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fills.csv.lzma")

	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := lzma.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	trades, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, trades, 2)
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
