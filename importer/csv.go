// Package importer parses trade-fill exports into domain records. It only
// builds TradeEvent slices; persisting them is the store's job and judging
// them is the engine's.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz/lzma"

	"github.com/rustyeddy/propdesk/account"
)

// Expected header: account,entry_date,pnl,commission
var wantHeader = []string{"account", "entry_date", "pnl", "commission"}

// ReadFile parses a trade-fill CSV. Files ending in .lzma are decompressed
// on the fly; some platforms hand out their full-history exports that way.
func ReadFile(path string) ([]account.TradeEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".lzma") {
		lr, err := lzma.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open lzma stream: %w", err)
		}
		r = lr
	}

	return Read(r)
}

// Read parses trade fills from CSV data.
func Read(r io.Reader) ([]account.TradeEvent, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty import: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var trades []account.TradeEvent
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		t, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		trades = append(trades, t)
	}

	return trades, nil
}

func checkHeader(header []string) error {
	if len(header) != len(wantHeader) {
		return fmt.Errorf("bad header: want %d columns, got %d", len(wantHeader), len(header))
	}
	for i, col := range header {
		if strings.ToLower(strings.TrimSpace(col)) != wantHeader[i] {
			return fmt.Errorf("bad header: column %d is %q, want %q", i+1, col, wantHeader[i])
		}
	}
	return nil
}

func parseRecord(rec []string) (account.TradeEvent, error) {
	var t account.TradeEvent

	t.AccountNumber = strings.TrimSpace(rec[0])
	if t.AccountNumber == "" {
		return t, fmt.Errorf("empty account number")
	}

	entry, err := parseDate(rec[1])
	if err != nil {
		return t, fmt.Errorf("entry_date: %w", err)
	}
	t.EntryDate = entry

	t.PnL, err = strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return t, fmt.Errorf("pnl %q: %w", rec[2], err)
	}
	t.Commission, err = strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err != nil {
		return t, fmt.Errorf("commission %q: %w", rec[3], err)
	}

	return t, nil
}

// parseDate accepts RFC3339 timestamps and plain dates (interpreted as UTC
// midnight).
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q (want RFC3339 or YYYY-MM-DD)", s)
	}
	return t, nil
}
