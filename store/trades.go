package store

import (
	"fmt"

	"github.com/rustyeddy/propdesk/account"
)

// InsertTrades records a batch of trade fills in one transaction. Every
// trade must reference an existing account.
func (s *Store) InsertTrades(trades []account.TradeEvent) error {
	if len(trades) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO trades (account_number, entry_date, pnl, commission)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range trades {
		if t.AccountNumber == "" {
			return fmt.Errorf("trade %d has no account number", i)
		}
		if _, err := stmt.Exec(t.AccountNumber, t.EntryDate, t.PnL, t.Commission); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListTrades returns all trade fills for one account, entry date ascending.
func (s *Store) ListTrades(number string) ([]account.TradeEvent, error) {
	rows, err := s.db.Query(`
		SELECT account_number, entry_date, pnl, commission
		FROM trades
		WHERE account_number = ?
		ORDER BY entry_date ASC`, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []account.TradeEvent
	for rows.Next() {
		var t account.TradeEvent
		if err := rows.Scan(&t.AccountNumber, &t.EntryDate, &t.PnL, &t.Commission); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
