// Package store persists evaluation accounts, trade fills and payout records
// in SQLite. The engine never touches this package; it receives already-loaded
// snapshots and the store never interprets them.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/propdesk/account"
)

type Store struct {
	db *sql.DB
}

func NewSQLite(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAccount inserts or replaces the account row.
func (s *Store) SaveAccount(a account.Account) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("save account: %w", err)
	}

	var reset sql.NullTime
	if a.ResetDate != nil {
		reset = sql.NullTime{Time: *a.ResetDate, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO accounts
		(number, starting_balance, profit_target, drawdown_threshold, trailing_drawdown, trailing_stop_profit, consistency_percentage, reset_date, payout_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Number, a.StartingBalance, a.ProfitTarget, a.DrawdownThreshold,
		a.TrailingDrawdown, a.TrailingStopProfit, a.ConsistencyPercentage,
		reset, a.PayoutCount,
	)
	return err
}

// LoadAccount returns one account by number.
func (s *Store) LoadAccount(number string) (account.Account, error) {
	row := s.db.QueryRow(`
		SELECT number, starting_balance, profit_target, drawdown_threshold, trailing_drawdown, trailing_stop_profit, consistency_percentage, reset_date, payout_count
		FROM accounts
		WHERE number = ?`, number)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return account.Account{}, fmt.Errorf("account %q not found", number)
		}
		return account.Account{}, err
	}
	return a, nil
}

// ListAccounts returns all accounts ordered by number.
func (s *Store) ListAccounts() ([]account.Account, error) {
	rows, err := s.db.Query(`
		SELECT number, starting_balance, profit_target, drawdown_threshold, trailing_drawdown, trailing_stop_profit, consistency_percentage, reset_date, payout_count
		FROM accounts
		ORDER BY number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAccount removes the account and every trade and payout recorded
// against it, in one transaction.
func (s *Store) DeleteAccount(number string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trades WHERE account_number = ?`, number); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM payouts WHERE account_number = ?`, number); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM accounts WHERE number = ?`, number)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account %q not found", number)
	}

	return tx.Commit()
}

// ClearExpiredReset clears the reset date once "now" has passed it, starting
// a new evaluation cycle. Maintenance operation; the engine never does this.
// Returns true when a reset date was cleared.
func (s *Store) ClearExpiredReset(number string, now time.Time) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE accounts
		SET reset_date = NULL
		WHERE number = ? AND reset_date IS NOT NULL AND reset_date <= ?`,
		number, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (account.Account, error) {
	var (
		a     account.Account
		reset sql.NullTime
	)
	err := row.Scan(
		&a.Number,
		&a.StartingBalance,
		&a.ProfitTarget,
		&a.DrawdownThreshold,
		&a.TrailingDrawdown,
		&a.TrailingStopProfit,
		&a.ConsistencyPercentage,
		&reset,
		&a.PayoutCount,
	)
	if err != nil {
		return account.Account{}, err
	}
	if reset.Valid {
		t := reset.Time
		a.ResetDate = &t
	}
	return a, nil
}
