package store

import (
	"database/sql"
	"fmt"

	"github.com/rustyeddy/propdesk/account"
)

// SavePayout records a payout and bumps the account's payout counter in one
// transaction.
func (s *Store) SavePayout(p account.PayoutEvent) error {
	if p.ID == "" {
		return fmt.Errorf("save payout: id is required")
	}
	if p.Amount <= 0 {
		return fmt.Errorf("save payout: amount must be positive")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE accounts SET payout_count = payout_count + 1 WHERE number = ?`,
		p.AccountNumber)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account %q not found", p.AccountNumber)
	}

	if _, err := tx.Exec(`
		INSERT INTO payouts (id, account_number, date, amount, status)
		VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.AccountNumber, p.Date, p.Amount, string(p.Status),
	); err != nil {
		return err
	}

	return tx.Commit()
}

// ListPayouts returns all payouts for one account, date ascending.
func (s *Store) ListPayouts(number string) ([]account.PayoutEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, account_number, date, amount, status
		FROM payouts
		WHERE account_number = ?
		ORDER BY date ASC`, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []account.PayoutEvent
	for rows.Next() {
		var (
			p      account.PayoutEvent
			status string
		)
		if err := rows.Scan(&p.ID, &p.AccountNumber, &p.Date, &p.Amount, &status); err != nil {
			return nil, err
		}
		p.Status = account.PayoutStatus(status)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPayout returns a single payout by ID.
func (s *Store) GetPayout(id string) (account.PayoutEvent, error) {
	var (
		p      account.PayoutEvent
		status string
	)
	err := s.db.QueryRow(`
		SELECT id, account_number, date, amount, status
		FROM payouts
		WHERE id = ?`, id).Scan(&p.ID, &p.AccountNumber, &p.Date, &p.Amount, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return account.PayoutEvent{}, fmt.Errorf("payout %q not found", id)
		}
		return account.PayoutEvent{}, err
	}
	p.Status = account.PayoutStatus(status)
	return p, nil
}

// UpdatePayoutStatus sets the approval state of a payout. There is no
// enforced transition machine; any status may replace any other.
func (s *Store) UpdatePayoutStatus(id string, status account.PayoutStatus) error {
	res, err := s.db.Exec(`UPDATE payouts SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payout %q not found", id)
	}
	return nil
}

// DeletePayout removes a payout and decrements the account's payout counter
// in one transaction.
func (s *Store) DeletePayout(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var number string
	if err := tx.QueryRow(`SELECT account_number FROM payouts WHERE id = ?`, id).Scan(&number); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("payout %q not found", id)
		}
		return err
	}

	if _, err := tx.Exec(`DELETE FROM payouts WHERE id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`
		UPDATE accounts
		SET payout_count = payout_count - 1
		WHERE number = ? AND payout_count > 0`, number); err != nil {
		return err
	}

	return tx.Commit()
}
