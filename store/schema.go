// store/schema.go
package store

const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
	number TEXT PRIMARY KEY,
	starting_balance REAL NOT NULL,
	profit_target REAL NOT NULL,
	drawdown_threshold REAL NOT NULL,
	trailing_drawdown INTEGER NOT NULL,
	trailing_stop_profit REAL NOT NULL,
	consistency_percentage REAL NOT NULL,
	reset_date DATETIME,
	payout_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS trades (
	account_number TEXT NOT NULL,
	entry_date DATETIME NOT NULL,
	pnl REAL NOT NULL,
	commission REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account_number, entry_date);

CREATE TABLE IF NOT EXISTS payouts (
	id TEXT PRIMARY KEY,
	account_number TEXT NOT NULL,
	date DATETIME NOT NULL,
	amount REAL NOT NULL,
	status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_payouts_account ON payouts(account_number, date);
`
