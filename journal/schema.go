package journal

const Schema = `
CREATE TABLE IF NOT EXISTS order_actions (
	entry_id TEXT PRIMARY KEY,
	recorded_at DATETIME NOT NULL,
	action TEXT NOT NULL,
	account TEXT NOT NULL,
	figi TEXT NOT NULL,
	order_id TEXT NOT NULL,
	operation TEXT NOT NULL,
	status TEXT NOT NULL,
	requested_lots INTEGER NOT NULL,
	executed_lots INTEGER NOT NULL,
	price REAL NOT NULL,
	message TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_actions_recorded_at ON order_actions(recorded_at);
CREATE INDEX IF NOT EXISTS idx_order_actions_order_id ON order_actions(order_id);
`
