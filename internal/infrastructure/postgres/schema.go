package postgres

// schemaSQL crea las tablas del almacenamiento. Es idempotente.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS pos_records (
	key        TEXT PRIMARY KEY,
	payload    JSONB,
	compressed BYTEA,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK ((payload IS NULL) <> (compressed IS NULL))
);

CREATE TABLE IF NOT EXISTS pos_sales_journal (
	id             TEXT PRIMARY KEY,
	branch_id      TEXT NOT NULL,
	sold_at        TIMESTAMPTZ NOT NULL,
	customer_id    TEXT NOT NULL,
	payment_method TEXT NOT NULL,
	subtotal       NUMERIC(14,2) NOT NULL,
	tax            NUMERIC(14,2) NOT NULL,
	total          NUMERIC(14,2) NOT NULL,
	seller         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pos_sales_journal_branch_date
	ON pos_sales_journal (branch_id, sold_at);
`
