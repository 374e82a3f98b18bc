package sqlite

import "database/sql"

// schema sets up the database. These run on startup to ensure tables exist.
// Amounts and dates are TEXT: rows are imported from the hosted database
// as-is and coerced when read.
const schema = `
CREATE TABLE IF NOT EXISTS properties (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bookings (
    booking_id TEXT PRIMARY KEY,
    property_id TEXT NOT NULL,
    check_in TEXT,
    status TEXT NOT NULL,
    total_amount TEXT,
    commission_amount TEXT,
    FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS payments (
    id TEXT PRIMARY KEY,
    booking_id TEXT NOT NULL,
    amount TEXT,
    payment_recipient TEXT,
    payment_date TEXT,
    FOREIGN KEY (booking_id) REFERENCES bookings(booking_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS owner_settlements (
    owner_id TEXT NOT NULL,
    settlement_month TEXT NOT NULL,
    status TEXT NOT NULL,
    completed_at TEXT NOT NULL,
    settlement_type TEXT NOT NULL,
    PRIMARY KEY (owner_id, settlement_month)
);

CREATE TABLE IF NOT EXISTS payout_requests (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    amount TEXT NOT NULL,
    payout_method TEXT NOT NULL,
    owner_notes TEXT,
    status TEXT NOT NULL,
    requested_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS owner_bank_details (
    owner_id TEXT PRIMARY KEY,
    account_holder_name TEXT,
    bank_account_number TEXT,
    bank_ifsc TEXT,
    bank_name TEXT,
    bank_branch TEXT,
    upi_id TEXT,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties(owner_id);
CREATE INDEX IF NOT EXISTS idx_bookings_property_id ON bookings(property_id);
CREATE INDEX IF NOT EXISTS idx_payments_booking_id ON payments(booking_id);
CREATE INDEX IF NOT EXISTS idx_payout_requests_owner_id ON payout_requests(owner_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
