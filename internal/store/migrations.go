package store

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS mechanics (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			avatar_url TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS orders (
			id     TEXT PRIMARY KEY,
			number TEXT NOT NULL UNIQUE
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			start_time  DATETIME NOT NULL,
			end_time    DATETIME NOT NULL,
			mechanic_id TEXT REFERENCES mechanics(id),
			order_id    TEXT REFERENCES orders(id),
			order_text  TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL DEFAULT 'none'
			            CHECK(status IN ('requested', 'scheduled', 'in_progress', 'ready', 'completed', 'none')),
			image_url   TEXT NOT NULL DEFAULT '',
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_start ON bookings(start_time);
		CREATE INDEX IF NOT EXISTS idx_bookings_mechanic ON bookings(mechanic_id);
		CREATE INDEX IF NOT EXISTS idx_bookings_order ON bookings(order_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
