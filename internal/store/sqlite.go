// Package store provides the SQLite-backed record store for bookings,
// mechanics, and orders.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
)

// ErrReadOnly is returned for writes against a store opened read-only.
var ErrReadOnly = errors.New("store is read-only")

// SQLite implements booking.Store using SQLite.
type SQLite struct {
	db       *sql.DB
	writable bool
}

// New opens (or creates) a store at path and runs migrations.
// When writable is false every write is refused and CanUpdate reports false,
// mirroring a host that has not granted record editing.
func New(path string, writable bool) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db, writable: writable}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// CanUpdate reports whether the given booking records may be written.
func (s *SQLite) CanUpdate(ctx context.Context, ids ...string) bool {
	return s.writable
}

const bookingColumns = `
	b.id, b.title, b.start_time, b.end_time, b.order_text, b.status, b.image_url, b.created_at,
	m.id, m.name, o.id, o.number
`

const bookingJoins = `
	FROM bookings b
	LEFT JOIN mechanics m ON m.id = b.mechanic_id
	LEFT JOIN orders o ON o.id = b.order_id
`

// ListBookings returns all booking records ordered by start time.
func (s *SQLite) ListBookings(ctx context.Context) ([]*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` ORDER BY b.start_time, b.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying bookings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}

	return bookings, nil
}

// GetBooking retrieves a booking by ID.
func (s *SQLite) GetBooking(ctx context.Context, id string) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = ?`

	b, err := scanBooking(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, booking.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		b           booking.Booking
		start, end  string
		createdAt   sql.NullString
		status      string
		mechID      sql.NullString
		mechName    sql.NullString
		orderID     sql.NullString
		orderNumber sql.NullString
	)

	err := row.Scan(
		&b.ID, &b.Title, &start, &end, &b.OrderText, &status, &b.ImageURL, &createdAt,
		&mechID, &mechName, &orderID, &orderNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning booking: %w", err)
	}

	if b.Start, err = time.Parse(time.RFC3339, start); err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}
	if b.End, err = time.Parse(time.RFC3339, end); err != nil {
		return nil, fmt.Errorf("parsing end time: %w", err)
	}
	if createdAt.Valid {
		b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt.String)
	}

	b.Status, err = booking.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", b.ID, err)
	}

	if mechID.Valid {
		b.Mechanic = &booking.RecordRef{ID: mechID.String, Name: mechName.String}
	}
	if orderID.Valid {
		b.OrderRefs = []booking.RecordRef{{ID: orderID.String, Name: orderNumber.String}}
	}

	return &b, nil
}

// CreateBooking inserts a booking, assigning its ID. A mechanic reference
// with an empty ID is resolved by name, creating the mechanic if needed.
func (s *SQLite) CreateBooking(ctx context.Context, b *booking.Booking) error {
	if !s.writable {
		return ErrReadOnly
	}

	var mechanicID sql.NullString
	if b.Mechanic != nil {
		ref, err := s.resolveMechanicRef(ctx, b.Mechanic)
		if err != nil {
			return err
		}
		b.Mechanic = ref
		mechanicID = sql.NullString{String: ref.ID, Valid: true}
	}

	var orderID sql.NullString
	if len(b.OrderRefs) > 0 {
		orderID = sql.NullString{String: b.OrderRefs[0].ID, Valid: true}
	}

	b.ID = uuid.NewString()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO bookings (id, title, start_time, end_time, mechanic_id, order_id, order_text, status, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		b.ID,
		b.Title,
		b.Start.Format(time.RFC3339),
		b.End.Format(time.RFC3339),
		mechanicID,
		orderID,
		b.OrderText,
		string(b.Status),
		b.ImageURL,
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}

	return nil
}

// UpdateBooking applies a field-change set to a booking record.
func (s *SQLite) UpdateBooking(ctx context.Context, id string, changes booking.FieldChanges) error {
	if !s.writable {
		return ErrReadOnly
	}

	var (
		sets []string
		args []any
	)

	if changes.Start != nil {
		sets = append(sets, "start_time = ?")
		args = append(args, changes.Start.Format(time.RFC3339))
	}
	if changes.End != nil {
		sets = append(sets, "end_time = ?")
		args = append(args, changes.End.Format(time.RFC3339))
	}
	if changes.Mechanic != nil {
		ref, err := s.resolveMechanicRef(ctx, changes.Mechanic)
		if err != nil {
			return err
		}
		sets = append(sets, "mechanic_id = ?")
		args = append(args, ref.ID)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE bookings SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating booking: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return booking.ErrBookingNotFound
	}

	return nil
}

// resolveMechanicRef returns a reference with a record id. A name-only
// reference resolves to the existing record for that name, or creates one --
// the accepted downstream-create risk of name-only writes.
func (s *SQLite) resolveMechanicRef(ctx context.Context, ref *booking.RecordRef) (*booking.RecordRef, error) {
	if ref.ID != "" {
		return ref, nil
	}
	m, err := s.EnsureMechanic(ctx, ref.Name)
	if err != nil {
		return nil, err
	}
	return &booking.RecordRef{ID: m.ID, Name: m.Name}, nil
}

// ListMechanics returns all mechanic records ordered by name.
func (s *SQLite) ListMechanics(ctx context.Context) ([]*booking.Mechanic, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, avatar_url FROM mechanics ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying mechanics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var mechanics []*booking.Mechanic
	for rows.Next() {
		var m booking.Mechanic
		if err := rows.Scan(&m.ID, &m.Name, &m.AvatarURL); err != nil {
			return nil, fmt.Errorf("scanning mechanic: %w", err)
		}
		mechanics = append(mechanics, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mechanics: %w", err)
	}

	return mechanics, nil
}

// EnsureMechanic returns the mechanic with the given name, creating the
// record if it does not exist.
func (s *SQLite) EnsureMechanic(ctx context.Context, name string) (*booking.Mechanic, error) {
	if !s.writable {
		return nil, ErrReadOnly
	}

	var m booking.Mechanic
	err := s.db.QueryRowContext(ctx, `SELECT id, name, avatar_url FROM mechanics WHERE name = ?`, name).
		Scan(&m.ID, &m.Name, &m.AvatarURL)
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("querying mechanic: %w", err)
	}

	m = booking.Mechanic{ID: uuid.NewString(), Name: name}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO mechanics (id, name) VALUES (?, ?)`, m.ID, m.Name); err != nil {
		return nil, fmt.Errorf("inserting mechanic: %w", err)
	}
	return &m, nil
}

// ListOrders returns all order records ordered by number.
func (s *SQLite) ListOrders(ctx context.Context) ([]*booking.Order, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, number FROM orders ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var orders []*booking.Order
	for rows.Next() {
		var o booking.Order
		if err := rows.Scan(&o.ID, &o.Number); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

// GetOrderByNumber retrieves an order by its order number.
func (s *SQLite) GetOrderByNumber(ctx context.Context, number string) (*booking.Order, error) {
	var o booking.Order
	err := s.db.QueryRowContext(ctx, `SELECT id, number FROM orders WHERE number = ?`, number).
		Scan(&o.ID, &o.Number)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, booking.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying order: %w", err)
	}
	return &o, nil
}

// EnsureOrder returns the order with the given number, creating the record
// if it does not exist.
func (s *SQLite) EnsureOrder(ctx context.Context, number string) (*booking.Order, error) {
	if !s.writable {
		return nil, ErrReadOnly
	}

	o, err := s.GetOrderByNumber(ctx, number)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, booking.ErrOrderNotFound) {
		return nil, err
	}

	o = &booking.Order{ID: uuid.NewString(), Number: number}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO orders (id, number) VALUES (?, ?)`, o.ID, o.Number); err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}
	return o, nil
}

// SetMechanicAvatar updates a mechanic's avatar URL.
func (s *SQLite) SetMechanicAvatar(ctx context.Context, name, url string) error {
	if !s.writable {
		return ErrReadOnly
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE mechanics SET avatar_url = ? WHERE name = ?`, url, name)
	if err != nil {
		return fmt.Errorf("updating mechanic: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return booking.ErrMechanicNotFound
	}
	return nil
}
