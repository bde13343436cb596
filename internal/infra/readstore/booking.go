package readstore

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewColumns = `
	b.id, b.start_time, b.end_time, b.status,
	i.id, i.name, i.owner_id,
	u.id, u.name
`

const bookingViewFrom = `
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT` + bookingViewColumns + bookingViewFrom + `WHERE b.id = @id`
	row := s.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	view, err := scanBookingView(row)
	if err != nil {
		return nil, wrapReadErr("failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindForBooker(ctx context.Context, bookerID uuid.UUID, state booking.State, now time.Time, page queries.Page) ([]queries.BookingView, error) {
	query := `SELECT` + bookingViewColumns + bookingViewFrom +
		`WHERE b.booker_id = @user_id ` + statePredicate(state) + `
		ORDER BY b.start_time DESC
		LIMIT @limit OFFSET @offset`
	return s.list(ctx, query, bookerID, now, page)
}

func (s *BookingReadStore) FindForOwner(ctx context.Context, ownerID uuid.UUID, state booking.State, now time.Time, page queries.Page) ([]queries.BookingView, error) {
	query := `SELECT` + bookingViewColumns + bookingViewFrom +
		`WHERE i.owner_id = @user_id ` + statePredicate(state) + `
		ORDER BY b.start_time DESC
		LIMIT @limit OFFSET @offset`
	return s.list(ctx, query, ownerID, now, page)
}

func (s *BookingReadStore) list(ctx context.Context, query string, userID uuid.UUID, now time.Time, page queries.Page) ([]queries.BookingView, error) {
	rows, err := s.pool.Query(ctx, query, pgx.NamedArgs{
		"user_id": userID,
		"now":     now,
		"limit":   page.Limit,
		"offset":  page.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

// FindApprovedForItems loads every APPROVED booking of the given items in
// one round trip, grouped by item for the last/next projection.
func (s *BookingReadStore) FindApprovedForItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]item.BookingRef, error) {
	const query = `
		SELECT id, item_id, booker_id, start_time, end_time, status
		FROM bookings
		WHERE item_id = ANY(@item_ids) AND status = 'APPROVED'
	`
	rows, err := s.pool.Query(ctx, query, pgx.NamedArgs{"item_ids": itemIDs})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for items", err)
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]item.BookingRef, len(itemIDs))
	for rows.Next() {
		var (
			ref    item.BookingRef
			itemID uuid.UUID
			status string
		)
		if err := rows.Scan(&ref.ID, &itemID, &ref.BookerID, &ref.Start, &ref.End, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking ref", err)
		}
		ref.Status = booking.Status(status)
		grouped[itemID] = append(grouped[itemID], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking refs", err)
	}
	return grouped, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.Start, &v.End, &v.Status,
		&v.Item.ID, &v.Item.Name, &v.Item.OwnerID,
		&v.Booker.ID, &v.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// statePredicate maps the six filter states onto SQL. The switch is
// exhaustive over booking.States; ParseState guarantees no other value
// reaches here.
func statePredicate(state booking.State) string {
	switch state {
	case booking.StateAll:
		return ""
	case booking.StateCurrent:
		return "AND b.start_time <= @now AND b.end_time >= @now"
	case booking.StatePast:
		return "AND b.end_time < @now"
	case booking.StateFuture:
		return "AND b.start_time > @now"
	case booking.StateWaiting:
		return "AND b.status = 'WAITING'"
	case booking.StateRejected:
		return "AND b.status = 'REJECTED'"
	default:
		return ""
	}
}
