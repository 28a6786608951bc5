// File: database/repository/ledger/interface.go
package ledgerRepo

import "context"

// LedgerRepository records which (date, time) slots are taken. Reserve is the
// only gate against double-booking: implementations must make its
// check-and-insert a single atomic step.
type LedgerRepository interface {
	IsOccupied(ctx context.Context, date, time string) (bool, error)
	// OccupiedSlotsFor returns the taken times for date in ascending order,
	// or an empty slice for a date never reserved.
	OccupiedSlotsFor(ctx context.Context, date string) ([]string, error)
	// Reserve returns utils.ErrAlreadyOccupied if the slot is taken.
	Reserve(ctx context.Context, date, time string) error
	// Release undoes a Reserve. It exists only to compensate a booking
	// transaction that failed after reserving.
	Release(ctx context.Context, date, time string) error
}
