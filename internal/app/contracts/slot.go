package contracts

import "context"

// SlotProvider supplies the bookable time labels for a doctor on a date.
// On source failure it returns an empty list together with a recoverable
// error so callers render "no slots" rather than failing.
type SlotProvider interface {
	SlotsFor(ctx context.Context, doctorID, date string) ([]string, error)
}
