package invoice

import "time"

// ApplyPayment sets the paid flag and recomputes PaidDate.
//
// An invoice counts as unpaid while PaidDate is nil. Paying an unpaid invoice
// stamps PaidDate with now; un-paying always clears it; paying an invoice that
// already has a PaidDate keeps the original timestamp.
func (i *Invoice) ApplyPayment(paid bool, now time.Time) {
	switch {
	case !paid:
		i.PaidDate = nil
	case i.PaidDate == nil:
		at := now
		i.PaidDate = &at
	}
	i.Paid = paid
}
