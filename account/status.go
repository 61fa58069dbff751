package account

import "fmt"

// PayoutStatus is the approval state of a payout. Transitions are user-driven
// edits with no enforced machine; any status may be set to any other.
type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutValidated PayoutStatus = "validated"
	PayoutRefused   PayoutStatus = "refused"
	PayoutPaid      PayoutStatus = "paid"
)

// Settled reports whether the payout is economically real: approved or
// already paid out. Only settled payouts reduce the tracked balance.
func (s PayoutStatus) Settled() bool {
	return s == PayoutValidated || s == PayoutPaid
}

// ParsePayoutStatus converts user input into a PayoutStatus.
func ParsePayoutStatus(s string) (PayoutStatus, error) {
	switch PayoutStatus(s) {
	case PayoutPending, PayoutValidated, PayoutRefused, PayoutPaid:
		return PayoutStatus(s), nil
	}
	return "", fmt.Errorf("unknown payout status %q (want pending, validated, refused or paid)", s)
}
