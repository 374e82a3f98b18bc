package ledger

import "errors"

var (
	// ErrSourceUnavailable means a booking, payment, status or payout read
	// failed. No partial result accompanies it.
	ErrSourceUnavailable = errors.New("data source unavailable")

	// ErrMarkFailed means a settlement could not be marked. The previous
	// completion state is unchanged and the mark may be retried.
	ErrMarkFailed = errors.New("failed to mark settlement")

	ErrOwnerRequired         = errors.New("owner id required")
	ErrInvalidMonth          = errors.New("month must be between 1 and 12 with a four-digit year")
	ErrMonthBeforeAnchor     = errors.New("month is before the first settlement month")
	ErrInvalidSettlementType = errors.New("settlement type must be payout_received or payment_done")

	ErrPayoutBelowMinimum   = errors.New("minimum payout amount is 100")
	ErrPayoutExceedsBalance = errors.New("amount exceeds available balance")
	ErrInvalidPayoutMethod  = errors.New("payout method must be bank_transfer or upi")

	// ErrPayoutDetailsMissing means the owner has no saved account number
	// (bank transfer) or UPI id (UPI) to pay into.
	ErrPayoutDetailsMissing = errors.New("payout details missing for this method")

	ErrBankDetailsIncomplete = errors.New("bank account number and IFSC code are required")
)
