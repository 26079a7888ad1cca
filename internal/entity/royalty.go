package entity

// RoyaltyObligation is a deferred payment owed to a third party, queued against
// the seller at sale time. Unsettled obligations block the seller's withdrawals.
type RoyaltyObligation struct {
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
}
