package marketplace

// ProceedsLedger holds per-seller balances owed from completed sales, net of
// royalties. Funds only leave through an explicit withdrawal (pull payment).
type ProceedsLedger struct {
	balances map[string]uint64
}

func NewProceedsLedger() *ProceedsLedger {
	return &ProceedsLedger{balances: map[string]uint64{}}
}

func (p *ProceedsLedger) Credit(seller string, amount uint64) {
	p.balances[seller] += amount
}

func (p *ProceedsLedger) Balance(seller string) uint64 {
	return p.balances[seller]
}

// Zero clears the seller's balance and returns the amount that was held.
// State is mutated before any payment attempt; callers roll back with Restore
// if the payment fails.
func (p *ProceedsLedger) Zero(seller string) uint64 {
	amount := p.balances[seller]
	delete(p.balances, seller)

	return amount
}

func (p *ProceedsLedger) Restore(seller string, amount uint64) {
	p.balances[seller] = amount
}

// Debit removes part of a balance when a sale is rolled back.
func (p *ProceedsLedger) Debit(seller string, amount uint64) {
	if p.balances[seller] <= amount {
		delete(p.balances, seller)
		return
	}

	p.balances[seller] -= amount
}
