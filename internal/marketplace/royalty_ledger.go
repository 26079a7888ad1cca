package marketplace

import (
	"github.com/DuckMart/marketplace-engine/internal/entity"
)

// RoyaltyLedger queues unsettled royalty obligations per seller. A seller with
// any outstanding obligation cannot withdraw proceeds.
type RoyaltyLedger struct {
	obligations map[string][]entity.RoyaltyObligation
}

func NewRoyaltyLedger() *RoyaltyLedger {
	return &RoyaltyLedger{obligations: map[string][]entity.RoyaltyObligation{}}
}

func (r *RoyaltyLedger) Append(seller string, obligation entity.RoyaltyObligation) {
	r.obligations[seller] = append(r.obligations[seller], obligation)
}

// PopLast removes the most recent obligation when a sale is rolled back.
func (r *RoyaltyLedger) PopLast(seller string) {
	queue := r.obligations[seller]
	if len(queue) == 0 {
		return
	}

	if len(queue) == 1 {
		delete(r.obligations, seller)
		return
	}

	r.obligations[seller] = queue[:len(queue)-1]
}

func (r *RoyaltyLedger) Obligations(seller string) []entity.RoyaltyObligation {
	queue := r.obligations[seller]

	obligations := make([]entity.RoyaltyObligation, len(queue))
	copy(obligations, queue)

	return obligations
}

func (r *RoyaltyLedger) HasOutstanding(seller string) bool {
	return len(r.obligations[seller]) != 0
}

// Clear settles the seller's queue. Only called once every obligation has been
// paid; a partial settlement never clears.
func (r *RoyaltyLedger) Clear(seller string) {
	delete(r.obligations, seller)
}
