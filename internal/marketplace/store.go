package marketplace

// Store owns the three ledgers behind a marketplace engine. It is injected
// into the engine rather than held as process state, so independent
// marketplace instances can run side by side.
type Store struct {
	listings  *ListingLedger
	proceeds  *ProceedsLedger
	royalties *RoyaltyLedger
}

func NewStore() *Store {
	return &Store{
		listings:  NewListingLedger(),
		proceeds:  NewProceedsLedger(),
		royalties: NewRoyaltyLedger(),
	}
}

func (s *Store) Listings() *ListingLedger {
	return s.listings
}

func (s *Store) Proceeds() *ProceedsLedger {
	return s.proceeds
}

func (s *Store) Royalties() *RoyaltyLedger {
	return s.royalties
}
