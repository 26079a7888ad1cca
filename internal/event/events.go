package event

type Type string

const (
	ItemListedEvent       Type = "ItemListedEvent"
	ItemBoughtEvent       Type = "ItemBoughtEvent"
	ListingCancelledEvent Type = "ListingCancelledEvent"
	PriceUpdatedEvent     Type = "PriceUpdatedEvent"
	FundsWithdrawnEvent   Type = "FundsWithdrawnEvent"
	RoyaltyPaidEvent      Type = "RoyaltyPaidEvent"
)

type ItemListed struct {
	Seller   string `json:"seller"`
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Price    uint64 `json:"price"`
}

type ItemBought struct {
	Buyer    string `json:"buyer"`
	Seller   string `json:"seller"`
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Price    uint64 `json:"price"`
	Royalty  uint64 `json:"royalty"`
}

type ListingCancelled struct {
	Seller   string `json:"seller"`
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
}

type PriceUpdated struct {
	Seller   string `json:"seller"`
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	NewPrice uint64 `json:"newPrice"`
}

type FundsWithdrawn struct {
	Seller string `json:"seller"`
	Amount uint64 `json:"amount"`
}

type RoyaltyPaid struct {
	Seller   string `json:"seller"`
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
}
