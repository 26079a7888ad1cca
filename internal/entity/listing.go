package entity

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Listing is an active sale offer for a single token at a fixed price.
// A token has at most one listing at any time; a zero Price means not listed.
type Listing struct {
	Contract string `json:"contract"`
	TokenId  uint64 `json:"tokenId"`
	Price    uint64 `json:"price"`
	Seller   string `json:"seller"`
}

func (l Listing) Slug() string {
	return CreateListingSlug(l.TokenId, l.Contract)
}

func (l Listing) Exists() bool {
	return l.Price != 0
}

func CreateListingSlug(tokenId uint64, contract string) string {
	return slug.Make(fmt.Sprintf("listing-%d-%s", tokenId, contract))
}
