package marketplace

import (
	"fmt"

	"github.com/DuckMart/marketplace-engine/internal/entity"
)

type listingKey struct {
	contract string
	tokenId  uint64
}

// ListingLedger is the keyed store of active listings. A key holds at most one
// listing and an existing listing always has a price above zero.
type ListingLedger struct {
	listings map[listingKey]entity.Listing
}

func NewListingLedger() *ListingLedger {
	return &ListingLedger{listings: map[listingKey]entity.Listing{}}
}

func (l *ListingLedger) Add(contract string, tokenId uint64, price uint64, seller string) error {
	key := listingKey{contract, tokenId}
	if _, exists := l.listings[key]; exists {
		return fmt.Errorf("%w: %s token %d", ErrAlreadyListed, contract, tokenId)
	}

	if price == 0 {
		return fmt.Errorf("%w: %s token %d", ErrPriceInvalid, contract, tokenId)
	}

	l.listings[key] = entity.Listing{Contract: contract, TokenId: tokenId, Price: price, Seller: seller}

	return nil
}

func (l *ListingLedger) UpdatePrice(contract string, tokenId uint64, newPrice uint64, caller string) error {
	key := listingKey{contract, tokenId}
	listing, exists := l.listings[key]
	if !exists {
		return fmt.Errorf("%w: %s token %d", ErrNotListed, contract, tokenId)
	}

	if listing.Seller != caller {
		return fmt.Errorf("%w: %s token %d", ErrNotAssetOwner, contract, tokenId)
	}

	if newPrice == 0 {
		return fmt.Errorf("%w: %s token %d", ErrPriceInvalid, contract, tokenId)
	}

	listing.Price = newPrice
	l.listings[key] = listing

	return nil
}

func (l *ListingLedger) Cancel(contract string, tokenId uint64, caller string) error {
	key := listingKey{contract, tokenId}
	listing, exists := l.listings[key]
	if !exists {
		return fmt.Errorf("%w: %s token %d", ErrNotListed, contract, tokenId)
	}

	if listing.Seller != caller {
		return fmt.Errorf("%w: %s token %d", ErrNotAssetOwner, contract, tokenId)
	}

	delete(l.listings, key)

	return nil
}

// Get returns the listing for the key, or a zero listing when the item is not
// for sale.
func (l *ListingLedger) Get(contract string, tokenId uint64) entity.Listing {
	return l.listings[listingKey{contract, tokenId}]
}

func (l *ListingLedger) Has(contract string, tokenId uint64) bool {
	_, exists := l.listings[listingKey{contract, tokenId}]
	return exists
}

// Delete removes a listing without authorisation checks. The engine uses it
// when a sale consumes the listing.
func (l *ListingLedger) Delete(contract string, tokenId uint64) {
	delete(l.listings, listingKey{contract, tokenId})
}

// Restore puts a listing back after a failed external transfer.
func (l *ListingLedger) Restore(listing entity.Listing) {
	l.listings[listingKey{listing.Contract, listing.TokenId}] = listing
}
