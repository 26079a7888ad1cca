package marketplace

import (
	"fmt"

	"github.com/DuckMart/marketplace-engine/internal/asset"
)

// guardListable applies the listing preconditions in a fixed order: asset
// capability, ownership, price, approval. No ledger state is touched until
// every guard has passed.
func (e *engine) guardListable(contract string, tokenId uint64, price uint64, caller string) error {
	supported, err := e.assets.SupportsCapability(contract, asset.NonFungibleCapability)
	if err != nil {
		return fmt.Errorf("capability lookup for %s: %v", contract, err)
	}
	if !supported {
		return fmt.Errorf("%w: %s", ErrUnsupportedAsset, contract)
	}

	owner, err := e.assets.OwnerOf(contract, tokenId)
	if err != nil {
		return fmt.Errorf("owner lookup for %s token %d: %v", contract, tokenId, err)
	}
	if owner != caller {
		return fmt.Errorf("%w: %s token %d", ErrNotAssetOwner, contract, tokenId)
	}

	if price == 0 {
		return fmt.Errorf("%w: %s token %d", ErrPriceInvalid, contract, tokenId)
	}

	approved, err := e.assets.GetApproved(contract, tokenId)
	if err != nil {
		return fmt.Errorf("approval lookup for %s token %d: %v", contract, tokenId, err)
	}
	if approved != e.address {
		return fmt.Errorf("%w: %s token %d", ErrNotApproved, contract, tokenId)
	}

	return nil
}
