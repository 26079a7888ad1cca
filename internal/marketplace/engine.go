package marketplace

import (
	"fmt"

	"github.com/DuckMart/marketplace-engine/internal/asset"
	"github.com/DuckMart/marketplace-engine/internal/entity"
	"github.com/DuckMart/marketplace-engine/internal/event"
	"go.uber.org/zap"
)

// Engine is the public operation surface of the marketplace. Every operation
// runs as one atomic unit: either all ledger changes and the single external
// transfer commit together, or none do.
type Engine interface {
	List(contract string, tokenId uint64, price uint64, caller string) error
	Buy(contract string, tokenId uint64, paidAmount uint64, buyer string) error
	Cancel(contract string, tokenId uint64, caller string) error
	UpdatePrice(contract string, tokenId uint64, newPrice uint64, caller string) error
	Withdraw(caller string) (uint64, error)
	PayRoyalties(caller string) error
	GetListing(contract string, tokenId uint64) (entity.Listing, error)
	GetAvailableProceeds(caller string) (uint64, error)
}

type engine struct {
	store     *Store
	assets    asset.Service
	payer     asset.Payer
	address   string
	royalties bool
	guard     *callGuard
}

// NewEngine builds an engine over an injected store. address is the identity
// asset approvals must name for a listing to be accepted.
func NewEngine(store *Store, assets asset.Service, payer asset.Payer, address string, royaltiesEnabled bool) Engine {
	return &engine{
		store:     store,
		assets:    assets,
		payer:     payer,
		address:   address,
		royalties: royaltiesEnabled,
		guard:     &callGuard{},
	}
}

func (e *engine) List(contract string, tokenId uint64, price uint64, caller string) error {
	if err := e.guard.lock(); err != nil {
		return err
	}
	defer e.guard.unlock()

	if e.store.Listings().Has(contract, tokenId) {
		return fmt.Errorf("%w: %s token %d", ErrAlreadyListed, contract, tokenId)
	}

	if err := e.guardListable(contract, tokenId, price, caller); err != nil {
		return err
	}

	if err := e.store.Listings().Add(contract, tokenId, price, caller); err != nil {
		return err
	}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.Uint64("price", price),
		zap.String("seller", caller),
	).Info("Marketplace: Item listed")

	event.EmitEvent(event.ItemListedEvent, event.ItemListed{Seller: caller, Contract: contract, TokenId: tokenId, Price: price})

	return nil
}

func (e *engine) Buy(contract string, tokenId uint64, paidAmount uint64, buyer string) error {
	if err := e.guard.lock(); err != nil {
		return err
	}
	defer e.guard.unlock()

	listing := e.store.Listings().Get(contract, tokenId)
	if !listing.Exists() {
		return fmt.Errorf("%w: %s token %d", ErrNotListed, contract, tokenId)
	}

	// Exact match, not at-least. Overpayment is rejected.
	if paidAmount != listing.Price {
		return fmt.Errorf("%w: %s token %d paid %d price %d", ErrValueMismatch, contract, tokenId, paidAmount, listing.Price)
	}

	receiver, royalty, err := e.royaltyFor(contract, tokenId, listing.Price)
	if err != nil {
		return err
	}

	if royalty > paidAmount {
		return fmt.Errorf("%w: %s token %d royalty %d price %d", ErrRoyaltyInvalid, contract, tokenId, royalty, paidAmount)
	}

	seller := listing.Seller

	if royalty > 0 {
		e.store.Royalties().Append(seller, entity.RoyaltyObligation{Receiver: receiver, Amount: royalty})
	}
	e.store.Proceeds().Credit(seller, paidAmount-royalty)
	e.store.Listings().Delete(contract, tokenId)

	e.guard.beginExternal()
	err = e.assets.Transfer(contract, seller, buyer, tokenId)
	e.guard.endExternal()

	if err != nil {
		e.store.Listings().Restore(listing)
		e.store.Proceeds().Debit(seller, paidAmount-royalty)
		if royalty > 0 {
			e.store.Royalties().PopLast(seller)
		}

		zap.L().With(
			zap.String("contract", contract),
			zap.Uint64("tokenId", tokenId),
			zap.Error(err),
		).Error("Marketplace: Asset transfer failed, sale rolled back")

		return fmt.Errorf("%w: %s token %d: %v", ErrTransferFailed, contract, tokenId, err)
	}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.Uint64("price", listing.Price),
		zap.Uint64("royalty", royalty),
		zap.String("buyer", buyer),
		zap.String("seller", seller),
	).Info("Marketplace: Item bought")

	event.EmitEvent(event.ItemBoughtEvent, event.ItemBought{
		Buyer:    buyer,
		Seller:   seller,
		Contract: contract,
		TokenId:  tokenId,
		Price:    listing.Price,
		Royalty:  royalty,
	})

	return nil
}

func (e *engine) Cancel(contract string, tokenId uint64, caller string) error {
	if err := e.guard.lock(); err != nil {
		return err
	}
	defer e.guard.unlock()

	if err := e.store.Listings().Cancel(contract, tokenId, caller); err != nil {
		return err
	}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.String("seller", caller),
	).Info("Marketplace: Listing cancelled")

	event.EmitEvent(event.ListingCancelledEvent, event.ListingCancelled{Seller: caller, Contract: contract, TokenId: tokenId})

	return nil
}

func (e *engine) UpdatePrice(contract string, tokenId uint64, newPrice uint64, caller string) error {
	if err := e.guard.lock(); err != nil {
		return err
	}
	defer e.guard.unlock()

	if err := e.store.Listings().UpdatePrice(contract, tokenId, newPrice, caller); err != nil {
		return err
	}

	zap.L().With(
		zap.String("contract", contract),
		zap.Uint64("tokenId", tokenId),
		zap.Uint64("newPrice", newPrice),
	).Info("Marketplace: Price updated")

	event.EmitEvent(event.PriceUpdatedEvent, event.PriceUpdated{Seller: caller, Contract: contract, TokenId: tokenId, NewPrice: newPrice})

	return nil
}

func (e *engine) Withdraw(caller string) (uint64, error) {
	if err := e.guard.lock(); err != nil {
		return 0, err
	}
	defer e.guard.unlock()

	if e.store.Royalties().HasOutstanding(caller) {
		return 0, fmt.Errorf("%w: %s", ErrUnpaidRoyalties, caller)
	}

	if e.store.Proceeds().Balance(caller) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoProceeds, caller)
	}

	// Balance is zeroed before the payment attempt, never after.
	amount := e.store.Proceeds().Zero(caller)

	e.guard.beginExternal()
	err := e.payer.Pay(caller, amount)
	e.guard.endExternal()

	if err != nil {
		e.store.Proceeds().Restore(caller, amount)

		zap.L().With(
			zap.String("seller", caller),
			zap.Uint64("amount", amount),
			zap.Error(err),
		).Error("Marketplace: Withdrawal payment failed, balance restored")

		return 0, fmt.Errorf("%w: withdrawal of %d for %s: %v", ErrTransferFailed, amount, caller, err)
	}

	zap.L().With(zap.String("seller", caller), zap.Uint64("amount", amount)).Info("Marketplace: Funds withdrawn")

	event.EmitEvent(event.FundsWithdrawnEvent, event.FundsWithdrawn{Seller: caller, Amount: amount})

	return amount, nil
}

func (e *engine) PayRoyalties(caller string) error {
	if err := e.guard.lock(); err != nil {
		return err
	}
	defer e.guard.unlock()

	obligations := e.store.Royalties().Obligations(caller)
	if len(obligations) == 0 {
		return nil
	}

	e.guard.beginExternal()
	var failed error
	for _, obligation := range obligations {
		if err := e.payer.Pay(obligation.Receiver, obligation.Amount); err != nil {
			zap.L().With(
				zap.String("receiver", obligation.Receiver),
				zap.Uint64("amount", obligation.Amount),
				zap.Error(err),
			).Error("Marketplace: Royalty payment failed")

			if failed == nil {
				failed = fmt.Errorf("%w: royalty of %d to %s: %v", ErrTransferFailed, obligation.Amount, obligation.Receiver, err)
			}
		}
	}
	e.guard.endExternal()

	// Any failure leaves the whole queue unsettled so withdrawals stay blocked.
	if failed != nil {
		return failed
	}

	e.store.Royalties().Clear(caller)

	for _, obligation := range obligations {
		zap.L().With(
			zap.String("receiver", obligation.Receiver),
			zap.Uint64("amount", obligation.Amount),
		).Info("Marketplace: Royalty paid")

		event.EmitEvent(event.RoyaltyPaidEvent, event.RoyaltyPaid{Seller: caller, Receiver: obligation.Receiver, Amount: obligation.Amount})
	}

	return nil
}

func (e *engine) GetListing(contract string, tokenId uint64) (entity.Listing, error) {
	if err := e.guard.lock(); err != nil {
		return entity.Listing{}, err
	}
	defer e.guard.unlock()

	listing := e.store.Listings().Get(contract, tokenId)
	if !listing.Exists() {
		return entity.Listing{}, fmt.Errorf("%w: %s token %d", ErrNotListed, contract, tokenId)
	}

	return listing, nil
}

func (e *engine) GetAvailableProceeds(caller string) (uint64, error) {
	if err := e.guard.lock(); err != nil {
		return 0, err
	}
	defer e.guard.unlock()

	return e.store.Proceeds().Balance(caller), nil
}

func (e *engine) royaltyFor(contract string, tokenId uint64, salePrice uint64) (string, uint64, error) {
	if !e.royalties {
		return "", 0, nil
	}

	supported, err := e.assets.SupportsCapability(contract, asset.RoyaltyCapability)
	if err != nil {
		return "", 0, fmt.Errorf("royalty capability lookup for %s: %v", contract, err)
	}

	if !supported {
		return "", 0, nil
	}

	receiver, amount, err := e.assets.RoyaltyInfo(contract, tokenId, salePrice)
	if err != nil {
		return "", 0, fmt.Errorf("royalty lookup for %s token %d: %v", contract, tokenId, err)
	}

	return receiver, amount, nil
}
