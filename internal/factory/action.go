package factory

import (
	"time"

	"github.com/DuckMart/marketplace-engine/internal/entity"
	"github.com/DuckMart/marketplace-engine/internal/event"
	"github.com/nu7hatch/gouuid"
)

// ActionFactory turns engine events into the MarketplaceAction documents the
// action journal persists.
type ActionFactory struct{}

func NewActionFactory() ActionFactory {
	return ActionFactory{}
}

func (f ActionFactory) CreateListingAction(el event.ItemListed) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:        newActionId(),
		Contract:  el.Contract,
		TokenId:   el.TokenId,
		Action:    entity.ListingAction,
		Seller:    el.Seller,
		Amount:    el.Price,
		Timestamp: time.Now().Unix(),
	}
}

func (f ActionFactory) CreateSaleAction(el event.ItemBought) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:        newActionId(),
		Contract:  el.Contract,
		TokenId:   el.TokenId,
		Action:    entity.SaleAction,
		Buyer:     el.Buyer,
		Seller:    el.Seller,
		Amount:    el.Price,
		Royalty:   el.Royalty,
		Timestamp: time.Now().Unix(),
	}
}

func (f ActionFactory) CreateDelistingAction(el event.ListingCancelled) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:        newActionId(),
		Contract:  el.Contract,
		TokenId:   el.TokenId,
		Action:    entity.DelistingAction,
		Seller:    el.Seller,
		Timestamp: time.Now().Unix(),
	}
}

func (f ActionFactory) CreatePriceUpdateAction(el event.PriceUpdated) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:        newActionId(),
		Contract:  el.Contract,
		TokenId:   el.TokenId,
		Action:    entity.PriceUpdateAction,
		Seller:    el.Seller,
		Amount:    el.NewPrice,
		Timestamp: time.Now().Unix(),
	}
}

func (f ActionFactory) CreateWithdrawalAction(el event.FundsWithdrawn) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:        newActionId(),
		Action:    entity.WithdrawalAction,
		Seller:    el.Seller,
		Amount:    el.Amount,
		Timestamp: time.Now().Unix(),
	}
}

func (f ActionFactory) CreateRoyaltyPaymentAction(el event.RoyaltyPaid) entity.MarketplaceAction {
	return entity.MarketplaceAction{
		ID:        newActionId(),
		Action:    entity.RoyaltyPaymentAction,
		Seller:    el.Seller,
		Receiver:  el.Receiver,
		Amount:    el.Amount,
		Timestamp: time.Now().Unix(),
	}
}

func newActionId() string {
	u, _ := uuid.NewV4()
	return u.String()
}
