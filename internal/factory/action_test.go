package factory

import (
	"testing"

	"github.com/DuckMart/marketplace-engine/internal/entity"
	"github.com/DuckMart/marketplace-engine/internal/event"
)

func TestCreateSaleAction(t *testing.T) {
	f := NewActionFactory()

	action := f.CreateSaleAction(event.ItemBought{
		Buyer:    "0xbuyer",
		Seller:   "0xseller",
		Contract: "0xducks",
		TokenId:  7,
		Price:    100,
		Royalty:  10,
	})

	if action.Action != entity.SaleAction {
		t.Errorf("action = %s, want %s", action.Action, entity.SaleAction)
	}
	if action.Buyer != "0xbuyer" || action.Seller != "0xseller" {
		t.Errorf("parties not carried over: %+v", action)
	}
	if action.Amount != 100 || action.Royalty != 10 {
		t.Errorf("amounts not carried over: %+v", action)
	}
	if action.ID == "" || action.Timestamp == 0 {
		t.Errorf("id and timestamp must be populated: %+v", action)
	}
}

func TestCreatedActionsHaveUniqueIds(t *testing.T) {
	f := NewActionFactory()

	el := event.ItemListed{Seller: "0xseller", Contract: "0xducks", TokenId: 1, Price: 100}

	one := f.CreateListingAction(el)
	two := f.CreateListingAction(el)

	if one.ID == two.ID {
		t.Errorf("two actions share id %s", one.ID)
	}

	if one.Slug() == two.Slug() {
		t.Errorf("two actions share slug %s", one.Slug())
	}
}

func TestCreateWithdrawalAndRoyaltyActions(t *testing.T) {
	f := NewActionFactory()

	withdrawal := f.CreateWithdrawalAction(event.FundsWithdrawn{Seller: "0xseller", Amount: 90})
	if withdrawal.Action != entity.WithdrawalAction || withdrawal.Amount != 90 {
		t.Errorf("got %+v", withdrawal)
	}

	royalty := f.CreateRoyaltyPaymentAction(event.RoyaltyPaid{Seller: "0xseller", Receiver: "0xcreator", Amount: 10})
	if royalty.Action != entity.RoyaltyPaymentAction || royalty.Receiver != "0xcreator" || royalty.Amount != 10 {
		t.Errorf("got %+v", royalty)
	}
}
