package entity

import (
	"crypto/md5"
	"fmt"
)

type MarketplaceAction struct {
	ID        string     `json:"id"`
	Contract  string     `json:"contract"`
	TokenId   uint64     `json:"tokenId"`
	Action    ActionType `json:"action"`
	Buyer     string     `json:"buyer"`
	Seller    string     `json:"seller"`
	Receiver  string     `json:"receiver"`
	Amount    uint64     `json:"amount"`
	Royalty   uint64     `json:"royalty"`
	Timestamp int64      `json:"timestamp"`
}

type ActionType string

const (
	ListingAction        ActionType = "listing"
	SaleAction           ActionType = "sale"
	DelistingAction      ActionType = "delisting"
	PriceUpdateAction    ActionType = "priceUpdate"
	WithdrawalAction     ActionType = "withdrawal"
	RoyaltyPaymentAction ActionType = "royaltyPayment"
)

func (a MarketplaceAction) Slug() string {
	return CreateActionSlug(a.ID, string(a.Action))
}

func CreateActionSlug(id, action string) string {
	data := []byte(fmt.Sprintf("action-%s-%s", id, action))
	return fmt.Sprintf("%x", md5.Sum(data))
}
