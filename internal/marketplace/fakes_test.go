package marketplace

import (
	"errors"
	"fmt"

	"github.com/DuckMart/marketplace-engine/internal/asset"
)

type fakeAssets struct {
	owners       map[string]string
	approvals    map[string]string
	capabilities map[string]bool

	royaltyReceiver string
	royaltyBps      uint64

	transferErr error
	onTransfer  func()
	transfers   []string
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{
		owners:       map[string]string{},
		approvals:    map[string]string{},
		capabilities: map[string]bool{},
	}
}

func tokenKey(contract string, tokenId uint64) string {
	return fmt.Sprintf("%s/%d", contract, tokenId)
}

func (f *fakeAssets) OwnerOf(contract string, tokenId uint64) (string, error) {
	owner, ok := f.owners[tokenKey(contract, tokenId)]
	if !ok {
		return "", errors.New("unknown token")
	}

	return owner, nil
}

func (f *fakeAssets) GetApproved(contract string, tokenId uint64) (string, error) {
	return f.approvals[tokenKey(contract, tokenId)], nil
}

func (f *fakeAssets) Transfer(contract, from, to string, tokenId uint64) error {
	if f.onTransfer != nil {
		f.onTransfer()
	}

	if f.transferErr != nil {
		return f.transferErr
	}

	f.owners[tokenKey(contract, tokenId)] = to
	f.transfers = append(f.transfers, fmt.Sprintf("%s:%s->%s", tokenKey(contract, tokenId), from, to))

	return nil
}

func (f *fakeAssets) SupportsCapability(contract string, capability asset.Capability) (bool, error) {
	return f.capabilities[fmt.Sprintf("%s/%s", contract, capability)], nil
}

func (f *fakeAssets) RoyaltyInfo(contract string, tokenId, salePrice uint64) (string, uint64, error) {
	return f.royaltyReceiver, salePrice * f.royaltyBps / 10000, nil
}

func (f *fakeAssets) mintToken(contract string, tokenId uint64, owner, approved string) {
	f.owners[tokenKey(contract, tokenId)] = owner
	f.approvals[tokenKey(contract, tokenId)] = approved
	f.capabilities[fmt.Sprintf("%s/%s", contract, asset.NonFungibleCapability)] = true
}

func (f *fakeAssets) enableRoyalties(contract, receiver string, bps uint64) {
	f.capabilities[fmt.Sprintf("%s/%s", contract, asset.RoyaltyCapability)] = true
	f.royaltyReceiver = receiver
	f.royaltyBps = bps
}

type fakePayer struct {
	failFor  map[string]bool
	payments map[string]uint64
	onPay    func()
}

func newFakePayer() *fakePayer {
	return &fakePayer{
		failFor:  map[string]bool{},
		payments: map[string]uint64{},
	}
}

func (p *fakePayer) Pay(recipient string, amount uint64) error {
	if p.onPay != nil {
		p.onPay()
	}

	if p.failFor[recipient] {
		return errors.New("payment rejected")
	}

	p.payments[recipient] += amount

	return nil
}
