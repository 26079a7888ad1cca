package asset

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

type Capability string

const (
	// NonFungibleCapability is the base interface every listable asset
	// contract must declare.
	NonFungibleCapability Capability = "nonfungible"
	// RoyaltyCapability gates the optional royalty lookup.
	RoyaltyCapability Capability = "royalty"
)

// Service is the read/mutate surface the marketplace requires from any asset
// contract it lists: ownership, approval, transfer and the optional royalty
// lookup.
type Service interface {
	OwnerOf(contract string, tokenId uint64) (string, error)
	GetApproved(contract string, tokenId uint64) (string, error)
	Transfer(contract, from, to string, tokenId uint64) error
	SupportsCapability(contract string, capability Capability) (bool, error)
	RoyaltyInfo(contract string, tokenId, salePrice uint64) (string, uint64, error)
}

// Payer moves funds out of the marketplace to an external account.
type Payer interface {
	Pay(recipient string, amount uint64) error
}

type service struct {
	provider *Provider
	cache    *cache.Cache
	cacheTtl time.Duration
}

func NewAssetService(provider *Provider, cache *cache.Cache, cacheTtlSeconds int) Service {
	return service{provider, cache, time.Duration(cacheTtlSeconds) * time.Second}
}

func (s service) OwnerOf(contract string, tokenId uint64) (string, error) {
	return s.provider.GetTokenOwner(contract, tokenId)
}

func (s service) GetApproved(contract string, tokenId uint64) (string, error) {
	return s.provider.GetApprovedSpender(contract, tokenId)
}

func (s service) Transfer(contract, from, to string, tokenId uint64) error {
	return s.provider.TransferFrom(contract, from, to, tokenId)
}

// SupportsCapability caches answers; a contract's capability set does not
// change between deployments.
func (s service) SupportsCapability(contract string, capability Capability) (bool, error) {
	cacheKey := fmt.Sprintf("capability-%s-%s", contract, capability)
	if supported, found := s.cache.Get(cacheKey); found {
		return supported.(bool), nil
	}

	supported, err := s.provider.SupportsCapability(contract, string(capability))
	if err != nil {
		return false, err
	}

	s.cache.Set(cacheKey, supported, s.cacheTtl)

	return supported, nil
}

func (s service) RoyaltyInfo(contract string, tokenId, salePrice uint64) (string, uint64, error) {
	return s.provider.GetRoyaltyInfo(contract, tokenId, salePrice)
}

type payer struct {
	provider *Provider
}

func NewPayer(provider *Provider) Payer {
	return payer{provider}
}

func (p payer) Pay(recipient string, amount uint64) error {
	return p.provider.SendPayment(recipient, amount)
}
