package asset

import (
	"encoding/json"
	"fmt"
)

type Provider struct {
	rpcClient *rpcClient
}

type royaltyInfo struct {
	Receiver string `json:"receiver"`
	Amount   uint64 `json:"amount"`
}

type transferResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
}

func NewProvider(rpcClient *rpcClient) *Provider {
	return &Provider{rpcClient: rpcClient}
}

func (p *Provider) GetTokenOwner(contract string, tokenId uint64) (string, error) {
	response, err := p.call("OwnerOf", contract, fmt.Sprintf("%d", tokenId))
	if err != nil {
		return "", err
	}

	return response.ResultAsString(), nil
}

func (p *Provider) GetApprovedSpender(contract string, tokenId uint64) (string, error) {
	response, err := p.call("GetApproved", contract, fmt.Sprintf("%d", tokenId))
	if err != nil {
		return "", err
	}

	return response.ResultAsString(), nil
}

func (p *Provider) SupportsCapability(contract string, capability string) (bool, error) {
	response, err := p.call("SupportsCapability", contract, capability)
	if err != nil {
		return false, err
	}

	var supported bool
	if err := json.Unmarshal(response.Result, &supported); err != nil {
		return false, err
	}

	return supported, nil
}

func (p *Provider) GetRoyaltyInfo(contract string, tokenId, salePrice uint64) (string, uint64, error) {
	response, err := p.call("RoyaltyInfo", contract, fmt.Sprintf("%d", tokenId), fmt.Sprintf("%d", salePrice))
	if err != nil {
		return "", 0, err
	}

	jsonString, err := response.ResultAsJson()
	if err != nil {
		return "", 0, err
	}

	var info royaltyInfo
	if err := json.Unmarshal(jsonString, &info); err != nil {
		return "", 0, err
	}

	return info.Receiver, info.Amount, nil
}

func (p *Provider) TransferFrom(contract, from, to string, tokenId uint64) error {
	response, err := p.call("TransferFrom", contract, from, to, fmt.Sprintf("%d", tokenId))
	if err != nil {
		return err
	}

	var result transferResult
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("transfer rejected: %s", result.Reason)
	}

	return nil
}

func (p *Provider) SendPayment(recipient string, amount uint64) error {
	response, err := p.call("SendPayment", recipient, fmt.Sprintf("%d", amount))
	if err != nil {
		return err
	}

	var result transferResult
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("payment rejected: %s", result.Reason)
	}

	return nil
}

func (p *Provider) call(method string, params ...interface{}) (*rpcResponse, error) {
	response, err := p.rpcClient.call(method, params)
	if err != nil {
		return nil, err
	}

	if response == nil {
		return nil, fmt.Errorf("%s: empty response", method)
	}

	if response.Error != nil {
		return nil, *response.Error
	}

	return response, nil
}
