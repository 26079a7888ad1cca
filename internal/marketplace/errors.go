package marketplace

import "errors"

var (
	ErrAlreadyListed    = errors.New("item already listed")
	ErrNotListed        = errors.New("item not listed")
	ErrNotAssetOwner    = errors.New("caller does not own the item")
	ErrUnsupportedAsset = errors.New("asset contract is not supported")
	ErrNotApproved      = errors.New("marketplace not approved for item")
	ErrPriceInvalid     = errors.New("price must be above zero")
	ErrValueMismatch    = errors.New("paid amount does not match listing price")
	ErrRoyaltyInvalid   = errors.New("royalty exceeds sale price")
	ErrUnpaidRoyalties  = errors.New("unsettled royalties block withdrawal")
	ErrNoProceeds       = errors.New("no proceeds available")
	ErrTransferFailed   = errors.New("external transfer failed")
	ErrReentrantCall    = errors.New("reentrant call rejected")
)

func IsAuthorization(err error) bool {
	return errors.Is(err, ErrNotAssetOwner)
}

func IsStateConflict(err error) bool {
	return errors.Is(err, ErrAlreadyListed) || errors.Is(err, ErrNotListed)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrPriceInvalid) ||
		errors.Is(err, ErrValueMismatch) ||
		errors.Is(err, ErrUnsupportedAsset) ||
		errors.Is(err, ErrNotApproved) ||
		errors.Is(err, ErrRoyaltyInvalid)
}

func IsLedgerBlocked(err error) bool {
	return errors.Is(err, ErrUnpaidRoyalties) || errors.Is(err, ErrNoProceeds)
}

func IsTransferFailure(err error) bool {
	return errors.Is(err, ErrTransferFailed)
}
