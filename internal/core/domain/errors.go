package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by the ledger. Callers match them with errors.Is.
// Except for ErrTransferPending, every one of them means the operation was
// rolled back.
var (
	ErrNotFound           = errors.New("fundraise not found")
	ErrNotFundraiseOwner  = errors.New("caller is not the fundraise owner")
	ErrCannotWithdraw     = errors.New("fundraise target not reached")
	ErrAlreadyWithdrawn   = errors.New("fundraise already withdrawn")
	ErrInvalidTarget      = errors.New("target must be positive")
	ErrTransferFailed     = errors.New("transfer failed")
	ErrOracleUnavailable  = errors.New("price oracle unavailable")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrDuplicateID        = errors.New("duplicate fundraise id")
)

// ErrDepositClaimed is a TransferFailed: the referenced deposit was already
// credited to a fundraise.
var ErrDepositClaimed = fmt.Errorf("%w: deposit already claimed", ErrTransferFailed)

// ErrTransferPending reports a transfer that was submitted but whose outcome
// is not known yet. The ledger keeps the operation's record: the transfer is
// treated as done and is never repeated.
var ErrTransferPending = errors.New("transfer submitted, outcome unknown")
