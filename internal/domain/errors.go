package domain

import "errors"

var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidAccount = errors.New("account is not active")
var ErrUnmatchedCurrencies = errors.New("accounts have unmatched currencies")
var ErrInsufficientFunds = errors.New("insufficient funds to complete the transfer")
