package domain

import "errors"

var (
	// ErrInvalidWalletAddress is returned when an address is not a base58 encoded Solana public key
	ErrInvalidWalletAddress = errors.New("invalid solana wallet address")

	// ErrWalletNotFound is returned when a wallet has never been analyzed
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrNoHealthChecks is returned when no health samples exist in the requested window
	ErrNoHealthChecks = errors.New("no health checks available")

	// ErrMalformedCompletion is returned when a language model answer carries no usable JSON object
	ErrMalformedCompletion = errors.New("malformed completion")
)
