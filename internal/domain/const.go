package domain

const (
	// Solana public keys are 32 bytes, base58 encoded
	SOLANA_PUBKEY_LENGTH      = 32
	MIN_WALLET_ADDRESS_LENGTH = 32
	MAX_WALLET_ADDRESS_LENGTH = 44

	// LAMPORTS_PER_SOL converts raw balances into SOL
	LAMPORTS_PER_SOL = 1e9

	// Reputation score bounds
	MAX_REPUTATION_SCORE = 1000.0
)
