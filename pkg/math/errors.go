package math

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace groups the errors registered by this package
const Codespace = "vector3"

var (
	// ErrZeroVector is returned when an operation needs a non-zero vector
	ErrZeroVector = errorsmod.Register(Codespace, 2, "zero vector")

	// ErrInvalidVector is returned when text cannot be parsed into a vector
	ErrInvalidVector = errorsmod.Register(Codespace, 3, "invalid vector")
)
