package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrInvalidDimension signals an invalid or missing dimension configuration.
	ErrInvalidDimension = errors.New("btree: invalid dimension")
	// ErrOrderingRequired signals an ordered operation on a tree without Compare.
	ErrOrderingRequired = errors.New("btree: ordering required")
	// ErrDuplicateItem signals insertion of an item comparing equal to a stored one.
	ErrDuplicateItem = errors.New("btree: duplicate item")
	// ErrItemNotFound signals that no stored item compares equal to the argument.
	ErrItemNotFound = errors.New("btree: item not found")
	// ErrUnbalanced signals an occupancy repair that could not be resolved.
	ErrUnbalanced = errors.New("btree: unresolved rebalance")
)
