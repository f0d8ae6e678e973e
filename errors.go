package cssel

import "errors"

// Sentinel errors for selector construction.
var (
	ErrDuplicatePart = errors.New("cssel: element, id, and pseudo-element may each occur at most once in a compound selector")
	ErrOutOfOrder    = errors.New("cssel: selector parts must appear in the order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// IsDuplicatePart checks if err reports a repeated singleton part.
func IsDuplicatePart(err error) bool {
	return errors.Is(err, ErrDuplicatePart)
}

// IsOutOfOrder checks if err reports an out-of-order part.
func IsOutOfOrder(err error) bool {
	return errors.Is(err, ErrOutOfOrder)
}
