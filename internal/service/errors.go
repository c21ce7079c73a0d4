package service

import "errors"

// Typed failures surfaced by the services. Controllers map these onto HTTP
// status codes; nothing below this layer knows about HTTP.
var (
	// ErrProductNotFound is returned when a product ID does not resolve,
	// either as the target of an operation or as a harvest's reference.
	ErrProductNotFound = errors.New("product not found")

	// ErrHarvestNotFound is returned when a harvest ID does not resolve.
	ErrHarvestNotFound = errors.New("harvest not found")

	// ErrHarvestNotOwned is returned when a harvest exists but belongs to a
	// different product than the one named in a nested route.
	ErrHarvestNotOwned = errors.New("harvest does not belong to product")
)
