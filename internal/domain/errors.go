package domain

import "errors"

// Sentinel errors shared across the service layer. Controllers map these to
// HTTP statuses with errors.Is; services wrap underlying causes with %w.
var (
	ErrNotFound             = errors.New("not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateSlug        = errors.New("slug already exists")
	ErrSlugExhausted        = errors.New("slug allocation exhausted")
	ErrUnsupportedMedia     = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload too large")
)
