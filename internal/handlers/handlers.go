package handlers

import (
	"context"

	"agelookup/internal/models"
)

// PageLoader produces the page data for a name lookup.
type PageLoader interface {
	Load(ctx context.Context, rawName string) models.LookupResult
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
