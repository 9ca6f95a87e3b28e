package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"agelookup/internal/models"
)

// PageLoader produces the page data for a name lookup.
type PageLoader interface {
	Load(ctx context.Context, rawName string) models.LookupResult
}

// LookupHandler serves lookup page data as JSON.
type LookupHandler struct {
	loader PageLoader
}

// NewLookupHandler creates a new API lookup handler.
func NewLookupHandler(loader PageLoader) *LookupHandler {
	return &LookupHandler{loader: loader}
}

// Lookup returns the LookupResult for the name query parameter.
// A failed lookup is still a 200: the failure is part of the page data.
func (h *LookupHandler) Lookup(c fiber.Ctx) error {
	return jsonSuccess(c, h.loader.Load(c.Context(), c.Query("name")))
}
