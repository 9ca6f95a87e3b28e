package handlers

import (
	"github.com/gofiber/fiber/v3"

	"agelookup/internal/config"
)

// AgeHandler renders the age lookup page.
type AgeHandler struct {
	loader PageLoader
	cfg    *config.Config
	pages  *config.YAMLConfig // nil uses built-in messages
}

// NewAgeHandler creates a new age lookup page handler.
func NewAgeHandler(loader PageLoader, cfg *config.Config, pages *config.YAMLConfig) *AgeHandler {
	return &AgeHandler{loader: loader, cfg: cfg, pages: pages}
}

// Index renders the lookup form and, when a name is given, its result.
func (h *AgeHandler) Index(c fiber.Ctx) error {
	result := h.loader.Load(c.Context(), c.Query("name"))

	return c.Render("index", MergeBranding(fiber.Map{
		"Name":          result.Name,
		"AgeData":       result.AgeData,
		"Error":         result.ErrorMessage(),
		"PromptMessage": h.pages.PromptMessage(),
		"NoDataMessage": h.pages.NoDataMessage(),
		"Examples":      h.pages.ExampleNames(),
	}, h.cfg))
}
