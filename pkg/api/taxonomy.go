package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/altdir/altdir/pkg/db"
	"github.com/altdir/altdir/pkg/httpresponse"
)

// TaxonomyAPI serves the read-only catalog lists the submission form
// and the directory pages are built from.
type TaxonomyAPI struct {
	Router fiber.Router
	DB     *db.DB
}

func (api *TaxonomyAPI) Register() {
	api.Router.Get("/categories", func(c *fiber.Ctx) error {
		categories, err := api.DB.ListCategories()
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to list categories", err)
		}
		return httpresponse.ApplySuccessToResponse(c, categories)
	})

	api.Router.Get("/proprietary", func(c *fiber.Ctx) error {
		software, err := api.DB.ListProprietary()
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to list proprietary software", err)
		}
		return httpresponse.ApplySuccessToResponse(c, software)
	})

	api.Router.Get("/tech-stacks", func(c *fiber.Ctx) error {
		stacks, err := api.DB.ListTechStacks()
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to list tech stacks", err)
		}
		return httpresponse.ApplySuccessToResponse(c, stacks)
	})

	api.Router.Get("/alternatives", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "100"))
		alternatives, err := api.DB.ListAlternatives(limit)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to list alternatives", err)
		}
		return httpresponse.ApplySuccessToResponse(c, alternatives)
	})

	api.Router.Get("/alternatives/:slug", func(c *fiber.Ctx) error {
		alt, err := api.DB.GetAlternativeBySlug(c.Params("slug"))
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to load alternative", err)
		}
		if alt == nil {
			return httpresponse.ApplyNotFoundToResponse(c, "alternative not found")
		}
		return httpresponse.ApplySuccessToResponse(c, alt)
	})
}
