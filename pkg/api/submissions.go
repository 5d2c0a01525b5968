package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/altdir/altdir/models"
	"github.com/altdir/altdir/pkg/auth"
	"github.com/altdir/altdir/pkg/db"
	"github.com/altdir/altdir/pkg/httpresponse"
	"github.com/altdir/altdir/pkg/workflow"
)

// SubmissionAPI drives the submission workflow over HTTP: duplicate
// checks, the draft slot, backlink verification, claims, and the
// final submit.
type SubmissionAPI struct {
	Router   fiber.Router
	DB       *db.DB
	Auth     *auth.Service
	Backlink workflow.BacklinkVerifier
	Flows    *flowRegistry
	Logger   *slog.Logger
}

type duplicateCheckRequest struct {
	Name    string `json:"name"`
	RepoURL string `json:"repo_url"`
}

// applyForm pushes a client form into the flow. Update deliberately
// ignores the plan field, so plan switches route through SetPlan.
func applyForm(flow *workflow.Flow, form models.FormState) {
	flow.Update(form)
	if form.Plan != "" {
		flow.SetPlan(form.Plan)
	}
}

func (api *SubmissionAPI) Register() {
	// Anonymous visitors may probe for duplicates before signing up;
	// authenticated checks run against the user's live flow so the
	// result gates their submit.
	api.Router.Post("/submissions/check-duplicate", optionalAuth(api.Auth), func(c *fiber.Ctx) error {
		var req duplicateCheckRequest
		if err := c.BodyParser(&req); err != nil {
			return httpresponse.ApplyBadRequestToResponse(c, "invalid request body")
		}
		if req.Name == "" && req.RepoURL == "" {
			return httpresponse.ApplyBadRequestToResponse(c, "name or repo_url is required")
		}

		userID := currentUserID(c)
		if userID == "" {
			flow := workflow.New(api.DB, "")
			flow.Update(models.FormState{Name: req.Name, RepoURL: req.RepoURL})
			result, err := flow.CheckDuplicate()
			if err != nil {
				return httpresponse.ApplyErrorToResponse(c, "duplicate check failed", err)
			}
			return httpresponse.ApplySuccessToResponse(c, result)
		}

		var result *models.DuplicateCheckResult
		err := api.Flows.with(api.DB, userID, func(flow *workflow.Flow) error {
			form := flow.Form()
			form.Name = req.Name
			form.RepoURL = req.RepoURL
			flow.Update(form)
			var err error
			result, err = flow.CheckDuplicate()
			return err
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "duplicate check failed", err)
		}
		return httpresponse.ApplySuccessToResponse(c, result)
	})

	api.Router.Post("/submissions/claim", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		userID := currentUserID(c)
		err := api.Flows.with(api.DB, userID, func(flow *workflow.Flow) error {
			return flow.Claim()
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "claim failed", err)
		}
		api.Logger.Info("record claimed", "user", userID)
		return httpresponse.ApplySuccessToResponse(c, fiber.Map{"claimed": true})
	})

	api.Router.Get("/drafts", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		var draft *models.Draft
		err := api.Flows.with(api.DB, currentUserID(c), func(flow *workflow.Flow) error {
			var err error
			draft, err = flow.LoadDraft()
			return err
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to load draft", err)
		}
		if draft == nil {
			return httpresponse.ApplyNotFoundToResponse(c, "no saved draft")
		}
		return httpresponse.ApplySuccessToResponse(c, draft)
	})

	api.Router.Put("/drafts", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		var form models.FormState
		if err := c.BodyParser(&form); err != nil {
			return httpresponse.ApplyBadRequestToResponse(c, "invalid request body")
		}

		var draft *models.Draft
		err := api.Flows.with(api.DB, currentUserID(c), func(flow *workflow.Flow) error {
			applyForm(flow, form)
			var err error
			draft, err = flow.SaveDraft()
			return err
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to save draft", err)
		}
		return httpresponse.ApplySuccessToResponse(c, draft)
	})

	api.Router.Delete("/drafts", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		err := api.Flows.with(api.DB, currentUserID(c), func(flow *workflow.Flow) error {
			return flow.DeleteDraft()
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to delete draft", err)
		}
		return httpresponse.ApplySuccessToResponse(c, nil)
	})

	api.Router.Post("/submissions/verify-backlink", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		var verified bool
		err := api.Flows.with(api.DB, currentUserID(c), func(flow *workflow.Flow) error {
			var err error
			verified, err = flow.VerifyBacklink(api.Backlink)
			return err
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "backlink verification failed", err)
		}
		return httpresponse.ApplySuccessToResponse(c, fiber.Map{"verified": verified})
	})

	api.Router.Post("/submissions", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		userID := currentUserID(c)

		// An empty body submits the flow as it stands; a form body is
		// applied first so single-shot clients work too.
		var form models.FormState
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&form); err != nil {
				return httpresponse.ApplyBadRequestToResponse(c, "invalid request body")
			}
		}

		var submission *models.Submission
		err := api.Flows.with(api.DB, userID, func(flow *workflow.Flow) error {
			if form.Name != "" || form.RepoURL != "" {
				applyForm(flow, form)
			}
			var err error
			submission, err = flow.Submit()
			return err
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "submission failed", err)
		}

		api.Flows.drop(userID)
		api.Logger.Info("submission accepted", "user", userID, "submission", submission.ID)
		return httpresponse.ApplyCreatedToResponse(c, submission)
	})
}
