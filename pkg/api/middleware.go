package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/altdir/altdir/pkg/auth"
	"github.com/altdir/altdir/pkg/httpresponse"
	"github.com/altdir/altdir/pkg/workflow"
)

const localUserID = "userID"

// requireAuth rejects requests without a valid bearer token and
// stashes the user ID in the request locals.
func requireAuth(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := bearerSubject(authSvc, c)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "", workflow.ErrAuthenticationRequired)
		}
		c.Locals(localUserID, userID)
		return c.Next()
	}
}

// optionalAuth resolves a bearer token when present but lets
// anonymous requests through. Invalid tokens are still rejected so a
// client with a stale session notices.
func optionalAuth(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		userID, err := bearerSubject(authSvc, c)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "", workflow.ErrAuthenticationRequired)
		}
		c.Locals(localUserID, userID)
		return c.Next()
	}
}

func bearerSubject(authSvc *auth.Service, c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", auth.ErrInvalidToken
	}
	return authSvc.VerifyToken(token)
}

func currentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(localUserID).(string); ok {
		return id
	}
	return ""
}
