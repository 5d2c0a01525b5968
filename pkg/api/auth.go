package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/altdir/altdir/pkg/auth"
	"github.com/altdir/altdir/pkg/db"
	"github.com/altdir/altdir/pkg/httpresponse"
)

// AuthAPI handles registration, login, and the session probe.
type AuthAPI struct {
	Router fiber.Router
	DB     *db.DB
	Auth   *auth.Service
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

func (api *AuthAPI) Register() {
	api.Router.Post("/auth/register", func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return httpresponse.ApplyBadRequestToResponse(c, "invalid request body")
		}
		if req.Email == "" || len(req.Password) < 8 {
			return httpresponse.ApplyBadRequestToResponse(c, "email and a password of at least 8 characters are required")
		}

		existing, err := api.DB.GetUserByEmail(req.Email)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to check account", err)
		}
		if existing != nil {
			return httpresponse.ApplyBadRequestToResponse(c, "an account with this email already exists")
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to hash password", err)
		}
		user, err := api.DB.CreateUser(req.Email, req.Name, "password", hash)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to create account", err)
		}

		token, err := api.Auth.IssueToken(user.ID)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to issue token", err)
		}
		return httpresponse.ApplyCreatedToResponse(c, sessionResponse{Token: token, User: user})
	})

	api.Router.Post("/auth/login", func(c *fiber.Ctx) error {
		var req credentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return httpresponse.ApplyBadRequestToResponse(c, "invalid request body")
		}

		user, err := api.DB.GetUserByEmail(req.Email)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to load account", err)
		}
		// Same response for unknown email and wrong password.
		if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
			return httpresponse.ApplyUnauthorizedToResponse(c, "invalid_credentials", "invalid email or password")
		}

		token, err := api.Auth.IssueToken(user.ID)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to issue token", err)
		}
		return httpresponse.ApplySuccessToResponse(c, sessionResponse{Token: token, User: user})
	})

	api.Router.Get("/auth/me", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		user, err := api.DB.GetUserByID(currentUserID(c))
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to load account", err)
		}
		if user == nil {
			return httpresponse.ApplyNotFoundToResponse(c, "account not found")
		}
		return httpresponse.ApplySuccessToResponse(c, user)
	})
}
