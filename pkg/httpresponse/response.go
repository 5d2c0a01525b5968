// Package httpresponse holds the JSON envelope every API handler
// replies with, and the mapping from workflow errors to HTTP status
// codes.
package httpresponse

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/altdir/altdir/pkg/workflow"
)

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ApplySuccessToResponse writes a 200 envelope with data.
func ApplySuccessToResponse(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(envelope{Success: true, Data: data})
}

// ApplyCreatedToResponse writes a 201 envelope with data.
func ApplyCreatedToResponse(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(envelope{Success: true, Data: data})
}

// ApplyErrorToResponse writes the envelope for err, choosing the
// status code from the error's type. The message argument is used for
// errors that carry no message of their own.
func ApplyErrorToResponse(c *fiber.Ctx, message string, err error) error {
	status, body := classify(message, err)
	return c.Status(status).JSON(envelope{Success: false, Error: body})
}

// ApplyNotFoundToResponse writes a 404 envelope.
func ApplyNotFoundToResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(envelope{
		Success: false,
		Error:   &apiError{Code: "not_found", Message: message},
	})
}

// ApplyUnauthorizedToResponse writes a 401 envelope with an explicit
// code, for credential failures outside the workflow taxonomy.
func ApplyUnauthorizedToResponse(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(envelope{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	})
}

// ApplyBadRequestToResponse writes a 400 envelope, used for
// malformed request bodies before the workflow is ever reached.
func ApplyBadRequestToResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(envelope{
		Success: false,
		Error:   &apiError{Code: "bad_request", Message: message},
	})
}

func classify(message string, err error) (int, *apiError) {
	var validation *workflow.ValidationError
	if errors.As(err, &validation) {
		return fiber.StatusUnprocessableEntity, &apiError{
			Code:    "validation_failed",
			Message: validation.Error(),
			Details: validation.Fields,
		}
	}

	var duplicate *workflow.DuplicateError
	if errors.As(err, &duplicate) {
		return fiber.StatusConflict, &apiError{
			Code:    "duplicate",
			Message: duplicate.Error(),
			Details: fiber.Map{
				"reason":      duplicate.Reason,
				"existing_id": duplicate.ExistingID,
				"claimable":   duplicate.Claimable,
			},
		}
	}

	var payment *workflow.PaymentRequiredError
	if errors.As(err, &payment) {
		return fiber.StatusPaymentRequired, &apiError{
			Code:    "payment_required",
			Message: payment.Error(),
		}
	}

	var backlink *workflow.BacklinkRequiredError
	if errors.As(err, &backlink) {
		// The free plan's gate is semantically a payment-class
		// precondition, same status as the sponsor gate.
		return fiber.StatusPaymentRequired, &apiError{
			Code:    "backlink_required",
			Message: backlink.Error(),
		}
	}

	var network *workflow.NetworkError
	if errors.As(err, &network) {
		return fiber.StatusBadGateway, &apiError{
			Code:    "upstream_failed",
			Message: network.Error(),
		}
	}

	if errors.Is(err, workflow.ErrAuthenticationRequired) {
		return fiber.StatusUnauthorized, &apiError{
			Code:    "authentication_required",
			Message: workflow.ErrAuthenticationRequired.Error(),
		}
	}

	msg := message
	if msg == "" {
		msg = "unexpected error"
	}
	return fiber.StatusInternalServerError, &apiError{Code: "internal", Message: msg}
}
