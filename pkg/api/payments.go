package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/altdir/altdir/pkg/auth"
	"github.com/altdir/altdir/pkg/db"
	"github.com/altdir/altdir/pkg/httpresponse"
	"github.com/altdir/altdir/pkg/payment"
	"github.com/altdir/altdir/pkg/workflow"
)

// PaymentAPI creates sponsor-plan orders and records capture
// confirmations against the user's flow.
type PaymentAPI struct {
	Router   fiber.Router
	DB       *db.DB
	Auth     *auth.Service
	Payments *payment.Service
	Flows    *flowRegistry
}

type createOrderRequest struct {
	CouponCode string `json:"coupon_code"`
}

type captureRequest struct {
	CaptureID string `json:"capture_id"`
}

func (api *PaymentAPI) Register() {
	api.Router.Post("/payments/orders", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		var req createOrderRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return httpresponse.ApplyBadRequestToResponse(c, "invalid request body")
			}
		}

		userID := currentUserID(c)
		err := api.Flows.with(api.DB, userID, func(flow *workflow.Flow) error {
			return flow.RequestPayment()
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "payment not available", err)
		}

		order, err := api.Payments.CreateOrder(userID, req.CouponCode)
		if err != nil {
			// A failed order leaves the flow where it was before the
			// payment was requested.
			api.Flows.with(api.DB, userID, func(flow *workflow.Flow) error {
				flow.AbandonPayment()
				return nil
			})
			if errors.Is(err, payment.ErrInvalidCoupon) {
				return httpresponse.ApplyBadRequestToResponse(c, err.Error())
			}
			return httpresponse.ApplyErrorToResponse(c, "failed to create order", err)
		}
		return httpresponse.ApplyCreatedToResponse(c, order)
	})

	api.Router.Post("/payments/orders/:id/capture", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		var req captureRequest
		if err := c.BodyParser(&req); err != nil {
			return httpresponse.ApplyBadRequestToResponse(c, "invalid request body")
		}
		if req.CaptureID == "" {
			return httpresponse.ApplyBadRequestToResponse(c, "capture_id is required")
		}

		userID := currentUserID(c)
		orderID := c.Params("id")

		existing, err := api.DB.GetPaymentOrder(orderID)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to load order", err)
		}
		if existing == nil || existing.UserID != userID {
			return httpresponse.ApplyNotFoundToResponse(c, "order not found")
		}

		order, err := api.Payments.Capture(orderID, req.CaptureID)
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "capture failed", err)
		}

		err = api.Flows.with(api.DB, userID, func(flow *workflow.Flow) error {
			flow.AttachPayment(order.CaptureID)
			return nil
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to update flow", err)
		}
		return httpresponse.ApplySuccessToResponse(c, order)
	})

	api.Router.Delete("/payments/orders", requireAuth(api.Auth), func(c *fiber.Ctx) error {
		err := api.Flows.with(api.DB, currentUserID(c), func(flow *workflow.Flow) error {
			flow.AbandonPayment()
			return nil
		})
		if err != nil {
			return httpresponse.ApplyErrorToResponse(c, "failed to abandon payment", err)
		}
		return httpresponse.ApplySuccessToResponse(c, nil)
	})
}
