// Package payment tracks sponsor-plan orders locally. The external
// processor is opaque: we create an order, hand its ID out, and later
// record the capture confirmation its callback delivers.
package payment

import (
	"errors"
	"fmt"
	"math"

	"github.com/altdir/altdir/models"
)

// ErrInvalidCoupon is returned for codes outside the allow-list. This
// is a local validation message; no external service is consulted.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// Pricing holds the sponsor price and the static coupon allow-list
// mapping codes to discount fractions.
type Pricing struct {
	BaseCents int64
	Coupons   map[string]float64
}

// Quote returns the sponsor price after an optional coupon. An empty
// code means full price.
func (p Pricing) Quote(couponCode string) (int64, error) {
	if couponCode == "" {
		return p.BaseCents, nil
	}
	discount, ok := p.Coupons[couponCode]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCoupon, couponCode)
	}
	return int64(math.Round(float64(p.BaseCents) * (1 - discount))), nil
}

// OrderStore is the persistence surface for orders. *db.DB satisfies it.
type OrderStore interface {
	CreatePaymentOrder(userID string, amountCents int64, couponCode string) (*models.PaymentOrder, error)
	CapturePaymentOrder(orderID, captureID string) error
	GetPaymentOrder(orderID string) (*models.PaymentOrder, error)
}

type Service struct {
	store   OrderStore
	pricing Pricing
}

func NewService(store OrderStore, pricing Pricing) *Service {
	return &Service{store: store, pricing: pricing}
}

// CreateOrder quotes the price (applying the coupon locally) and
// records a new open order for the user.
func (s *Service) CreateOrder(userID, couponCode string) (*models.PaymentOrder, error) {
	amount, err := s.pricing.Quote(couponCode)
	if err != nil {
		return nil, err
	}
	return s.store.CreatePaymentOrder(userID, amount, couponCode)
}

// Capture records the processor's capture confirmation against an
// open order. The capture ID is stored verbatim.
func (s *Service) Capture(orderID, captureID string) (*models.PaymentOrder, error) {
	if captureID == "" {
		return nil, errors.New("capture ID must not be empty")
	}
	if err := s.store.CapturePaymentOrder(orderID, captureID); err != nil {
		return nil, err
	}
	return s.store.GetPaymentOrder(orderID)
}
