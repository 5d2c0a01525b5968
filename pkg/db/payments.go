package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/altdir/altdir/models"
	"github.com/google/uuid"
)

// CreatePaymentOrder records a new sponsor-plan order.
func (db *DB) CreatePaymentOrder(userID string, amountCents int64, couponCode string) (*models.PaymentOrder, error) {
	order := &models.PaymentOrder{
		ID:          uuid.New().String(),
		UserID:      userID,
		AmountCents: amountCents,
		CouponCode:  couponCode,
		Status:      models.OrderCreated,
	}

	_, err := db.Exec(`
		INSERT INTO payment_orders (order_id, user_id, amount_cents, coupon_code, status)
		VALUES (?, ?, ?, ?, ?)
	`, order.ID, userID, amountCents, nullable(couponCode), string(order.Status))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}
	return order, nil
}

// CapturePaymentOrder marks an order captured with the processor's
// confirmation ID. Capturing an already-captured order is rejected.
func (db *DB) CapturePaymentOrder(orderID, captureID string) error {
	res, err := db.Exec(`
		UPDATE payment_orders SET status = ?, capture_id = ?
		WHERE order_id = ? AND status = ?
	`, string(models.OrderCaptured), captureID, orderID, string(models.OrderCreated))
	if err != nil {
		return fmt.Errorf("failed to capture payment order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read capture result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("payment order %s not open for capture", orderID)
	}
	return nil
}

// GetPaymentOrder loads one order. Returns nil when absent.
func (db *DB) GetPaymentOrder(orderID string) (*models.PaymentOrder, error) {
	var o models.PaymentOrder
	var coupon, captureID sql.NullString
	err := db.QueryRow(`
		SELECT order_id, user_id, amount_cents, coupon_code, status, capture_id, created_at
		FROM payment_orders WHERE order_id = ?
	`, orderID).Scan(&o.ID, &o.UserID, &o.AmountCents, &coupon, &o.Status, &captureID, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment order: %w", err)
	}
	o.CouponCode = coupon.String
	o.CaptureID = captureID.String
	return &o, nil
}

// FindCaptureByID reports whether a capture ID belongs to a captured
// order of the given user. Used to validate submit-time payment refs.
func (db *DB) FindCaptureByID(userID, captureID string) (bool, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM payment_orders
		WHERE user_id = ? AND capture_id = ? AND status = ?
	`, userID, captureID, string(models.OrderCaptured)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to look up capture: %w", err)
	}
	return n > 0, nil
}
