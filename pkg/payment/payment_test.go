package payment

import (
	"errors"
	"testing"
)

func testPricing() Pricing {
	return Pricing{
		BaseCents: 9900,
		Coupons: map[string]float64{
			"LAUNCH25": 0.25,
			"OSS10":    0.10,
		},
	}
}

func TestQuote(t *testing.T) {
	pricing := testPricing()

	tests := []struct {
		name    string
		code    string
		want    int64
		wantErr bool
	}{
		{"no coupon", "", 9900, false},
		{"quarter off", "LAUNCH25", 7425, false},
		{"ten percent off", "OSS10", 8910, false},
		{"unknown code", "FREESTUFF", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Quote(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCoupon) {
					t.Fatalf("Quote(%q) error = %v, want ErrInvalidCoupon", tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Quote(%q) error = %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("Quote(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestCapture_EmptyIDRejected(t *testing.T) {
	svc := NewService(nil, testPricing())
	if _, err := svc.Capture("order-1", ""); err == nil {
		t.Error("Capture() with empty ID succeeded, want error")
	}
}
