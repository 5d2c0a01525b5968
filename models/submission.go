package models

import "time"

// SubmissionPlan selects the admission path for a new entry.
// Free requires a verified backlink; sponsor requires a completed payment.
// The two requirements are never active at the same time.
type SubmissionPlan string

const (
	PlanFree    SubmissionPlan = "free"
	PlanSponsor SubmissionPlan = "sponsor"
)

// Valid reports whether p is a known plan.
func (p SubmissionPlan) Valid() bool {
	return p == PlanFree || p == PlanSponsor
}

// FormState carries every field of the submission form. Drafts persist
// this struct as-is; final submission validates it. All fields may be
// empty in a draft.
type FormState struct {
	Name      string `json:"name"`
	Slug      string `json:"slug,omitempty"`
	ShortDesc string `json:"short_desc"`
	LongDesc  string `json:"long_desc"`
	RepoURL   string `json:"repo_url"`
	Homepage  string `json:"homepage,omitempty"`
	License   string `json:"license"`

	AlternativeTo []string `json:"alternative_to"`
	Categories    []string `json:"categories,omitempty"`
	TechStacks    []string `json:"tech_stacks,omitempty"`

	Plan       SubmissionPlan `json:"plan"`
	CouponCode string         `json:"coupon_code,omitempty"`

	// BacklinkVerified records a successful free-plan backlink check.
	BacklinkVerified bool `json:"backlink_verified"`
	// PaymentCaptureID is the processor confirmation for the sponsor plan.
	PaymentCaptureID string `json:"payment_capture_id,omitempty"`
}

// Draft is a user's saved in-progress submission. One live draft per
// user; saving overwrites.
type Draft struct {
	UserID      string    `json:"user_id"`
	Form        FormState `json:"form"`
	LastSavedAt time.Time `json:"last_saved_at"`
}

// Submission is the terminal record of a completed submit call.
type Submission struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	AlternativeID string         `json:"alternative_id"`
	Plan          SubmissionPlan `json:"plan"`
	PaymentRef    string         `json:"payment_ref,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// DuplicateCheckResult is the answer to a check-duplicate call.
type DuplicateCheckResult struct {
	Duplicate bool   `json:"duplicate"`
	Reason    string `json:"reason,omitempty"`
	// ExistingID references the colliding record when Duplicate is true.
	ExistingID string `json:"existing_id,omitempty"`
	// Claimable is true when the existing record has no owner and the
	// caller is authenticated, enabling the claim path.
	Claimable bool `json:"claimable"`
}

// PaymentOrderStatus tracks a sponsor payment order.
type PaymentOrderStatus string

const (
	OrderCreated  PaymentOrderStatus = "created"
	OrderCaptured PaymentOrderStatus = "captured"
)

// PaymentOrder is a sponsor-plan payment tracked locally. The external
// processor is opaque; CaptureID is stored verbatim from its callback.
type PaymentOrder struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	AmountCents int64              `json:"amount_cents"`
	CouponCode  string             `json:"coupon_code,omitempty"`
	Status      PaymentOrderStatus `json:"status"`
	CaptureID   string             `json:"capture_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}
