// Package workflow implements the submission state machine: form
// editing, duplicate-check gating, draft persistence, the free/sponsor
// plan split, and final submission. All failures are typed values from
// errors.go; nothing here panics, and a failed remote call leaves the
// flow in its pre-call state.
package workflow

import (
	"time"

	"github.com/altdir/altdir/models"
	"github.com/altdir/altdir/pkg/db"
)

// State names the position of a flow in the submission lifecycle.
type State string

const (
	StateEditing          State = "editing"
	StateDuplicateBlocked State = "duplicate_blocked"
	StateDuplicateClear   State = "duplicate_clear"
	StatePaymentPending   State = "payment_pending"
	StateSubmitted        State = "submitted"
	StateFailed           State = "failed"
)

// Store is the persistence surface the workflow needs. *db.DB
// satisfies it; tests substitute a recorder.
type Store interface {
	FindDuplicate(name, repoURL string) (*db.DuplicateMatch, error)
	SaveDraft(userID string, form models.FormState) (*models.Draft, error)
	GetDraft(userID string) (*models.Draft, error)
	DeleteDraft(userID string) error
	CreateSubmission(userID string, form models.FormState, paymentRef string) (*models.Submission, error)
	FindCaptureByID(userID, captureID string) (bool, error)
	ClaimAlternative(alternativeID, userID string) (bool, error)
}

// BacklinkVerifier checks that a page links back to the directory.
type BacklinkVerifier interface {
	Verify(pageURL string) (bool, error)
}

// Flow is one user's submission in progress. Not safe for concurrent
// use; the API layer serializes access per user.
type Flow struct {
	store  Store
	userID string // empty when anonymous

	state State
	form  models.FormState

	// duplicateChecked caches the last check result until the name or
	// repo URL is edited again.
	duplicateChecked bool
	lastCheck        *models.DuplicateCheckResult

	lastSavedAt time.Time
}

// New starts a flow in the editing state.
func New(store Store, userID string) *Flow {
	return &Flow{
		store:  store,
		userID: userID,
		state:  StateEditing,
		form:   models.FormState{Plan: models.PlanFree},
	}
}

// State returns the current lifecycle state.
func (f *Flow) State() State { return f.state }

// Form returns a copy of the current form values.
func (f *Flow) Form() models.FormState { return f.form }

// LastCheck returns the cached duplicate-check result, nil if the
// check is stale or has not run.
func (f *Flow) LastCheck() *models.DuplicateCheckResult {
	if !f.duplicateChecked {
		return nil
	}
	return f.lastCheck
}

// Update replaces the form values. Editing the name or repo URL
// invalidates the duplicate-check cache and drops the flow back to
// editing; other fields leave the gate intact.
func (f *Flow) Update(form models.FormState) {
	if form.Name != f.form.Name || form.RepoURL != f.form.RepoURL {
		f.duplicateChecked = false
		f.lastCheck = nil
		if f.state == StateDuplicateBlocked || f.state == StateDuplicateClear {
			f.state = StateEditing
		}
	}
	// Plan switches route through SetPlan to keep the requirement
	// invariant; preserve evidence fields across a plain update.
	plan := f.form.Plan
	backlink := f.form.BacklinkVerified
	capture := f.form.PaymentCaptureID
	f.form = form
	f.form.Plan = plan
	f.form.BacklinkVerified = backlink
	f.form.PaymentCaptureID = capture
}

// SetPlan switches the submission plan. The two admission
// requirements are never simultaneously active: switching plans
// clears the other plan's evidence.
func (f *Flow) SetPlan(plan models.SubmissionPlan) {
	if !plan.Valid() || plan == f.form.Plan {
		return
	}
	f.form.Plan = plan
	switch plan {
	case models.PlanSponsor:
		f.form.BacklinkVerified = false
	case models.PlanFree:
		f.form.PaymentCaptureID = ""
	}
}

// CheckDuplicate compares the candidate's name and repo URL against
// existing approved and pending records. The result is cached until
// Update changes the name or URL. A collision with an ownerless
// record is flagged claimable for authenticated callers.
func (f *Flow) CheckDuplicate() (*models.DuplicateCheckResult, error) {
	match, err := f.store.FindDuplicate(f.form.Name, f.form.RepoURL)
	if err != nil {
		// Pre-call state preserved: the cache stays invalid.
		return nil, &NetworkError{Op: "duplicate check", Err: err}
	}

	result := &models.DuplicateCheckResult{}
	if match != nil {
		result.Duplicate = true
		result.ExistingID = match.ID
		result.Claimable = match.OwnerID == "" && f.userID != ""
		switch {
		case match.ByName && match.ByRepo:
			result.Reason = "an entry with this name and repository already exists"
		case match.ByRepo:
			result.Reason = "an entry with this repository already exists"
		default:
			result.Reason = "an entry with this name already exists"
		}
		f.state = StateDuplicateBlocked
	} else {
		f.state = StateDuplicateClear
	}

	f.duplicateChecked = true
	f.lastCheck = result
	return result, nil
}

// Claim assigns the colliding ownerless record to the caller instead
// of creating a duplicate. Only valid after a check flagged the
// result claimable.
func (f *Flow) Claim() error {
	if f.userID == "" {
		return ErrAuthenticationRequired
	}
	if f.lastCheck == nil || !f.duplicateChecked || !f.lastCheck.Claimable {
		return &DuplicateError{Reason: "no claimable record; run a duplicate check first"}
	}

	claimed, err := f.store.ClaimAlternative(f.lastCheck.ExistingID, f.userID)
	if err != nil {
		return &NetworkError{Op: "claim", Err: err}
	}
	if !claimed {
		return &DuplicateError{
			Reason:     "record is no longer claimable",
			ExistingID: f.lastCheck.ExistingID,
		}
	}
	return nil
}

// SaveDraft persists the form as the user's single draft slot.
// Partial forms are fine; no validation happens here, and the
// submission state does not change.
func (f *Flow) SaveDraft() (*models.Draft, error) {
	if f.userID == "" {
		return nil, ErrAuthenticationRequired
	}
	draft, err := f.store.SaveDraft(f.userID, f.form)
	if err != nil {
		return nil, &NetworkError{Op: "draft save", Err: err}
	}
	f.lastSavedAt = draft.LastSavedAt
	return draft, nil
}

// LoadDraft restores a previously saved draft into the form. A
// missing draft leaves the form untouched and returns nil. Loading is
// an edit like any other: the duplicate-check cache survives unless
// the draft carries a different name or repo URL.
func (f *Flow) LoadDraft() (*models.Draft, error) {
	if f.userID == "" {
		return nil, ErrAuthenticationRequired
	}
	draft, err := f.store.GetDraft(f.userID)
	if err != nil {
		return nil, &NetworkError{Op: "draft load", Err: err}
	}
	if draft == nil {
		return nil, nil
	}

	changed := draft.Form.Name != f.form.Name || draft.Form.RepoURL != f.form.RepoURL
	f.form = draft.Form
	f.lastSavedAt = draft.LastSavedAt
	if changed {
		f.duplicateChecked = false
		f.lastCheck = nil
		if f.state == StateDuplicateBlocked || f.state == StateDuplicateClear {
			f.state = StateEditing
		}
	}
	return draft, nil
}

// DeleteDraft discards the user's saved draft.
func (f *Flow) DeleteDraft() error {
	if f.userID == "" {
		return ErrAuthenticationRequired
	}
	if err := f.store.DeleteDraft(f.userID); err != nil {
		return &NetworkError{Op: "draft delete", Err: err}
	}
	f.lastSavedAt = time.Time{}
	return nil
}

// VerifyBacklink runs the free-plan backlink check against the
// candidate's homepage (falling back to the repo URL) and records the
// outcome on the form.
func (f *Flow) VerifyBacklink(verifier BacklinkVerifier) (bool, error) {
	page := f.form.Homepage
	if page == "" {
		page = f.form.RepoURL
	}
	if page == "" {
		return false, &ValidationError{Fields: []string{"homepage"}}
	}

	ok, err := verifier.Verify(page)
	if err != nil {
		return false, &NetworkError{Op: "backlink verification", Err: err}
	}
	f.form.BacklinkVerified = ok
	return ok, nil
}

// AttachPayment records the processor's capture confirmation for the
// sponsor plan.
func (f *Flow) AttachPayment(captureID string) {
	f.form.PaymentCaptureID = captureID
	if f.state == StatePaymentPending {
		f.state = StateDuplicateClear
	}
}

// RequestPayment moves a clear sponsor-plan flow into the
// payment-pending state. Abandoning payment (AbandonPayment) returns
// to the prior state without rollback of any saved draft.
func (f *Flow) RequestPayment() error {
	if f.form.Plan != models.PlanSponsor {
		return &ValidationError{Fields: []string{"plan"}}
	}
	if err := f.requireClearCheck(); err != nil {
		return err
	}
	f.state = StatePaymentPending
	return nil
}

// AbandonPayment drops an in-flight payment without touching drafts.
func (f *Flow) AbandonPayment() {
	if f.state == StatePaymentPending {
		f.state = StateDuplicateClear
	}
}

// Submit runs the final submission. Preconditions, in order: license
// present, at least one alternative-to target, a clear duplicate
// check, then the plan gate (verified backlink for free, payment
// confirmation for sponsor). Any unmet precondition aborts before the
// store call. On success the draft is gone (the store deletes it in
// the same transaction) and the flow is terminal.
func (f *Flow) Submit() (*models.Submission, error) {
	if f.userID == "" {
		return nil, ErrAuthenticationRequired
	}

	var missing []string
	if f.form.License == "" {
		missing = append(missing, "license")
	}
	if len(f.form.AlternativeTo) == 0 {
		missing = append(missing, "alternative_to")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	if err := f.requireClearCheck(); err != nil {
		return nil, err
	}

	switch f.form.Plan {
	case models.PlanFree:
		if !f.form.BacklinkVerified {
			return nil, &BacklinkRequiredError{}
		}
	case models.PlanSponsor:
		if f.form.PaymentCaptureID == "" {
			return nil, &PaymentRequiredError{Reason: "sponsor plan requires a completed payment"}
		}
		ok, err := f.store.FindCaptureByID(f.userID, f.form.PaymentCaptureID)
		if err != nil {
			return nil, &NetworkError{Op: "payment lookup", Err: err}
		}
		if !ok {
			return nil, &PaymentRequiredError{Reason: "payment confirmation not recognized"}
		}
	default:
		return nil, &ValidationError{Fields: []string{"plan"}}
	}

	sub, err := f.store.CreateSubmission(f.userID, f.form, f.form.PaymentCaptureID)
	if err != nil {
		// Form state survives a failed submission for retry.
		f.state = StateFailed
		return nil, &NetworkError{Op: "submission", Err: err}
	}

	f.state = StateSubmitted
	f.lastSavedAt = time.Time{}
	return sub, nil
}

// Retry returns a failed flow to editing with its form intact.
func (f *Flow) Retry() {
	if f.state == StateFailed || f.state == StateDuplicateBlocked {
		f.state = StateEditing
	}
}

// requireClearCheck enforces the sequential gate: a duplicate check
// must have completed, and come back clear, since the last name/URL
// edit.
func (f *Flow) requireClearCheck() error {
	if !f.duplicateChecked {
		return &DuplicateError{Reason: "duplicate check required before proceeding"}
	}
	if f.lastCheck != nil && f.lastCheck.Duplicate {
		return &DuplicateError{
			Reason:     f.lastCheck.Reason,
			ExistingID: f.lastCheck.ExistingID,
			Claimable:  f.lastCheck.Claimable,
		}
	}
	return nil
}
