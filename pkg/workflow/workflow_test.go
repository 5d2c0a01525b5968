package workflow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/altdir/altdir/models"
	"github.com/altdir/altdir/pkg/db"
)

// fakeStore records calls so tests can assert which persistence
// operations actually ran.
type fakeStore struct {
	duplicate *db.DuplicateMatch
	dupErr    error

	drafts   map[string]models.FormState
	captures map[string]bool
	claimOK  bool

	submitErr   error
	submissions int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		drafts:   map[string]models.FormState{},
		captures: map[string]bool{},
	}
}

func (s *fakeStore) FindDuplicate(name, repoURL string) (*db.DuplicateMatch, error) {
	if s.dupErr != nil {
		return nil, s.dupErr
	}
	return s.duplicate, nil
}

func (s *fakeStore) SaveDraft(userID string, form models.FormState) (*models.Draft, error) {
	s.drafts[userID] = form
	return &models.Draft{UserID: userID, Form: form, LastSavedAt: time.Now()}, nil
}

func (s *fakeStore) GetDraft(userID string) (*models.Draft, error) {
	form, ok := s.drafts[userID]
	if !ok {
		return nil, nil
	}
	return &models.Draft{UserID: userID, Form: form, LastSavedAt: time.Now()}, nil
}

func (s *fakeStore) DeleteDraft(userID string) error {
	delete(s.drafts, userID)
	return nil
}

func (s *fakeStore) CreateSubmission(userID string, form models.FormState, paymentRef string) (*models.Submission, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	s.submissions++
	delete(s.drafts, userID)
	return &models.Submission{ID: "sub-1", UserID: userID, AlternativeID: "alt-1", Plan: form.Plan, PaymentRef: paymentRef}, nil
}

func (s *fakeStore) FindCaptureByID(userID, captureID string) (bool, error) {
	return s.captures[captureID], nil
}

func (s *fakeStore) ClaimAlternative(alternativeID, userID string) (bool, error) {
	return s.claimOK, nil
}

func validForm() models.FormState {
	return models.FormState{
		Name:          "Focalboard",
		ShortDesc:     "Kanban boards",
		RepoURL:       "https://github.com/mattermost/focalboard",
		License:       "MIT",
		AlternativeTo: []string{"trello"},
	}
}

func clearFlow(t *testing.T, store *fakeStore) *Flow {
	t.Helper()
	flow := New(store, "user-1")
	flow.Update(validForm())
	if _, err := flow.CheckDuplicate(); err != nil {
		t.Fatalf("CheckDuplicate() error = %v", err)
	}
	if flow.State() != StateDuplicateClear {
		t.Fatalf("state = %s, want duplicate_clear", flow.State())
	}
	return flow
}

func TestSubmit_ValidationErrorNamesAllMissingFields(t *testing.T) {
	store := newFakeStore()
	flow := New(store, "user-1")
	form := validForm()
	form.License = ""
	form.AlternativeTo = nil
	flow.Update(form)

	_, err := flow.Submit()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Submit() error = %v, want ValidationError", err)
	}
	want := []string{"license", "alternative_to"}
	if fmt.Sprint(verr.Fields) != fmt.Sprint(want) {
		t.Errorf("missing fields = %v, want %v", verr.Fields, want)
	}
	if store.submissions != 0 {
		t.Error("store received a submission despite validation failure")
	}
}

func TestSubmit_RequiresDuplicateCheck(t *testing.T) {
	store := newFakeStore()
	flow := New(store, "user-1")
	form := validForm()
	form.BacklinkVerified = true
	flow.Update(form)

	_, err := flow.Submit()
	var derr *DuplicateError
	if !errors.As(err, &derr) {
		t.Fatalf("Submit() error = %v, want DuplicateError for missing check", err)
	}
	if store.submissions != 0 {
		t.Error("store received a submission without a duplicate check")
	}
}

func TestSubmit_FreePlanNeedsBacklink(t *testing.T) {
	store := newFakeStore()
	flow := clearFlow(t, store)

	_, err := flow.Submit()
	var berr *BacklinkRequiredError
	if !errors.As(err, &berr) {
		t.Fatalf("Submit() error = %v, want BacklinkRequiredError", err)
	}
	if store.submissions != 0 {
		t.Error("create-submission was reached with free plan and no backlink")
	}
}

func TestSubmit_SponsorPlanNeedsPayment(t *testing.T) {
	store := newFakeStore()
	flow := clearFlow(t, store)
	flow.SetPlan(models.PlanSponsor)

	_, err := flow.Submit()
	var perr *PaymentRequiredError
	if !errors.As(err, &perr) {
		t.Fatalf("Submit() error = %v, want PaymentRequiredError", err)
	}
	if store.submissions != 0 {
		t.Error("create-submission was reached with sponsor plan and no payment")
	}
}

func TestSubmit_SponsorPlanRejectsUnknownCapture(t *testing.T) {
	store := newFakeStore()
	flow := clearFlow(t, store)
	flow.SetPlan(models.PlanSponsor)
	flow.AttachPayment("CAPTURE-UNKNOWN")

	_, err := flow.Submit()
	var perr *PaymentRequiredError
	if !errors.As(err, &perr) {
		t.Fatalf("Submit() error = %v, want PaymentRequiredError for unknown capture", err)
	}
}

func TestSubmit_Success(t *testing.T) {
	store := newFakeStore()
	store.captures["CAPTURE-1"] = true

	flow := clearFlow(t, store)
	flow.SetPlan(models.PlanSponsor)
	flow.AttachPayment("CAPTURE-1")

	sub, err := flow.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if sub.PaymentRef != "CAPTURE-1" {
		t.Errorf("payment ref = %q, want CAPTURE-1", sub.PaymentRef)
	}
	if flow.State() != StateSubmitted {
		t.Errorf("state = %s, want submitted", flow.State())
	}
	if store.submissions != 1 {
		t.Errorf("submissions = %d, want 1", store.submissions)
	}
}

func TestSubmit_AnonymousRejected(t *testing.T) {
	flow := New(newFakeStore(), "")
	flow.Update(validForm())

	if _, err := flow.Submit(); !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("Submit() error = %v, want ErrAuthenticationRequired", err)
	}
}

func TestSubmit_StoreFailureKeepsForm(t *testing.T) {
	store := newFakeStore()
	store.submitErr = errors.New("connection reset")

	flow := clearFlow(t, store)
	flow.form.BacklinkVerified = true

	_, err := flow.Submit()
	var nerr *NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("Submit() error = %v, want NetworkError", err)
	}
	if flow.State() != StateFailed {
		t.Errorf("state = %s, want failed", flow.State())
	}
	if flow.Form().Name != "Focalboard" {
		t.Error("form was cleared by a failed submission")
	}

	// Retry path: back to editing with the form intact, then succeed.
	flow.Retry()
	if flow.State() != StateEditing {
		t.Errorf("state after Retry() = %s, want editing", flow.State())
	}
	store.submitErr = nil
	if _, err := flow.Submit(); err != nil {
		t.Errorf("Submit() after retry error = %v", err)
	}
}

func TestCheckDuplicate_BlockedAndClaimable(t *testing.T) {
	store := newFakeStore()
	store.duplicate = &db.DuplicateMatch{ID: "alt-9", Name: "Focalboard", ByName: true}

	flow := New(store, "user-1")
	flow.Update(validForm())

	result, err := flow.CheckDuplicate()
	if err != nil {
		t.Fatalf("CheckDuplicate() error = %v", err)
	}
	if !result.Duplicate {
		t.Fatal("result.Duplicate = false, want true")
	}
	if !result.Claimable {
		t.Error("result.Claimable = false, want true for ownerless match + signed-in user")
	}
	if flow.State() != StateDuplicateBlocked {
		t.Errorf("state = %s, want duplicate_blocked", flow.State())
	}

	store.claimOK = true
	if err := flow.Claim(); err != nil {
		t.Errorf("Claim() error = %v", err)
	}
}

func TestCheckDuplicate_NotClaimableForAnonymous(t *testing.T) {
	store := newFakeStore()
	store.duplicate = &db.DuplicateMatch{ID: "alt-9", Name: "Focalboard", ByName: true}

	flow := New(store, "")
	flow.Update(validForm())

	result, err := flow.CheckDuplicate()
	if err != nil {
		t.Fatalf("CheckDuplicate() error = %v", err)
	}
	if result.Claimable {
		t.Error("result.Claimable = true for anonymous caller, want false")
	}
}

func TestCheckDuplicate_CacheInvalidatedByEdit(t *testing.T) {
	store := newFakeStore()
	flow := clearFlow(t, store)

	if flow.LastCheck() == nil {
		t.Fatal("LastCheck() = nil right after a check")
	}

	// Editing an unrelated field keeps the cache.
	form := flow.Form()
	form.ShortDesc = "updated"
	flow.Update(form)
	if flow.LastCheck() == nil {
		t.Error("cache dropped by an unrelated edit")
	}

	// Editing the name invalidates it.
	form = flow.Form()
	form.Name = "Focalboard CE"
	flow.Update(form)
	if flow.LastCheck() != nil {
		t.Error("cache survived a name edit")
	}

	// And submission is gated again until a fresh check.
	flow.form.BacklinkVerified = true
	var derr *DuplicateError
	if _, err := flow.Submit(); !errors.As(err, &derr) {
		t.Errorf("Submit() after stale check error = %v, want DuplicateError", err)
	}
}

func TestSetPlan_RequirementsNeverBothActive(t *testing.T) {
	flow := New(newFakeStore(), "user-1")
	flow.Update(validForm())

	flow.form.BacklinkVerified = true
	flow.SetPlan(models.PlanSponsor)
	if flow.Form().BacklinkVerified {
		t.Error("backlink evidence survived switch to sponsor")
	}

	flow.AttachPayment("CAPTURE-1")
	flow.SetPlan(models.PlanFree)
	if flow.Form().PaymentCaptureID != "" {
		t.Error("payment evidence survived switch to free")
	}
}

func TestDraft_SaveLoadDelete(t *testing.T) {
	store := newFakeStore()
	flow := New(store, "user-1")
	flow.Update(validForm())

	if _, err := flow.SaveDraft(); err != nil {
		t.Fatalf("SaveDraft() error = %v", err)
	}

	// A new flow for the same user restores the form.
	flow2 := New(store, "user-1")
	draft, err := flow2.LoadDraft()
	if err != nil {
		t.Fatalf("LoadDraft() error = %v", err)
	}
	if draft == nil {
		t.Fatal("LoadDraft() = nil, want saved draft")
	}
	if flow2.Form().Name != "Focalboard" {
		t.Errorf("restored name = %q, want Focalboard", flow2.Form().Name)
	}

	if err := flow2.DeleteDraft(); err != nil {
		t.Fatalf("DeleteDraft() error = %v", err)
	}
	if d, _ := flow2.LoadDraft(); d != nil {
		t.Error("draft survived deletion")
	}
}

func TestDraft_LoadOfIdenticalFormKeepsClearCheck(t *testing.T) {
	store := newFakeStore()
	flow := clearFlow(t, store)
	flow.form.BacklinkVerified = true

	if _, err := flow.SaveDraft(); err != nil {
		t.Fatalf("SaveDraft() error = %v", err)
	}
	if _, err := flow.LoadDraft(); err != nil {
		t.Fatalf("LoadDraft() error = %v", err)
	}

	// The draft carries the same name and URL, so the check still holds.
	if flow.State() != StateDuplicateClear {
		t.Errorf("state after LoadDraft = %s, want duplicate_clear", flow.State())
	}
	if flow.LastCheck() == nil {
		t.Error("duplicate-check cache dropped by loading an identical draft")
	}
	if _, err := flow.Submit(); err != nil {
		t.Errorf("Submit() after LoadDraft error = %v", err)
	}
}

func TestDraft_LoadOfDifferentNameInvalidatesCheck(t *testing.T) {
	store := newFakeStore()
	flow := clearFlow(t, store)

	renamed := validForm()
	renamed.Name = "Focalboard CE"
	store.drafts["user-1"] = renamed

	if _, err := flow.LoadDraft(); err != nil {
		t.Fatalf("LoadDraft() error = %v", err)
	}
	if flow.LastCheck() != nil {
		t.Error("cache survived loading a draft with a different name")
	}
	if flow.State() != StateEditing {
		t.Errorf("state after LoadDraft = %s, want editing", flow.State())
	}
}

func TestDraft_AnonymousRejected(t *testing.T) {
	flow := New(newFakeStore(), "")
	if _, err := flow.SaveDraft(); !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("SaveDraft() error = %v, want ErrAuthenticationRequired", err)
	}
	if _, err := flow.LoadDraft(); !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("LoadDraft() error = %v, want ErrAuthenticationRequired", err)
	}
}

func TestRequestPayment_GatedOnClearCheck(t *testing.T) {
	store := newFakeStore()
	flow := New(store, "user-1")
	form := validForm()
	flow.Update(form)
	flow.SetPlan(models.PlanSponsor)

	var derr *DuplicateError
	if err := flow.RequestPayment(); !errors.As(err, &derr) {
		t.Fatalf("RequestPayment() before check error = %v, want DuplicateError", err)
	}

	if _, err := flow.CheckDuplicate(); err != nil {
		t.Fatalf("CheckDuplicate() error = %v", err)
	}
	if err := flow.RequestPayment(); err != nil {
		t.Fatalf("RequestPayment() error = %v", err)
	}
	if flow.State() != StatePaymentPending {
		t.Errorf("state = %s, want payment_pending", flow.State())
	}

	// Closing the payment modal abandons the in-flight payment.
	flow.AbandonPayment()
	if flow.State() != StateDuplicateClear {
		t.Errorf("state = %s, want duplicate_clear after abandon", flow.State())
	}
}

func TestCheckDuplicate_NetworkErrorPreservesState(t *testing.T) {
	store := newFakeStore()
	store.dupErr = errors.New("timeout")

	flow := New(store, "user-1")
	flow.Update(validForm())

	_, err := flow.CheckDuplicate()
	var nerr *NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("CheckDuplicate() error = %v, want NetworkError", err)
	}
	if flow.State() != StateEditing {
		t.Errorf("state = %s, want editing preserved after failed call", flow.State())
	}
	if flow.LastCheck() != nil {
		t.Error("failed check populated the cache")
	}
}
