package db

import (
	"reflect"
	"testing"

	"github.com/altdir/altdir/models"
)

func TestUpsertAlternative_InsertThenUpdate(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()
	seedTaxonomy(t, database)

	alt := &models.Alternative{
		Slug:          "focalboard",
		Name:          "Focalboard",
		ShortDesc:     "Kanban boards",
		RepoURL:       "https://github.com/mattermost/focalboard",
		License:       "MIT",
		AlternativeTo: []string{"trello"},
		Categories:    []string{"project-management", "task-management", "productivity"},
		TechStacks:    []string{"golang"},
	}

	id1, err := database.UpsertAlternative(alt)
	if err != nil {
		t.Fatalf("UpsertAlternative() error = %v", err)
	}

	alt.ShortDesc = "Kanban boards for teams"
	id2, err := database.UpsertAlternative(alt)
	if err != nil {
		t.Fatalf("UpsertAlternative() second error = %v", err)
	}
	if id1 != id2 {
		t.Errorf("upsert created a new ID: %s vs %s", id1, id2)
	}

	got, err := database.GetAlternative(id1)
	if err != nil {
		t.Fatalf("GetAlternative() error = %v", err)
	}
	if got.ShortDesc != "Kanban boards for teams" {
		t.Errorf("short desc = %q, want updated value", got.ShortDesc)
	}
	wantCats := []string{"project-management", "task-management", "productivity"}
	if !reflect.DeepEqual(got.Categories, wantCats) {
		t.Errorf("categories = %v, want %v (order preserved)", got.Categories, wantCats)
	}
	if !reflect.DeepEqual(got.AlternativeTo, []string{"trello"}) {
		t.Errorf("alternative_to = %v, want [trello]", got.AlternativeTo)
	}
}

func TestUpsertAlternative_UnresolvedSlugsDropped(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()
	seedTaxonomy(t, database)

	alt := &models.Alternative{
		Slug:       "widget",
		Name:       "Widget",
		Categories: []string{"productivity", "no-such-category"},
	}
	id, err := database.UpsertAlternative(alt)
	if err != nil {
		t.Fatalf("UpsertAlternative() error = %v", err)
	}

	got, err := database.GetAlternative(id)
	if err != nil {
		t.Fatalf("GetAlternative() error = %v", err)
	}
	if !reflect.DeepEqual(got.Categories, []string{"productivity"}) {
		t.Errorf("categories = %v, want unresolved slug dropped", got.Categories)
	}
}

func TestFindDuplicate(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()
	seedTaxonomy(t, database)

	alt := &models.Alternative{
		Slug:    "focalboard",
		Name:    "Focalboard",
		RepoURL: "https://github.com/mattermost/focalboard",
	}
	if _, err := database.UpsertAlternative(alt); err != nil {
		t.Fatalf("UpsertAlternative() error = %v", err)
	}

	tests := []struct {
		name    string
		cand    string
		repo    string
		wantDup bool
	}{
		{"name collision case-insensitive", "FOCALBOARD", "https://github.com/other/repo", true},
		{"repo collision", "Other Name", "https://github.com/mattermost/focalboard", true},
		{"no collision", "Taiga", "https://github.com/taigaio/taiga", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := database.FindDuplicate(tt.cand, tt.repo)
			if err != nil {
				t.Fatalf("FindDuplicate() error = %v", err)
			}
			if (match != nil) != tt.wantDup {
				t.Errorf("FindDuplicate() match = %v, want duplicate=%v", match, tt.wantDup)
			}
		})
	}
}

func TestClaimAlternative(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()
	seedTaxonomy(t, database)
	user := testUser(t, database)

	id, err := database.UpsertAlternative(&models.Alternative{Slug: "orphan", Name: "Orphan"})
	if err != nil {
		t.Fatalf("UpsertAlternative() error = %v", err)
	}

	claimed, err := database.ClaimAlternative(id, user.ID)
	if err != nil {
		t.Fatalf("ClaimAlternative() error = %v", err)
	}
	if !claimed {
		t.Fatal("ClaimAlternative() = false, want true for ownerless record")
	}

	// A second claim must fail: the record now has an owner.
	again, err := database.ClaimAlternative(id, "someone-else")
	if err != nil {
		t.Fatalf("ClaimAlternative() second error = %v", err)
	}
	if again {
		t.Error("ClaimAlternative() = true for owned record, want false")
	}
}

func TestCreateSubmission_DeletesDraft(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()
	seedTaxonomy(t, database)
	user := testUser(t, database)

	form := models.FormState{
		Name:          "Focalboard",
		License:       "MIT",
		AlternativeTo: []string{"trello"},
		Categories:    []string{"project-management"},
		Plan:          models.PlanSponsor,
	}
	if _, err := database.SaveDraft(user.ID, form); err != nil {
		t.Fatalf("SaveDraft() error = %v", err)
	}

	sub, err := database.CreateSubmission(user.ID, form, "CAPTURE-123")
	if err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}
	if sub.PaymentRef != "CAPTURE-123" {
		t.Errorf("payment ref = %q, want CAPTURE-123", sub.PaymentRef)
	}

	draft, err := database.GetDraft(user.ID)
	if err != nil {
		t.Fatalf("GetDraft() error = %v", err)
	}
	if draft != nil {
		t.Error("draft survived submission, want it deleted")
	}

	alt, err := database.GetAlternative(sub.AlternativeID)
	if err != nil {
		t.Fatalf("GetAlternative() error = %v", err)
	}
	if alt.Status != models.StatusPending {
		t.Errorf("submitted status = %q, want pending", alt.Status)
	}
	if alt.OwnerID != user.ID {
		t.Errorf("owner = %q, want submitting user", alt.OwnerID)
	}
}

func TestCreateSubmission_UnslugifiableNameFallsBackToID(t *testing.T) {
	database := setupTestDB(t)
	defer database.Close()
	seedTaxonomy(t, database)
	user := testUser(t, database)

	form := models.FormState{
		Name:          "?!?!",
		License:       "MIT",
		AlternativeTo: []string{"trello"},
	}

	first, err := database.CreateSubmission(user.ID, form, "")
	if err != nil {
		t.Fatalf("CreateSubmission() error = %v", err)
	}
	alt, err := database.GetAlternative(first.AlternativeID)
	if err != nil {
		t.Fatalf("GetAlternative() error = %v", err)
	}
	if alt.Slug == "" {
		t.Error("submitted alternative has an empty slug")
	}
	if alt.Slug != first.AlternativeID {
		t.Errorf("fallback slug = %q, want the record ID %q", alt.Slug, first.AlternativeID)
	}

	// A second unslugifiable name must not collide on the slug column.
	second, err := database.CreateSubmission(user.ID, form, "")
	if err != nil {
		t.Fatalf("CreateSubmission() for second record error = %v", err)
	}
	if second.AlternativeID == first.AlternativeID {
		t.Error("second submission reused the first record ID")
	}
}
