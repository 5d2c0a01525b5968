// Package db implements the database inspection commands.
package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/altdir/altdir/models"
	dbpkg "github.com/altdir/altdir/pkg/db"
)

func open(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	path := c.String("db")
	if path == "" {
		path = cfg.DBPath
	}
	database, err := dbpkg.OpenAt(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// StatsAction prints row counts for the whole catalog.
func StatsAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return err
	}
	defer database.Close()

	categories, err := database.ListCategories()
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	proprietary, err := database.ListProprietary()
	if err != nil {
		return fmt.Errorf("failed to list proprietary software: %w", err)
	}
	stacks, err := database.ListTechStacks()
	if err != nil {
		return fmt.Errorf("failed to list tech stacks: %w", err)
	}
	alternatives, err := database.ListAlternatives(0)
	if err != nil {
		return fmt.Errorf("failed to list alternatives: %w", err)
	}
	drafts, err := database.CountDrafts()
	if err != nil {
		return fmt.Errorf("failed to count drafts: %w", err)
	}
	submissions, err := database.ListSubmissions(0)
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	fmt.Printf("Database: %s\n", database.Path())
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("%-22s %d\n", "Categories:", len(categories))
	fmt.Printf("%-22s %d\n", "Proprietary software:", len(proprietary))
	fmt.Printf("%-22s %d\n", "Tech stacks:", len(stacks))
	fmt.Printf("%-22s %d\n", "Alternatives:", len(alternatives))
	fmt.Printf("%-22s %d\n", "Drafts:", drafts)
	fmt.Printf("%-22s %d\n", "Submissions:", len(submissions))

	return nil
}

// AlternativesAction lists catalog entries as a table.
func AlternativesAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return err
	}
	defer database.Close()

	alternatives, err := database.ListAlternatives(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list alternatives: %w", err)
	}

	if len(alternatives) == 0 {
		fmt.Println("No alternatives found")
		return nil
	}

	fmt.Printf("%-24s %-28s %-10s %-8s %-30s\n",
		"Slug", "Name", "Status", "Plan", "Alternative To")
	fmt.Println(strings.Repeat("-", 104))

	for _, a := range alternatives {
		fmt.Printf("%-24s %-28s %-10s %-8s %-30s\n",
			a.Slug,
			truncate(a.Name, 28),
			a.Status,
			a.Plan,
			truncate(strings.Join(a.AlternativeTo, ", "), 30),
		)
	}

	fmt.Printf("\nTotal: %d alternatives\n", len(alternatives))
	fmt.Printf("\nTip: Use 'altdir db submissions' to see submission history\n")

	return nil
}

// DraftsAction lists in-progress drafts.
func DraftsAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return err
	}
	defer database.Close()

	drafts, err := database.ListDrafts()
	if err != nil {
		return fmt.Errorf("failed to list drafts: %w", err)
	}

	if len(drafts) == 0 {
		fmt.Println("No drafts found")
		return nil
	}

	fmt.Printf("%-36s %-28s %-8s %-20s\n", "User", "Name", "Plan", "Last Saved")
	fmt.Println(strings.Repeat("-", 96))

	for _, d := range drafts {
		fmt.Printf("%-36s %-28s %-8s %-20s\n",
			d.UserID,
			truncate(d.Form.Name, 28),
			d.Form.Plan,
			d.LastSavedAt.Format("2006-01-02 15:04:05"),
		)
	}

	fmt.Printf("\nTotal: %d drafts\n", len(drafts))
	return nil
}

// SubmissionsAction lists the submission audit trail.
func SubmissionsAction(c *cli.Context) error {
	database, err := open(c)
	if err != nil {
		return err
	}
	defer database.Close()

	submissions, err := database.ListSubmissions(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	if len(submissions) == 0 {
		fmt.Println("No submissions found")
		return nil
	}

	fmt.Printf("%-36s %-20s %-8s %-20s\n", "ID", "Created", "Plan", "Payment Ref")
	fmt.Println(strings.Repeat("-", 88))

	for _, s := range submissions {
		fmt.Printf("%-36s %-20s %-8s %-20s\n",
			s.ID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.Plan,
			s.PaymentRef,
		)
	}

	fmt.Printf("\nTotal: %d submissions\n", len(submissions))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
