// Package seed implements the CLI commands that populate the
// database with the curated catalog, running the category matcher
// over each alternative.
package seed

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/altdir/altdir/internal/common"
	"github.com/altdir/altdir/models"
	"github.com/altdir/altdir/pkg/caching"
	"github.com/altdir/altdir/pkg/db"
	"github.com/altdir/altdir/pkg/enrich"
	"github.com/altdir/altdir/pkg/fetcher"
	"github.com/altdir/altdir/pkg/matcher"
	"github.com/altdir/altdir/pkg/seeddata"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func openDatabase(c *cli.Context) (*db.DB, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	path := c.String("db")
	if path == "" {
		path = cfg.DBPath
	}
	return db.OpenAt(path)
}

// CategoriesAction seeds the taxonomy.
func CategoriesAction(c *cli.Context) error {
	logger := newLogger(c)
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return seedCategories(logger, database)
}

func seedCategories(logger *slog.Logger, database *db.DB) error {
	for _, cat := range seeddata.Categories {
		if err := database.UpsertCategory(cat.Slug, cat.Name); err != nil {
			return err
		}
	}
	logger.Info("seeded categories", "count", len(seeddata.Categories))
	return nil
}

// ProprietaryAction seeds the proprietary-software entries.
func ProprietaryAction(c *cli.Context) error {
	logger := newLogger(c)
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return seedProprietary(logger, database)
}

func seedProprietary(logger *slog.Logger, database *db.DB) error {
	for _, p := range seeddata.Proprietary {
		website := p.Website
		if website != "" {
			cleaned, err := common.ValidateURL(website)
			if err != nil {
				logger.Warn("dropping invalid website", "slug", p.Slug, "error", err)
				cleaned = ""
			}
			website = cleaned
		}
		if err := database.UpsertProprietary(p.Slug, p.Name, website); err != nil {
			return err
		}
	}
	logger.Info("seeded proprietary software", "count", len(seeddata.Proprietary))
	return nil
}

// TechStacksAction seeds the tech-stack labels.
func TechStacksAction(c *cli.Context) error {
	logger := newLogger(c)
	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return seedTechStacks(logger, database)
}

func seedTechStacks(logger *slog.Logger, database *db.DB) error {
	for _, s := range seeddata.TechStacks {
		if err := database.UpsertTechStack(s.Slug, s.Name); err != nil {
			return err
		}
	}
	logger.Info("seeded tech stacks", "count", len(seeddata.TechStacks))
	return nil
}

// AlternativesAction seeds the curated alternatives, assigning
// categories with the keyword matcher. Per-record failures are logged
// and counted, not fatal.
func AlternativesAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	var enricher *enrich.Enricher
	if c.Bool("enrich") {
		f := fetcher.NewFetcher(0)
		var cache *caching.Cache
		if dir := c.String("cache-dir"); dir != "" {
			cache, err = caching.NewCache(dir, cfg.FetchTTL.Std())
			if err != nil {
				return fmt.Errorf("failed to initialize page cache: %w", err)
			}
		}
		enricher = enrich.New(f, cache)
	}

	return seedAlternatives(logger, database, enricher)
}

func seedAlternatives(logger *slog.Logger, database *db.DB, enricher *enrich.Enricher) error {
	slugs, err := database.ListCategorySlugs()
	if err != nil {
		return err
	}
	available := matcher.NewLabelSet(slugs)

	var seeded, failed int
	for _, seed := range seeddata.Alternatives {
		alt := models.Alternative{
			Slug:          seed.Slug,
			Name:          seed.Name,
			ShortDesc:     seed.ShortDesc,
			LongDesc:      seed.LongDesc,
			License:       seed.License,
			AlternativeTo: seed.AlternativeTo,
			TechStacks:    seed.TechStacks,
			Status:        models.StatusApproved,
			Plan:          models.PlanFree,
		}

		if repo, err := common.ValidateURL(seed.RepoURL); err == nil {
			alt.RepoURL = repo
		} else {
			logger.Warn("dropping invalid repo URL", "slug", seed.Slug, "error", err)
		}
		if seed.Homepage != "" {
			if home, err := common.ValidateURL(seed.Homepage); err == nil {
				alt.Homepage = home
			} else {
				logger.Warn("dropping invalid homepage", "slug", seed.Slug, "error", err)
			}
		}

		subject := alt.MatchSubject()
		if enricher != nil && alt.Homepage != "" {
			extract, err := enricher.Extract(alt.Homepage)
			if err != nil {
				// Soft failure: match on the curated text alone.
				logger.Warn("enrichment failed", "slug", seed.Slug, "error", err)
			} else if extract != "" {
				subject = subject + " " + extract
			}
		}

		// Zero resolved labels leaves the record valid but
		// uncategorized.
		alt.Categories = matcher.Match(subject, matcher.DefaultRules, available, matcher.DefaultCategories)

		if _, err := database.UpsertAlternative(&alt); err != nil {
			logger.Error("failed to seed alternative", "slug", seed.Slug, "error", err)
			failed++
			continue
		}
		logger.Info("seeded alternative", "slug", seed.Slug, "categories", alt.Categories)
		seeded++
	}

	logger.Info("alternatives seeding complete", "seeded", seeded, "failed", failed)
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d alternatives failed to seed\n", failed, seeded+failed)
	}
	return nil
}

// AllAction seeds everything in dependency order: taxonomy first so
// the matcher has labels to resolve against.
func AllAction(c *cli.Context) error {
	logger := newLogger(c)
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	database, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if err := seedCategories(logger, database); err != nil {
		return err
	}
	if err := seedProprietary(logger, database); err != nil {
		return err
	}
	if err := seedTechStacks(logger, database); err != nil {
		return err
	}

	var enricher *enrich.Enricher
	if c.Bool("enrich") {
		f := fetcher.NewFetcher(0)
		var cache *caching.Cache
		if dir := c.String("cache-dir"); dir != "" {
			cache, err = caching.NewCache(dir, cfg.FetchTTL.Std())
			if err != nil {
				return fmt.Errorf("failed to initialize page cache: %w", err)
			}
		}
		enricher = enrich.New(f, cache)
	}
	return seedAlternatives(logger, database, enricher)
}
