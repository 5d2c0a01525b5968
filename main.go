package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	dbcmd "github.com/altdir/altdir/internal/db"
	"github.com/altdir/altdir/internal/match"
	"github.com/altdir/altdir/internal/seed"
	"github.com/altdir/altdir/internal/serve"
)

func main() {
	app := &cli.App{
		Name:  "altdir",
		Usage: "open-source alternatives directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "override the database path from the config",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the API server",
				Action: serve.Action,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "override the listen address from the config",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "directory for cached page fetches",
					},
				},
			},
			{
				Name:  "seed",
				Usage: "populate the database with the curated catalog",
				Subcommands: []*cli.Command{
					{
						Name:   "categories",
						Usage:  "seed the category taxonomy",
						Action: seed.CategoriesAction,
					},
					{
						Name:   "proprietary",
						Usage:  "seed the proprietary software list",
						Action: seed.ProprietaryAction,
					},
					{
						Name:   "tech-stacks",
						Usage:  "seed the tech stack labels",
						Action: seed.TechStacksAction,
					},
					{
						Name:   "alternatives",
						Usage:  "seed the curated alternatives, categorized by the matcher",
						Action: seed.AlternativesAction,
						Flags:  seedFlags(),
					},
					{
						Name:   "all",
						Usage:  "seed taxonomy and alternatives in one pass",
						Action: seed.AllAction,
						Flags:  seedFlags(),
					},
				},
			},
			{
				Name:      "match",
				Usage:     "run the category matcher over a description",
				ArgsUsage: "<description text>",
				Action:    match.Action,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "emit the result as JSON",
					},
				},
			},
			{
				Name:  "db",
				Usage: "inspect the database",
				Subcommands: []*cli.Command{
					{
						Name:   "stats",
						Usage:  "show row counts for the catalog",
						Action: dbcmd.StatsAction,
					},
					{
						Name:   "alternatives",
						Usage:  "list catalog entries",
						Action: dbcmd.AlternativesAction,
						Flags:  limitFlag(),
					},
					{
						Name:   "drafts",
						Usage:  "list in-progress drafts",
						Action: dbcmd.DraftsAction,
					},
					{
						Name:   "submissions",
						Usage:  "list the submission history",
						Action: dbcmd.SubmissionsAction,
						Flags:  limitFlag(),
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "enrich",
			Usage: "fetch each homepage and extend the match text with its readable content",
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "directory for cached page fetches",
		},
	}
}

func limitFlag() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Value: 50,
			Usage: "maximum rows to list",
		},
	}
}
