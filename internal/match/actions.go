// Package match implements the ad-hoc category matching command,
// useful for tuning the rule table against real descriptions.
package match

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/altdir/altdir/models"
	"github.com/altdir/altdir/pkg/db"
	"github.com/altdir/altdir/pkg/matcher"
	"github.com/altdir/altdir/pkg/seeddata"
)

// Action runs the matcher over the text given as arguments and prints
// the resolved category slugs. Labels come from the database when one
// is reachable, otherwise from the built-in seed list.
func Action(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("usage: altdir match <description text>")
	}

	available := availableLabels(c)
	categories := matcher.Match(text, matcher.DefaultRules, available, matcher.DefaultCategories)

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"text":       text,
			"categories": categories,
		})
	}

	if len(categories) == 0 {
		fmt.Println("No categories matched")
		return nil
	}
	for _, slug := range categories {
		fmt.Println(slug)
	}
	return nil
}

func availableLabels(c *cli.Context) matcher.LabelSet {
	cfg, err := models.LoadConfig(c.String("config"))
	if err == nil {
		path := c.String("db")
		if path == "" {
			path = cfg.DBPath
		}
		if database, err := db.OpenAt(path); err == nil {
			defer database.Close()
			if slugs, err := database.ListCategorySlugs(); err == nil && len(slugs) > 0 {
				return matcher.NewLabelSet(slugs)
			}
		}
	}

	slugs := make([]string, 0, len(seeddata.Categories))
	for _, cat := range seeddata.Categories {
		slugs = append(slugs, cat.Slug)
	}
	return matcher.NewLabelSet(slugs)
}
