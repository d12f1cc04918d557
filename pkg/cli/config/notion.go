package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/service/notion"
	"github.com/urfave/cli/v3"
)

// Notion holds CLI flags for the Notion integration
type Notion struct {
	apiToken   string
	databaseID string
}

// Flags returns CLI flags for Notion configuration
func (n *Notion) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notion-api-token",
			Usage:       "Notion API token",
			Category:    "Notion",
			Sources:     cli.EnvVars("MNEMOSYNE_NOTION_API_TOKEN"),
			Destination: &n.apiToken,
		},
		&cli.StringFlag{
			Name:        "notion-database-id",
			Usage:       "Notion database ID of the bookmarks database",
			Category:    "Notion",
			Sources:     cli.EnvVars("MNEMOSYNE_NOTION_DATABASE_ID"),
			Destination: &n.databaseID,
		},
	}
}

// LogValue hides the API token and reports only its length
func (n Notion) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("api-token.len", len(n.apiToken)),
		slog.String("database-id", n.databaseID),
	)
}

// DatabaseID returns the configured bookmarks database ID
func (n *Notion) DatabaseID() string {
	return n.databaseID
}

// Configure creates a Notion service from the configured flags
func (n *Notion) Configure() (notion.Service, error) {
	if n.apiToken == "" {
		return nil, goerr.New("notion-api-token is required")
	}
	if n.databaseID == "" {
		return nil, goerr.New("notion-database-id is required")
	}

	svc, err := notion.New(n.apiToken)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize notion service")
	}

	return svc, nil
}
