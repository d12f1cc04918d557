package cli

import (
	"context"

	"github.com/secmon-lab/mnemosyne/pkg/cli/config"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/usecase"
	"github.com/secmon-lab/mnemosyne/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdApply() *cli.Command {
	var targetTag string
	var noCache bool
	var appCfg config.AppConfig
	var repoCfg config.Repository
	var notionCfg config.Notion
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "tag",
			Usage:       "Tag to evaluate against every bookmark",
			Required:    true,
			Destination: &targetTag,
		},
		&cli.BoolFlag{
			Name:        "no-cache",
			Usage:       "Skip cache lookups and always ask the AI (results are still cached)",
			Destination: &noCache,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, notionCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:    "apply",
		Aliases: []string{"a"},
		Usage:   "Interactively apply one tag across the bookmarks database",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := buildUseCases(ctx, c, &appCfg, &repoCfg, &notionCfg, &geminiCfg)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			return uc.RunApply(ctx, usecase.ApplyOption{
				DatabaseID: notionCfg.DatabaseID(),
				TargetTag:  types.TagName(targetTag),
				NoCache:    noCache,
			})
		},
	}
}
