package cli

import (
	"context"

	"github.com/secmon-lab/mnemosyne/pkg/cli/config"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/usecase"
	"github.com/secmon-lab/mnemosyne/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdWarm() *cli.Command {
	var targetTag string
	var untaggedOnly bool
	var force bool
	var appCfg config.AppConfig
	var repoCfg config.Repository
	var notionCfg config.Notion
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "tag",
			Usage:       "Warm the application cache for this tag instead of the suggestion cache",
			Destination: &targetTag,
		},
		&cli.BoolFlag{
			Name:        "untagged-only",
			Usage:       "Only warm bookmarks that have no tags yet",
			Value:       true,
			Destination: &untaggedOnly,
		},
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "Recompute even when a valid cache entry exists",
			Destination: &force,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, notionCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:  "warm",
		Usage: "Pre-compute AI results for the whole database into the cache",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := buildUseCases(ctx, c, &appCfg, &repoCfg, &notionCfg, &geminiCfg)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			return uc.RunWarm(ctx, usecase.WarmOption{
				DatabaseID:   notionCfg.DatabaseID(),
				TargetTag:    types.TagName(targetTag),
				UntaggedOnly: untaggedOnly,
				Force:        force,
			})
		},
	}
}
