package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/cli/config"
	"github.com/secmon-lab/mnemosyne/pkg/domain/interfaces"
	"github.com/secmon-lab/mnemosyne/pkg/service/cache"
	"github.com/secmon-lab/mnemosyne/pkg/service/console"
	"github.com/secmon-lab/mnemosyne/pkg/service/suggest"
	"github.com/secmon-lab/mnemosyne/pkg/usecase"
	"github.com/secmon-lab/mnemosyne/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// buildUseCases wires the full AI workflow stack from the shared config
// blocks. The caller owns the returned repository and must Close it.
func buildUseCases(ctx context.Context, c *cli.Command, appCfg *config.AppConfig, repoCfg *config.Repository, notionCfg *config.Notion, geminiCfg *config.Gemini) (*usecase.UseCases, interfaces.Repository, error) {
	vocab, err := appCfg.Configure(c)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load tag vocabulary")
	}

	repo, err := repoCfg.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}

	notionSvc, err := notionCfg.Configure()
	if err != nil {
		safe.Close(ctx, repo)
		return nil, nil, err
	}

	llmClient, err := geminiCfg.Configure(ctx)
	if err != nil {
		safe.Close(ctx, repo)
		return nil, nil, err
	}

	suggestSvc, err := suggest.New(llmClient)
	if err != nil {
		safe.Close(ctx, repo)
		return nil, nil, goerr.Wrap(err, "failed to initialize suggest service")
	}

	uc := usecase.New(cache.New(repo), vocab,
		usecase.WithNotionService(notionSvc),
		usecase.WithSuggestService(suggestSvc),
		usecase.WithConsole(console.New(os.Stdin, os.Stdout)),
	)

	return uc, repo, nil
}

func cmdSuggest() *cli.Command {
	var untaggedOnly bool
	var noCache bool
	var appCfg config.AppConfig
	var repoCfg config.Repository
	var notionCfg config.Notion
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "untagged-only",
			Usage:       "Only review bookmarks that have no tags yet",
			Value:       true,
			Sources:     cli.EnvVars("MNEMOSYNE_UNTAGGED_ONLY"),
			Destination: &untaggedOnly,
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
		Name:    "suggest",
		Aliases: []string{"s"},
		Usage:   "Interactively review AI tag suggestions for bookmarks",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := buildUseCases(ctx, c, &appCfg, &repoCfg, &notionCfg, &geminiCfg)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			return uc.RunReview(ctx, usecase.ReviewOption{
				DatabaseID:   notionCfg.DatabaseID(),
				UntaggedOnly: untaggedOnly,
				NoCache:      noCache,
			})
		},
	}
}
