package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/secmon-lab/mnemosyne/pkg/cli/config"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/service/cache"
	"github.com/secmon-lab/mnemosyne/pkg/usecase"
	"github.com/secmon-lab/mnemosyne/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

var cacheHeaderColor = color.New(color.FgCyan, color.Bold)

func cmdCache() *cli.Command {
	var repoCfg config.Repository

	newUseCases := func(ctx context.Context) (*usecase.UseCases, func(), error) {
		repo, err := repoCfg.Configure(ctx)
		if err != nil {
			return nil, nil, err
		}
		uc := usecase.New(cache.New(repo), model.NewTagVocabulary(nil))
		return uc, func() { safe.Close(ctx, repo) }, nil
	}

	statsCmd := &cli.Command{
		Name:  "stats",
		Usage: "Show entry counts and timestamp ranges per cache kind",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, done, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			defer done()

			stats, err := uc.CacheStats(ctx)
			if err != nil {
				return err
			}

			printStats(stats)
			return nil
		},
	}

	clearCmd := &cli.Command{
		Name:  "clear",
		Usage: "Remove every cached entry of both kinds",
		Flags: repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, done, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			defer done()

			if err := uc.ClearCache(ctx); err != nil {
				return err
			}
			fmt.Println("cache cleared")
			return nil
		},
	}

	var maxAge time.Duration
	evictFlags := []cli.Flag{
		&cli.DurationFlag{
			Name:        "max-age",
			Usage:       "Remove entries cached before now minus this duration",
			Value:       30 * 24 * time.Hour,
			Destination: &maxAge,
		},
	}
	evictFlags = append(evictFlags, repoCfg.Flags()...)

	evictCmd := &cli.Command{
		Name:  "evict",
		Usage: "Remove cache entries older than the given age",
		Flags: evictFlags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, done, err := newUseCases(ctx)
			if err != nil {
				return err
			}
			defer done()

			removed, err := uc.EvictCache(ctx, maxAge)
			if err != nil {
				return err
			}

			for _, kind := range []types.CacheKind{types.CacheKindSuggestion, types.CacheKindApplication} {
				fmt.Printf("%s: removed %d entries\n", kind, removed[kind])
			}
			return nil
		},
	}

	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect and maintain the AI result cache",
		Commands: []*cli.Command{
			statsCmd,
			clearCmd,
			evictCmd,
		},
	}
}

func printStats(stats *cache.Stats) {
	_, _ = cacheHeaderColor.Println("Suggestion cache")
	fmt.Printf("  total:        %d\n", stats.Suggestion.Total)
	fmt.Printf("  untagged:     %d\n", stats.Suggestion.Untagged)
	fmt.Printf("  tag-specific: %d\n", stats.Suggestion.TagSpecific)
	fmt.Printf("  oldest:       %s\n", formatStatTime(stats.Suggestion.Oldest))
	fmt.Printf("  newest:       %s\n", formatStatTime(stats.Suggestion.Newest))

	_, _ = cacheHeaderColor.Println("Application cache")
	fmt.Printf("  total:        %d\n", stats.Application.Total)
	fmt.Printf("  oldest:       %s\n", formatStatTime(stats.Application.Oldest))
	fmt.Printf("  newest:       %s\n", formatStatTime(stats.Application.Newest))
}

func formatStatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}
