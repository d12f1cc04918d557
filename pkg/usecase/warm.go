package usecase

import (
	"context"

	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/utils/errutil"
	"github.com/secmon-lab/mnemosyne/pkg/utils/logging"
)

// WarmOption configures a batch cache-warming pass
type WarmOption struct {
	DatabaseID   string
	TargetTag    types.TagName // when set, warm the application cache instead
	UntaggedOnly bool
	Force        bool // recompute even on a valid cache hit
}

// RunWarm pre-computes AI results for the whole database so a later
// interactive session runs off the cache. Per-item AI failures are logged
// and the loop continues; cancellation of the context is checked between
// items so an interrupt finishes the in-flight bookmark and then stops.
func (uc *UseCases) RunWarm(ctx context.Context, opt WarmOption) error {
	if uc.bookmarks == nil {
		return ErrNoNotionService
	}

	var invokeOpts []InvokeOption
	if opt.Force {
		invokeOpts = append(invokeOpts, WithoutCache())
	}

	logger := logging.From(ctx)
	var processed, failed int

	for bm, err := range uc.bookmarks.ListBookmarks(ctx, opt.DatabaseID) {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			logger.Info("Warm pass interrupted", "processed", processed)
			return err
		}

		if opt.TargetTag != "" {
			if bm.HasTag(opt.TargetTag) {
				continue
			}
			if _, err := uc.EvaluateTag(ctx, bm, opt.TargetTag, invokeOpts...); err != nil {
				errutil.Log(ctx, err, "failed to warm application cache")
				failed++
				continue
			}
		} else {
			if opt.UntaggedOnly && len(bm.Tags) > 0 {
				continue
			}
			if _, err := uc.SuggestTags(ctx, bm, model.UntaggedScope(), invokeOpts...); err != nil {
				errutil.Log(ctx, err, "failed to warm suggestion cache")
				failed++
				continue
			}
		}

		processed++
	}

	logger.Info("Warm pass finished", "processed", processed, "failed", failed)
	return nil
}
