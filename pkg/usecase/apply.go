package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/service/console"
	"github.com/secmon-lab/mnemosyne/pkg/utils/errutil"
	"github.com/secmon-lab/mnemosyne/pkg/utils/logging"
)

// ApplyOption configures an interactive single-tag application session
type ApplyOption struct {
	DatabaseID string
	TargetTag  types.TagName
	NoCache    bool
}

// RunApply walks the bookmarks database asking the AI whether each
// bookmark should carry the target tag, and prompts the operator for the
// positive ones. Bookmarks already carrying the tag are skipped. The tag
// must exist in the vocabulary; that is checked before anything else.
func (uc *UseCases) RunApply(ctx context.Context, opt ApplyOption) error {
	if uc.bookmarks == nil {
		return ErrNoNotionService
	}
	if uc.vocab.Lookup(opt.TargetTag) == nil {
		return goerr.Wrap(ErrUnknownTag, "cannot apply undefined tag", goerr.V("tag", opt.TargetTag))
	}

	logger := logging.From(ctx)
	var evaluated, applied int

	var invokeOpts []InvokeOption
	if opt.NoCache {
		invokeOpts = append(invokeOpts, WithoutCache())
	}

	for bm, err := range uc.bookmarks.ListBookmarks(ctx, opt.DatabaseID) {
		if err != nil {
			return err
		}
		if bm.HasTag(opt.TargetTag) {
			continue
		}

		decision, err := uc.EvaluateTag(ctx, bm, opt.TargetTag, invokeOpts...)
		if err != nil {
			errutil.Log(ctx, err, "failed to evaluate tag, skipping bookmark")
			continue
		}

		evaluated++
		if !decision.ShouldHaveTag {
			continue
		}

		uc.console.ShowBookmark(bm)
		uc.console.ShowDecision(opt.TargetTag, decision)

		answer, err := uc.console.AskTag(opt.TargetTag)
		if err != nil {
			return err
		}

		if answer == console.AnswerYes {
			if err := uc.bookmarks.UpdateTags(ctx, bm.ID, append(bm.Tags, opt.TargetTag)); err != nil {
				errutil.Log(ctx, err, "failed to update bookmark tags")
			} else {
				applied++
			}
		}

		if answer == console.AnswerQuit {
			break
		}
	}

	logger.Info("Apply session finished", "tag", opt.TargetTag, "evaluated", evaluated, "applied", applied)
	uc.console.Info("evaluated %d bookmarks, tagged %d with %s", evaluated, applied, opt.TargetTag)
	return nil
}
