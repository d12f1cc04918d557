package usecase

import (
	"context"

	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
	"github.com/secmon-lab/mnemosyne/pkg/service/console"
	"github.com/secmon-lab/mnemosyne/pkg/utils/errutil"
	"github.com/secmon-lab/mnemosyne/pkg/utils/logging"
)

// ReviewOption configures an interactive suggestion review session
type ReviewOption struct {
	DatabaseID   string
	UntaggedOnly bool
	NoCache      bool
}

// RunReview walks the bookmarks database, shows AI tag suggestions for
// each bookmark and writes accepted tags back. AI failures are logged per
// item and the session continues with the next bookmark. A quit answer is
// cooperative: the current bookmark is finished first.
func (uc *UseCases) RunReview(ctx context.Context, opt ReviewOption) error {
	if uc.bookmarks == nil {
		return ErrNoNotionService
	}

	logger := logging.From(ctx)
	var reviewed, updated int

	var invokeOpts []InvokeOption
	if opt.NoCache {
		invokeOpts = append(invokeOpts, WithoutCache())
	}

	for bm, err := range uc.bookmarks.ListBookmarks(ctx, opt.DatabaseID) {
		if err != nil {
			return err
		}
		if opt.UntaggedOnly && len(bm.Tags) > 0 {
			continue
		}

		suggestion, err := uc.SuggestTags(ctx, bm, model.UntaggedScope(), invokeOpts...)
		if err != nil {
			errutil.Log(ctx, err, "failed to get suggestion, skipping bookmark")
			continue
		}

		reviewed++
		uc.console.ShowBookmark(bm)
		uc.console.ShowSuggestion(suggestion)

		accepted, quit, err := uc.reviewTags(bm, suggestion.Tags)
		if err != nil {
			return err
		}

		// The in-flight bookmark is finished before a quit takes effect
		if len(accepted) > 0 {
			if err := uc.bookmarks.UpdateTags(ctx, bm.ID, append(bm.Tags, accepted...)); err != nil {
				errutil.Log(ctx, err, "failed to update bookmark tags")
			} else {
				updated++
			}
		}

		if quit {
			break
		}
	}

	logger.Info("Review session finished", "reviewed", reviewed, "updated", updated)
	uc.console.Info("reviewed %d bookmarks, updated %d", reviewed, updated)
	return nil
}

// reviewTags asks the operator about each suggested tag the bookmark does
// not already carry. It returns the accepted tags and whether the
// operator asked to quit the session.
func (uc *UseCases) reviewTags(bm *model.Bookmark, suggested []types.TagName) ([]types.TagName, bool, error) {
	var accepted []types.TagName

	for _, tag := range suggested {
		if bm.HasTag(tag) {
			continue
		}

		answer, err := uc.console.AskTag(tag)
		if err != nil {
			return accepted, true, err
		}

		switch answer {
		case console.AnswerYes:
			accepted = append(accepted, tag)
		case console.AnswerNo:
			// rejected, move on
		case console.AnswerSkip:
			return accepted, false, nil
		case console.AnswerQuit:
			return accepted, true, nil
		}
	}

	return accepted, false, nil
}
