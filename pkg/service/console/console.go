package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mnemosyne/pkg/domain/model"
	"github.com/secmon-lab/mnemosyne/pkg/domain/types"
)

// Answer is the operator's response to a per-tag prompt
type Answer int

const (
	AnswerYes Answer = iota
	AnswerNo
	AnswerSkip // skip the rest of this bookmark
	AnswerQuit // finish this bookmark, then stop the session
)

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	tagColor    = color.New(color.FgGreen, color.Bold)
	reasonColor = color.New(color.Faint)
	urlColor    = color.New(color.FgBlue, color.Underline)
)

// Console renders bookmarks and suggestions to the terminal and collects
// the operator's accept/reject answers. It is deliberately dumb: all
// decisions about what to ask belong to the review loop.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a console over the given streams
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ShowBookmark prints the bookmark header
func (c *Console) ShowBookmark(b *model.Bookmark) {
	fmt.Fprintln(c.out)
	titleColor.Fprintln(c.out, b.Title)
	if b.URL != "" {
		urlColor.Fprintln(c.out, b.URL)
	}
	if len(b.Tags) > 0 {
		names := make([]string, len(b.Tags))
		for i, t := range b.Tags {
			names[i] = string(t)
		}
		fmt.Fprintf(c.out, "current tags: %s\n", strings.Join(names, ", "))
	}
}

// ShowSuggestion prints the suggested tags and the AI's reasoning
func (c *Console) ShowSuggestion(s *model.TagSuggestion) {
	if len(s.Tags) == 0 {
		fmt.Fprintln(c.out, "no tags suggested")
	} else {
		names := make([]string, len(s.Tags))
		for i, t := range s.Tags {
			names[i] = string(t)
		}
		fmt.Fprintf(c.out, "suggested: %s\n", tagColor.Sprint(strings.Join(names, ", ")))
	}
	if s.Reasoning != "" {
		reasonColor.Fprintf(c.out, "  %s\n", s.Reasoning)
	}
}

// ShowDecision prints a single-tag decision and the AI's reasoning
func (c *Console) ShowDecision(tag types.TagName, d *model.TagDecision) {
	verdict := "should NOT have"
	if d.ShouldHaveTag {
		verdict = "should have"
	}
	fmt.Fprintf(c.out, "%s %s\n", verdict, tagColor.Sprint(string(tag)))
	if d.Reasoning != "" {
		reasonColor.Fprintf(c.out, "  %s\n", d.Reasoning)
	}
}

// AskTag prompts for a single tag and reads the operator's answer.
// Empty input defaults to yes.
func (c *Console) AskTag(tag types.TagName) (Answer, error) {
	for {
		fmt.Fprintf(c.out, "add %s? [Y/n/s/q] ", tagColor.Sprint(string(tag)))

		line, err := c.in.ReadString('\n')
		if err != nil {
			return AnswerQuit, goerr.Wrap(err, "failed to read answer")
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return AnswerYes, nil
		case "n", "no":
			return AnswerNo, nil
		case "s", "skip":
			return AnswerSkip, nil
		case "q", "quit":
			return AnswerQuit, nil
		default:
			fmt.Fprintln(c.out, "please answer y(es), n(o), s(kip) or q(uit)")
		}
	}
}

// Info prints an informational line
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
