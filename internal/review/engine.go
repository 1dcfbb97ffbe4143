package review

import (
	"context"

	"github.com/mavolk/reviewkit/internal/logger"
)

// DiffFetcher downloads the unified diff of a pull request.
type DiffFetcher interface {
	GetPRDiff(ctx context.Context, prNumber int) (string, error)
}

// Reviewer asks a model to review a diff.
type Reviewer interface {
	Review(ctx context.Context, diff string) (Response, error)
}

// CommentPoster posts the review as an issue comment.
type CommentPoster interface {
	PostComment(ctx context.Context, issueNumber int, review string, cost any) (any, error)
}

// Bot runs the fetch -> review -> comment sequence.
type Bot struct {
	Diffs    DiffFetcher
	Reviewer Reviewer
	Comments CommentPoster
}

// Run reviews pull request prNumber and posts the result on issueNumber.
// The first failing step aborts the run; a comment is only posted once a
// review with content and cost has been obtained.
func (b *Bot) Run(ctx context.Context, prNumber, issueNumber int) error {
	ctx = logger.With(ctx, "pr", prNumber, "issue", issueNumber)

	diff, err := b.Diffs.GetPRDiff(ctx, prNumber)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "fetched diff", "bytes", len(diff))

	resp, err := b.Reviewer.Review(ctx, diff)
	if err != nil {
		return err
	}

	content, cost, err := Extract(resp)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "review extracted", "chars", len(content), "cost", cost)

	_, err = b.Comments.PostComment(ctx, issueNumber, content, cost)
	return err
}
