package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mavolk/reviewkit/internal/boterr"
	"github.com/mavolk/reviewkit/internal/config"
	"github.com/mavolk/reviewkit/internal/gitea"
	"github.com/mavolk/reviewkit/internal/logger"
	"github.com/mavolk/reviewkit/internal/providers"
	"github.com/mavolk/reviewkit/internal/review"
)

var (
	flagPRNumber    int
	flagIssueNumber int
	flagModel       string
	flagVerbose     bool
	flagDebug       bool
)

func newReviewBotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "reviewbot",
		Short:        "Review a pull request with an LLM and post the review as a comment",
		Long:         "Fetch a pull-request diff from Gitea, ask an OpenRouter model to review it, and post the review and its cost as an issue comment.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runReviewBot,
	}

	f := cmd.Flags()
	f.IntVarP(&flagPRNumber, "pr-number", "p", 0, "Pull request number to review")
	f.IntVarP(&flagIssueNumber, "issue-number", "i", 0, "Issue number to comment on")
	f.StringVarP(&flagModel, "model", "m", config.DefaultModel, "OpenRouter model to use")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed response information")
	f.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	_ = cmd.MarkFlagRequired("pr-number")
	_ = cmd.MarkFlagRequired("issue-number")

	return cmd
}

func runReviewBot(cmd *cobra.Command, args []string) error {
	if flagPRNumber <= 0 {
		return fmt.Errorf("--pr-number must be a positive integer, got %d", flagPRNumber)
	}
	if flagIssueNumber <= 0 {
		return fmt.Errorf("--issue-number must be a positive integer, got %d", flagIssueNumber)
	}

	out := cmd.OutOrStdout()
	logger.Initialize(cmd.ErrOrStderr(), flagDebug, flagVerbose)
	ctx := cmd.Context()

	config.LoadDotEnv()
	creds, err := config.LoadCredentials()
	if err != nil {
		reportError(cmd, err)
		return nil
	}

	overrides := map[string]string{}
	if cmd.Flags().Changed("model") {
		overrides["model"] = flagModel
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		reportError(cmd, err)
		return nil
	}

	repo := gitea.NewClient(cfg.GiteaURL, creds.GiteaToken, out, flagVerbose)
	reviewer := providers.NewOpenRouter(cfg.OpenRouterURL, creds.OpenRouterToken, cfg.Model, out, flagVerbose)
	bot := &review.Bot{
		Diffs:    repo,
		Reviewer: reviewer,
		Comments: repo,
	}

	ctx = logger.With(ctx, "provider", reviewer.Name(), "model", cfg.Model)
	logger.Info(ctx, "reviewing pull request", "pr", flagPRNumber, "issue", flagIssueNumber)

	if err := bot.Run(ctx, flagPRNumber, flagIssueNumber); err != nil {
		reportError(cmd, err)
	}
	return nil
}

// reportError prints "Error in {context}: {message}" and marks the run failed.
func reportError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", boterr.Context(err), err)
	exitCode = ExitError
}
