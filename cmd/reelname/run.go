package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"reelname/internal/logging"
	"reelname/internal/pipeline"
	"reelname/internal/services/anthropic"
)

func runProcess(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	client := anthropic.NewClient(anthropic.Config{
		APIKey:         cfg.Anthropic.APIKey,
		BaseURL:        cfg.Anthropic.BaseURL,
		Model:          cfg.Anthropic.Model,
		MaxTokens:      cfg.Anthropic.MaxTokens,
		TimeoutSeconds: cfg.Anthropic.TimeoutSeconds,
	})

	runner := pipeline.NewRunner(cfg, logger, client)
	summary, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(summary.Outcomes) == 0 {
		fmt.Fprintf(out, "No photos found in %s\n", cfg.Paths.InboxDir)
		return nil
	}

	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(out, renderTable(summaryHeaders(), summaryRows(summary)))
	} else {
		for _, row := range summaryRows(summary) {
			fmt.Fprintf(out, "%s\t%s\t%s\n", row[0], row[1], row[2])
		}
	}
	fmt.Fprintf(out, "Processed %d, failed %d\n", summary.Processed(), summary.Failed())
	return nil
}

func summaryHeaders() []string {
	return []string{"Photo", "Title", "Result"}
}

func summaryRows(summary *pipeline.Summary) [][]string {
	rows := make([][]string, 0, len(summary.Outcomes))
	for _, outcome := range summary.Outcomes {
		if outcome.Err != nil {
			rows = append(rows, []string{outcome.Source, "-", fmt.Sprintf("failed: %v", outcome.Err)})
			continue
		}
		rows = append(rows, []string{outcome.Source, outcome.Title, "renamed to " + filepath.Base(outcome.RenamedPath)})
	}
	return rows
}
