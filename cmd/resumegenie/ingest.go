package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one ingestion cycle and exit",
	Long:  "Fetch, deduplicate, rank and persist jobs once, generate application packages for the top matches, then print a run report.",
	RunE:  runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	app, err := buildApplication(ctx)
	if err != nil {
		return err
	}

	report, err := app.pipeline.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Run report:")
	fmt.Printf("  fetched:          %d\n", report.Fetched)
	fmt.Printf("  deduplicated:     %d\n", report.Deduplicated)
	fmt.Printf("  matched:          %d\n", report.Matched)
	fmt.Printf("  inserted:         %d\n", report.Inserted)
	fmt.Printf("  packages created: %d\n", report.PackagesCreated)
	fmt.Printf("  packages updated: %d\n", report.PackagesUpdated)
	if len(report.FailedSources) > 0 {
		fmt.Printf("  failed sources:   %s\n", strings.Join(report.FailedSources, ", "))
	}

	return nil
}
