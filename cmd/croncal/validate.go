package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/croncal/internal/job"
)

var validateJobsPath string

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a job-definition file",
	Long: `Load a job-definition file and check every job's schedule: known
schedule kind, required fields per kind, and a parseable cron expression.
Exits non-zero when any job is invalid.`,
	Run: func(cmd *cobra.Command, args []string) {
		jobs, err := job.Load(validateJobsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load jobs: %v\n", err)
			os.Exit(1)
		}

		invalid := 0
		for _, j := range jobs {
			if err := j.Validate(); err != nil {
				invalid++
				fmt.Fprintf(os.Stderr, "✗ %v\n", err)
				continue
			}
			fmt.Printf("✓ %s (%s)\n", j.ID, j.Schedule.Kind)
		}

		if invalid > 0 {
			fmt.Fprintf(os.Stderr, "%d of %d jobs invalid\n", invalid, len(jobs))
			os.Exit(1)
		}
		fmt.Printf("%d jobs valid\n", len(jobs))
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateJobsPath, "jobs", "./jobs.json", "path to the job-definition file (JSON or YAML)")
}
