package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/croncal/internal/calendar"
	"github.com/aatumaykin/croncal/internal/estimator"
	"github.com/aatumaykin/croncal/internal/job"
)

var (
	estimateJobsPath string
	estimateView     string
	estimateAnchor   string
	estimateJobID    string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate job occurrences for a calendar view",
	Long: `Estimate how many times each job in a job-definition file will fire
within the calendar view (day, week, month, year) around an anchor date.

Counts are printed per day, one line per day, with a per-range total.`,
	RunE: estimateHandler,
}

func init() {
	estimateCmd.Flags().StringVar(&estimateJobsPath, "jobs", "./jobs.json", "path to the job-definition file (JSON or YAML)")
	estimateCmd.Flags().StringVar(&estimateView, "view", "month", "calendar view: day, week, month, year")
	estimateCmd.Flags().StringVar(&estimateAnchor, "anchor", "", "anchor instant (RFC 3339 or YYYY-MM-DD, default: now)")
	estimateCmd.Flags().StringVar(&estimateJobID, "job", "", "estimate a single job by id")
}

func estimateHandler(cmd *cobra.Command, args []string) error {
	view, err := calendar.ParseView(estimateView)
	if err != nil {
		return err
	}

	anchor := time.Now().UTC()
	if estimateAnchor != "" {
		anchor, err = parseAnchorArg(estimateAnchor)
		if err != nil {
			return err
		}
	}

	jobs, err := job.Load(estimateJobsPath)
	if err != nil {
		return err
	}

	if estimateJobID != "" {
		jobs = filterJob(jobs, estimateJobID)
		if jobs == nil {
			return fmt.Errorf("unknown job: %q", estimateJobID)
		}
	}

	rng, err := calendar.RangeForView(anchor, view)
	if err != nil {
		return err
	}

	fmt.Printf("Estimating %s view: %s .. %s\n", view,
		rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02"))

	rangeTotal := 0
	for d := rng.Start; !d.After(rng.End); d = calendar.AddDays(d, 1) {
		dayTotal := 0
		for _, j := range jobs {
			count, err := estimator.RunsForDate(j, d)
			if err != nil {
				fmt.Fprintf(os.Stderr, "job %s: %v\n", j.ID, err)
				return err
			}
			dayTotal += count
		}
		rangeTotal += dayTotal
		fmt.Printf("%s  %d\n", d.Format("2006-01-02"), dayTotal)
	}

	fmt.Printf("Total: %d\n", rangeTotal)
	return nil
}

func filterJob(jobs []job.Job, id string) []job.Job {
	for _, j := range jobs {
		if j.ID == id {
			return []job.Job{j}
		}
	}
	return nil
}

// parseAnchorArg accepts RFC 3339 instants and plain UTC dates.
func parseAnchorArg(text string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", text); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid anchor %q (expected RFC 3339 or YYYY-MM-DD)", text)
}
