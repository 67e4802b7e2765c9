// Package job defines the schedule and job types the estimation engine
// operates on, plus loading of job-definition files for the CLI and HTTP
// surfaces. The engine itself never mutates or persists a Job; definitions
// are owned by whoever supplies them.
package job

import (
	"fmt"
	"time"

	"github.com/aatumaykin/croncal/internal/cronexpr"
)

// ScheduleKind discriminates the schedule variants. The set is closed:
// estimation dispatches over it exhaustively.
type ScheduleKind string

const (
	// KindEvery fires at every integer multiple of EveryMs measured from a
	// reference instant.
	KindEvery ScheduleKind = "every"
	// KindAt fires exactly once, at AtMs.
	KindAt ScheduleKind = "at"
	// KindCron fires per a five-field POSIX cron expression, at minute
	// granularity.
	KindCron ScheduleKind = "cron"
)

// Schedule is a tagged union over the three schedule variants. Only the
// field matching Kind is meaningful; the ms-epoch JSON keys match the
// parent bot's job store format.
type Schedule struct {
	Kind    ScheduleKind `json:"kind" yaml:"kind"`
	EveryMs int64        `json:"everyMs,omitempty" yaml:"everyMs,omitempty"`
	AtMs    int64        `json:"atMs,omitempty" yaml:"atMs,omitempty"`
	Expr    string       `json:"expr,omitempty" yaml:"expr,omitempty"`
}

// Job is one scheduled job definition as the calendar UI sees it.
//
// ReferenceAtMs anchors the firing phase of an "every" schedule (typically
// the job's last or next computed run); zero means absent, in which case
// estimation anchors to the start of whichever day is being queried. It has
// no effect on "at" and "cron" schedules.
type Job struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name,omitempty" yaml:"name,omitempty"`
	Enabled       bool     `json:"enabled" yaml:"enabled"`
	Schedule      Schedule `json:"schedule" yaml:"schedule"`
	ReferenceAtMs int64    `json:"referenceAtMs,omitempty" yaml:"referenceAtMs,omitempty"`
}

// Reference returns the phase anchor for an "every" schedule, or false
// when none is set.
func (j Job) Reference() (time.Time, bool) {
	if j.ReferenceAtMs == 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(j.ReferenceAtMs).UTC(), true
}

// Validate checks that the job carries a coherent schedule definition.
// A non-positive "every" interval is accepted: it is inert configuration
// (the schedule never fires) rather than an error, so a misconfigured
// interval cannot break a calendar view. A malformed cron expression is a
// genuine misconfiguration and is rejected.
func (j Job) Validate() error {
	switch j.Schedule.Kind {
	case KindEvery:
		return nil
	case KindAt:
		if j.Schedule.AtMs == 0 {
			return fmt.Errorf("job %q: schedule kind %q requires atMs", j.ID, KindAt)
		}
		return nil
	case KindCron:
		if j.Schedule.Expr == "" {
			return fmt.Errorf("job %q: schedule kind %q requires expr", j.ID, KindCron)
		}
		if _, err := cronexpr.Parse(j.Schedule.Expr); err != nil {
			return fmt.Errorf("job %q: %w", j.ID, err)
		}
		return nil
	case "":
		return fmt.Errorf("job %q: schedule kind is required", j.ID)
	default:
		return fmt.Errorf("job %q: unknown schedule kind %q", j.ID, j.Schedule.Kind)
	}
}
