package reminder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"github.com/christopherklint97/jetlagr/internal/calendar"
	"github.com/christopherklint97/jetlagr/internal/config"
	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/render"
)

// Notifier delivers one reminder.
type Notifier func(title, message string) error

// DesktopNotifier shows a desktop notification.
func DesktopNotifier(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Due is an activity and the instant its reminder fires.
type Due struct {
	At         time.Time
	Occurrence calendar.Occurrence
}

type Reminder struct {
	due    []Due
	notify Notifier
	lead   time.Duration
	logger zerolog.Logger

	// PIDFile, when set, is written while Run is active.
	PIDFile string

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

func New(plan *optimizer.Plan, notify Notifier, lead time.Duration, logger zerolog.Logger) (*Reminder, error) {
	occurrences, err := calendar.Occurrences(plan)
	if err != nil {
		return nil, fmt.Errorf("resolving plan times: %w", err)
	}

	due := make([]Due, 0, len(occurrences))
	for _, o := range occurrences {
		due = append(due, Due{At: o.Start.Add(-lead), Occurrence: o})
	}
	slices.SortStableFunc(due, func(a, b Due) int {
		return a.At.Compare(b.At)
	})

	return &Reminder{
		due:    due,
		notify: notify,
		lead:   lead,
		logger: logger,
		now:    time.Now,
		after:  time.After,
	}, nil
}

// Upcoming returns up to limit reminders that fire at or after now.
// A limit <= 0 means all of them.
func (r *Reminder) Upcoming(now time.Time, limit int) []Due {
	i, _ := slices.BinarySearchFunc(r.due, now, func(d Due, t time.Time) int {
		return d.At.Compare(t)
	})
	out := r.due[i:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return slices.Clone(out)
}

// Next returns the first reminder that fires at or after now.
func (r *Reminder) Next(now time.Time) (Due, bool) {
	up := r.Upcoming(now, 1)
	if len(up) == 0 {
		return Due{}, false
	}
	return up[0], true
}

// Run sleeps until each remaining reminder and delivers it. It returns when
// the plan is exhausted or ctx is cancelled.
func (r *Reminder) Run(ctx context.Context) error {
	if r.PIDFile != "" {
		if err := writePID(r.PIDFile); err != nil {
			return fmt.Errorf("writing PID file: %w", err)
		}
		defer os.Remove(r.PIDFile)
	}

	pending := r.Upcoming(r.now(), 0)
	r.logger.Info().Int("pending", len(pending)).Dur("lead", r.lead).Msg("reminders started")

	for _, d := range pending {
		r.logger.Debug().Time("at", d.At).Str("type", string(d.Occurrence.Block.Type)).Msg("waiting for next reminder")

		select {
		case <-ctx.Done():
			r.logger.Info().Msg("reminders stopped")
			return nil
		case <-r.after(d.At.Sub(r.now())):
		}

		title, message := Message(d, r.lead)
		if err := r.notify(title, message); err != nil {
			r.logger.Warn().Err(err).Msg("sending notification")
		}
	}

	r.logger.Info().Msg("no reminders left in plan")
	return nil
}

// Message builds the notification text for a reminder.
func Message(d Due, lead time.Duration) (string, string) {
	b := d.Occurrence.Block
	title := "jetlagr: " + b.Type.Label()

	var msg strings.Builder
	if lead > 0 {
		fmt.Fprintf(&msg, "In %d min, at %s: ", int(lead.Minutes()), render.FormatTime(b.Start))
	} else {
		fmt.Fprintf(&msg, "Now, %s: ", render.FormatTime(b.Start))
	}
	msg.WriteString(b.Description)
	return title, msg.String()
}

func PIDPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jetlagr.pid"), nil
}

func writePID(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644)
}

func ReadPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("no running reminder loop found")
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID file")
	}

	return pid, nil
}
