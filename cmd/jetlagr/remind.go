package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/christopherklint97/jetlagr/internal/logging"
	"github.com/christopherklint97/jetlagr/internal/render"
	"github.com/christopherklint97/jetlagr/internal/reminder"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Desktop reminders for a saved plan",
}

var remindStartCmd = &cobra.Command{
	Use:   "start [trip-id]",
	Short: "Send a notification before each activity in the plan",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRemindStart,
}

var remindStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running reminder loop",
	Args:  cobra.NoArgs,
	RunE:  runRemindStop,
}

func init() {
	remindStartCmd.Flags().Int("lead", -1, "Minutes before each activity to notify (default from config)")

	remindCmd.AddCommand(remindStartCmd)
	remindCmd.AddCommand(remindStopCmd)
	rootCmd.AddCommand(remindCmd)
}

func runRemindStart(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	if !e.cfg.Reminders.Enabled {
		return fmt.Errorf("reminders are disabled (set reminders.enabled in 'jetlagr config')")
	}

	saved, err := loadSaved(e, args)
	if err != nil {
		return err
	}

	leadMinutes, _ := cmd.Flags().GetInt("lead")
	if leadMinutes < 0 {
		leadMinutes = e.cfg.Reminders.LeadMinutes
	}
	lead := time.Duration(leadMinutes) * time.Minute

	r, err := reminder.New(saved.Plan, reminder.DesktopNotifier, lead, logging.Component(e.logger, "reminder"))
	if err != nil {
		return err
	}
	pidPath, err := reminder.PIDPath()
	if err != nil {
		return err
	}
	r.PIDFile = pidPath

	next, ok := r.Next(time.Now())
	if !ok {
		fmt.Printf("Nothing left to remind you of in %s.\n", saved.Trip.ID)
		return nil
	}
	fmt.Printf("Reminders started for %s (lead: %s)\n", saved.Trip.Name, lead)
	fmt.Printf("Next: %s at %s (%s)\n",
		next.Occurrence.Block.Type.Label(),
		render.FormatTime(next.Occurrence.Block.Start),
		next.Occurrence.Day.Date)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return r.Run(ctx)
}

func runRemindStop(cmd *cobra.Command, args []string) error {
	pidPath, err := reminder.PIDPath()
	if err != nil {
		return err
	}
	pid, err := reminder.ReadPID(pidPath)
	if err != nil {
		return err
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("finding process %d: %w", pid, err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("sending stop signal: %w", err)
	}

	fmt.Printf("Sent stop signal to jetlagr reminders (PID %d)\n", pid)
	return nil
}
