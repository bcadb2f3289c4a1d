package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/christopherklint97/jetlagr/internal/airports"
	"github.com/christopherklint97/jetlagr/internal/calendar"
	"github.com/christopherklint97/jetlagr/internal/config"
	"github.com/christopherklint97/jetlagr/internal/library"
	"github.com/christopherklint97/jetlagr/internal/logging"
	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/render"
	"github.com/christopherklint97/jetlagr/internal/trip"
	"github.com/christopherklint97/jetlagr/internal/tui"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a plan for a trip",
	Long: `Generate a circadian plan from a sample trip, a trip file or flags.

  jetlagr plan --sample example-a-eastward
  jetlagr plan --file trip.toml
  jetlagr plan --from JFK --to HND --depart "2024-10-10T15:00" --arrive "2024-10-11T19:00"
  jetlagr plan --pick --depart "friday 9pm" --arrive "saturday 6pm"`,
	RunE: runPlan,
}

var viewCmd = &cobra.Command{
	Use:   "view [trip-id]",
	Short: "Browse a saved plan day by day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

var exportCmd = &cobra.Command{
	Use:   "export [trip-id]",
	Short: "Export a saved plan as iCalendar, Markdown, JSON or the trip as TOML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	addPlanFlags(planCmd)

	exportCmd.Flags().StringP("format", "f", "ics", "Output: ics, markdown, json, toml")
	exportCmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(exportCmd)
}

func addPlanFlags(c *cobra.Command) {
	f := c.Flags()
	f.String("sample", "", "Plan one of the built-in sample trips")
	f.String("file", "", "Load the trip from a .toml or .json file")
	f.String("from", "", "Origin airport code")
	f.String("to", "", "Destination airport code")
	f.Bool("pick", false, "Choose missing airports interactively")
	f.String("depart", "", "Departure, origin local time (2006-01-02T15:04 or natural language)")
	f.String("arrive", "", "Arrival, destination local time (2006-01-02T15:04 or natural language)")
	f.String("name", "", "Trip name")
	f.String("sleep-start", "", "Usual bedtime, HH:MM")
	f.String("sleep-end", "", "Usual wake time, HH:MM")
	f.String("sensitivity", "", "Jet-lag sensitivity: low, medium, high")
	f.String("caffeine", "", "Caffeine habits: none, light, moderate, heavy")
	f.Bool("melatonin", false, "Include melatonin guidance")
	f.String("cabin", "", "Cabin: economy, premium, business, first")
	f.StringP("format", "f", "terminal", "Output: terminal, markdown, json")
	f.StringP("output", "o", "", "Write output to a file instead of stdout")
	f.Bool("no-save", false, "Do not save the trip and plan")
}

func runPlan(cmd *cobra.Command, args []string) error {
	noSave, _ := cmd.Flags().GetBool("no-save")

	e, err := loadEnv(cmd, !noSave)
	if err != nil {
		return err
	}
	defer e.Close()

	t, err := tripFromFlags(cmd, e.cfg.Profile, time.Now())
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid trip:\n%w", err)
	}

	plan, err := optimizer.New(logging.Component(e.logger, "optimizer")).Generate(*t)
	if err != nil {
		return err
	}

	verb := "Saved"
	if !noSave {
		existed, err := e.lib.IsSaved(t.ID)
		if err != nil {
			return err
		}
		if existed {
			verb = "Updated"
		}
		if _, err := e.lib.Save(*t, plan); err != nil {
			return err
		}
		if err := e.db.SetState(lastTripKey, t.ID); err != nil {
			return fmt.Errorf("recording last trip: %w", err)
		}
	}

	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	if err := writePlan(format, output, plan, *t); err != nil {
		return err
	}

	if !noSave && format == "terminal" {
		fmt.Printf("%s %s. Browse with 'jetlagr view', export with 'jetlagr export'.\n", verb, t.ID)
	}
	return nil
}

func writePlan(format, output string, plan *optimizer.Plan, t trip.Trip) error {
	return writeOutput(output, func(w io.Writer) error {
		switch format {
		case "terminal":
			_, err := io.WriteString(w, render.Terminal(plan, t))
			return err
		case "markdown", "md":
			_, err := io.WriteString(w, render.Markdown(plan, t))
			return err
		case "json":
			return writeJSON(w, plan)
		case "ics":
			return calendar.Export(w, plan, t)
		case "toml":
			data, err := trip.MarshalTOML(t)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		}
		return fmt.Errorf("unknown format %q", format)
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// tripFromFlags builds the trip from --sample, --file or the leg flags, then
// fills traveler fields from flags falling back to the config profile.
func tripFromFlags(cmd *cobra.Command, profile config.ProfileConfig, now time.Time) (*trip.Trip, error) {
	flags := cmd.Flags()
	sample, _ := flags.GetString("sample")
	file, _ := flags.GetString("file")

	switch {
	case sample != "" && file != "":
		return nil, fmt.Errorf("--sample and --file cannot be combined")
	case sample != "":
		t, ok := trip.Sample(sample)
		if !ok {
			return nil, fmt.Errorf("unknown sample %q (run 'jetlagr samples' to list them)", sample)
		}
		return applyTravelerFlags(cmd, &t, nil), nil
	case file != "":
		t, err := trip.LoadFile(file)
		if err != nil {
			return nil, err
		}
		if t.ID == "" {
			t.ID = trip.NewID()
		}
		return applyTravelerFlags(cmd, t, nil), nil
	}

	leg, err := legFromFlags(cmd, now)
	if err != nil {
		return nil, err
	}

	t := &trip.Trip{
		ID:   trip.NewID(),
		Name: fmt.Sprintf("%s to %s", leg.OriginCity, leg.DestCity),
		Legs: []trip.Leg{leg},
	}
	t.AssignLegIDs()
	return applyTravelerFlags(cmd, t, &profile), nil
}

func legFromFlags(cmd *cobra.Command, now time.Time) (trip.Leg, error) {
	flags := cmd.Flags()
	from, _ := flags.GetString("from")
	to, _ := flags.GetString("to")
	pick, _ := flags.GetBool("pick")
	depart, _ := flags.GetString("depart")
	arrive, _ := flags.GetString("arrive")

	origin, err := resolveAirport(from, "--from", "Where are you flying from?", pick)
	if err != nil {
		return trip.Leg{}, err
	}
	dest, err := resolveAirport(to, "--to", "Where are you flying to?", pick)
	if err != nil {
		return trip.Leg{}, err
	}

	if depart == "" || arrive == "" {
		return trip.Leg{}, fmt.Errorf("--depart and --arrive are required (or use --sample / --file)")
	}
	departLocal, err := trip.ParseNatural(depart, origin.Timezone, now)
	if err != nil {
		return trip.Leg{}, fmt.Errorf("--depart: %w", err)
	}
	departAt, err := trip.ParseLocal(departLocal, origin.Timezone)
	if err != nil {
		return trip.Leg{}, fmt.Errorf("--depart: %w", err)
	}
	// relative arrivals ("tomorrow 9am") are read from the departure onwards
	arriveLocal, err := trip.ParseNatural(arrive, dest.Timezone, departAt)
	if err != nil {
		return trip.Leg{}, fmt.Errorf("--arrive: %w", err)
	}

	return trip.Leg{
		OriginCity:  origin.CityName(),
		OriginCode:  origin.IATA,
		OriginTZ:    origin.Timezone,
		DestCity:    dest.CityName(),
		DestCode:    dest.IATA,
		DestTZ:      dest.Timezone,
		DepartLocal: departLocal,
		ArriveLocal: arriveLocal,
	}, nil
}

func resolveAirport(code, flag, prompt string, pick bool) (airports.Airport, error) {
	if code != "" {
		a, ok := airports.ByCode(code)
		if !ok {
			return airports.Airport{}, fmt.Errorf("%s: unknown airport code %q (run 'jetlagr airports %s' to search)", flag, code, code)
		}
		return a, nil
	}
	if !pick {
		return airports.Airport{}, fmt.Errorf("%s is required (or use --pick)", flag)
	}

	app := tui.NewAirportPickerApp(prompt)
	if _, err := tea.NewProgram(app).Run(); err != nil {
		return airports.Airport{}, fmt.Errorf("running airport picker: %w", err)
	}
	res := app.GetResult()
	if res == nil || res.Canceled {
		return airports.Airport{}, fmt.Errorf("no airport chosen")
	}
	return res.Airport, nil
}

// applyTravelerFlags overrides traveler fields set on the command line.
// When profile is non-nil its values fill everything the flags leave out.
func applyTravelerFlags(cmd *cobra.Command, t *trip.Trip, profile *config.ProfileConfig) *trip.Trip {
	flags := cmd.Flags()

	if profile != nil {
		t.UsualSleepStart = profile.SleepStart
		t.UsualSleepEnd = profile.SleepEnd
		t.Sensitivity = trip.Sensitivity(profile.Sensitivity)
		t.CaffeineHabits = trip.CaffeineHabit(profile.CaffeineHabits)
		t.MelatoninOptIn = profile.Melatonin
		t.CabinType = trip.CabinType(profile.Cabin)
	}

	if flags.Changed("name") {
		t.Name, _ = flags.GetString("name")
	}
	if flags.Changed("sleep-start") {
		t.UsualSleepStart, _ = flags.GetString("sleep-start")
	}
	if flags.Changed("sleep-end") {
		t.UsualSleepEnd, _ = flags.GetString("sleep-end")
	}
	if flags.Changed("sensitivity") {
		v, _ := flags.GetString("sensitivity")
		t.Sensitivity = trip.Sensitivity(strings.ToLower(v))
	}
	if flags.Changed("caffeine") {
		v, _ := flags.GetString("caffeine")
		t.CaffeineHabits = trip.CaffeineHabit(strings.ToLower(v))
	}
	if flags.Changed("melatonin") {
		t.MelatoninOptIn, _ = flags.GetBool("melatonin")
	}
	if flags.Changed("cabin") {
		v, _ := flags.GetString("cabin")
		t.CabinType = trip.CabinType(strings.ToLower(v))
	}
	return t
}

func loadSaved(e *env, args []string) (*library.SavedTrip, error) {
	id, err := e.tripID(args)
	if err != nil {
		return nil, err
	}
	return e.lib.Get(id)
}

func runView(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	saved, err := loadSaved(e, args)
	if err != nil {
		return err
	}

	v := tui.NewViewer(saved.Plan, saved.Trip)
	if _, err := tea.NewProgram(v, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	saved, err := loadSaved(e, args)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	if format == "terminal" {
		return fmt.Errorf("unknown format %q", format)
	}
	return writePlan(format, output, saved.Plan, saved.Trip)
}
