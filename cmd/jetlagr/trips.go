package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/christopherklint97/jetlagr/internal/airports"
	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/render"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "Manage saved trips",
}

var tripsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved trips",
	Args:  cobra.NoArgs,
	RunE:  runTripsList,
}

var tripsShowCmd = &cobra.Command{
	Use:   "show [trip-id]",
	Short: "Print a saved plan",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTripsShow,
}

var tripsDeleteCmd = &cobra.Command{
	Use:   "delete <trip-id>",
	Short: "Delete a saved trip",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripsDelete,
}

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the built-in sample trips",
	Args:  cobra.NoArgs,
	RunE:  runSamples,
}

var airportsCmd = &cobra.Command{
	Use:   "airports [query]",
	Short: "Search the airport table by code, city or country",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAirports,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for trip files",
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

func init() {
	airportsCmd.Flags().IntP("limit", "n", 0, "Maximum results (0 for all)")

	tripsCmd.AddCommand(tripsListCmd)
	tripsCmd.AddCommand(tripsShowCmd)
	tripsCmd.AddCommand(tripsDeleteCmd)

	rootCmd.AddCommand(tripsCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(airportsCmd)
	rootCmd.AddCommand(schemaCmd)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	return t
}

func runTripsList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	saved, err := e.lib.List()
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		fmt.Println("No saved trips. Plan one with 'jetlagr plan'.")
		return nil
	}

	last, _ := e.db.GetState(lastTripKey)

	t := newTable()
	t.AppendHeader(table.Row{"", "ID", "Name", "Route", "Strategy", "Δ", "Days", "Saved"})
	for _, s := range saved {
		marker := ""
		if s.Trip.ID == last {
			marker = "*"
		}
		t.AppendRow(table.Row{
			marker,
			s.Trip.ID,
			s.Trip.Name,
			s.Trip.Route(),
			s.Plan.ShiftStrategy,
			fmt.Sprintf("%+dh", s.Plan.TotalTimeZoneDifference),
			len(s.Plan.Days),
			s.SavedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	t.Render()
	return nil
}

func runTripsShow(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	saved, err := loadSaved(e, args)
	if err != nil {
		return err
	}
	fmt.Print(render.Terminal(saved.Plan, saved.Trip))
	return nil
}

func runTripsDelete(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	id := args[0]
	if err := e.lib.Delete(id); err != nil {
		return err
	}

	if last, _ := e.db.GetState(lastTripKey); last == id {
		if err := e.db.SetState(lastTripKey, ""); err != nil {
			return fmt.Errorf("clearing last trip: %w", err)
		}
	}

	fmt.Printf("Deleted %s\n", id)
	return nil
}

func runSamples(cmd *cobra.Command, args []string) error {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Name", "Route", "Depart", "Strategy", "Δ"})
	for _, s := range trip.Samples() {
		plan := optimizer.MustGenerate(s)
		t.AppendRow(table.Row{
			s.ID,
			s.Name,
			s.Route(),
			s.FirstLeg().DepartLocal,
			plan.ShiftStrategy,
			fmt.Sprintf("%+dh", plan.TotalTimeZoneDifference),
		})
	}
	t.Render()
	return nil
}

func runAirports(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	var results []airports.Airport
	if len(args) == 0 {
		results = airports.All()
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}
	} else {
		results = airports.Search(args[0], limit)
	}

	if len(results) == 0 {
		fmt.Println("No airports found.")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"Code", "City", "Country", "Time zone"})
	for _, a := range results {
		t.AppendRow(table.Row{a.IATA, a.City, a.Country, a.Timezone})
	}
	t.Render()
	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := trip.Schema()
	if err != nil {
		return fmt.Errorf("building schema: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
