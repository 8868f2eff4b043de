package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/kinecalc/internal/config"
	"github.com/san-kum/kinecalc/internal/kinematics"
	"github.com/san-kum/kinecalc/internal/logging"
	"github.com/san-kum/kinecalc/internal/profile"
	"github.com/san-kum/kinecalc/internal/report"
	"github.com/san-kum/kinecalc/internal/tui"
)

var (
	logLevel  string
	logFormat string
	logger    = slog.New(slog.NewTextHandler(io.Discard, nil))
	// Calculator inputs
	preset          string
	velocity        float64
	acceleration    float64
	elapsedTime     float64
	initialDistance float64
	initialFuel     float64
	burnRate        float64
	// Output
	format  string
	samples int
	series  string
)

// main runs the kinecalc CLI. Calculation errors are printed to stderr and
// exit with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kinecalc",
		Short:         "velocity, distance and fuel for a constant-acceleration burn",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(cmd.ErrOrStderr(), logging.Config{Level: logLevel, Format: logFormat})
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: runDefault,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "run the calculation with a preset and parameter overrides",
		Args:  cobra.NoArgs,
		RunE:  runCalc,
	}
	addParamFlags(calcCmd)
	calcCmd.Flags().StringVar(&format, "format", string(report.FormatText), "output format (text, styled, yaml, json)")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot a quantity over the elapsed time",
		Args:  cobra.NoArgs,
		RunE:  runProfile,
	}
	addParamFlags(profileCmd)
	profileCmd.Flags().IntVar(&samples, "samples", profile.DefaultSamples, "number of samples")
	profileCmd.Flags().StringVar(&series, "series", string(report.SeriesVelocity), "series to plot (velocity, distance, fuel)")

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPresets,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "scrub elapsed time interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveParams(cmd)
			if err != nil {
				return err
			}
			return tui.Run(p)
		},
	}
	addParamFlags(tuiCmd)

	rootCmd.AddCommand(calcCmd, profileCmd, presetsCmd, tuiCmd)
	return rootCmd
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", config.DefaultPreset, "base parameter set")
	cmd.Flags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "initial velocity (km/h)")
	cmd.Flags().Float64Var(&acceleration, "acceleration", config.DefaultAcceleration, "acceleration (m/s²)")
	cmd.Flags().Float64Var(&elapsedTime, "time", config.DefaultElapsedTime, "elapsed time (s)")
	cmd.Flags().Float64Var(&initialDistance, "distance", config.DefaultInitialDistance, "initial distance (km)")
	cmd.Flags().Float64Var(&initialFuel, "fuel", config.DefaultInitialFuel, "initial fuel mass (kg)")
	cmd.Flags().Float64Var(&burnRate, "burn-rate", config.DefaultFuelBurnRate, "fuel burn rate (kg/s)")
}

// resolveParams starts from the preset and applies explicitly set flags.
func resolveParams(cmd *cobra.Command) (kinematics.Params, error) {
	p, ok := config.GetPreset(preset)
	if !ok {
		return kinematics.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}

	overrides := []struct {
		flag  string
		value float64
		dst   *float64
	}{
		{"velocity", velocity, &p.Velocity},
		{"acceleration", acceleration, &p.Acceleration},
		{"time", elapsedTime, &p.ElapsedTime},
		{"distance", initialDistance, &p.InitialDistance},
		{"fuel", initialFuel, &p.InitialFuel},
		{"burn-rate", burnRate, &p.FuelBurnRate},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = o.value
		}
	}

	logger.Debug("resolved parameters", "preset", preset, "params", p)
	return p, nil
}

func runDefault(cmd *cobra.Command, args []string) error {
	p := config.Defaults()
	res, err := kinematics.Compute(p)
	if err != nil {
		return err
	}
	logger.Debug("computed", "velocity_kmh", res.Velocity, "distance_km", res.Distance, "fuel_kg", res.Fuel)
	return report.Text(cmd.OutOrStdout(), res)
}

func runCalc(cmd *cobra.Command, args []string) error {
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	res, err := kinematics.Compute(p)
	if err != nil {
		logger.Warn("calculation rejected", "preset", preset, "err", err)
		return err
	}
	logger.Debug("computed", "velocity_kmh", res.Velocity, "distance_km", res.Distance, "fuel_kg", res.Fuel)

	return report.Write(cmd.OutOrStdout(), f, p, res)
}

func runProfile(cmd *cobra.Command, args []string) error {
	s, err := report.ParseSeries(series)
	if err != nil {
		return err
	}

	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	pts, err := profile.Sample(p, samples)
	if err != nil {
		return err
	}
	logger.Info("sampled profile", "samples", len(pts), "series", s)

	return report.Chart(cmd.OutOrStdout(), pts, s)
}

func showPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, "presets:")
		for _, name := range config.ListPresets() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	}

	p, ok := config.GetPreset(args[0])
	if !ok {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}
	data, err := config.Marshal(p)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
