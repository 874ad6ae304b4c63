package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/analysis"
	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/engine"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/storage"
	"github.com/san-kum/orrery/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64

	frames       int
	daysPerFrame float64
	zoom         float64
	beltCount    int

	plotBody string
	svgOut   string
	svgSize  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orrery",
		Short: "interactive circular-orbit solar system simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, seed)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orrery", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "belt random seed")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and record an ephemeris",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&frames, "frames", 365, "number of frames to tick")
	runCmd.Flags().Float64Var(&daysPerFrame, "days", 1.0, "simulated days per frame")
	runCmd.Flags().Float64Var(&zoom, "zoom", 1.0, "zoom fraction")
	runCmd.Flags().IntVar(&beltCount, "belt", config.DefaultBeltCount, "minor body count")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded body's coordinates",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotBody, "body", "Earth", "body to plot")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a recorded run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "estimate a body's orbital period from its recorded trace",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&plotBody, "body", "Earth", "body to analyze")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a recorded run as an SVG orbit map",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 800, "image size in pixels")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recorded run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("days") {
		cfg.TimeScale.Initial = daysPerFrame
	}
	if cmd.Flags().Changed("zoom") {
		cfg.Zoom.Initial = zoom
	}
	if cmd.Flags().Changed("belt") {
		cfg.Belt.Count = beltCount
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	world, err := engine.NewWorld(cfg, seed)
	if err != nil {
		return err
	}

	fmt.Printf("ticking %d frames at %.2f days/frame (%.0f s/frame)...\n",
		frames, world.Clock.Days(), world.Clock.ElapsedSeconds())
	start := time.Now()

	recorded := make([]storage.Frame, 0, frames)
	for i := 0; i < frames; i++ {
		positions, err := world.Producer.Tick()
		if err != nil {
			return err
		}
		recorded = append(recorded, storage.Frame{
			TimeDays:  world.Producer.Elapsed() / body.SecondsPerDay,
			Positions: positions[:world.MajorCount],
		})
	}

	elapsed := time.Since(start)

	runID, err := st.Save(seed, world.Clock.Days(), world.Viewport.Zoom(), world.Viewport.HalfExtent(), recorded)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("simulated: %.1f days\n\n", world.Producer.Elapsed()/body.SecondsPerDay)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tRADIUS_AU\tPERIOD_D\tANGLE_RAD")
	for i := 0; i < world.MajorCount; i++ {
		b := world.Model.Body(i)
		period := 2 * math.Pi / b.AngularVelocity / body.SecondsPerDay
		fmt.Fprintf(w, "%s\t%.3f\t%.2f\t%.4f\n", b.ID, b.OrbitRadius/body.AU, period, b.Angle)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tDAYS/FRAME\tZOOM\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.2f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.TimeScaleDays,
			run.Zoom,
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	idx := -1
	for i, name := range meta.Bodies {
		if name == plotBody {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("body %s not recorded in %s (have: %v)", plotBody, runID, meta.Bodies)
	}

	runFrames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(runFrames) == 0 {
		return fmt.Errorf("no frames to plot")
	}

	xs := make([]float64, len(runFrames))
	ys := make([]float64, len(runFrames))
	for i, f := range runFrames {
		xs[i] = f.Positions[idx].X / body.AU
		ys[i] = f.Positions[idx].Y / body.AU
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("body: %s, frames: %d, %.2f days/frame\n\n", plotBody, len(runFrames), meta.TimeScaleDays)

	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(plotBody+" x (AU)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(plotBody+" y (AU)"),
	))

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, runFrames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(runFrames) < 4 {
		return fmt.Errorf("run %s too short to analyze", meta.ID)
	}

	idx := -1
	for i, name := range meta.Bodies {
		if name == plotBody {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("body %s not recorded in %s (have: %v)", plotBody, meta.ID, meta.Bodies)
	}

	series := make([]float64, len(runFrames))
	for i, f := range runFrames {
		series[i] = f.Positions[idx].X / body.AU
	}

	period, err := analysis.EstimatePeriodDays(series, meta.TimeScaleDays)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("body: %s, %d frames at %.2f days/frame\n\n", plotBody, len(runFrames), meta.TimeScaleDays)

	n := 1
	for n < len(series) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, series)
	ps := analysis.PowerSpectrum(padded)

	fmt.Println(asciigraph.Plot(ps[:len(ps)/4],
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum ("+plotBody+" x)"),
	))
	fmt.Println()
	fmt.Printf("estimated orbital period: %.1f days (%.2f years)\n", period, period/365.25)

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, runFrames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	svg := export.OrbitSVG(meta, runFrames, svgSize)
	if svg == "" {
		return fmt.Errorf("run %s has nothing to draw", meta.ID)
	}

	if svgOut == "" {
		fmt.Print(svg)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	meta, runFrames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, meta, runFrames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, runFrames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, runFrames)
}

func loadRun(runID string) (*storage.RunMetadata, []storage.Frame, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	runFrames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, runFrames, nil
}
