package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/engine"
	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/integrator"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/storage"
	"github.com/san-kum/orbitsim/internal/vec"
	"github.com/san-kum/orbitsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string

	numBodies  int
	mass       float64
	spawnBound float64
	placement  string
	separation float64
	timestep   float64
	timeScale  float64
	integName  string
	seed       int64
	duration   float64

	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitsim",
		Short: "n-body gravity simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless simulation",
		RunE:  runSimulation,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 30.0, "wall-clock duration to simulate, seconds")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's trajectories",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render run trails as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBODIES\tMASS\tPLACEMENT\tINTEG")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%.0f\t%s\t%s\n",
					name, p.Bodies, p.Mass, p.Placement, p.Integrator)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&numBodies, "bodies", config.DefaultBodies, "number of bodies")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "body mass")
	cmd.Flags().Float64Var(&spawnBound, "bound", config.DefaultSpawnBound, "spawn cube half-extent")
	cmd.Flags().StringVar(&placement, "placement", "cube", "initial placement (cube, pair, ring)")
	cmd.Flags().Float64Var(&separation, "separation", 10.0, "pair separation or ring radius")
	cmd.Flags().Float64Var(&timestep, "timestep", config.DefaultTimestep, "fixed timestep, seconds")
	cmd.Flags().Float64Var(&timeScale, "scale", config.DefaultScale, "simulation time scale")
	cmd.Flags().StringVar(&integName, "integrator", "yoshida4", "integrator (yoshida4, euler)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
}

// buildConfig resolves preset, config file, and flags, with explicit flags
// winning over the file and the file winning over the preset.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		*cfg = *fileCfg
	}

	if cmd.Flags().Changed("bodies") {
		cfg.Bodies = numBodies
	}
	if cmd.Flags().Changed("mass") {
		cfg.Mass = mass
	}
	if cmd.Flags().Changed("bound") {
		cfg.SpawnBound = spawnBound
	}
	if cmd.Flags().Changed("placement") {
		cfg.Placement = placement
	}
	if cmd.Flags().Changed("separation") {
		cfg.Separation = separation
	}
	if cmd.Flags().Changed("timestep") {
		cfg.Timestep = timestep
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = timeScale
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integName
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	return cfg, nil
}

func newIntegrator(name string) (engine.Stepper, error) {
	switch name {
	case "yoshida4":
		return integrator.NewYoshida(), nil
	case "euler":
		return integrator.NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func newEngine(cfg *config.Config) (*engine.Engine, error) {
	stepper, err := newIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	switch cfg.Placement {
	case "", "cube":
		return engine.New(cfg.Engine(), stepper)
	case "pair":
		return engine.NewWithBodies(cfg.Engine(), gravity.PairOrbit(cfg.Mass, cfg.Separation), stepper)
	case "ring":
		return engine.NewWithBodies(cfg.Engine(), gravity.Ring(cfg.Bodies, cfg.Mass, cfg.Separation), stepper)
	default:
		return nil, fmt.Errorf("unknown placement: %s", cfg.Placement)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	eng.AddMetric(metrics.NewEnergyDrift())
	eng.AddMetric(metrics.NewMomentumError())

	var samples []storage.Sample
	eng.OnSample(func(t float64, positions []vec.Vec3) {
		snapshot := make([]vec.Vec3, len(positions))
		copy(snapshot, positions)
		samples = append(samples, storage.Sample{Time: t, Positions: snapshot})
	})

	fmt.Printf("running %d bodies (%s, %s) for %.1fs...\n",
		eng.NumBodies(), cfg.Placement, cfg.Integrator, duration)
	start := time.Now()

	frame := cfg.Timestep
	for elapsed := 0.0; elapsed < duration; elapsed += frame {
		eng.Advance(frame)
	}

	fmt.Printf("completed in %v\n", time.Since(start))

	runID, err := st.Save(cfg, eng.Metrics(), samples)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", eng.Steps())
	fmt.Printf("samples: %d\n", len(samples))
	fmt.Println("\nmetrics:")
	for name, val := range eng.Metrics() {
		fmt.Printf("  %s: %.6e\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return err
	}
	eng.AddMetric(metrics.NewEnergyDrift())
	eng.AddMetric(metrics.NewMomentumError())

	return viz.Run(eng)
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
	fmt.Fprintln(w, "ID\tTIME\tBODIES\tPLACEMENT\tINTEG\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Bodies,
			run.Placement,
			run.Integrator,
			run.Samples,
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

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("bodies: %d\n", meta.Bodies)
	fmt.Printf("samples: %d\n\n", len(samples))

	numPlots := len(samples[0].Positions)
	if numPlots > 4 {
		numPlots = 4
	}

	for b := 0; b < numPlots; b++ {
		data := make([]float64, 0, len(samples))
		for _, s := range samples {
			if b < len(s.Positions) {
				data = append(data, s.Positions[b].Length())
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("body %d distance from origin", b)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range samples[0].Positions {
		header = append(header,
			fmt.Sprintf("b%dx", i), fmt.Sprintf("b%dy", i), fmt.Sprintf("b%dz", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range samples {
		row := []string{strconv.FormatFloat(s.Time, 'f', 6, 64)}
		for _, p := range s.Positions {
			row = append(row,
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
				strconv.FormatFloat(p.Z, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, samples)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	svg := storage.TrailSVG(samples, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("not enough data to render")
	}

	fmt.Print(svg)
	return nil
}
