package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/vfshera/defocus/internal/filters"
	"github.com/vfshera/defocus/internal/pipeline"
	"github.com/vfshera/defocus/internal/scene"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "defocus",
	Short: "Apply blur and depth-of-field effects to images",
	Long: `Defocus applies photographic blur effects to your images.

Supports gaussian, box, motion, radial (spin/zoom), lens (bokeh),
surface (edge-preserving) and tiltshift blurs, applied one at a time
or chained through a YAML preset.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			filters.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
		if workers > 0 {
			filters.SetParallelism(workers)
		}
	},
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a single image",
	Long:  `Process a single image with one filter or a preset chain.`,
	RunE:  runProcess,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process multiple images in a directory",
	Long:  `Process all images in a directory with one filter or a preset chain.`,
	RunE:  runBatch,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a synthetic demo scene",
	Long:  `Render a synthetic demo scene, optionally with filtered variants.`,
	RunE:  runDemo,
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List available filters and their defaults",
	Run:   runFilters,
}

var (
	inputPath  string
	outputPath string
	filterName string
	presetPath string

	radius     float64
	angle      float64
	distance   float64
	amount     float64
	method     string
	quality    string
	centerX    float64
	centerY    float64
	shape      float64
	rotation   float64
	curvature  float64
	brightness float64
	threshold  float64
	blur       float64
	focusY     float64
	focusH     float64
	transition float64

	sceneName   string
	demoWidth   int
	demoHeight  int
	demoFilters []string

	verbose bool
	workers int
)

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterName, "filter", "f", "gaussian", "Filter: gaussian, box, motion, radial, lens, surface, tiltshift")
	cmd.Flags().StringVarP(&presetPath, "preset", "p", "", "YAML preset file with a filter step chain")
	cmd.Flags().Float64Var(&radius, "radius", 0, "Blur radius in pixels (gaussian, box, lens, surface)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "Angle in degrees (motion, tiltshift)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "Streak distance in pixels (motion)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Effect strength 0-100 (radial)")
	cmd.Flags().StringVar(&method, "method", "", "Radial method: spin, zoom")
	cmd.Flags().StringVar(&quality, "quality", "", "Radial quality: draft, better, best")
	cmd.Flags().Float64Var(&centerX, "center-x", 0, "Radial center X 0-1")
	cmd.Flags().Float64Var(&centerY, "center-y", 0, "Radial center Y 0-1")
	cmd.Flags().Float64Var(&shape, "shape", 0, "Iris polygon sides (lens)")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "Iris rotation in degrees (lens)")
	cmd.Flags().Float64Var(&curvature, "curvature", 0, "Iris blade curvature (lens)")
	cmd.Flags().Float64Var(&brightness, "brightness", 0, "Highlight boost strength (lens)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Highlight threshold (lens) or color threshold (surface)")
	cmd.Flags().Float64Var(&blur, "blur", 0, "Blur radius outside the focus band (tiltshift)")
	cmd.Flags().Float64Var(&focusY, "focus-y", 0, "Focus line position 0-1 (tiltshift)")
	cmd.Flags().Float64Var(&focusH, "focus-height", 0, "Focus band height 0-1 (tiltshift)")
	cmd.Flags().Float64Var(&transition, "transition", 0, "Transition band height 0-1 (tiltshift)")
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log filter activity to stderr")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Worker goroutines per filter (default: number of CPUs)")

	processCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input image file (required)")
	processCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output image file (required)")
	addFilterFlags(processCmd)
	processCmd.MarkFlagRequired("input")
	processCmd.MarkFlagRequired("output")

	batchCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input directory (required)")
	batchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output directory (required)")
	addFilterFlags(batchCmd)
	batchCmd.MarkFlagRequired("input")
	batchCmd.MarkFlagRequired("output")

	demoCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output image file (required)")
	demoCmd.Flags().StringVarP(&sceneName, "scene", "s", "card", "Scene: card, lights, stripes")
	demoCmd.Flags().IntVar(&demoWidth, "width", 512, "Scene width in pixels")
	demoCmd.Flags().IntVar(&demoHeight, "height", 384, "Scene height in pixels")
	demoCmd.Flags().StringSliceVarP(&demoFilters, "filter", "f", nil, "Filters to render as extra variants")
	demoCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(filtersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultSettings(name string) (filters.Settings, error) {
	switch strings.ToLower(name) {
	case "gaussian":
		return filters.DefaultGaussian(), nil
	case "box":
		return filters.DefaultBox(), nil
	case "motion":
		return filters.DefaultMotion(), nil
	case "radial":
		return filters.DefaultRadial(), nil
	case "lens":
		return filters.DefaultLens(), nil
	case "surface":
		return filters.DefaultSurface(), nil
	case "tiltshift":
		return filters.DefaultTiltShift(), nil
	default:
		return nil, fmt.Errorf("unknown filter: %s (valid: %s)", name, strings.Join(pipeline.FilterNames(), ", "))
	}
}

func parseSceneType(s string) (scene.SceneType, error) {
	switch strings.ToLower(s) {
	case "card":
		return scene.SceneCard, nil
	case "lights":
		return scene.SceneLights, nil
	case "stripes":
		return scene.SceneStripes, nil
	default:
		return "", fmt.Errorf("unknown scene type: %s (valid: card, lights, stripes)", s)
	}
}

func stepFromFlags(cmd *cobra.Command) pipeline.Step {
	step := pipeline.Step{Filter: strings.ToLower(filterName)}
	set := func(name string, dst **float64, v *float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("radius", &step.Radius, &radius)
	set("angle", &step.Angle, &angle)
	set("distance", &step.Distance, &distance)
	set("amount", &step.Amount, &amount)
	set("center-x", &step.CenterX, &centerX)
	set("center-y", &step.CenterY, &centerY)
	set("shape", &step.Shape, &shape)
	set("rotation", &step.Rotation, &rotation)
	set("curvature", &step.Curvature, &curvature)
	set("brightness", &step.Brightness, &brightness)
	set("threshold", &step.Threshold, &threshold)
	set("blur", &step.Blur, &blur)
	set("focus-y", &step.FocusY, &focusY)
	set("focus-height", &step.FocusHeight, &focusH)
	set("transition", &step.Transition, &transition)
	if cmd.Flags().Changed("method") {
		step.Method = &method
	}
	if cmd.Flags().Changed("quality") {
		step.Quality = &quality
	}
	return step
}

func stepsFromFlags(cmd *cobra.Command) ([]pipeline.Step, error) {
	if presetPath != "" {
		if cmd.Flags().Changed("filter") {
			return nil, fmt.Errorf("--filter and --preset are mutually exclusive")
		}
		return pipeline.LoadPreset(presetPath)
	}

	if _, err := defaultSettings(filterName); err != nil {
		return nil, err
	}
	return []pipeline.Step{stepFromFlags(cmd)}, nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	steps, err := stepsFromFlags(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	fmt.Printf("Processing: %s\n", inputPath)

	opts := pipeline.Options{Steps: steps}
	if err := pipeline.Process(inputPath, outputPath, opts); err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	fmt.Printf("Done: %s (%dms)\n", outputPath, time.Since(start).Milliseconds())
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	steps, err := stepsFromFlags(cmd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := os.ReadDir(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	suffix := strings.ToLower(filterName)
	if presetPath != "" {
		suffix = strings.TrimSuffix(filepath.Base(presetPath), filepath.Ext(presetPath))
	}

	opts := pipeline.Options{Steps: steps}
	processed := 0
	for _, f := range files {
		if f.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(f.Name()))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
			continue
		}
		outExt := ext
		if outExt == ".webp" {
			outExt = ".png"
		}

		inPath := filepath.Join(inputPath, f.Name())
		baseName := strings.TrimSuffix(f.Name(), ext)
		outName := fmt.Sprintf("%s_%s%s", baseName, suffix, outExt)
		outPath := filepath.Join(outputPath, outName)

		start := time.Now()
		fmt.Printf("[%d] Processing: %s ", processed+1, f.Name())

		if err := pipeline.Process(inPath, outPath, opts); err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}

		fmt.Printf("(%dms)\n", time.Since(start).Milliseconds())
		processed++
	}

	fmt.Printf("\nBatch complete: %d images processed\n", processed)
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	sceneType, err := parseSceneType(sceneName)
	if err != nil {
		return err
	}

	buf, err := scene.Render(sceneType, demoWidth, demoHeight)
	if err != nil {
		return err
	}

	if err := imaging.Save(buf.ToImage(), outputPath); err != nil {
		return fmt.Errorf("failed to save scene: %w", err)
	}
	fmt.Printf("Scene: %s\n", outputPath)

	ext := filepath.Ext(outputPath)
	base := strings.TrimSuffix(outputPath, ext)
	for _, name := range demoFilters {
		s, err := defaultSettings(name)
		if err != nil {
			return err
		}

		variant := filters.Apply(buf, s)
		variantPath := fmt.Sprintf("%s_%s%s", base, strings.ToLower(name), ext)
		if err := imaging.Save(variant.ToImage(), variantPath); err != nil {
			return fmt.Errorf("failed to save %s variant: %w", name, err)
		}
		fmt.Printf("Variant: %s\n", variantPath)
	}

	return nil
}

func runFilters(cmd *cobra.Command, args []string) {
	for _, name := range pipeline.FilterNames() {
		s, err := defaultSettings(name)
		if err != nil {
			continue
		}
		fmt.Printf("%-10s %+v\n", name, s)
	}
}
