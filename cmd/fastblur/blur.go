package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fastblur"
	"github.com/gogpu/fastblur/internal/config"
)

type blurOptions struct {
	sigma      float64
	passes     int
	edge       string
	preset     string
	configPath string
	format     string
	outDir     string
	suffix     string
	parallel   bool
	jobs       int
}

func newBlurCmd() *cobra.Command {
	opts := &blurOptions{}

	cmd := &cobra.Command{
		Use:   "blur [files...]",
		Short: "Blur image files",
		Long: `Blur every input file and write the result next to it (or into --out-dir)
as <name><suffix><ext>. Files are processed concurrently.

Explicit flags override the values of --preset.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlur(cmd, opts, args)
		},
	}

	cmd.Flags().Float64VarP(&opts.sigma, "sigma", "s", 4, "Gaussian standard deviation")
	cmd.Flags().IntVarP(&opts.passes, "passes", "p", fastblur.DefaultPasses, "Number of box passes (1..10)")
	cmd.Flags().StringVarP(&opts.edge, "edge", "e", "extend", "Edge policy: extend or crop")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "Named preset to start from")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Preset file (YAML or TOML) merged over the built-ins")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "rgba", "Working pixel format: gray, gray-alpha, rgb or rgba")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Output directory (default: next to the input)")
	cmd.Flags().StringVar(&opts.suffix, "suffix", "_blur", "Suffix appended to output file names")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "Spread each image across all CPUs")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Maximum number of files processed at once")

	return cmd
}

// blurJob is the resolved configuration shared by every file.
type blurJob struct {
	sigma  float64
	format fastblur.Format
	opts   []fastblur.Option
	outDir string
	suffix string
}

func runBlur(cmd *cobra.Command, opts *blurOptions, files []string) error {
	job, err := resolveBlurJob(cmd, opts)
	if err != nil {
		return err
	}
	if opts.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs)
	}
	if job.outDir != "" {
		if err := os.MkdirAll(job.outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	start := time.Now()
	var pixels atomic.Int64

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(opts.jobs)
	for _, in := range files {
		g.Go(func() error {
			n, err := blurFile(ctx, job, in)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			pixels.Add(int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "blurred %d files (%d pixels) with sigma %.2f in %v\n",
		len(files), pixels.Load(), job.sigma, time.Since(start).Round(time.Millisecond))
	return nil
}

// resolveBlurJob applies the preset, then any flag the user set explicitly.
func resolveBlurJob(cmd *cobra.Command, opts *blurOptions) (blurJob, error) {
	var preset config.Preset
	if opts.preset != "" {
		presets, err := loadPresets(opts.configPath)
		if err != nil {
			return blurJob{}, err
		}
		p, ok := presets.Lookup(opts.preset)
		if !ok {
			return blurJob{}, fmt.Errorf("unknown preset %q", opts.preset)
		}
		preset = p
	} else {
		preset = config.Preset{
			Sigma:    opts.sigma,
			Passes:   opts.passes,
			Edge:     opts.edge,
			Parallel: opts.parallel,
		}
	}

	flags := cmd.Flags()
	if flags.Changed("sigma") {
		preset.Sigma = opts.sigma
	}
	if flags.Changed("passes") {
		preset.Passes = opts.passes
	}
	if flags.Changed("edge") {
		preset.Edge = opts.edge
	}
	if flags.Changed("parallel") {
		preset.Parallel = opts.parallel
	}

	// Check here so a bad value is reported once, not per file.
	if _, err := fastblur.BoxRadii(preset.Sigma, preset.EffectivePasses()); err != nil {
		return blurJob{}, err
	}
	if _, err := fastblur.ParseEdge(preset.Edge); err != nil {
		return blurJob{}, err
	}
	format, err := fastblur.ParseFormat(opts.format)
	if err != nil {
		return blurJob{}, err
	}

	return blurJob{
		sigma:  preset.Sigma,
		format: format,
		opts:   preset.Options(),
		outDir: opts.outDir,
		suffix: opts.suffix,
	}, nil
}

// blurFile blurs one file and returns its pixel count.
func blurFile(ctx context.Context, job blurJob, in string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	pm, err := fastblur.LoadPixmap(in, job.format)
	if err != nil {
		return 0, err
	}
	if err := pm.Blur(job.sigma, job.opts...); err != nil {
		return 0, err
	}

	out := outputPath(in, job.outDir, job.suffix)
	if err := pm.Save(out); err != nil {
		return 0, err
	}
	fastblur.Logger().Info("fastblur: wrote image", "in", in, "out", out)
	return pm.Width() * pm.Height(), nil
}

// outputPath derives the output file name. Inputs whose format cannot be
// written (GIF, WebP) are saved as PNG.
func outputPath(in, outDir, suffix string) string {
	dir, base := filepath.Split(in)
	if outDir != "" {
		dir = outDir
	}
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
	default:
		ext = ".png"
	}
	return filepath.Join(dir, name+suffix+ext)
}
