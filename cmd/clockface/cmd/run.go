package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-drift/clockface/cmd/clockface/internal/config"
	"github.com/go-drift/clockface/pkg/driver"
	"github.com/go-drift/clockface/pkg/preview"
	"github.com/go-drift/clockface/pkg/rendering"
	"github.com/go-drift/clockface/pkg/timesync"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Serve a live clock preview over HTTP",
		Long: `Start the clock and serve it as a live-updating web page.

The clock acquires a best-effort time reference from an internet time
endpoint at startup (falling back to the local system clock on any
failure), then advances it locally once per second. The preview exposes:

  /            HTML page refreshing once per second
  /clock.svg   Current frame as SVG
  /clock.png   Current frame as PNG
  /time        Displayed time as {"datetime": "<ISO-8601>"}
  /resize      POST ?width=&height= to relayout the face

Flags:
  --config DIR     Directory containing clockface.yaml (default: .)
  --addr ADDR      Listen address (default from config, or :8650)
  --width N        Viewport width in pixels
  --height N       Viewport height in pixels
  --theme NAME     Color scheme: light or dark
  --endpoint URL   Internet time endpoint
  --local          Skip the network time lookup`,
		Usage: "clockface run [--addr ADDR] [--width N] [--height N] [--theme NAME] [--local]",
		Run:   runRun,
	})
}

type runOptions struct {
	configDir string
	addr      string
	width     float64
	height    float64
	theme     string
	endpoint  string
	local     bool
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}

	resolved, err := resolveDisplay(opts.configDir, opts.width, opts.height, opts.theme)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		resolved.Addr = opts.addr
	}
	if opts.endpoint != "" {
		resolved.Endpoint = opts.endpoint
	}
	if opts.local {
		resolved.LocalOnly = true
	}

	ref := acquireReference(resolved)

	var drv *driver.Driver
	server := preview.NewServer(resolved.Addr, func(size rendering.Size) {
		if drv != nil {
			drv.Resize(size)
		}
	})
	drv, err = driver.New(ref, server, driver.Options{
		Theme:          resolved.Theme,
		Size:           resolved.Size,
		TickInterval:   resolved.TickInterval,
		ResizeDebounce: resolved.ResizeDebounce,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()
	go drv.Run(ctx)

	fmt.Printf("clockface preview on %s (viewport %gx%g, displaying %s)\n",
		resolved.Addr, resolved.Size.Width, resolved.Size.Height,
		ref.Time().Format("15:04:05"))

	select {
	case err := <-serveErr:
		return fmt.Errorf("preview server failed: %w", err)
	case <-ctx.Done():
		fmt.Println("\nshutting down")
		return nil
	}
}

func parseRunArgs(args []string) (runOptions, error) {
	opts := runOptions{configDir: "."}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			v, err := flagValue(args, &i)
			if err != nil {
				return opts, err
			}
			opts.configDir = v
		case "--addr":
			v, err := flagValue(args, &i)
			if err != nil {
				return opts, err
			}
			opts.addr = v
		case "--width":
			v, err := floatFlagValue(args, &i)
			if err != nil {
				return opts, err
			}
			opts.width = v
		case "--height":
			v, err := floatFlagValue(args, &i)
			if err != nil {
				return opts, err
			}
			opts.height = v
		case "--theme":
			v, err := flagValue(args, &i)
			if err != nil {
				return opts, err
			}
			opts.theme = v
		case "--endpoint":
			v, err := flagValue(args, &i)
			if err != nil {
				return opts, err
			}
			opts.endpoint = v
		case "--local":
			opts.local = true
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

// resolveDisplay loads config and applies shared CLI overrides.
func resolveDisplay(dir string, width, height float64, theme string) (*config.Resolved, error) {
	resolved, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if width > 0 {
		resolved.Size.Width = width
	}
	if height > 0 {
		resolved.Size.Height = height
	}
	if theme != "" {
		themed, err := config.ResolveVariant(theme)
		if err != nil {
			return nil, err
		}
		resolved.Theme = themed
	}
	return resolved, nil
}

// acquireReference performs the one-time startup time acquisition.
func acquireReference(resolved *config.Resolved) *timesync.Reference {
	clock := timesync.SystemClock()
	if resolved.LocalOnly {
		return timesync.NewReference(clock.Now())
	}
	return timesync.Acquire(resolved.Endpoint, clock)
}

func flagValue(args []string, i *int) (string, error) {
	if *i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", args[*i])
	}
	*i++
	return args[*i], nil
}

func floatFlagValue(args []string, i *int) (float64, error) {
	raw, err := flagValue(args, i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid value %q for %s", raw, args[*i-1])
	}
	return v, nil
}
