// Command bezier is a CLI tool for evaluating and rendering Bézier curves.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgostarter/i/l"
	"gopkg.in/yaml.v3"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/config"
	"github.com/ha1tch/bezier-toolkit/pkg/editor"
	"github.com/ha1tch/bezier-toolkit/pkg/frame"
	"github.com/ha1tch/bezier-toolkit/pkg/render"
)

// maxImageSide bounds -W and -H; PNGs are rasterized at 4x.
const maxImageSide = 16384

const usage = `bezier - Bézier curve toolkit

Usage:
  bezier <command> [options] <x,y>...

Commands:
  sample     Evaluate the curve at a parameter t
  polyline   Print the sampled curve
  render     Render control points and curve to PNG or SVG
  run        Drive an editor store interactively
  config     Show the effective configuration

Examples:
  bezier sample 0.5 0,0 0,100 100,100 100,0
  bezier polyline -n 20 --json 0,0 0,100 100,100 100,0
  bezier render -o curve.png 100,100 200,600 800,650 900,150
  bezier run

Use "bezier <command> -h" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "sample":
		cmdSample(args)
	case "polyline":
		cmdPolyline(args)
	case "render":
		cmdRender(args)
	case "run":
		cmdRun(args)
	case "config":
		cmdConfig(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return cfg
}

func newLogger(cfg config.Config) l.Wrapper {
	if cfg.Debug {
		return l.NewConsoleLoggerWrapper()
	}
	return l.NewNopLoggerWrapper()
}

func cmdSample(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: bezier sample <t> <x,y>...")
		os.Exit(1)
	}

	t, err := parseParam(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	points, err := parsePoints(args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(formatPoint(bezier.Sample(points, t)))
}

func cmdPolyline(args []string) {
	steps := loadConfig().StepCount
	asJSON := false
	var rest []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-n", "--steps":
			if i+1 < len(args) {
				n, err := parseCount("step count", args[i+1], bezier.MaxSteps)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				steps = n
				i++
			}
		case "--json":
			asJSON = true
		case "-h", "--help":
			fmt.Println("Usage: bezier polyline [-n steps] [--json] <x,y>...")
			return
		default:
			rest = append(rest, args[i])
		}
	}

	points, err := parsePoints(rest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(points) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: bezier polyline [-n steps] [--json] <x,y>...")
		os.Exit(1)
	}

	line := bezier.Polyline(points, steps)

	if asJSON {
		data, err := json.MarshalIndent(line, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	for _, p := range line {
		fmt.Println(formatPoint(p))
	}
}

func cmdRender(args []string) {
	cfg := loadConfig()
	output := ""
	width, height := cfg.Window.Width, cfg.Window.Height
	labels := true
	var rest []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-W", "--width":
			if i+1 < len(args) {
				n, err := parseCount("width", args[i+1], maxImageSide)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				width = n
				i++
			}
		case "-H", "--height":
			if i+1 < len(args) {
				n, err := parseCount("height", args[i+1], maxImageSide)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				height = n
				i++
			}
		case "--no-labels":
			labels = false
		case "-h", "--help":
			fmt.Println("Usage: bezier render [-o output.png|svg] [-W width] [-H height] [--no-labels] <x,y>...")
			return
		default:
			rest = append(rest, args[i])
		}
	}

	points, err := parsePoints(rest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if output == "" {
		output = filepath.Join(cfg.Export.LastDir, "curve."+cfg.Export.FileType)
	}

	logger := newLogger(cfg)
	store := editor.NewStore(editor.Options{
		Capacity:   cfg.Capacity,
		MarkerSize: cfg.MarkerSize,
		Logger:     logger,
	})
	for _, p := range points {
		if !store.Append(p) {
			fmt.Fprintf(os.Stderr, "Warning: capacity %d reached, ignoring remaining points\n", store.Cap())
			break
		}
	}

	loop := frame.NewLoop(store, frame.Options{
		MinCurvePoints: cfg.MinCurvePoints,
		StepCount:      cfg.StepCount,
		Logger:         logger,
	})

	if err := renderFile(loop, output, width, height, labels); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}

	fmt.Printf("Written: %s\n", output)
}

// renderFile draws the loop's current frame to path; the extension picks
// the format.
func renderFile(loop *frame.Loop, path string, width, height int, labels bool) error {
	return render.WriteFile(path, render.FileOptions{
		Width:  width,
		Height: height,
		Labels: labels,
		Title:  fmt.Sprintf("Bézier curve: %d points", loop.Store().Len()),
	}, loop.Draw)
}

func cmdRun(args []string) {
	cfg := loadConfig()
	store := editor.NewStore(editor.Options{
		Capacity:   cfg.Capacity,
		MarkerSize: cfg.MarkerSize,
		Logger:     newLogger(cfg),
	})

	fmt.Printf("Store: capacity %d, marker size %g\n", store.Cap(), store.MarkerSize())
	fmt.Println("Commands: press x,y | move x,y | release | points | sample t | length | help | quit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if quit := runCommand(store, fields, cfg.StepCount); quit {
			return
		}
	}
}

// runCommand executes one REPL line and reports whether to quit.
func runCommand(store *editor.Store, fields []string, steps int) bool {
	switch fields[0] {
	case "quit", "exit", "q":
		return true
	case "press", "move":
		if len(fields) != 2 {
			fmt.Fprintf(os.Stderr, "Usage: %s x,y\n", fields[0])
			return false
		}
		p, err := parsePoint(fields[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		if fields[0] == "press" {
			store.Press(p)
		} else {
			store.Move(p)
		}
		printStatus(store)
	case "release":
		store.Release()
		printStatus(store)
	case "points":
		printPoints(store)
	case "sample":
		if len(fields) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: sample t")
			return false
		}
		t, err := parseParam(fields[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		if store.Len() == 0 {
			fmt.Println("No points yet")
			return false
		}
		fmt.Println(formatPoint(bezier.Sample(store.Points(), t)))
	case "length":
		fmt.Printf("%.3f\n", bezier.Length(store.Points(), steps))
	case "help", "?":
		fmt.Println("Commands:")
		fmt.Println("  press x,y  - Press at a position (select or add a point)")
		fmt.Println("  move x,y   - Move the pointer (drags the selected point)")
		fmt.Println("  release    - Release the pointer")
		fmt.Println("  points     - List control points")
		fmt.Println("  sample t   - Evaluate the curve at t")
		fmt.Println("  length     - Approximate curve length")
		fmt.Println("  quit       - Exit")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", fields[0])
	}
	return false
}

func printStatus(store *editor.Store) {
	status := fmt.Sprintf("State: %s, points: %d/%d", store.State(), store.Len(), store.Cap())
	if idx, ok := store.Selection(); ok {
		status += fmt.Sprintf(" [selected %d]", idx)
	}
	fmt.Println(status)
}

func printPoints(store *editor.Store) {
	points := store.Points()
	if len(points) == 0 {
		fmt.Println("No points yet")
		return
	}

	selected, _ := store.Selection()
	for i, p := range points {
		line := fmt.Sprintf("  %d: %s", i, formatPoint(p))
		if i == selected {
			line += " *"
		}
		fmt.Println(line)
	}
}

func cmdConfig(args []string) {
	if len(args) > 0 && args[0] == "--path" {
		fmt.Println(config.Path())
		return
	}

	data, err := yaml.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
