package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/syncfifo/datarecording"
	"github.com/sarchlab/syncfifo/driving"
	"github.com/sarchlab/syncfifo/fifo"
	"github.com/sarchlab/syncfifo/monitoring"
	"github.com/sarchlab/syncfifo/sim/timing"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a FIFO model with random traffic for a number of cycles.",
	Run:   runModel,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("depth", envInt("SYNCFIFO_DEPTH", 16),
		"capacity of the FIFO, in words")
	runCmd.Flags().Int("width", envInt("SYNCFIFO_WIDTH", 8),
		"bit width of each word")
	runCmd.Flags().Uint64("cycles", uint64(envInt("SYNCFIFO_CYCLES", 1000)),
		"number of clock cycles to run")
	runCmd.Flags().Int64("seed", 1, "random seed for the traffic")
	runCmd.Flags().Float64("push-chance", 0.5,
		"probability of a push request per cycle")
	runCmd.Flags().Float64("pop-chance", 0.5,
		"probability of a pop request per cycle")
	runCmd.Flags().Bool("violate", false,
		"let the traffic push while full and pop while empty")
	runCmd.Flags().String("trace", os.Getenv("SYNCFIFO_TRACE"),
		"record every cycle into a SQLite database at this path")
	runCmd.Flags().Int("monitor", 0,
		"serve the model state over HTTP on this port")
	runCmd.Flags().Bool("open-browser", false,
		"open the monitor URL in the default browser")
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %s\n", key, v, err)
		return fallback
	}

	return n
}

func runModel(cmd *cobra.Command, _ []string) {
	_ = godotenv.Load()

	depth, _ := cmd.Flags().GetInt("depth")
	width, _ := cmd.Flags().GetInt("width")
	cycles, _ := cmd.Flags().GetUint64("cycles")
	seed, _ := cmd.Flags().GetInt64("seed")
	pushChance, _ := cmd.Flags().GetFloat64("push-chance")
	popChance, _ := cmd.Flags().GetFloat64("pop-chance")
	violate, _ := cmd.Flags().GetBool("violate")
	tracePath, _ := cmd.Flags().GetString("trace")
	monitorPort, _ := cmd.Flags().GetInt("monitor")
	openBrowser, _ := cmd.Flags().GetBool("open-browser")

	clock := timing.NewClock("Clock")

	core := fifo.MakeBuilder().
		WithCapacity(depth).
		WithWordWidth(width).
		Build("Fifo")

	stimulus := driving.NewRandomTraffic(seed, pushChance, popChance, !violate)
	driver := driving.MakeBuilder().
		WithCore(core).
		WithStimulus(stimulus).
		Build("Driver")
	clock.RegisterDevice(driver)

	violations := fifo.NewViolationCounter()
	core.AcceptHook(violations)

	var recorder *datarecording.SQLiteRecorder
	if tracePath != "" {
		recorder = datarecording.New(tracePath)
		tracer := fifo.NewTickTracer("fifo_trace", clock, recorder)
		core.AcceptHook(tracer)
	}

	if monitorPort > 0 {
		monitor := monitoring.NewMonitor().WithPortNumber(monitorPort)
		if openBrowser {
			monitor.WithBrowserLaunch()
		}

		monitor.RegisterClock(clock)
		monitor.RegisterFifo(core)
		monitor.StartServer()
	}

	clock.Step(cycles)

	if recorder != nil {
		recorder.Flush()
	}

	stats := driver.Stats()
	fmt.Printf("Cycles run:    %d\n", clock.Now())
	fmt.Printf("Pushes:        %d\n", stats.NumPushes)
	fmt.Printf("Pops:          %d\n", stats.NumPops)
	fmt.Printf("Push on full:  %d\n", violations.PushOnFullCount())
	fmt.Printf("Pop on empty:  %d\n", violations.PopOnEmptyCount())
	fmt.Printf("Occupancy:     %d\n", core.Occupancy())
}
