package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
	"github.com/procsim/procsim/sim/report"
	"github.com/procsim/procsim/sim/trace"
	"github.com/procsim/procsim/sim/workload"
)

const defaultInputPath = "processes.in"

var (
	// CLI flags for the run command
	outputPath string // Report destination; empty derives it from the input, "-" is stdout
	format     string // Report format (text, table, json, yaml)
	traceLevel string // Event trace level (events, none)
	logLevel   string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "procsim",
	Short: "Tick-stepped CPU scheduling simulator (FCFS, Round Robin, preemptive SJF)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes the simulation described by a process file
var runCmd = &cobra.Command{
	Use:   "run [process-file]",
	Short: "Run the scheduling simulation",
	Long: "Run the scheduling simulation described by a process file (default processes.in). " +
		"Files ending in .yaml or .yml are read as YAML specs. The report is written next to the " +
		"input with the extension replaced by .out unless --output is given.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := defaultInputPath
		if len(args) == 1 {
			input = args[0]
		}
		if err := runSimulation(input, outputPath, format, traceLevel, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runSimulation loads, validates and simulates input, then writes the report.
// Nothing is written when any step fails.
func runSimulation(input, output, formatName, level string, stdout io.Writer) error {
	f, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}
	if !trace.IsValidTraceLevel(level) {
		return fmt.Errorf("unknown trace level %q (valid: events, none)", level)
	}

	spec, err := workload.LoadSpec(input)
	if err != nil {
		return err
	}
	config, err := spec.SchedulerConfig()
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	s, err := sim.NewSimulator(config, spec.ProcessList(), trace.TraceConfig{Level: trace.TraceLevel(level)})
	if err != nil {
		return err
	}
	result := s.Run()

	if output == "" {
		output = report.OutputPath(input)
	}
	if output == "-" {
		return report.Write(stdout, f, result)
	}
	return writeReportFile(output, f, result)
}

func writeReportFile(path string, f report.Format, result *sim.Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report: %w", cerr)
		}
	}()
	if err := report.Write(file, f, result); err != nil {
		return err
	}
	logrus.Infof("Report written to %s", path)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report path (default: input path with .out extension, - for stdout)")
	runCmd.Flags().StringVar(&format, "format", string(report.FormatText), "Report format (text, table, json, yaml)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelEvents), "Event trace level (events, none)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
