package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/concurrency-sim/concurrency-sim/sim"
	"github.com/concurrency-sim/concurrency-sim/sim/scenario"
)

var (
	// CLI flags for engine configuration
	coreCount      int    // Number of simulated CPU cores
	algorithm      string // Scheduling algorithm (fcfs, priority, round-robin)
	quantum        int    // Round-robin time slice in ticks
	threadingModel string // Kernel thread mapping (one-to-one, many-to-one, many-to-many)
	maxTicks       int    // Upper bound on simulated ticks
	logLevel       string // Log verbosity level
	logTail        int    // Number of trailing event-log records to print

	// CLI flags for scenario selection
	scenarioName string // Built-in scenario preset name
	scenarioFile string // YAML scenario file path (overrides the preset)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "concurrency-sim",
	Short: "Discrete-time simulator for OS thread scheduling and synchronization",
}

// runCmd executes a scenario using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec, err := loadScenario()
		if err != nil {
			logrus.Fatalf("Could not load scenario: %v", err)
		}

		// Scenario defaults, overridden by explicitly set flags
		cfg := spec.Config()
		if cmd.Flags().Changed("cores") {
			cfg.CoreCount = coreCount
		}
		if cmd.Flags().Changed("algorithm") {
			cfg.Algorithm = algorithm
		}
		if cmd.Flags().Changed("quantum") {
			cfg.Quantum = quantum
		}
		if cmd.Flags().Changed("threading-model") {
			cfg.ThreadingModel = threadingModel
		}

		logrus.Infof("Starting scenario %q with %d cores, algorithm=%s, quantum=%d, model=%s",
			spec.Name, cfg.CoreCount, cfg.Algorithm, cfg.Quantum, cfg.ThreadingModel)

		engine, err := sim.NewEngine(cfg)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := spec.Apply(engine); err != nil {
			logrus.Fatalf("Could not build scenario: %v", err)
		}

		for i := 0; i < maxTicks; i++ {
			engine.Tick()
			if engine.Done() {
				break
			}
			if engine.Stalled() {
				logrus.Warnf("Deadlock: all remaining threads blocked at tick %d", engine.Clock)
				break
			}
		}

		engine.Statistics().Print()
		printLogTail(engine)

		logrus.Info("Simulation complete.")
	},
}

// loadScenario builds the scenario from a YAML file when given, else from
// the named preset.
func loadScenario() (*scenario.Spec, error) {
	if scenarioFile != "" {
		return scenario.Load(scenarioFile)
	}
	return scenario.Build(scenarioName)
}

// printLogTail displays the last logTail event records on stdout.
func printLogTail(engine *sim.Engine) {
	if logTail <= 0 {
		return
	}
	fmt.Println("=== Event Log ===")
	for _, rec := range engine.EventLogTail(logTail) {
		fmt.Printf("[tick %06d] %-7s %s\n", rec.Tick, rec.Level, rec.Message)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&coreCount, "cores", 2, "Number of simulated CPU cores")
	runCmd.Flags().StringVar(&algorithm, "algorithm", sim.AlgorithmRoundRobin, "Scheduling algorithm (fcfs, priority, round-robin)")
	runCmd.Flags().IntVar(&quantum, "quantum", 3, "Round-robin time slice in ticks")
	runCmd.Flags().StringVar(&threadingModel, "threading-model", string(sim.ModelOneToOne), "Kernel thread mapping (one-to-one, many-to-one, many-to-many)")
	runCmd.Flags().IntVar(&maxTicks, "max-ticks", 10000, "Upper bound on simulated ticks")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&logTail, "log-tail", 0, "Print the last N event-log records after the run")

	runCmd.Flags().StringVar(&scenarioName, "scenario", "producer-consumer", "Built-in scenario preset")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML scenario file (overrides --scenario)")

	rootCmd.AddCommand(runCmd)
}
