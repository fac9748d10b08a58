package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-craft/internal/display"
	"github.com/napolitain/solver-craft/internal/loader"
	"github.com/napolitain/solver-craft/internal/logging"
	"github.com/napolitain/solver-craft/internal/models"
	"github.com/napolitain/solver-craft/internal/repl"
	"github.com/napolitain/solver-craft/internal/solver/craft"
)

var (
	configFile string
	quiet      bool
	verbose    bool
	lang       string
	logLevel   string
	logFormat  string
	workers    int

	maxDurability   int
	maxCP           int
	sustain         bool
	processAccuracy int
	requiredAcc     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crafter",
		Short: "Crafting Quality Rotation Solver",
		Long: `Builds a table of the best quality achievable from every crafting
state and answers rotation queries from it.`,
		Run: runREPL,
	}

	traceCmd := &cobra.Command{
		Use:   "trace CP DURABILITY",
		Short: "Print the best rotation from a start state and exit",
		Args:  cobra.ExactArgs(2),
		Run:   runTrace,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "Path to YAML setting file")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Show modifiers in rotations")
	pf.StringVar(&lang, "lang", "en", "Action label language (en, ja)")
	pf.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	pf.IntVarP(&workers, "workers", "w", 0, "Goroutines per CP layer (0 = GOMAXPROCS)")

	pf.IntVar(&maxDurability, "max-durability", 0, "Override max durability")
	pf.IntVar(&maxCP, "max-cp", 0, "Override max CP")
	pf.BoolVar(&sustain, "sustain", false, "Include sustained modifier durations in the table")
	pf.IntVar(&processAccuracy, "process-accuracy", 0, "Override process accuracy")
	pf.IntVar(&requiredAcc, "required-process-accuracy", 0, "Override required process accuracy")

	rootCmd.AddCommand(traceCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveSetting loads the config file and applies flag overrides
func resolveSetting(cmd *cobra.Command) (models.Setting, error) {
	setting := models.DefaultSetting()
	if configFile != "" {
		s, err := loader.LoadSetting(configFile)
		if err != nil {
			return setting, err
		}
		setting = s
	}

	flags := cmd.Flags()
	if flags.Changed("max-durability") {
		setting.MaxDurability = maxDurability
	}
	if flags.Changed("max-cp") {
		setting.MaxCP = maxCP
	}
	if flags.Changed("sustain") {
		setting.Sustain = sustain
	}
	if flags.Changed("process-accuracy") {
		setting.ProcessAccuracy = processAccuracy
	}
	if flags.Changed("required-process-accuracy") {
		setting.RequiredProcessAccuracy = requiredAcc
	}

	return setting, models.ValidateSetting(setting)
}

func setup(cmd *cobra.Command) (models.Setting, display.Lang) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		color.Red("Invalid log level: %v", err)
		os.Exit(1)
	}
	logging.Init(level, logFormat)

	l, err := display.ParseLang(lang)
	if err != nil {
		color.Red("Invalid language: %v", err)
		os.Exit(1)
	}

	setting, err := resolveSetting(cmd)
	if err != nil {
		color.Red("Error loading setting: %v", err)
		os.Exit(1)
	}
	return setting, l
}

// buildTable solves the setting, drawing a progress bar when stderr is a terminal
func buildTable(setting models.Setting) (*craft.Table[uint32], *craft.Table[craft.Action]) {
	opts := []craft.Option{craft.WithWorkers(workers)}

	if quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
		return craft.BuildTable(setting, opts...)
	}

	var values *craft.Table[uint32]
	var policy *craft.Table[craft.Action]
	err := display.RunWithProgress(os.Stderr, "Building table", setting.MaxCP+1, func(report func(done, total int)) {
		values, policy = craft.BuildTable(setting, append(opts, craft.WithProgress(report))...)
	})
	if err != nil {
		// An interrupted build leaves the tables incomplete
		color.Red("Table build aborted: %v", err)
		os.Exit(1)
	}
	return values, policy
}

func printBanner(setting models.Setting) {
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  Crafting Quality         │")
	titleColor.Println("│  Rotation Solver          │")
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()

	infoColor.Printf("📦 Max durability %d, max CP %d, sustain %v\n", setting.MaxDurability, setting.MaxCP, setting.Sustain)
	infoColor.Printf("🎯 Process accuracy %d (required %d)\n\n", setting.ProcessAccuracy, setting.RequiredProcessAccuracy)
}

func runREPL(cmd *cobra.Command, args []string) {
	setting, l := setup(cmd)

	if !quiet {
		printBanner(setting)
	}

	_, policy := buildTable(setting)

	if !quiet {
		color.New(color.FgGreen, color.Bold).Println("✓ Table ready")
		repl.PrintHelp(os.Stdout)
	}

	r := repl.New(setting, policy, repl.Session{Verbose: verbose, Lang: l}, os.Stdin, os.Stdout)
	if err := r.Run(); err != nil {
		color.Red("Error reading input: %v", err)
		os.Exit(1)
	}
}

func runTrace(cmd *cobra.Command, args []string) {
	setting, l := setup(cmd)

	start, err := repl.ParseQuery(args[0], args[1])
	if err != nil {
		color.Red("Invalid query: %v", err)
		os.Exit(1)
	}

	if !quiet {
		printBanner(setting)
	}

	_, policy := buildTable(setting)

	trace, err := craft.Replay(setting, policy, start)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	if err := display.RenderTrace(os.Stdout, trace, display.TraceOptions{Verbose: verbose, Lang: l}); err != nil {
		color.Red("Error rendering rotation: %v", err)
		os.Exit(1)
	}
}
