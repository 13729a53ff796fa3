package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/roleready/roleready/internal/answers"
	"github.com/roleready/roleready/internal/config"
	"github.com/roleready/roleready/internal/export"
	"github.com/roleready/roleready/internal/observability"
	"github.com/roleready/roleready/internal/ui/tui"
	"github.com/roleready/roleready/internal/wizard"
)

// stdoutPath selects standard output as the export destination.
const stdoutPath = "-"

// BuildOptions carries the build command flags. Empty values fall back to
// the loaded configuration.
type BuildOptions struct {
	ConfigPath  string
	AnswersPath string
	OutputPath  string
	Format      string
	MetricsFile string
	LogLevel    string
	LogFormat   string
	Force       bool
}

// Factory function variables for build - can be replaced in tests.
var (
	loadConfig       = config.Load
	newLogger        = observability.NewLogger
	isInteractive    = isInteractiveTTY
	runTUI           = tui.RunWizard
	loadAnswers      = answers.Load
	fileExists       = export.FileExists
	confirmOverwrite = export.ConfirmOverwrite
	writeSnapshot    = export.WriteFile
	writeMetrics     = observability.WriteMetrics

	logOutput io.Writer = os.Stderr
)

// Build runs the wizard, interactively or from an answers file, and exports
// the resulting snapshot.
func Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)

	interactive := opts.AnswersPath == ""

	// Log lines written while the TUI owns the screen are held back and
	// printed once it exits.
	logOpts := observability.LogOptions{Level: cfg.Log.Level, Format: cfg.Log.Format}
	var held *observability.HeldWriter
	if interactive {
		held = observability.NewHeldWriter(logOutput)
		logOpts.Output = held
		defer func() { _ = held.Release() }()
	}

	log, syncLog, err := newLogger(logOpts)
	if err != nil {
		return err
	}
	defer syncLog()

	format, err := resolveFormat(cfg.Output, opts.Format)
	if err != nil {
		return err
	}

	outputPath := cfg.Output.Path
	if proceed, err := checkOverwrite(outputPath, opts.Force); err != nil || !proceed {
		return err
	}

	ctrl := wizard.New(wizard.WithObservers(
		observability.NewLoggingObserver(log),
		observability.MetricsObserver{},
	))

	var snap wizard.Snapshot
	if !interactive {
		a, err := loadAnswers(opts.AnswersPath)
		if err != nil {
			return err
		}
		if err := answers.Replay(ctrl, a); err != nil {
			return fmt.Errorf("failed to replay answers: %w", err)
		}
		snap = ctrl.Finalize()
	} else {
		if !isInteractive() {
			return errors.New("no terminal detected: pass --answers to run without the TUI")
		}
		snap, err = runTUI(ctrl, tea.WithContext(ctx))
		syncLog()
		if rerr := held.Release(); rerr != nil {
			return fmt.Errorf("failed to flush log output: %w", rerr)
		}
		if err != nil {
			return fmt.Errorf("wizard canceled: %w", err)
		}
	}

	switch outputPath {
	case stdoutPath:
		if err := export.Write(os.Stdout, snap, format); err != nil {
			return err
		}
	case "":
		printGenerated(snap, "")
	default:
		if err := writeSnapshot(snap, outputPath, format); err != nil {
			return fmt.Errorf("failed to export snapshot: %w", err)
		}
		printGenerated(snap, outputPath)
	}

	if cfg.Metrics.File != "" {
		if err := writeMetrics(cfg.Metrics.File); err != nil {
			return err
		}
		log.V(1).Info("metrics written", "file", cfg.Metrics.File)
	}

	return nil
}

// applyOverrides lets explicitly set flags win over the configuration.
func applyOverrides(cfg *config.Config, opts BuildOptions) {
	if opts.OutputPath != "" {
		cfg.Output.Path = opts.OutputPath
	}
	if opts.MetricsFile != "" {
		cfg.Metrics.File = opts.MetricsFile
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
}

// resolveFormat picks the export format: the --format flag, then the output
// file extension, then the configured default.
func resolveFormat(out config.OutputConfig, flag string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	def, err := export.ParseFormat(out.Format)
	if err != nil {
		return "", err
	}
	if out.Path == "" || out.Path == stdoutPath {
		return def, nil
	}
	return export.FormatForPath(out.Path, def), nil
}

// checkOverwrite asks before an existing export file is replaced. Without a
// terminal the build fails instead of asking.
func checkOverwrite(path string, force bool) (bool, error) {
	if path == "" || path == stdoutPath || force || !fileExists(path) {
		return true, nil
	}
	if !isInteractive() {
		return false, fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	ok, err := confirmOverwrite(path)
	if err != nil {
		return false, fmt.Errorf("failed to confirm overwrite: %w", err)
	}
	if !ok {
		fmt.Println("Aborted: existing file left unchanged.")
	}
	return ok, nil
}

// printGenerated prints the confirmation and a summary of the snapshot.
func printGenerated(snap wizard.Snapshot, outputPath string) {
	info := snap.Profile.BasicInfo

	fmt.Println()
	fmt.Println("Resume generated!")
	fmt.Println()
	if outputPath != "" {
		fmt.Printf("  File: %s\n", outputPath)
		fmt.Println()
	}

	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Name:        %s\n", info.Name)
	fmt.Printf("  Email:       %s\n", info.Email)
	if info.LinkedIn != "" {
		fmt.Printf("  LinkedIn:    %s\n", info.LinkedIn)
	}
	fmt.Printf("  Education:   %d degree(s)\n", len(snap.Profile.Education))
	fmt.Printf("  Experience:  %d position(s)\n", len(snap.Profile.WorkExperience))
	if len(snap.Profile.Skills) > 0 {
		fmt.Printf("  Skills:      %s\n", strings.Join(snap.Profile.Skills, ", "))
	}
	if snap.TargetRole.Title != "" {
		fmt.Printf("  Target role: %s\n", snap.TargetRole.Title)
	}
	if t, ok := snap.TemplateInfo(); ok {
		fmt.Printf("  Template:    %s %s\n", t.Icon, t.Name)
	} else {
		fmt.Println("  Template:    none selected")
	}
	fmt.Println()
}

// isInteractiveTTY reports whether stdout is attached to a terminal.
func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
