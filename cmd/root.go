package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iceinvein/create-react-csr-app/internal/config"
	"github.com/iceinvein/create-react-csr-app/internal/log"
	"github.com/iceinvein/create-react-csr-app/internal/prompt"
	"github.com/iceinvein/create-react-csr-app/internal/report"
	"github.com/iceinvein/create-react-csr-app/internal/resolve"
	"github.com/iceinvein/create-react-csr-app/internal/scaffold"
	"github.com/iceinvein/create-react-csr-app/internal/toolrun"
)

var version = "v0.1.0"

// rootFlags holds CLI flag values that override config file settings.
// Only flags explicitly changed by the user are applied (checked via cmd.Flags().Changed).
var rootFlags struct {
	packageManager string
	skipInstall    bool
	force          bool
}

var rootCmd = &cobra.Command{
	Use:   "create-react-csr-app [project-directory]",
	Short: "Scaffold a React client-side-rendered SPA",
	Long: `create-react-csr-app asks a short sequence of questions (styling,
linting, router, data fetching), then generates a starter Vite + React
project with the chosen packages installed and configured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.Flags().StringVar(&rootFlags.packageManager, "package-manager", "", "override package_manager from .create-react-csr-app.yaml")
	rootCmd.Flags().BoolVar(&rootFlags.skipInstall, "skip-install", false, "override skip_install from .create-react-csr-app.yaml")
	rootCmd.Flags().BoolVar(&rootFlags.force, "force", false, "scaffold into an existing non-empty directory")
}

// runCreate is the whole pipeline: load config, run the wizard, resolve the
// plan, materialize the project, report.
func runCreate(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(filepath.Join(cwd, ".create-react-csr-app.yaml"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Apply CLI flag overrides — only when the user explicitly set the flag.
	if cmd.Flags().Changed("package-manager") {
		cfg.PackageManager = rootFlags.packageManager
	}
	if cmd.Flags().Changed("skip-install") {
		cfg.SkipInstall = rootFlags.skipInstall
	}

	var positionalName string
	if len(args) == 1 {
		positionalName = args[0]
	}

	answers, err := prompt.Run(positionalName)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			return fmt.Errorf("aborted: %w", err)
		}
		return err
	}

	timings := &report.Timings{}
	absPath, err := scaffold.Run(scaffold.Options{
		ProjectName:    answers.ProjectName,
		Plan:           resolve.Resolve(answers),
		PackageManager: cfg.PackageManager,
		Template:       cfg.Template,
		SkipInstall:    cfg.SkipInstall,
		Force:          rootFlags.force,
		BaseDir:        cwd,
		Runner:         toolrun.ExecRunner{},
		Timings:        timings,
	})
	if err != nil {
		return err
	}

	fmt.Println(report.Success(answers.ProjectName, absPath, timings))
	return nil
}
