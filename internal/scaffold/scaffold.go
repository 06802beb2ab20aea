// Package scaffold materializes a resolved plan on disk: it creates the
// project directory, drives the external scaffolder and package manager,
// writes static config files, and patches the generated manifest.
//
// Steps run in a fixed total order and the run aborts on the first failure.
// There is no rollback: files already created by earlier steps are left
// as-is, matching the behavior of the tools being orchestrated.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iceinvein/create-react-csr-app/internal/log"
	"github.com/iceinvein/create-react-csr-app/internal/manifest"
	"github.com/iceinvein/create-react-csr-app/internal/report"
	"github.com/iceinvein/create-react-csr-app/internal/resolve"
	"github.com/iceinvein/create-react-csr-app/internal/templates"
	"github.com/iceinvein/create-react-csr-app/internal/toolrun"
)

// ErrDirNotEmpty is returned when the target directory already exists with
// content and --force was not given.
var ErrDirNotEmpty = errors.New("target directory already exists and is not empty")

// ErrConfigFileMissing is returned when a file this tool expects the external
// scaffolder to have created is absent.
var ErrConfigFileMissing = errors.New("expected config file is missing")

// Options carries everything Run needs. Runner and Timings are injectable so
// tests can observe invocations without executing real tools.
type Options struct {
	ProjectName string
	Plan        resolve.Plan

	PackageManager string // e.g. "npm"
	Template       string // Vite template identifier, e.g. "react-swc-ts"
	SkipInstall    bool
	Force          bool // scaffold into an existing non-empty directory

	BaseDir string // parent of the project directory; empty means cwd
	Runner  toolrun.Runner
	Timings *report.Timings
}

// Run executes the materialization sequence and returns the absolute path of
// the generated project.
func Run(opts Options) (string, error) {
	root := filepath.Join(opts.BaseDir, opts.ProjectName)

	if err := ensureTargetDir(root, opts.Force); err != nil {
		return "", err
	}

	steps := []struct {
		name string
		skip bool
		fn   func() error
	}{
		{
			name: "scaffold project",
			fn: func() error {
				log.Step(fmt.Sprintf("scaffolding %s with Vite (%s)", opts.ProjectName, opts.Template))
				return opts.Runner.Run(toolrun.Invocation{
					Name: opts.PackageManager,
					Args: []string{"create", "vite@latest", opts.ProjectName, "--yes", "--", "--template", opts.Template},
					Dir:  opts.BaseDir,
				})
			},
		},
		{
			name: "install dev dependencies",
			skip: opts.SkipInstall || len(opts.Plan.DevDeps) == 0,
			fn: func() error {
				log.Step("installing dev dependencies")
				return opts.Runner.Run(toolrun.Invocation{
					Name: opts.PackageManager,
					Args: append([]string{"install", "-D"}, opts.Plan.DevDeps...),
					Dir:  root,
				})
			},
		},
		{
			name: "install dependencies",
			skip: opts.SkipInstall || len(opts.Plan.Deps) == 0,
			fn: func() error {
				log.Step("installing dependencies")
				return opts.Runner.Run(toolrun.Invocation{
					Name: opts.PackageManager,
					Args: append([]string{"install"}, opts.Plan.Deps...),
					Dir:  root,
				})
			},
		},
		{
			name: "configure tailwind",
			skip: !opts.Plan.InitTailwind,
			fn:   func() error { return configureTailwind(opts.Runner, root) },
		},
		{
			name: "write prettier config",
			skip: !opts.Plan.WritePrettierRC,
			fn: func() error {
				log.Step("writing .prettierrc")
				return writeFile(filepath.Join(root, ".prettierrc"), templates.PrettierRC)
			},
		},
		{
			name: "configure biome",
			skip: !opts.Plan.InitBiome,
			fn:   func() error { return configureBiome(opts.Runner, root, opts.Plan.RemoveESLintConfig) },
		},
		{
			name: "update manifest scripts",
			fn: func() error {
				log.Step("updating package.json scripts")
				return manifest.PatchScripts(filepath.Join(root, "package.json"), opts.Plan.ScriptsSet, opts.Plan.ScriptsRemove)
			},
		},
	}

	for _, step := range steps {
		if step.skip {
			continue
		}
		start := time.Now()
		if err := step.fn(); err != nil {
			return "", fmt.Errorf("%s: %w", step.name, err)
		}
		if opts.Timings != nil {
			opts.Timings.Record(step.name, time.Since(start))
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return root, nil //nolint:nilerr // the project exists; a cwd lookup failure should not fail the run
	}
	return abs, nil
}

// ensureTargetDir creates root if needed. An existing directory with content
// is refused unless force is set; silently scaffolding alongside existing
// files risks clobbering them.
func ensureTargetDir(root string, force bool) error {
	entries, err := os.ReadDir(root)
	switch {
	case err == nil:
		if len(entries) > 0 && !force {
			return fmt.Errorf("%w: %s (use --force to scaffold anyway)", ErrDirNotEmpty, root)
		}
	case errors.Is(err, os.ErrNotExist):
		// Created below.
	default:
		return fmt.Errorf("inspect target directory: %w", err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	return nil
}

// configureTailwind runs the pinned tailwind initializer, then overwrites the
// generated tailwind.config.js and src/index.css with this tool's fixed
// content.
func configureTailwind(runner toolrun.Runner, root string) error {
	log.Step("initializing tailwind")
	err := runner.Run(toolrun.Invocation{
		Name: "npx",
		Args: []string{"--yes", "tailwindcss@" + resolve.TailwindVersion, "init", "-p"},
		Dir:  root,
	})
	if err != nil {
		return err
	}

	if err := writeFile(filepath.Join(root, "tailwind.config.js"), templates.TailwindConfig); err != nil {
		return err
	}
	return writeFile(filepath.Join(root, "src", "index.css"), templates.TailwindIndexCSS)
}

// configureBiome removes the scaffolder-generated eslint config, then runs
// the biome initializer. A missing eslint.config.js aborts the run: it means
// the scaffolder produced a layout this tool does not understand.
func configureBiome(runner toolrun.Runner, root string, removeESLintConfig bool) error {
	if removeESLintConfig {
		eslintConfig := filepath.Join(root, "eslint.config.js")
		if err := os.Remove(eslintConfig); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s (the scaffolder did not generate it)", ErrConfigFileMissing, eslintConfig)
			}
			return fmt.Errorf("remove %s: %w", eslintConfig, err)
		}
	}

	log.Step("initializing biome")
	return runner.Run(toolrun.Invocation{
		Name: "npx",
		Args: []string{"--yes", "@biomejs/biome", "init"},
		Dir:  root,
	})
}

// writeFile writes content, creating parent directories as needed.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
