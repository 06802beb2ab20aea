// Package resolve maps a wizard answer record to the concrete plan of
// package installs, file writes, tool invocations, and manifest script
// changes. Resolve is a pure function: no I/O, and every call builds a fresh
// Plan so plans can be compared and tested in isolation.
package resolve

import "github.com/iceinvein/create-react-csr-app/internal/prompt"

// TailwindVersion is the pinned tailwindcss release installed and used to run
// the initializer. A fixed literal, never resolved dynamically.
const TailwindVersion = "3.4.3"

// Dependency groups, in install order.
var (
	muiDeps = []string{
		"@mui/material",
		"@emotion/react",
		"@emotion/styled",
		"@mui/icons-material",
	}

	tailwindDevDeps = []string{
		"tailwindcss@" + TailwindVersion,
		"postcss",
		"autoprefixer",
	}

	eslintPrettierDevDeps = []string{
		"eslint",
		"prettier",
		"eslint-config-prettier",
		"eslint-plugin-prettier",
		"eslint-plugin-react",
		"eslint-plugin-react-hooks",
	}

	biomeDevDeps = []string{"@biomejs/biome"}
)

// Manifest script commands per linting setup.
var (
	eslintScripts = map[string]string{
		"lint":     "eslint . --ext .js,.jsx,.ts,.tsx",
		"lint:fix": "eslint . --ext .js,.jsx,.ts,.tsx --fix",
		"format":   "prettier --write .",
	}

	biomeScripts = map[string]string{
		"lint":     "biome check .",
		"lint:fix": "biome check --write .",
	}
)

// lintScriptKeys are the manifest script entries owned by this tool. When
// linting is disabled they are stripped from the manifest if present.
var lintScriptKeys = []string{"lint", "lint:fix", "format"}

// Plan is the full set of directives derived from one answer record.
// Deps and DevDeps preserve insertion order; the package manager receives
// each list as a single invocation in exactly this order.
type Plan struct {
	Deps    []string
	DevDeps []string

	// File and subprocess directives.
	InitTailwind       bool // run the tailwind initializer, then write tailwind.config.js and src/index.css
	WritePrettierRC    bool // write .prettierrc
	InitBiome          bool // run the biome initializer
	RemoveESLintConfig bool // delete the scaffolder-generated eslint.config.js first

	// Manifest script changes.
	ScriptsSet    map[string]string
	ScriptsRemove []string
}

// Resolve derives the Plan for the given answers.
func Resolve(answers prompt.Answers) Plan {
	plan := Plan{ScriptsSet: map[string]string{}}

	switch answers.Styling {
	case prompt.StylingMUI:
		plan.Deps = append(plan.Deps, muiDeps...)
	case prompt.StylingTailwind:
		plan.DevDeps = append(plan.DevDeps, tailwindDevDeps...)
		plan.InitTailwind = true
	}

	switch answers.Linting {
	case prompt.LintingESLintPrettier:
		plan.DevDeps = append(plan.DevDeps, eslintPrettierDevDeps...)
		plan.WritePrettierRC = true
		for name, cmd := range eslintScripts {
			plan.ScriptsSet[name] = cmd
		}
	case prompt.LintingBiome:
		plan.DevDeps = append(plan.DevDeps, biomeDevDeps...)
		plan.RemoveESLintConfig = true
		plan.InitBiome = true
		for name, cmd := range biomeScripts {
			plan.ScriptsSet[name] = cmd
		}
	case prompt.LintingNone:
		plan.ScriptsRemove = append(plan.ScriptsRemove, lintScriptKeys...)
	}

	// Router and ReactQuery are collected by the wizard but intentionally
	// drive nothing yet; extend here when their dependency groups are
	// decided.

	return plan
}
