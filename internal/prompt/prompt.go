// Package prompt collects the scaffolding answers through a sequential
// interactive wizard. Each question blocks until answered; there is no
// back-navigation. The resulting Answers record is immutable by convention:
// everything downstream reads it, nothing mutates it.
package prompt

import (
	"errors"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the interactive session ends before all
// questions are answered (ctrl-c or closed input stream).
var ErrAborted = errors.New("interactive session aborted")

// Styling identifies the styling library choice.
type Styling string

const (
	StylingNone     Styling = "none"
	StylingMUI      Styling = "mui"
	StylingTailwind Styling = "tailwind"
)

// Linting identifies the linting setup choice.
type Linting string

const (
	LintingNone           Linting = "none"
	LintingESLintPrettier Linting = "eslint-prettier"
	LintingBiome          Linting = "biome"
)

// Router identifies the routing library choice. Collected but not yet mapped
// to any dependency or file action.
type Router string

const (
	RouterNone     Router = "none"
	RouterReact    Router = "react-router"
	RouterTanStack Router = "tanstack-router"
)

// ReactQuery records whether the user wants TanStack Query. Collected but not
// yet mapped to any dependency or file action.
type ReactQuery string

const (
	ReactQueryNo  ReactQuery = "no"
	ReactQueryYes ReactQuery = "yes"
)

// Answers is the fully populated record produced by the wizard. Every field
// holds exactly one variant once Run returns without error.
type Answers struct {
	ProjectName string
	Styling     Styling
	Linting     Linting
	Router      Router
	ReactQuery  ReactQuery
}

// namePattern is the character set accepted for interactively entered project
// names. Positional names bypass this check.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9\s_-]+$`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ValidateName rejects empty names and names containing anything other than
// letters, digits, whitespace, hyphens, and underscores.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("project name is required")
	}
	if !namePattern.MatchString(name) {
		return errors.New("name may only contain letters, numbers, spaces, hyphens, and underscores")
	}
	return nil
}

// NormalizeName trims the name and collapses every run of whitespace into a
// single hyphen, making it safe as a directory name.
func NormalizeName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(name), "-")
}

// Run presents the wizard and returns the populated Answers.
//
// If positionalName is non-empty the name question is skipped and the value
// is used verbatim — no validation or normalization is applied on that path.
// An aborted session returns ErrAborted.
func Run(positionalName string) (Answers, error) {
	answers := Answers{
		ProjectName: positionalName,
		Styling:     StylingNone,
		Linting:     LintingNone,
		Router:      RouterNone,
		ReactQuery:  ReactQueryNo,
	}

	var rawName string
	var groups []*huh.Group

	if positionalName == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Validate(ValidateName).
				Value(&rawName),
		))
	}

	groups = append(groups,
		huh.NewGroup(
			huh.NewSelect[Styling]().
				Title("Which styling library would you like to use?").
				Options(
					huh.NewOption("None", StylingNone),
					huh.NewOption("Material UI", StylingMUI),
					huh.NewOption("Tailwind CSS", StylingTailwind),
				).
				Value(&answers.Styling),
		),
		huh.NewGroup(
			huh.NewSelect[Linting]().
				Title("Which linting setup would you like to use?").
				Options(
					huh.NewOption("None", LintingNone),
					huh.NewOption("ESLint + Prettier", LintingESLintPrettier),
					huh.NewOption("Biome", LintingBiome),
				).
				Value(&answers.Linting),
		),
		huh.NewGroup(
			huh.NewSelect[Router]().
				Title("Which router would you like to use?").
				Options(
					huh.NewOption("None", RouterNone),
					huh.NewOption("React Router", RouterReact),
					huh.NewOption("TanStack Router", RouterTanStack),
				).
				Value(&answers.Router),
		),
		huh.NewGroup(
			huh.NewSelect[ReactQuery]().
				Title("Would you like to use TanStack Query?").
				Options(
					huh.NewOption("No", ReactQueryNo),
					huh.NewOption("Yes", ReactQueryYes),
				).
				Value(&answers.ReactQuery),
		),
	)

	if err := huh.NewForm(groups...).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Answers{}, ErrAborted
		}
		return Answers{}, err
	}

	if positionalName == "" {
		answers.ProjectName = NormalizeName(rawName)
	}

	return answers, nil
}
