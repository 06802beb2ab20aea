// Package templates holds the static configuration files stamped into a
// generated project, compiled into the binary at build time via //go:embed.
// Contents are fixed; nothing here is templated per answer.
package templates

import _ "embed"

// TailwindConfig is the content written to tailwind.config.js when the user
// picks Tailwind CSS.
//
//go:embed files/tailwind.config.js
var TailwindConfig string

// PrettierRC is the content written to .prettierrc when the user picks
// ESLint + Prettier.
//
//go:embed files/prettierrc.json
var PrettierRC string

// TailwindIndexCSS replaces src/index.css with the three framework import
// directives when the user picks Tailwind CSS.
//
//go:embed files/index.css
var TailwindIndexCSS string
