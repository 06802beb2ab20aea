package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iceinvein/create-react-csr-app/internal/config"
)

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, ".create-react-csr-app.yaml"))
	if err != nil {
		t.Fatalf("expected no error for missing config file, got %v", err)
	}
	if cfg.PackageManager != config.DefaultPackageManager {
		t.Errorf("PackageManager = %q, want %q", cfg.PackageManager, config.DefaultPackageManager)
	}
	if cfg.Template != config.DefaultTemplate {
		t.Errorf("Template = %q, want %q", cfg.Template, config.DefaultTemplate)
	}
	if cfg.SkipInstall != config.DefaultSkipInstall {
		t.Errorf("SkipInstall = %v, want %v", cfg.SkipInstall, config.DefaultSkipInstall)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantPM   string
		wantTmpl string
		wantSkip bool
	}{
		{
			name:     "only package_manager set",
			yaml:     "package_manager: pnpm\n",
			wantPM:   "pnpm",
			wantTmpl: config.DefaultTemplate,
			wantSkip: config.DefaultSkipInstall,
		},
		{
			name:     "template overridden",
			yaml:     "template: react-ts\n",
			wantPM:   config.DefaultPackageManager,
			wantTmpl: "react-ts",
			wantSkip: config.DefaultSkipInstall,
		},
		{
			name:     "skip_install explicitly true",
			yaml:     "skip_install: true\n",
			wantPM:   config.DefaultPackageManager,
			wantTmpl: config.DefaultTemplate,
			wantSkip: true,
		},
		{
			name:     "all fields set",
			yaml:     "package_manager: yarn\ntemplate: react\nskip_install: true\n",
			wantPM:   "yarn",
			wantTmpl: "react",
			wantSkip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, ".create-react-csr-app.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := config.Load(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.PackageManager != tt.wantPM {
				t.Errorf("PackageManager = %q, want %q", cfg.PackageManager, tt.wantPM)
			}
			if cfg.Template != tt.wantTmpl {
				t.Errorf("Template = %q, want %q", cfg.Template, tt.wantTmpl)
			}
			if cfg.SkipInstall != tt.wantSkip {
				t.Errorf("SkipInstall = %v, want %v", cfg.SkipInstall, tt.wantSkip)
			}
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".create-react-csr-app.yaml")
	if err := os.WriteFile(path, []byte("package_manager: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}
