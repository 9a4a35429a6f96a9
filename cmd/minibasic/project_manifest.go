package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const noBasicTomlMessage = "no basic.toml found\nplease specify the file explicitly, e.g.:\n  minibasic tokenize path/to/program.bas"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package  packageConfig  `toml:"package"`
	Tokenize tokenizeConfig `toml:"tokenize"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type tokenizeConfig struct {
	Main   string `toml:"main"`
	Format string `toml:"format"`
}

func findBasicToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "basic.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findBasicToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return projectConfig{}, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return cfg, nil
}

// mainFile resolves the default tokenize target relative to the manifest's
// directory.
func (m *projectManifest) mainFile() (string, error) {
	main := m.Config.Tokenize.Main
	if main == "" {
		return "", fmt.Errorf("basic.toml at %q has no [tokenize] main entry", m.Path)
	}
	if filepath.IsAbs(main) {
		return main, nil
	}
	return filepath.Join(m.Root, main), nil
}
