package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries every knob the pipeline needs. It is resolved once in
// the CLI layer and passed down; no component reads the environment on
// its own.
type Config struct {
	RepoURL   string
	Branch    string
	OutputDir string
	CloneDir  string
	LogFile   string
	LogLevel  string
}

const (
	defaultRepoURL   = "https://github.com/gethinode/docs.git"
	defaultBranch    = "main"
	defaultOutputDir = "output"
	defaultLogFile   = "processing.log"
	defaultLogLevel  = "info"
)

// loadConfig reads a .env file when present, then the process
// environment, falling back to defaults. The clone-dir default is a
// fresh temp path so concurrent runs never collide.
func loadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		RepoURL:   envOr("REPO_URL", defaultRepoURL),
		Branch:    envOr("REPO_BRANCH", defaultBranch),
		OutputDir: envOr("OUTPUT_DIR", defaultOutputDir),
		CloneDir:  os.Getenv("CLONE_DIR"),
		LogFile:   envOr("LOG_FILE", defaultLogFile),
		LogLevel:  envOr("LOG_LEVEL", defaultLogLevel),
	}
	if cfg.CloneDir == "" {
		cfg.CloneDir = scratchCloneDir()
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func scratchCloneDir() string {
	dir, err := os.MkdirTemp("", "hinode-clone-")
	if err != nil {
		return filepath.Join(os.TempDir(), "hinode-clone")
	}
	return dir
}
