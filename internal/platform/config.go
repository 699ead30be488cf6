package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/aretw0/hmm/pkg/adapters/fs"
)

const (
	// AppDirName is the directory created under the user config dir.
	AppDirName = "hmm-cli"
	// EnvFileName holds the persisted settings inside the app directory.
	EnvFileName = ".env"
	// EnvOutputDir selects the directory of the thoughts file.
	EnvOutputDir = "HMM_OUTPUT_DIR"
	// EnvConfigDir overrides the app directory itself.
	EnvConfigDir = "HMM_CONFIG_DIR"
	// DefaultOutputDir is written to a fresh env file.
	DefaultOutputDir = "."
)

// Where the output directory setting came from.
const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Config is the resolved on-disk layout for one invocation.
type Config struct {
	ConfigDir string `json:"config_dir" yaml:"config_dir"`
	EnvFile   string `json:"env_file" yaml:"env_file"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	DataFile  string `json:"data_file" yaml:"data_file"`
	Source    string `json:"source" yaml:"source"`
}

// ConfigDir returns the app directory: $HMM_CONFIG_DIR, or hmm-cli under the
// user config directory.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// ResolveConfig locates the thoughts file. The app directory and its env file
// are created on first use. The output directory is taken from, in order:
// dirOverride, $HMM_OUTPUT_DIR, the env file, then the current directory.
func ResolveConfig(dirOverride string) (Config, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return Config{}, err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	envFile := filepath.Join(configDir, EnvFileName)
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		defaults := fmt.Sprintf("%s=%s\n", EnvOutputDir, DefaultOutputDir)
		if err := os.WriteFile(envFile, []byte(defaults), 0644); err != nil {
			return Config{}, fmt.Errorf("failed to write default settings: %w", err)
		}
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	cfg := Config{
		ConfigDir: configDir,
		EnvFile:   envFile,
		OutputDir: DefaultOutputDir,
		Source:    SourceDefault,
	}

	if dirOverride != "" {
		cfg.OutputDir, cfg.Source = dirOverride, SourceFlag
	} else if dir := os.Getenv(EnvOutputDir); dir != "" {
		cfg.OutputDir, cfg.Source = dir, SourceEnv
	} else if dir := values[EnvOutputDir]; dir != "" {
		cfg.OutputDir, cfg.Source = dir, SourceFile
	}

	cfg.DataFile = filepath.Join(cfg.OutputDir, fs.DefaultFileName)
	return cfg, nil
}
