package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultAuthority = "image.source.pick.fileprovider"
	DefaultTitle     = "Pick an image"
	DefaultSDK       = 30

	AuthorityEnvVar = "PICKSIM_AUTHORITY"
	SDKEnvVar       = "PICKSIM_SDK"
	TitleEnvVar     = "PICKSIM_DEFAULT_TITLE"
)

type LoadOptions struct {
	AuthorityOverride string
	SDKOverride       int
}

type Config struct {
	Authority         string
	SDK               int
	DefaultTitle      string
	EnableFileLogging bool
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use PICKSIM_ENV env var as a path to a config file
	envPath := resolveEnvPath()
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		Authority:         resolveAuthority(opts),
		SDK:               resolveSDK(opts),
		DefaultTitle:      getEnvWithDefault(TitleEnvVar, DefaultTitle),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	execDir := filepath.Dir(execPath)
	exeEnv := filepath.Join(execDir, ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv("PICKSIM_ENV"); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func resolveAuthority(opts LoadOptions) string {
	authority := getEnvWithDefault(AuthorityEnvVar, DefaultAuthority)
	if override := strings.TrimSpace(opts.AuthorityOverride); override != "" {
		authority = override
	}
	return authority
}

func resolveSDK(opts LoadOptions) int {
	sdk := DefaultSDK
	if v := os.Getenv(SDKEnvVar); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			sdk = n
		}
	}
	if opts.SDKOverride > 0 {
		sdk = opts.SDKOverride
	}
	return sdk
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
