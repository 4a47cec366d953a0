package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Setenv("PICKSIM_AUTHORITY", "test.authority.provider")
	os.Setenv("PICKSIM_SDK", "26")
	os.Setenv("PICKSIM_DEFAULT_TITLE", "Choose a source")
	os.Setenv("ENABLE_FILE_LOGGING", "true")

	defer func() {
		os.Unsetenv("PICKSIM_AUTHORITY")
		os.Unsetenv("PICKSIM_SDK")
		os.Unsetenv("PICKSIM_DEFAULT_TITLE")
		os.Unsetenv("ENABLE_FILE_LOGGING")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Authority != "test.authority.provider" {
		t.Errorf("Expected Authority to be 'test.authority.provider', got '%s'", cfg.Authority)
	}
	if cfg.SDK != 26 {
		t.Errorf("Expected SDK to be 26, got %d", cfg.SDK)
	}
	if cfg.DefaultTitle != "Choose a source" {
		t.Errorf("Expected DefaultTitle to be 'Choose a source', got '%s'", cfg.DefaultTitle)
	}
	if !cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to be true, got %v", cfg.EnableFileLogging)
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PICKSIM_AUTHORITY")
	os.Unsetenv("PICKSIM_SDK")
	os.Unsetenv("PICKSIM_DEFAULT_TITLE")
	os.Unsetenv("ENABLE_FILE_LOGGING")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Authority != DefaultAuthority {
		t.Errorf("Expected default authority, got '%s'", cfg.Authority)
	}
	if cfg.SDK != DefaultSDK {
		t.Errorf("Expected default SDK %d, got %d", DefaultSDK, cfg.SDK)
	}
	if cfg.DefaultTitle != DefaultTitle {
		t.Errorf("Expected default title, got '%s'", cfg.DefaultTitle)
	}
}

func TestLoadWithOptionsOverrides(t *testing.T) {
	os.Setenv("PICKSIM_SDK", "26")
	defer os.Unsetenv("PICKSIM_SDK")

	cfg, err := LoadWithOptions(LoadOptions{
		AuthorityOverride: "override.provider",
		SDKOverride:       33,
	})
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Authority != "override.provider" {
		t.Errorf("Expected override authority, got '%s'", cfg.Authority)
	}
	if cfg.SDK != 33 {
		t.Errorf("Expected override SDK 33, got %d", cfg.SDK)
	}
}

func TestResolveSDKIgnoresInvalidValues(t *testing.T) {
	os.Setenv("PICKSIM_SDK", "not-a-number")
	defer os.Unsetenv("PICKSIM_SDK")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.SDK != DefaultSDK {
		t.Errorf("Expected default SDK for invalid env value, got %d", cfg.SDK)
	}
}
