package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Pipeline.Mode != "local" {
			t.Errorf("expected default mode local, got %s", config.Pipeline.Mode)
		}
		if config.Pipeline.OutputDir != "./data" {
			t.Errorf("expected default output dir ./data, got %s", config.Pipeline.OutputDir)
		}
		if config.Pipeline.KeyPrefix != "processed-data/spotify" {
			t.Errorf("expected default key prefix processed-data/spotify, got %s", config.Pipeline.KeyPrefix)
		}
		if config.Database.Port != 3306 {
			t.Errorf("expected default mysql port 3306, got %d", config.Database.Port)
		}
		if config.Credentials.Spotify.ClientID != "your_spotify_client_id" {
			t.Errorf("expected placeholder client_id, got %s", config.Credentials.Spotify.ClientID)
		}
		if config.Credentials.AWS.Region != "us-east-1" {
			t.Errorf("expected default region us-east-1, got %s", config.Credentials.AWS.Region)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Pipeline.OutputDir != defaultConfig.Pipeline.OutputDir {
			t.Errorf("created config output dir doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[credentials.spotify]
client_id = "abc"
client_secret = "def"

[pipeline]
playlist_id = "pl123"
mode = "s3"
bucket = "etl-bucket"
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if config.Credentials.Spotify.ClientID != "abc" {
			t.Errorf("expected client_id abc, got %s", config.Credentials.Spotify.ClientID)
		}
		if config.Pipeline.Mode != "s3" || config.Pipeline.Bucket != "etl-bucket" {
			t.Errorf("unexpected pipeline config: %+v", config.Pipeline)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("LoadConfig Invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "bad.toml")
		os.WriteFile(configPath, []byte("[[[["), 0644)
		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})

	t.Run("Spotify Credentials Map", func(t *testing.T) {
		creds := SpotifyConfig{ClientID: "abc", ClientSecret: "def"}.Map()
		if creds["client_id"] != "abc" || creds["client_secret"] != "def" {
			t.Errorf("unexpected credentials map: %v", creds)
		}
	})
}
