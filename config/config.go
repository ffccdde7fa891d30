package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel int `yaml:"log_level"`

	Server      ServerConfig      `yaml:"server"`
	Storage     StorageConfig     `yaml:"storage"`
	Dataset     DatasetConfig     `yaml:"dataset"`
	Quiz        QuizConfig        `yaml:"quiz"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type StorageConfig struct {
	// Type of storage: "local" or "gcs"
	Type string `yaml:"type"`

	// Local storage options
	DataDir string `yaml:"data_dir"`

	// GCS storage options
	Bucket          string `yaml:"bucket"`
	ObjectPrefix    string `yaml:"object_prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

type DatasetConfig struct {
	// Sources are tried in order; the first that loads wins.
	Sources []SourceConfig `yaml:"sources"`
}

type SourceConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

type QuizConfig struct {
	Rounds int `yaml:"rounds"`
}

type LeaderboardConfig struct {
	Path string `yaml:"path"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config *Config

	// Unmarshal the YAML data into the struct
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	// Set defaults if not provided
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	if config.Storage.Type == "" {
		config.Storage.Type = "local"
	}

	if config.Storage.DataDir == "" {
		config.Storage.DataDir = "data"
	}

	if len(config.Dataset.Sources) == 0 {
		config.Dataset.Sources = []SourceConfig{
			{Path: "data_vers2.csv", Format: "csv"},
			{Path: "data.csv", Format: "csv"},
			{Path: "data.json", Format: "json"},
		}
	}

	if config.Quiz.Rounds == 0 {
		config.Quiz.Rounds = 5
	}

	if config.Leaderboard.Path == "" {
		config.Leaderboard.Path = "leaderboard.json"
	}

	return config, nil
}
