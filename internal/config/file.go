package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. The same
// layout is accepted as JSON and as YAML.
type StructuredFileConfig struct {
	App struct {
		Environment string `json:"environment" yaml:"environment"`
		Version     string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address" yaml:"http_address"`
		GRPCAddress       string   `json:"grpc_address" yaml:"grpc_address"`
		AllowedOrigins    []string `json:"allowed_origins" yaml:"allowed_origins"`
		ReadHeaderTimeout Duration `json:"read_header_timeout" yaml:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN         string `json:"dsn" yaml:"dsn"`
			AutoMigrate bool   `json:"auto_migrate" yaml:"auto_migrate"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Supabase struct {
			URL     string `json:"url" yaml:"url"`
			AnonKey string `json:"anon_key" yaml:"anon_key"`
		} `json:"supabase,omitempty" yaml:"supabase,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Health struct {
		ProbeTimeout Duration `json:"probe_timeout" yaml:"probe_timeout"`
		Table        string   `json:"table" yaml:"table"`
	} `json:"health,omitempty" yaml:"health,omitempty"`

	Metrics struct {
		Exporter string `json:"exporter" yaml:"exporter"`
	} `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	Port int `json:"port" yaml:"port"`
}

// parseFile reads the config file at path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: f.App.Environment,
			Version:     f.App.Version,
		},
		Server: Server{
			HTTPAddress:       f.Server.HTTPAddress,
			GRPCAddress:       f.Server.GRPCAddress,
			AllowedOrigins:    f.Server.AllowedOrigins,
			ReadHeaderTimeout: time.Duration(f.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(f.Server.ShutdownTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN:         f.Storage.DB.DSN,
				AutoMigrate: f.Storage.DB.AutoMigrate,
			},
			Supabase: Supabase{
				URL:     f.Storage.Supabase.URL,
				AnonKey: f.Storage.Supabase.AnonKey,
			},
		},
		Health: Health{
			ProbeTimeout: time.Duration(f.Health.ProbeTimeout),
			Table:        f.Health.Table,
		},
		Metrics: Metrics{
			Exporter: f.Metrics.Exporter,
		},
		Port: f.Port,
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var nanos int64
	if err := node.Decode(&nanos); err == nil {
		*d = Duration(time.Duration(nanos))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
