// Package config loads dbrow's configuration from dbrow.yaml and the
// environment.
package config

import "github.com/leapstack-labs/dbrow/pkg/adapter"

// Endpoint describes one database connection in the config file.
type Endpoint struct {
	Type     string            `koanf:"type"`
	Path     string            `koanf:"path"`
	Host     string            `koanf:"host"`
	Port     int               `koanf:"port"`
	Database string            `koanf:"database"`
	Username string            `koanf:"username"`
	Password string            `koanf:"password"`
	Schema   string            `koanf:"schema"`
	Options  map[string]string `koanf:"options"`
}

// AdapterConfig converts the endpoint into the adapter layer's config.
func (e Endpoint) AdapterConfig() adapter.Config {
	return adapter.Config{
		Type:     e.Type,
		Path:     e.Path,
		Host:     e.Host,
		Port:     e.Port,
		Database: e.Database,
		Username: e.Username,
		Password: e.Password,
		Schema:   e.Schema,
		Options:  e.Options,
	}
}

// CopyConfig holds the copy operation's settings.
type CopyConfig struct {
	Table      string   `koanf:"table"`
	Query      string   `koanf:"query"`
	Partitions []string `koanf:"partitions"`
}

// Config is the root configuration.
type Config struct {
	Source  Endpoint   `koanf:"source"`
	Target  Endpoint   `koanf:"target"`
	Copy    CopyConfig `koanf:"copy"`
	Verbose bool       `koanf:"verbose"`
}
