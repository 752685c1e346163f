// Package fixtures provides static, literal-valued test fixtures: a canned
// application configuration, a canned API response envelope, and sample
// data files written into test-owned directories. Every factory returns
// the same value on every invocation; none performs external I/O beyond
// writing into a directory the caller owns.
package fixtures

import (
	_ "embed"
	"errors"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	tkerrors "github.com/arthur-debert/testkit/pkg/errors"
)

//go:embed embedded/defaults.toml
var configTOML []byte

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// AppConfig is the typed view of the canned configuration.
type AppConfig struct {
	API struct {
		BaseURL    string `toml:"base_url"`
		Timeout    int    `toml:"timeout"`
		RetryCount int    `toml:"retry_count"`
	} `toml:"api"`
	Database struct {
		Host     string `toml:"host"`
		Port     int    `toml:"port"`
		Name     string `toml:"name"`
		User     string `toml:"user"`
		Password string `toml:"password"`
	} `toml:"database"`
	Logging struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
		File   string `toml:"file"`
	} `toml:"logging"`
	Features struct {
		EnableCache    bool `toml:"enable_cache"`
		CacheTTL       int  `toml:"cache_ttl"`
		MaxConnections int  `toml:"max_connections"`
	} `toml:"features"`
}

// Koanf loads the canned configuration into a koanf instance keyed with
// "." separators (api.base_url, features.enable_cache, ...).
func Koanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: configTOML}, toml.Parser()); err != nil {
		return nil, tkerrors.Wrap(err, tkerrors.ErrConfigLoad, "failed to load canned config")
	}
	return k, nil
}

// Config returns the canned configuration as a nested map with exactly the
// four top-level sections api, database, logging and features. A load
// failure is a fixture setup error and fails the test immediately.
func Config(t *testing.T) map[string]interface{} {
	t.Helper()

	k, err := Koanf()
	if err != nil {
		t.Fatalf("Failed to build config fixture: %v", err)
	}
	return k.Raw()
}

// TypedConfig returns the canned configuration decoded into AppConfig.
func TypedConfig(t *testing.T) AppConfig {
	t.Helper()

	var cfg AppConfig
	if err := gotoml.Unmarshal(configTOML, &cfg); err != nil {
		t.Fatalf("Failed to decode config fixture: %v", err)
	}
	return cfg
}

// ConfigTOML returns the raw embedded TOML literal.
func ConfigTOML() string {
	return string(configTOML)
}
