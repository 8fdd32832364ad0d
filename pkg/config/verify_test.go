package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		config  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid default config",
			config: func(c *Config) {},
		},
		{
			name: "valid full config",
			config: func(c *Config) {
				c.Telegram = TelegramConfig{Token: "tok", OwnerID: 1, Rate: 2, Timeout: time.Second}
				c.Webhook.Hooks = map[string]string{"alerts": "https://example.com/h"}
				c.Store.Driver = "sqlite"
				c.DefaultSender = "webhook"
			},
		},
		{
			name:    "unknown default sender",
			config:  func(c *Config) { c.DefaultSender = "pigeon" },
			wantErr: true,
			errMsg:  "pigeon does not equal any of",
		},
		{
			name:    "unknown store driver",
			config:  func(c *Config) { c.Store.Driver = "mongo" },
			wantErr: true,
			errMsg:  "mongo does not equal any of",
		},
		{
			name:    "telegram rate below minimum",
			config:  func(c *Config) { c.Telegram.Rate = -1 },
			wantErr: true,
			errMsg:  "minimum",
		},
		{
			name:    "missing server listen",
			config:  func(c *Config) { c.Server.Listen = "" },
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name:    "missing store path",
			config:  func(c *Config) { c.Store.Path = "" },
			wantErr: true,
			errMsg:  "store.path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.config(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVerifyAgainstSchema(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		schema := `{"$schema":"https://json-schema.org/draft/2020-12/schema","$ref":"#/$defs/Config",` +
			`"$defs":{"Config":{"properties":{"server":{"type":"object"}},"additionalProperties":false,"type":"object"}}}`
		path := filepath.Join(t.TempDir(), "schema.json")
		require.NoError(t, os.WriteFile(path, []byte(schema), 0o600))
		err := VerifyAgainstSchema(Default(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected additional properties")
	})

	t.Run("missing file", func(t *testing.T) {
		err := VerifyAgainstSchema(Default(), "/non/existent/schema.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read schema file")
	})

	t.Run("broken schema", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
		err := VerifyAgainstSchema(Default(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse schema")
	})
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := Default()
	cfg.Telegram.Token = "tok"
	cfg.Telegram.Rate = 0
	err := validateRequiredFields(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram.rate is required")

	cfg.Schedule.Unit = 0
	err = validateRequiredFields(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule.unit is required")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// verify schema can be marshaled to JSON
	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// verify it contains expected fields
	schemaStr := string(data)
	assert.Contains(t, schemaStr, "Config")
	assert.Contains(t, schemaStr, "server")
	assert.Contains(t, schemaStr, "telegram")
	assert.Contains(t, schemaStr, "default_sender")
}
