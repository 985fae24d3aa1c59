package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a main.toml into a temp dir and returns the dir with a
// trailing separator, the way ReadConfig expects its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600)
	require.NoError(t, err)

	return dir + string(filepath.Separator)
}

const minimalConfig = `
Title = "starfield"

[DB]
GormEngine = "sqlite"
Path = "test.db"

[Webserver]
Port = 8080
URL = "http://localhost:8080"
`

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "starfield", cfg.Title)
	assert.Equal(t, 8080, cfg.Webserver.Port)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, "test.db", cfg.DB.Path)

	// Policy knobs default to off.
	assert.False(t, cfg.Content.ModerateComments)
	assert.Zero(t, cfg.Content.CounterRateLimit)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read main config file")
}

func TestReadConfig_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		config        string
		expectedError error
	}{
		{
			name: "missing port",
			config: `
[Webserver]
URL = "http://localhost:8080"
`,
			expectedError: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing url",
			config: `
[Webserver]
Port = 8080
`,
			expectedError: ErrEmptyURL,
		},
		{
			name: "unknown gorm engine",
			config: `
[DB]
GormEngine = "oracle"

[Webserver]
Port = 8080
URL = "http://localhost:8080"
`,
			expectedError: ErrUnknownGormEngine,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadConfig(writeConfig(t, tc.config))
			require.ErrorIs(t, err, tc.expectedError)
		})
	}
}

func TestReadConfig_ShutDownTimeDefault(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)
}

func TestReadConfig_EnvOverride(t *testing.T) {
	t.Setenv("STARFIELD_CONFIG_JSON", `{"Title":"overridden","Content":{"ModerateComments":true}}`)

	cfg, err := ReadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)
	assert.Equal(t, "overridden", cfg.Title)
	assert.True(t, cfg.Content.ModerateComments)
}

func TestReadConfig_BadEnvOverride(t *testing.T) {
	t.Setenv("STARFIELD_CONFIG_JSON", `{not json`)

	_, err := ReadConfig(writeConfig(t, minimalConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to merge config from env")
}

func TestDumpConfig(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	asTOML, err := DumpConfig(cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(asTOML, `Title = "starfield"`))

	asJSON, err := DumpConfigJSON(cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(asJSON, `"Title": "starfield"`))
}
