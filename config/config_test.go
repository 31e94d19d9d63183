package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := New()
	v.Set(KeyOutput, "out.lua")
	v.Set(KeyMCC, true)

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "out.lua", c.Output)
	assert.Equal(t, ".", c.Dir)
	assert.Equal(t, "raw", c.Fetch)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, Tables{MCC: true}, c.Tables)
	assert.True(t, c.Tables.Any())
}

func TestLoadAllSelectsEveryTable(t *testing.T) {
	v := New()
	v.Set(KeyOutput, "out.lua")
	v.Set(KeyAll, true)
	v.Set(KeyLibphoneDir, "/tmp/libphone")

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Tables{true, true, true, true, true, true, true, true}, c.Tables)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TELCODEGEN_OUTPUT", "env.lua")
	t.Setenv("TELCODEGEN_LINE_SCAN", "true")
	t.Setenv("TELCODEGEN_FETCH", "API")

	c, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "env.lua", c.Output)
	assert.True(t, c.LineScan)
	assert.Equal(t, "api", c.Fetch)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telcodegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: file.lua\nnodl: true\ncc: true\n"), 0644))

	v := New()
	require.NoError(t, ReadFile(v, path))
	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "file.lua", c.Output)
	assert.True(t, c.NoDownload)
	assert.True(t, c.Tables.CC)

	assert.NoError(t, ReadFile(New(), ""))
	assert.Error(t, ReadFile(New(), filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TELCODEGEN_DIR=/var/cache/tel\n"), 0644))
	t.Setenv("TELCODEGEN_DIR", "")
	os.Unsetenv("TELCODEGEN_DIR")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "/var/cache/tel", os.Getenv("TELCODEGEN_DIR"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"ok", Config{Output: "o", Dir: ".", Fetch: "raw"}, ""},
		{"no output", Config{Dir: ".", Fetch: "raw"}, "output"},
		{"no dir", Config{Output: "o", Fetch: "raw"}, "directory"},
		{"bad fetch", Config{Output: "o", Dir: ".", Fetch: "ftp"}, "fetch mode"},
		{"area without resources", Config{Output: "o", Dir: ".", Fetch: "raw", Tables: Tables{Area: true}}, "libphone-dir"},
		{"carrier with resources", Config{Output: "o", Dir: ".", Fetch: "api", LibphoneDir: "x", Tables: Tables{Carrier: true}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
