package config

import (
	"os"
	"path/filepath"
	"testing"

	apperr "rdpLauncher/internal/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadReadsAllKeys(t *testing.T) {
	path := writeConfig(t, `lastProtocolIndex: 0
lastAccount: admin@corp
lastHost: SRV01
vaultServers:
  - vault-a.corp
  - vault-b.corp
`)
	m := NewManager(path)
	require.NoError(t, m.Load())

	assert.Equal(t, 0, m.GetProtocolIndex())
	assert.Equal(t, "admin@corp", m.GetLastAccount())
	assert.Equal(t, "SRV01", m.GetLastHost())
	assert.Equal(t, []string{"vault-a.corp", "vault-b.corp"}, m.GetVaultServers())
}

func TestLoadDefaultsProtocolIndex(t *testing.T) {
	for name, content := range map[string]string{
		"absent": "lastAccount: a\nvaultServers: [v1]\n",
		"null":   "lastProtocolIndex:\nlastAccount: a\nvaultServers: [v1]\n",
	} {
		t.Run(name, func(t *testing.T) {
			m := NewManager(writeConfig(t, content))
			require.NoError(t, m.Load())
			assert.Equal(t, 1, m.GetProtocolIndex())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))
	err := m.Load()
	require.Error(t, err)
	assert.True(t, apperr.IsType(err, apperr.ConfigError))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedYAML(t *testing.T) {
	m := NewManager(writeConfig(t, "vaultServers: [unterminated\n"))
	err := m.Load()
	require.Error(t, err)
	assert.True(t, apperr.IsType(err, apperr.ConfigError))
}

func TestSaveKeepsVaultServersFromDisk(t *testing.T) {
	path := writeConfig(t, "lastProtocolIndex: 1\nvaultServers: [v1]\n")
	m := NewManager(path)
	require.NoError(t, m.Load())

	// lista zmieniona ręcznie w trakcie działania programu
	require.NoError(t, os.WriteFile(path, []byte("vaultServers: [v1, v2]\n"), 0644))

	require.NoError(t, m.Save(0, "ops@corp", "WEB01"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, 0, raw["lastProtocolIndex"])
	assert.Equal(t, "ops@corp", raw["lastAccount"])
	assert.Equal(t, "WEB01", raw["lastHost"])
	assert.Equal(t, []interface{}{"v1", "v2"}, raw["vaultServers"])

	reloaded := NewManager(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, []string{"v1", "v2"}, reloaded.GetVaultServers())
}

func TestSaveFailsWhenConfigVanished(t *testing.T) {
	path := writeConfig(t, "vaultServers: [v1]\n")
	m := NewManager(path)
	require.NoError(t, m.Load())
	require.NoError(t, os.Remove(path))

	err := m.Save(1, "", "")
	assert.True(t, apperr.IsType(err, apperr.ConfigError))
}

func TestPickVaultServer(t *testing.T) {
	m := NewManager(writeConfig(t, "vaultServers: [v1, v2, v3]\n"))
	require.NoError(t, m.Load())

	server, err := m.PickVaultServer(func(n int) int { return n - 1 })
	require.NoError(t, err)
	assert.Equal(t, "v3", server)

	for i := 0; i < 50; i++ {
		server, err := m.PickVaultServer(func(n int) int { return i % n })
		require.NoError(t, err)
		assert.Contains(t, m.GetVaultServers(), server)
	}
}

func TestPickVaultServerEmptyList(t *testing.T) {
	m := NewManager(writeConfig(t, "lastHost: X\n"))
	require.NoError(t, m.Load())

	_, err := m.PickVaultServer(func(n int) int { return 0 })
	require.Error(t, err)
	assert.True(t, apperr.IsType(err, apperr.ConfigError))
}
