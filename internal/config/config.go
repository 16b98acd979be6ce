// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"path/filepath"
	apperr "rdpLauncher/internal/error"
	"rdpLauncher/internal/models"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFilePerms = 0644
)

type Manager struct {
	configPath string
	settings   *models.Settings
}

// NewManager tworzy nowego menedżera konfiguracji
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		settings:   &models.Settings{},
	}
}

// Load wczytuje konfigurację z pliku. Brak pliku jest błędem.
func (m *Manager) Load() error {
	settings, err := m.read()
	if err != nil {
		return err
	}
	m.settings = settings
	return nil
}

func (m *Manager) read() (*models.Settings, error) {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return nil, apperr.New(apperr.ConfigError, "failed to read config file", err)
	}

	settings := &models.Settings{}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, apperr.New(apperr.ConfigError, "failed to parse config file", err)
	}
	return settings, nil
}

// Save zapisuje bieżące wartości z UI. Lista vaultServers jest ponownie
// czytana z dysku i zapisywana bez zmian.
func (m *Manager) Save(protocolIndex int, account, host string) error {
	current, err := m.read()
	if err != nil {
		return err
	}

	m.settings = &models.Settings{
		LastProtocolIndex: &protocolIndex,
		LastAccount:       account,
		LastHost:          host,
		VaultServers:      current.VaultServers,
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return apperr.New(apperr.ConfigError, "failed to marshal config", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return apperr.New(apperr.FileError, "failed to create config directory", err)
	}
	if err := os.WriteFile(m.configPath, data, DefaultFilePerms); err != nil {
		return apperr.New(apperr.FileError, "failed to write config file", err)
	}

	return nil
}

// GetProtocolIndex zwraca ostatnio użyty indeks protokołu (domyślnie 1)
func (m *Manager) GetProtocolIndex() int {
	return m.settings.ProtocolIndex()
}

// GetLastAccount zwraca ostatnio użyte konto
func (m *Manager) GetLastAccount() string {
	return m.settings.LastAccount
}

// GetLastHost zwraca ostatnio użyty host
func (m *Manager) GetLastHost() string {
	return m.settings.LastHost
}

// GetVaultServers zwraca listę serwerów vault
func (m *Manager) GetVaultServers() []string {
	return m.settings.VaultServers
}

// PickVaultServer losuje serwer vault. intn musi zwracać wartość z [0, n).
func (m *Manager) PickVaultServer(intn func(n int) int) (string, error) {
	servers := m.settings.VaultServers
	if len(servers) == 0 {
		return "", apperr.New(apperr.ConfigError,
			fmt.Sprintf("no vault servers configured in %s", m.configPath), nil)
	}
	return servers[intn(len(servers))], nil
}

func (m *Manager) GetConfigPath() string {
	return m.configPath
}
