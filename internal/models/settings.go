// internal/models/settings.go

package models

// Settings odpowiada zawartości conf/config.yaml
type Settings struct {
	LastProtocolIndex *int     `yaml:"lastProtocolIndex"`
	LastAccount       string   `yaml:"lastAccount"`
	LastHost          string   `yaml:"lastHost"`
	VaultServers      []string `yaml:"vaultServers"`
}

// DefaultProtocolIndex to indeks RDP w selektorze protokołu
const DefaultProtocolIndex = 1

// ProtocolIndex zwraca zapamiętany indeks protokołu lub wartość domyślną
func (s *Settings) ProtocolIndex() int {
	if s.LastProtocolIndex == nil {
		return DefaultProtocolIndex
	}
	return *s.LastProtocolIndex
}
