// internal/models/protocol.go

package models

type Protocol string

const (
	ProtocolSSH Protocol = "SSH"
	ProtocolRDP Protocol = "RDP"
)

// Protocols w kolejności wyświetlania w selektorze
var Protocols = []Protocol{ProtocolSSH, ProtocolRDP}

// ProtocolAt zwraca protokół dla indeksu selektora.
// Indeks spoza zakresu daje protokół domyślny.
func ProtocolAt(index int) Protocol {
	if index < 0 || index >= len(Protocols) {
		return Protocols[DefaultProtocolIndex]
	}
	return Protocols[index]
}

// IndexOf zwraca pozycję protokołu w selektorze
func IndexOf(p Protocol) int {
	for i, proto := range Protocols {
		if proto == p {
			return i
		}
	}
	return DefaultProtocolIndex
}

func (p Protocol) String() string {
	return string(p)
}
