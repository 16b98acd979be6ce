// internal/models/request.go

package models

// ConnectionRequest powstaje przy każdym połączeniu i jest porzucany
// po zapisaniu profilu
type ConnectionRequest struct {
	Account     string
	Protocol    Protocol
	Host        string
	Width       *int // nil = nie podano
	Height      *int
	VaultServer string
}

// HasExplicitSize zwraca true tylko gdy podano obie wartości
func (r *ConnectionRequest) HasExplicitSize() bool {
	return r.Width != nil && r.Height != nil
}
