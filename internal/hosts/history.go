// internal/hosts/history.go

package hosts

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	apperr "rdpLauncher/internal/error"
	"strings"
)

const DefaultFilePerms = 0644

// History przechowuje wpisane wcześniej nazwy hostów, jedna na linię
type History struct {
	path string
}

func NewHistory(path string) *History {
	return &History{path: path}
}

// Normalize przycina i zamienia nazwę hosta na wielkie litery
func Normalize(host string) string {
	return strings.ToUpper(strings.TrimSpace(host))
}

// List zwraca wszystkie zapisane hosty. Brak pliku to pusta lista.
func (h *History) List() ([]string, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, apperr.New(apperr.FileError, "failed to read hosts file", err)
	}

	hosts := make([]string, 0)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		hosts = append(hosts, line)
	}
	return hosts, nil
}

// Contains sprawdza obecność hosta bez względu na wielkość liter
func (h *History) Contains(host string) (bool, error) {
	hosts, err := h.List()
	if err != nil {
		return false, err
	}
	for _, existing := range hosts {
		if strings.EqualFold(existing, strings.TrimSpace(host)) {
			return true, nil
		}
	}
	return false, nil
}

// Add dopisuje hosta, o ile taka linia jeszcze nie istnieje
func (h *History) Add(host string) error {
	host = Normalize(host)
	if host == "" {
		return nil
	}

	data, err := os.ReadFile(h.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperr.New(apperr.FileError, "failed to read hosts file", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == host {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(h.path), 0755); err != nil {
		return apperr.New(apperr.FileError, "failed to create hosts directory", err)
	}

	f, err := os.OpenFile(h.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, DefaultFilePerms)
	if err != nil {
		return apperr.New(apperr.FileError, "failed to open hosts file", err)
	}
	defer f.Close()

	entry := host + "\n"
	// Starsze pliki nie kończą się znakiem nowej linii
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		entry = "\n" + entry
	}
	if _, err := f.WriteString(entry); err != nil {
		return apperr.New(apperr.FileError, "failed to write hosts file", err)
	}
	return nil
}

// Remove przepisuje plik bez linii równych znormalizowanemu hostowi
func (h *History) Remove(host string) error {
	host = Normalize(host)
	if host == "" {
		return nil
	}

	data, err := os.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return apperr.New(apperr.FileError, "failed to read hosts file", err)
	}

	var kept strings.Builder
	for _, line := range strings.SplitAfter(string(data), "\n") {
		if line == "" || strings.TrimSpace(line) == host {
			continue
		}
		kept.WriteString(line)
	}

	if err := os.WriteFile(h.path, []byte(kept.String()), DefaultFilePerms); err != nil {
		return apperr.New(apperr.FileError, "failed to rewrite hosts file", err)
	}
	return nil
}

func (h *History) Path() string {
	return h.path
}
