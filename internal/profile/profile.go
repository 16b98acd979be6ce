// internal/profile/profile.go

package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperr "rdpLauncher/internal/error"
	"rdpLauncher/internal/models"
	"rdpLauncher/internal/opener"

	"github.com/sirupsen/logrus"
)

const (
	ScreenModeFullscreen = 0
	ScreenModeWindowed   = 1

	sshDefaultWidth  = 1024
	sshDefaultHeight = 768
)

// Tokeny podmieniane w szablonie
const (
	TokenHostname    = "#HOSTNAME#"
	TokenProtocol    = "#PROTOCOL#"
	TokenAccount     = "#ACCOUNT#"
	TokenVaultServer = "#VAULTSERVER#"
	TokenWidth       = "#WIDTH#"
	TokenHeight      = "#HEIGHT#"
	TokenScreenMode  = "#SCREENMODE#"
)

// Screen opisuje rozmiar okna zapisany w profilu
type Screen struct {
	Width  int
	Height int
	Mode   int
}

// ScreenSettings wybiera rozmiar okna. Jawnie podane wymiary wygrywają,
// w przeciwnym razie RDP startuje na pełnym ekranie, a SSH w oknie 1024x768.
func ScreenSettings(protocol models.Protocol, width, height *int) Screen {
	if width != nil && height != nil {
		return Screen{Width: *width, Height: *height, Mode: ScreenModeWindowed}
	}

	switch protocol {
	case models.ProtocolSSH:
		return Screen{Width: sshDefaultWidth, Height: sshDefaultHeight, Mode: ScreenModeWindowed}
	default:
		return Screen{Width: 0, Height: 0, Mode: ScreenModeFullscreen}
	}
}

// ParseDimension zamienia tekst z pola na wymiar; pusty tekst to brak wartości
func ParseDimension(text string) (*int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		return nil, apperr.New(apperr.ValidationError,
			fmt.Sprintf("invalid dimension %q", text), err)
	}
	return &v, nil
}

// Render podstawia wartości żądania w tekście szablonu
func Render(template string, req *models.ConnectionRequest) string {
	screen := ScreenSettings(req.Protocol, req.Width, req.Height)

	r := strings.NewReplacer(
		TokenHostname, req.Host,
		TokenProtocol, req.Protocol.String(),
		TokenAccount, req.Account,
		TokenVaultServer, req.VaultServer,
		TokenWidth, strconv.Itoa(screen.Width),
		TokenHeight, strconv.Itoa(screen.Height),
		TokenScreenMode, strconv.Itoa(screen.Mode),
	)
	return r.Replace(template)
}

// Generator zapisuje profil połączenia i przekazuje go do systemu
type Generator struct {
	templatePath string
	outputPath   string
	opener       opener.Opener
	log          logrus.FieldLogger
}

func NewGenerator(templatePath, outputPath string, o opener.Opener, log logrus.FieldLogger) *Generator {
	return &Generator{
		templatePath: templatePath,
		outputPath:   outputPath,
		opener:       o,
		log:          log,
	}
}

// Write tworzy plik profilu i zwraca jego ścieżkę
func (g *Generator) Write(req *models.ConnectionRequest) (string, error) {
	tmpl, err := os.ReadFile(g.templatePath)
	if err != nil {
		return "", apperr.New(apperr.FileError, "failed to read template", err)
	}

	if err := os.MkdirAll(filepath.Dir(g.outputPath), 0755); err != nil {
		return "", apperr.New(apperr.FileError, "failed to create profile directory", err)
	}
	if err := os.WriteFile(g.outputPath, []byte(Render(string(tmpl), req)), 0644); err != nil {
		return "", apperr.New(apperr.FileError, "failed to write profile", err)
	}
	return g.outputPath, nil
}

// Generate zapisuje profil i otwiera go domyślną aplikacją
func (g *Generator) Generate(req *models.ConnectionRequest) (string, error) {
	path, err := g.Write(req)
	if err != nil {
		return "", err
	}

	g.log.WithFields(logrus.Fields{
		"host":     req.Host,
		"protocol": req.Protocol,
		"account":  req.Account,
		"vault":    req.VaultServer,
	}).Info("profile generated")

	if err := g.opener.Open(path); err != nil {
		return path, err
	}
	return path, nil
}
