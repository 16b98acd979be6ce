// internal/utils/paths.go

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	ConfDirName      = "conf"
	ConfigFileName   = "config.yaml"
	HostsFileName    = "hosts"
	TemplateFileName = "template.rdp"
	ProfileFileName  = "temp.rdp"
	LogFileName      = "launcher.log"
)

// Paths zawiera wszystkie ścieżki plików używanych przez launcher
type Paths struct {
	Home     string
	Config   string
	Hosts    string
	Template string
	Profile  string
	Log      string
}

// InstallDir zwraca katalog, w którym leży plik wykonywalny (po rozwiązaniu symlinków)
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("could not locate executable: %v", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// NewPaths buduje ścieżki względem katalogu domowego programu
func NewPaths(home string) Paths {
	conf := filepath.Join(home, ConfDirName)
	return Paths{
		Home:     home,
		Config:   filepath.Join(conf, ConfigFileName),
		Hosts:    filepath.Join(conf, HostsFileName),
		Template: filepath.Join(conf, TemplateFileName),
		Profile:  filepath.Join(conf, ProfileFileName),
		Log:      filepath.Join(conf, LogFileName),
	}
}
