// internal/opener/opener.go

package opener

import (
	"os/exec"
	"runtime"

	apperr "rdpLauncher/internal/error"

	"github.com/sirupsen/logrus"
)

// Opener przekazuje plik do domyślnej aplikacji systemu
type Opener interface {
	Open(path string) error
}

// SystemOpener uruchamia systemowe polecenie "otwórz plik"
type SystemOpener struct {
	goos  string
	start func(cmd *exec.Cmd) error
	log   logrus.FieldLogger
}

func NewSystemOpener(log logrus.FieldLogger) *SystemOpener {
	return &SystemOpener{
		goos:  runtime.GOOS,
		start: startAndReap(log),
		log:   log,
	}
}

// Command zwraca polecenie otwierające plik na danym systemie
func Command(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		// Pusty tytuł okna, inaczej start traktuje ścieżkę w cudzysłowie jako tytuł
		return "cmd", []string{"/c", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open uruchamia handler i nie czeka na jego zakończenie
func (o *SystemOpener) Open(path string) error {
	name, args := Command(o.goos, path)
	cmd := exec.Command(name, args...)

	o.log.WithFields(logrus.Fields{
		"command": name,
		"file":    path,
	}).Debug("opening profile with system handler")

	if err := o.start(cmd); err != nil {
		return apperr.New(apperr.LaunchError, "failed to open "+path, err)
	}
	return nil
}

func startAndReap(log logrus.FieldLogger) func(cmd *exec.Cmd) error {
	return func(cmd *exec.Cmd) error {
		if err := cmd.Start(); err != nil {
			return err
		}
		go func() {
			if err := cmd.Wait(); err != nil {
				log.WithError(err).Warn("system handler exited with error")
				return
			}
			log.Debug("system handler finished")
		}()
		return nil
	}
}
