// internal/logger/logger.go

package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *logrus.Logger

// Config konfiguracja logowania. Interfejs zajmuje stdout, więc logi idą do pliku.
type Config struct {
	Level      string
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// DefaultConfig zwraca ustawienia dla pliku w katalogu conf
func DefaultConfig(filePath string) Config {
	return Config{
		Level:      "info",
		FilePath:   filePath,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     30,
	}
}

// Init inicjalizuje logger
func Init(config Config) error {
	log = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	if config.FilePath == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
		return err
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
	})
	return nil
}

// GetLogger zwraca instancję loggera
func GetLogger() *logrus.Logger {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return log
}

func Infof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

func Errorf(format string, args ...interface{}) {
	GetLogger().Errorf(format, args...)
}

// WithField dodaje pole
func WithField(key string, value interface{}) *logrus.Entry {
	return GetLogger().WithField(key, value)
}
