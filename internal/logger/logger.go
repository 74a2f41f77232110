package logger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar = zap.NewNop().Sugar()
)

// Init construit le logger global. "prod" donne du JSON, sinon une sortie console colorée.
func Init(mode string) error {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	}
	cfg.DisableStacktrace = true

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
	return nil
}

// Sync vide les buffers du logger
func Sync() {
	_ = get().Sync()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Info log une information générale
func Info(message string, args ...interface{}) {
	get().Infof(message, args...)
}

// Success log un succès (vert)
func Success(message string, args ...interface{}) {
	get().Info(color.GreenString("✓ "+message, args...))
}

// Warning log un avertissement (jaune)
func Warning(message string, args ...interface{}) {
	get().Warn(color.YellowString("⚠ "+message, args...))
}

// Error log une erreur
func Error(message string, args ...interface{}) {
	get().Errorf(message, args...)
}

// Debug log un message de debug - visible seulement en développement
func Debug(message string, args ...interface{}) {
	get().Debugf(message, args...)
}

// Request log une requête HTTP avec son statut, sa taille et sa durée
func Request(method, path string, statusCode, size int, duration time.Duration) {
	get().Infow(fmt.Sprintf("%-6s %s", method, path),
		"status", statusColor(statusCode).Sprint(statusCode),
		"bytes", size,
		"duration", formatDuration(duration),
	)
}

func statusColor(statusCode int) *color.Color {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return color.New(color.FgGreen)
	case statusCode >= 300 && statusCode < 400:
		return color.New(color.FgCyan)
	case statusCode >= 400 && statusCode < 500:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
