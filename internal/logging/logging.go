// Package logging exposes the package-scope structured logger the render
// binaries and the GML shell share, mirroring the logger.Log global the
// rest of the pack's gopher3D engine reaches for instead of the standard
// library's log package.
package logging

import "go.uber.org/zap"

// Log is the process-wide logger. Init installs a concrete implementation;
// until then it defaults to zap's no-op logger so packages that log during
// tests or before Init runs never panic.
var Log = zap.NewNop()

// Init installs a production JSON logger (level info and above).
// cmd/render and cmd/example call it once at startup.
func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// InitDevelopment installs a human-readable console logger,
// used by the interactive GML shell instead of the JSON production logger.
func InitDevelopment() error {
	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes any buffered log entries; call it before a binary exits.
func Sync() {
	_ = Log.Sync()
}
