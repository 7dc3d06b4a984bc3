// Package testutil holds small helpers shared by package tests.
package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger returns a logger whose output goes nowhere.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
