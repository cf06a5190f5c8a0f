// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler is a no-op slog.Handler.
type discardHandler struct{}

func (discardHandler) Handle(context.Context, slog.Record) error  { return nil }
func (discardHandler) Enabled(context.Context, slog.Level) bool   { return false }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler       { return h }
func (h discardHandler) WithGroup(string) slog.Handler            { return h }

// logger holds the package's slog sink, defaulting to a discard handler so
// that importing this package never produces output on its own. Callers
// that want to see the loader's silent-drop breadcrumbs call SetLogger.
var logger atomic.Value

func init() {
	logger.Store(slog.New(discardHandler{}))
}

// SetLogger overrides the logger this package uses for its diagnostic
// breadcrumbs (currently: loader.go's silently-skipped JSON-ABI items).
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func logDebug(msg string, args ...any) {
	logger.Load().(*slog.Logger).Debug(msg, args...)
}
