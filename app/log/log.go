// Copyright 2023 qbee.io
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Supported logs severity levels.
const (
	ERROR = iota
	WARNING
	INFO
	DEBUG
)

var levelNames = map[string]int{
	"ERROR":   ERROR,
	"WARNING": WARNING,
	"INFO":    INFO,
	"DEBUG":   DEBUG,
}

var slogLevel = map[int]slog.Level{
	ERROR:   slog.LevelError,
	WARNING: slog.LevelWarn,
	INFO:    slog.LevelInfo,
	DEBUG:   slog.LevelDebug,
}

var (
	mutex  sync.RWMutex
	level  = INFO
	logger = newLogger(os.Stderr)
)

// newLogger returns a logger writing text records to w.
// Filtering is done by logf, so the handler accepts every level.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func logf(msgLevel int, msg string, args ...any) {
	mutex.RLock()
	defer mutex.RUnlock()

	if level < msgLevel {
		return
	}

	logger.Log(context.Background(), slogLevel[msgLevel], fmt.Sprintf(msg, args...))
}

// Debugf logs message with DEBUG severity.
func Debugf(msg string, args ...any) {
	logf(DEBUG, msg, args...)
}

// Infof logs message with INFO severity.
func Infof(msg string, args ...any) {
	logf(INFO, msg, args...)
}

// Warnf logs message with WARNING severity.
func Warnf(msg string, args ...any) {
	logf(WARNING, msg, args...)
}

// Errorf logs message with ERROR severity.
func Errorf(msg string, args ...any) {
	logf(ERROR, msg, args...)
}

// SetLevel sets current log level.
func SetLevel(newLevel int) {
	mutex.Lock()
	defer mutex.Unlock()

	level = newLevel
}

// ParseLevel returns log level for its name (DEBUG, INFO, WARNING or ERROR).
func ParseLevel(name string) (int, error) {
	if lvl, ok := levelNames[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return lvl, nil
	}

	return INFO, fmt.Errorf("unsupported log level: %q", name)
}

// SetOutput redirects log records to w.
func SetOutput(w io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()

	logger = newLogger(w)
}
