/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Logger is the logger type handed out by NewLogger.
type Logger = logrus.Logger

var (
	defaultLevel     = ParseLogLevel(EnvDefaultString("LOG_LEVEL", "info"))
	loggerRegistryMu sync.RWMutex
	loggerRegistry   = map[string]*logrus.Logger{}
)

// NewLogger creates a named console logger and registers it so its level can
// be changed later through SetLoggerLevel.
func NewLogger(name string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(defaultLevel)
	l.SetFormatter(&NamedColorFormatter{
		LoggerName:      name,
		TimestampFormat: "2006-01-02 15:04:05.000",
		NameWidth:       10,
	})
	RegisterLogger(name, l)
	return l
}

// RegisterLogger makes a logger addressable by name.
func RegisterLogger(name string, l *logrus.Logger) {
	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	loggerRegistry[name] = l
}

// RegisteredLoggerNames returns the names of all registered loggers, sorted.
func RegisteredLoggerNames() []string {
	loggerRegistryMu.RLock()
	defer loggerRegistryMu.RUnlock()
	names := make([]string, 0, len(loggerRegistry))
	for name := range loggerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetLoggerLevel changes the level of the named logger. It reports whether a
// logger with that name was registered.
func SetLoggerLevel(name string, levelStr string) bool {
	loggerRegistryMu.RLock()
	l, ok := loggerRegistry[name]
	loggerRegistryMu.RUnlock()
	if !ok {
		return false
	}
	l.SetLevel(ParseLogLevel(levelStr))
	return true
}

// SetAllLoggersLevel changes the level of every registered logger.
func SetAllLoggersLevel(levelStr string) {
	level := ParseLogLevel(levelStr)
	loggerRegistryMu.RLock()
	defer loggerRegistryMu.RUnlock()
	for _, l := range loggerRegistry {
		l.SetLevel(level)
	}
}

// ParseLogLevel converts a level name to a logrus level, defaulting to info.
func ParseLogLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

// NamedColorFormatter renders log4j style lines:
// timestamp LEVEL [name] message.
type NamedColorFormatter struct {
	LoggerName      string
	TimestampFormat string
	NameWidth       int
}

func (f *NamedColorFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	tsFormat := f.TimestampFormat
	if tsFormat == "" {
		tsFormat = "2006-01-02 15:04:05.000"
	}
	name := f.LoggerName
	if f.NameWidth > 0 && len(name) < f.NameWidth {
		name = name + strings.Repeat(" ", f.NameWidth-len(name))
	}
	line := fmt.Sprintf("%s %s [%s] %s\n",
		entry.Time.Format(tsFormat),
		colorLevel(entry.Level),
		name,
		entry.Message,
	)
	return []byte(line), nil
}

func colorLevel(level logrus.Level) string {
	label := fmt.Sprintf("%-5s", strings.ToUpper(level.String()))
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return color.CyanString(label)
	case logrus.InfoLevel:
		return color.GreenString(label)
	case logrus.WarnLevel:
		return color.YellowString(label)
	default:
		return color.RedString(label)
	}
}
