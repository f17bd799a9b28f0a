package services

import (
	"fmt"

	"github.com/vvka-141/rulesync/pkg/rulesync"
)

type mockCollector struct {
	result rulesync.CollectResult
	err    error
	dirs   []string
}

func (m *mockCollector) Collect(dir string) (rulesync.CollectResult, error) {
	m.dirs = append(m.dirs, dir)
	return m.result, m.err
}

type mockLogger struct {
	verbose []string
	info    []string
	errors  []string
}

func (m *mockLogger) Verbose(format string, args ...interface{}) {
	m.verbose = append(m.verbose, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Info(format string, args ...interface{}) {
	m.info = append(m.info, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Error(format string, args ...interface{}) {
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}
