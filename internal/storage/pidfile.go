package storage

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WritePidfile records pid at path, replacing any previous contents.
func WritePidfile(path string, pid int) error {
	return os.WriteFile(path, []byte(fmt.Sprintf("%d\n", pid)), 0644)
}

// ReadPidfile returns the process ID recorded at path.
func ReadPidfile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("malformed pidfile %s: %w", path, err)
	}
	return pid, nil
}

// RemovePidfile deletes the pidfile; a missing file is not an error.
func RemovePidfile(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
