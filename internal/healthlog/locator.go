package healthlog

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locator resolves a calendar date to its markdown log file. A missing file
// is a normal outcome (nothing was logged that day), not an error.
type Locator struct {
	dir string
}

func NewLocator(dir string) *Locator {
	return &Locator{dir: dir}
}

// Path returns the log file path for a YYYY-MM-DD date string.
func (l *Locator) Path(date string) string {
	return filepath.Join(l.dir, date+".md")
}

// Read returns the log content for the date. ok is false when no log file
// exists for that date; err is reserved for real I/O failures.
func (l *Locator) Read(date string) (content string, ok bool, err error) {
	data, err := os.ReadFile(l.Path(date))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read log file: %w", err)
	}
	return string(data), true, nil
}

// Dir returns the configured log directory.
func (l *Locator) Dir() string {
	return l.dir
}
