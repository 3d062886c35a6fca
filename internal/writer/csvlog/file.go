// internal/writer/csvlog/file.go
package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// TimeLayout is the timestamp column format of both logs.
const TimeLayout = "2006-01-02 15:04"

// appendRow appends one record to path, writing header first if the file
// does not exist yet. The file is opened and closed on every call.
func appendRow(path string, header, row []string) error {
	needHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needHeader = true
	} else if err != nil {
		return fmt.Errorf("csvlog: stat %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("csvlog: open %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if needHeader {
		_ = w.Write(header)
	}
	_ = w.Write(row)
	w.Flush()

	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("csvlog: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csvlog: close %s: %w", path, err)
	}
	return nil
}
