package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// Delimiter separates fields within a line.
	Delimiter = ';'
	// LineTerminator ends every line, header included.
	LineTerminator = "\r\n"
)

// Record is a row that exposes its values by column name.
type Record interface {
	Field(name string) string
}

// CSVWriter writes fully quoted, semicolon-delimited lines.
type CSVWriter struct {
	w      *bufio.Writer
	header []string
	rows   int
}

// NewCSVWriter creates a writer for the given column header.
func NewCSVWriter(w io.Writer, header []string) *CSVWriter {
	return &CSVWriter{
		w:      bufio.NewWriter(w),
		header: header,
	}
}

// WriteHeader writes the column names.
func (c *CSVWriter) WriteHeader() error {
	return c.writeLine(c.header)
}

// Write writes one record, taking fields in header order.
func (c *CSVWriter) Write(r Record) error {
	values := make([]string, len(c.header))
	for i, col := range c.header {
		values[i] = r.Field(col)
	}
	if err := c.writeLine(values); err != nil {
		return err
	}
	c.rows++
	return nil
}

// Rows returns the number of records written so far, excluding the header.
func (c *CSVWriter) Rows() int {
	return c.rows
}

// Flush writes buffered data to the underlying writer.
func (c *CSVWriter) Flush() error {
	return c.w.Flush()
}

func (c *CSVWriter) writeLine(values []string) error {
	for i, v := range values {
		if i > 0 {
			if err := c.w.WriteByte(Delimiter); err != nil {
				return err
			}
		}
		if _, err := c.w.WriteString(quote(v)); err != nil {
			return err
		}
	}
	_, err := c.w.WriteString(LineTerminator)
	return err
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// WriteAll writes the header and all records to w and flushes.
// It returns the number of records written.
func WriteAll[R Record](w io.Writer, header []string, records []R) (int, error) {
	cw := NewCSVWriter(w, header)

	if err := cw.WriteHeader(); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(r); err != nil {
			return cw.Rows(), fmt.Errorf("write record %d: %w", i, err)
		}
	}
	if err := cw.Flush(); err != nil {
		return cw.Rows(), fmt.Errorf("flush: %w", err)
	}

	return cw.Rows(), nil
}

// WriteFile creates (or truncates) path and writes the header and records to it.
// The file is closed on every return path.
func WriteFile[R Record](path string, header []string, records []R) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	n, err = WriteAll(f, header, records)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}
