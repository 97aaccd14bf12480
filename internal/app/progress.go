package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/heartmarshall/wikt2sql/internal/domain"
	"github.com/heartmarshall/wikt2sql/internal/seeder"
)

// ProgressObserver drives a terminal progress bar from pipeline events: one
// step per processed line, with the current word as the description.
type ProgressObserver struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewProgressObserver creates a bar for total lines written to w.
func NewProgressObserver(w io.Writer, total int64) *ProgressObserver {
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("lines"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	return &ProgressObserver{w: w, bar: bar}
}

func (o *ProgressObserver) RecordDecoded(_ int, rec *domain.Record) {
	o.bar.Describe(rec.Word)
}

func (o *ProgressObserver) RecordSkipped(int, *domain.Record) {
	_ = o.bar.Add(1)
}

func (o *ProgressObserver) RecordWritten(int, *domain.Record, seeder.WriteResult) {
	_ = o.bar.Add(1)
}

func (o *ProgressObserver) Finished(seeder.Result) {
	_ = o.bar.Finish()
	fmt.Fprintln(o.w)
}

// Failed leaves the bar at its current position.
func (o *ProgressObserver) Failed(error) {
	_ = o.bar.Exit()
	fmt.Fprintln(o.w, "\nFailed on last word.")
}

// CountLines returns the number of lines in the file at path. A final line
// without a trailing newline is counted.
func CountLines(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return countLines(f)
}

func countLines(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024)
	var (
		n    int64
		last byte = '\n'
	)
	for {
		c, err := r.Read(buf)
		if c > 0 {
			n += int64(bytes.Count(buf[:c], []byte{'\n'}))
			last = buf[c-1]
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("count lines: %w", err)
		}
	}
	if last != '\n' {
		n++
	}
	return n, nil
}
