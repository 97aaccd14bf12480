package seeder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/wikt2sql/internal/domain"
	"github.com/heartmarshall/wikt2sql/internal/seeder/wiktionary"
)

// defaultMaxLineBytes is the bufio.Scanner buffer size (16 MB).
const defaultMaxLineBytes = 16 * 1024 * 1024

// Options tunes a pipeline run.
type Options struct {
	// MaxLineBytes bounds a single input line. Longer lines fail the run.
	MaxLineBytes int
	// DryRun decodes and filters without writing.
	DryRun bool
}

// Result aggregates the outcome of a run. On failure it reflects the
// records committed before the failing line.
type Result struct {
	Lines    int
	Written  int
	Skipped  int
	Inserted Counts
	Duration time.Duration
}

// Pipeline reads a JSONL stream and writes each eligible record.
type Pipeline struct {
	log      *slog.Logger
	writer   RecordWriter
	observer Observer
	opts     Options
}

// NewPipeline creates a new Pipeline. A dry run replaces writer with
// DiscardWriter; otherwise writer must not be nil. A nil observer is allowed.
func NewPipeline(log *slog.Logger, writer RecordWriter, observer Observer, opts Options) *Pipeline {
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = defaultMaxLineBytes
	}
	switch {
	case opts.DryRun:
		writer = DiscardWriter{}
	case writer == nil:
		panic("seeder: NewPipeline called with nil writer outside a dry run")
	}
	if observer == nil {
		observer = MultiObserver{}
	}
	return &Pipeline{log: log, writer: writer, observer: observer, opts: opts}
}

// Run processes r line by line: decode, filter, write. A decode, write or
// read failure stops the run; records committed before it stay committed.
// Cancelling ctx between lines also stops the run.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) (Result, error) {
	start := time.Now()
	p.log.Info("ingestion started", slog.Bool("dry_run", p.opts.DryRun))

	res, err := p.run(ctx, r)
	res.Duration = time.Since(start)

	if err != nil {
		p.observer.Failed(err)
		return res, err
	}

	p.observer.Finished(res)
	return res, nil
}

func (p *Pipeline) run(ctx context.Context, r io.Reader) (Result, error) {
	var res Result

	initial := min(64*1024, p.opts.MaxLineBytes)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initial), p.opts.MaxLineBytes)

	for {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("interrupted after line %d: %w", res.Lines, err)
		}
		if !scanner.Scan() {
			break
		}
		res.Lines++
		line := res.Lines
		raw := scanner.Bytes()

		rec, err := wiktionary.Decode(raw)
		if err != nil {
			return res, &domain.DecodeError{Line: line, Raw: string(raw), Err: err}
		}
		p.observer.RecordDecoded(line, &rec)

		if !rec.HasAnyDefinitions() {
			res.Skipped++
			p.observer.RecordSkipped(line, &rec)
			continue
		}

		wr, err := p.writer.Write(ctx, rec)
		if err != nil {
			return res, &domain.StoreError{Line: line, Word: rec.Word, Err: err}
		}
		res.Written++
		res.Inserted.Add(wr.Inserted)
		p.observer.RecordWritten(line, &rec, wr)
	}

	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("read line %d: %w", res.Lines+1, err)
	}
	return res, nil
}
