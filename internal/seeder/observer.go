package seeder

import (
	"errors"
	"log/slog"

	"github.com/heartmarshall/wikt2sql/internal/domain"
)

// Observer receives pipeline events. Exactly one of Finished or Failed is
// called at the end of every run. Calls happen on the pipeline goroutine.
type Observer interface {
	RecordDecoded(line int, rec *domain.Record)
	RecordSkipped(line int, rec *domain.Record)
	RecordWritten(line int, rec *domain.Record, res WriteResult)
	Finished(res Result)
	Failed(err error)
}

// LogObserver reports pipeline events to a structured logger.
type LogObserver struct {
	log *slog.Logger
}

// NewLogObserver creates a LogObserver.
func NewLogObserver(log *slog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) RecordDecoded(line int, rec *domain.Record) {
	o.log.Info("found word",
		slog.Int("line", line),
		slog.String("word", rec.Word),
		slog.String("pos", rec.POS),
		slog.Int("definitions", rec.NumDefinitions()),
	)
}

func (o *LogObserver) RecordSkipped(line int, rec *domain.Record) {
	o.log.Warn("skipping word without definitions",
		slog.Int("line", line),
		slog.String("word", rec.Word),
	)
}

func (o *LogObserver) RecordWritten(line int, rec *domain.Record, res WriteResult) {
	o.log.Debug("word written",
		slog.Int("line", line),
		slog.String("word", rec.Word),
		slog.Int64("word_id", res.WordID),
		slog.Int("rows", res.Inserted.Total()),
	)
}

func (o *LogObserver) Finished(res Result) {
	o.log.Info("ingestion completed",
		slog.Int("lines", res.Lines),
		slog.Int("written", res.Written),
		slog.Int("skipped", res.Skipped),
		slog.Int("words", res.Inserted.Words),
		slog.Int("definitions", res.Inserted.Definitions),
		slog.Int("related", res.Inserted.Related),
		slog.Int("synonyms", res.Inserted.Synonyms),
		slog.Duration("duration", res.Duration),
	)
}

func (o *LogObserver) Failed(err error) {
	attrs := []any{slog.String("error", err.Error())}

	var decodeErr *domain.DecodeError
	if errors.As(err, &decodeErr) {
		attrs = append(attrs, slog.Int("line", decodeErr.Line), slog.String("raw", decodeErr.Raw))
	}
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		attrs = append(attrs, slog.Int("line", storeErr.Line), slog.String("word", storeErr.Word))
	}

	o.log.Error("ingestion failed", attrs...)
}

// MultiObserver fans every event out to each observer in order.
type MultiObserver []Observer

func (m MultiObserver) RecordDecoded(line int, rec *domain.Record) {
	for _, o := range m {
		o.RecordDecoded(line, rec)
	}
}

func (m MultiObserver) RecordSkipped(line int, rec *domain.Record) {
	for _, o := range m {
		o.RecordSkipped(line, rec)
	}
}

func (m MultiObserver) RecordWritten(line int, rec *domain.Record, res WriteResult) {
	for _, o := range m {
		o.RecordWritten(line, rec, res)
	}
}

func (m MultiObserver) Finished(res Result) {
	for _, o := range m {
		o.Finished(res)
	}
}

func (m MultiObserver) Failed(err error) {
	for _, o := range m {
		o.Failed(err)
	}
}
