package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names.
const (
	SpanExtract     = "cli.extract"
	SpanIngestFile  = "ingest.file"
	SpanIngestBatch = "registry.ingest_batch"
	SpanWatchReload = "cli.watch_reload"
	SpanSaveRun     = "db.save_run"
)

// Span attribute keys.
const (
	AttrPath       = "path"
	AttrLines      = "lines"
	AttrFiles      = "files"
	AttrCandidates = "candidates"
	AttrRunGUID    = "run.guid"
	AttrErrorMsg   = "error.message"
)

// RecordError marks span as failed with err. A nil err is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String(AttrErrorMsg, err.Error()))
}
