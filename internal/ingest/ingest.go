// Package ingest feeds lines of text into a LineSink, typically a
// *registry.Registry. It is the file and stdin plumbing around the registry.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/cryptowords/internal/log"
	"github.com/zjrosen/cryptowords/internal/tracing"
)

// MaxLineSize is the longest line Lines accepts.
const MaxLineSize = 1 << 20

// StdinPath names standard input in a path list.
const StdinPath = "-"

// LineSink receives lines one at a time.
type LineSink interface {
	Ingest(line string)
}

// Lines feeds every line of r to sink and returns how many were fed. Line
// terminators (\n or \r\n) are removed; a final unterminated line is still
// fed. ctx is checked between lines.
func Lines(ctx context.Context, r io.Reader, sink LineSink) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	n := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		sink.Ingest(scanner.Text())
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("scanning line %d: %w", n+1, err)
	}
	return n, nil
}

// Files feeds each path in order, reading stdin for StdinPath. It stops at
// the first error and returns the total line count so far.
func Files(ctx context.Context, paths []string, stdin io.Reader, sink LineSink) (int, error) {
	ctx, span := otel.Tracer("cryptowords/ingest").Start(ctx, tracing.SpanIngestBatch)
	defer span.End()
	span.SetAttributes(attribute.Int(tracing.AttrFiles, len(paths)))

	total := 0
	for _, path := range paths {
		n, err := file(ctx, path, stdin, sink)
		total += n
		if err != nil {
			tracing.RecordError(span, err)
			return total, err
		}
	}
	span.SetAttributes(attribute.Int(tracing.AttrLines, total))
	return total, nil
}

func file(ctx context.Context, path string, stdin io.Reader, sink LineSink) (n int, err error) {
	ctx, span := otel.Tracer("cryptowords/ingest").Start(ctx, tracing.SpanIngestFile)
	defer func() {
		span.SetAttributes(attribute.String(tracing.AttrPath, path), attribute.Int(tracing.AttrLines, n))
		tracing.RecordError(span, err)
		span.End()
	}()

	var r io.Reader
	if path == StdinPath {
		if stdin == nil {
			return 0, fmt.Errorf("reading %s: no standard input", path)
		}
		r = stdin
	} else {
		f, err := os.Open(path) //nolint:gosec // G304: user-supplied message file
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	n, err = Lines(ctx, r, sink)
	if err != nil {
		log.ErrorErr(log.CatIngest, "ingest failed", err, "path", path, "lines", n)
		return n, fmt.Errorf("reading %s: %w", path, err)
	}
	log.Debug(log.CatIngest, "file ingested", "path", path, "lines", n)
	return n, nil
}
