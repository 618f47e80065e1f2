package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.False(t, cfg.Enabled, "tracing should be disabled by default")
	require.Equal(t, ExporterFile, cfg.Exporter)
	require.Empty(t, cfg.FilePath)
	require.Equal(t, "localhost:4317", cfg.OTLPEndpoint)
	require.Equal(t, 1.0, cfg.SampleRate)
	require.Equal(t, "cryptowords", cfg.ServiceName)
}

func TestValidExporter(t *testing.T) {
	for _, name := range []string{"", "none", "file", "stdout", "otlp"} {
		require.True(t, ValidExporter(name), name)
	}
	require.False(t, ValidExporter("jaeger"))
}

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)
	require.False(t, provider.Enabled())

	ctx, span := provider.Tracer().Start(context.Background(), SpanExtract)
	require.NotNil(t, ctx)
	require.False(t, span.SpanContext().IsValid(), "no-op spans carry no context")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporterWritesSpans(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces", "traces.jsonl")

	provider, err := NewProvider(Config{
		Enabled:     true,
		Exporter:    ExporterFile,
		FilePath:    tracePath,
		SampleRate:  1.0,
		ServiceName: "test-service",
	})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	ctx, parent := provider.Tracer().Start(context.Background(), SpanExtract)
	_, child := provider.Tracer().Start(ctx, SpanIngestFile)
	child.SetAttributes(attribute.String(AttrPath, "message.txt"), attribute.Int(AttrLines, 3))
	RecordError(child, errors.New("reading message.txt: boom"))
	child.End()
	parent.End()

	require.NoError(t, provider.Shutdown(context.Background()))

	f, err := os.Open(tracePath)
	require.NoError(t, err)
	defer f.Close()

	records := map[string]SpanRecord{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records[rec.Name] = rec
	}
	require.NoError(t, scanner.Err())

	require.Contains(t, records, SpanExtract)
	require.Contains(t, records, SpanIngestFile)

	fileRec := records[SpanIngestFile]
	require.Equal(t, records[SpanExtract].SpanID, fileRec.ParentSpanID)
	require.Equal(t, "ERROR", fileRec.Status)
	require.Equal(t, "message.txt", fileRec.Attributes[AttrPath])
	require.EqualValues(t, 3, fileRec.Attributes[AttrLines])
	require.Equal(t, "reading message.txt: boom", fileRec.Attributes[AttrErrorMsg])
}

func TestNewProvider_NoExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: ExporterNone})
	require.NoError(t, err)

	_, span := provider.Tracer().Start(context.Background(), SpanIngestBatch)
	require.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_StdoutExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: ExporterStdout})
	require.NoError(t, err)
	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporter_MissingPath(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: ExporterFile})
	require.Error(t, err)
	require.Nil(t, provider)
	require.Contains(t, err.Error(), "file_path required")
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: "invalid-exporter"})
	require.Error(t, err)
	require.Nil(t, provider)
	require.Contains(t, err.Error(), "unsupported exporter")
}

func TestRecordError_NilIsIgnored(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: ExporterNone})
	require.NoError(t, err)
	defer provider.Shutdown(context.Background())

	_, span := provider.Tracer().Start(context.Background(), SpanSaveRun)
	require.NotPanics(t, func() { RecordError(span, nil) })
	span.End()
}
