package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/cryptowords/internal/config"
	"github.com/zjrosen/cryptowords/internal/ingest"
	"github.com/zjrosen/cryptowords/internal/log"
	"github.com/zjrosen/cryptowords/internal/output"
	"github.com/zjrosen/cryptowords/internal/pubsub"
	"github.com/zjrosen/cryptowords/internal/registry"
	"github.com/zjrosen/cryptowords/internal/tracing"
	"github.com/zjrosen/cryptowords/internal/watcher"
)

var (
	watchFormat     string
	watchLengthUnit string
)

var watchCmd = &cobra.Command{
	Use:   "watch file...",
	Short: "Re-extract candidates whenever the input files change",
	Long: `Extract once, then watch the files and extract again after every change.
Each reload starts from an empty registry. In text format the words added
and removed since the previous extraction are listed after each reload.

Stop with Ctrl-C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "", "output format: text, json or yaml (default from config)")
	watchCmd.Flags().StringVar(&watchLengthUnit, "length-unit", "", "measure word length in runes or graphemes (default from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if slices.Contains(args, ingest.StdinPath) {
		return errors.New("watch needs files; standard input cannot be watched")
	}

	format, err := resolveFormat(watchFormat)
	if err != nil {
		return err
	}
	unit, err := resolveLengthUnit(watchLengthUnit)
	if err != nil {
		return err
	}

	broker := pubsub.NewBroker[registry.Change]()
	defer broker.Close()

	reg, err := newRegistry(unit, broker)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	go logChanges(broker.Subscribe(ctx))

	w, err := watcher.New(watcher.Config{Paths: args, Debounce: cfg.Watch.Debounce})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	previous, err := reload(ctx, reg, args, out, format, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Debug(log.CatCLI, "Watch stopped")
			return nil
		case <-changes:
			words, err := reload(ctx, reg, args, out, format, previous)
			if err != nil {
				// A half-written file is common mid-save; keep watching.
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				continue
			}
			previous = words
		}
	}
}

// reload resets reg, re-reads every path and prints the result. previous
// is the last candidate list; nil on the first pass.
func reload(ctx context.Context, reg *registry.Registry, paths []string, out io.Writer, format string, previous []string) (words []string, err error) {
	ctx, span := provider.Tracer().Start(ctx, tracing.SpanWatchReload)
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	reg.Reset()
	if _, err := ingest.Files(ctx, paths, nil, reg); err != nil {
		return nil, err
	}

	snap := reg.Snapshot()
	span.SetAttributes(attribute.Int(tracing.AttrCandidates, len(snap.Words)))

	text := format == "" || format == config.FormatText
	if previous != nil && text {
		_, _ = fmt.Fprintln(out, "---")
	}
	if err := output.Render(out, format, snap); err != nil {
		return nil, err
	}

	if previous != nil && text {
		var changed []output.WordChange
		for _, c := range output.DiffWords(previous, snap.Words) {
			if c.Type != output.Unchanged {
				changed = append(changed, c)
			}
		}
		if len(changed) > 0 {
			_, _ = fmt.Fprintln(out)
			if err := output.RenderDiff(out, changed); err != nil {
				return nil, err
			}
		}
	}

	if snap.Words == nil {
		return []string{}, nil
	}
	return snap.Words, nil
}

// logChanges records registry events until the subscription closes.
func logChanges(events <-chan pubsub.Event[registry.Change]) {
	for event := range events {
		switch event.Type {
		case pubsub.ResetEvent:
			log.Debug(log.CatRegistry, "Registry reset")
		case pubsub.IngestedEvent:
			if len(event.Payload.Admitted) > 0 {
				log.Debug(log.CatRegistry, "Words admitted", "admitted", len(event.Payload.Admitted), "total", event.Payload.Total)
			}
		}
	}
}
