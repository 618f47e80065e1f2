package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/cryptowords/internal/ingest"
	"github.com/zjrosen/cryptowords/internal/log"
	"github.com/zjrosen/cryptowords/internal/output"
	"github.com/zjrosen/cryptowords/internal/registry"
	"github.com/zjrosen/cryptowords/internal/runs/domain"
	"github.com/zjrosen/cryptowords/internal/tracing"
)

var (
	extractFormat     string
	extractSave       bool
	extractName       string
	extractLengthUnit string
)

var extractCmd = &cobra.Command{
	Use:   "extract [file...]",
	Short: "Print the message and its candidate words",
	Long: `Read each file in order (standard input when none are given or for "-"),
then print the original message and the candidate words, longest first.

Examples:
  # Extract from a file
  cryptowords extract message.txt

  # Pipe a message in and get JSON
  cat message.txt | cryptowords extract -f json

  # Keep the result for later comparison
  cryptowords extract message.txt --save --name first-pass`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "output format: text, json or yaml (default from config)")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "save the run to the history database")
	extractCmd.Flags().StringVar(&extractName, "name", "", "name for the saved run (implies --save)")
	extractCmd.Flags().StringVar(&extractLengthUnit, "length-unit", "", "measure word length in runes or graphemes (default from config)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) (err error) {
	ctx, span := provider.Tracer().Start(cmd.Context(), tracing.SpanExtract)
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	format, err := resolveFormat(extractFormat)
	if err != nil {
		return err
	}
	unit, err := resolveLengthUnit(extractLengthUnit)
	if err != nil {
		return err
	}

	reg, err := newRegistry(unit, nil)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{ingest.StdinPath}
	}
	lines, err := ingest.Files(ctx, paths, cmd.InOrStdin(), reg)
	if err != nil {
		return err
	}

	snap := reg.Snapshot()
	span.SetAttributes(
		attribute.Int(tracing.AttrLines, lines),
		attribute.Int(tracing.AttrCandidates, len(snap.Words)),
	)
	log.Info(log.CatCLI, "Extracted candidates", "files", len(paths), "lines", lines, "candidates", len(snap.Words))

	if extractSave || extractName != "" {
		run, err := saveRun(ctx, snap, extractName, unit)
		if err != nil {
			return err
		}
		// Status goes to stderr so stdout stays machine readable.
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Saved run %s\n", run.ShortGUID())
	}

	return output.Render(cmd.OutOrStdout(), format, snap)
}

func saveRun(ctx context.Context, snap registry.Snapshot, name string, unit domain.LengthUnit) (run *domain.Run, err error) {
	_, span := provider.Tracer().Start(ctx, tracing.SpanSaveRun)
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	db, err := openDB()
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	run = domain.NewRun(uuid.NewString(), name, snap.Message, snap.Words, unit)
	span.SetAttributes(attribute.String(tracing.AttrRunGUID, run.GUID()))

	if err := db.RunRepository().Save(run); err != nil {
		log.ErrorErr(log.CatDB, "Failed to save run", err, "guid", run.GUID())
		return nil, fmt.Errorf("saving run: %w", err)
	}
	log.Info(log.CatDB, "Saved run", "guid", run.GUID(), "words", run.WordCount())
	return run, nil
}
