// Package output renders extraction results and saved runs for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/cryptowords/internal/config"
	"github.com/zjrosen/cryptowords/internal/registry"
	"github.com/zjrosen/cryptowords/internal/runs/domain"
)

// Result is the serialized form of one extraction.
type Result struct {
	Message string   `json:"message" yaml:"message"`
	Words   []string `json:"words" yaml:"words"`
}

// RunResult is the serialized form of a saved run.
type RunResult struct {
	GUID       string    `json:"guid" yaml:"guid"`
	Name       string    `json:"name,omitempty" yaml:"name,omitempty"`
	LengthUnit string    `json:"length_unit" yaml:"length_unit"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	Message    string    `json:"message" yaml:"message"`
	Words      []string  `json:"words" yaml:"words"`
}

// Render writes snap to w in the given format ("text", "json" or "yaml").
func Render(w io.Writer, format string, snap registry.Snapshot) error {
	result := Result{Message: snap.Message, Words: nonNil(snap.Words)}

	switch format {
	case "", config.FormatText:
		return renderText(w, snap.Message, snap.Words)
	case config.FormatJSON:
		return encodeJSON(w, result)
	case config.FormatYAML:
		return encodeYAML(w, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderRun writes a saved run to w in the given format.
func RenderRun(w io.Writer, format string, run *domain.Run) error {
	result := RunResult{
		GUID:       run.GUID(),
		Name:       run.Name(),
		LengthUnit: string(run.LengthUnit()),
		CreatedAt:  run.CreatedAt().UTC(),
		Message:    run.Message(),
		Words:      nonNil(run.Words()),
	}

	switch format {
	case "", config.FormatText:
		s := newStyles(w)
		title := run.GUID()
		if run.Name() != "" {
			title = fmt.Sprintf("%s (%s)", run.Name(), run.GUID())
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", s.heading.Render(title),
			s.subtle.Render(fmt.Sprintf("%s · %s", run.CreatedAt().Local().Format(time.DateTime), run.LengthUnit()))); err != nil {
			return err
		}
		return renderText(w, run.Message(), run.Words())
	case config.FormatJSON:
		return encodeJSON(w, result)
	case config.FormatYAML:
		return encodeYAML(w, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderText(w io.Writer, message string, words []string) error {
	s := newStyles(w)

	var b strings.Builder
	b.WriteString(s.heading.Render("Message"))
	b.WriteString("\n")
	b.WriteString(message)
	if message != "" && !strings.HasSuffix(message, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.heading.Render(fmt.Sprintf("Candidates (%d)", len(words))))
	b.WriteString("\n")
	for _, word := range words {
		b.WriteString(word)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func nonNil(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
