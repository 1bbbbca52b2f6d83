// Package render writes resolution results as text, JSON, or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katalvlaran/wordchain/core"
)

// ErrUnknownFormat is returned by Write for an unsupported Format.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Color modes accepted by ShouldUseColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// NoChains is printed in text mode when nothing was found.
const NoChains = "no word chain found"

// Options configures Write.
type Options struct {
	Format Format // FormatText when empty
	Color  bool   // style text output
}

// Document is the structured form of a resolution result.
type Document struct {
	Begin  string     `json:"begin" yaml:"begin"`
	End    string     `json:"end" yaml:"end"`
	Length int        `json:"length" yaml:"length"` // words per chain, 0 when none
	Count  int        `json:"count" yaml:"count"`
	Chains [][]string `json:"chains" yaml:"chains"`
}

// NewDocument collects chains into a Document. Chains is never nil.
func NewDocument(begin, end string, chains []core.Chain) Document {
	doc := Document{Begin: begin, End: end, Count: len(chains), Chains: make([][]string, 0, len(chains))}
	for _, c := range chains {
		doc.Chains = append(doc.Chains, c.Words())
	}
	if len(chains) > 0 {
		doc.Length = chains[0].Len()
	}

	return doc
}

// Write renders doc to w.
func Write(w io.Writer, doc Document, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, doc, opts.Color)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// writeText prints "List <index>: <words>" per chain.
func writeText(w io.Writer, doc Document, color bool) error {
	label := func(s string) string { return s }
	muted := label
	if color {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI256)
		labelStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
		mutedStyle := r.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
		label = func(s string) string { return labelStyle.Render(s) }
		muted = func(s string) string { return mutedStyle.Render(s) }
	}

	if len(doc.Chains) == 0 {
		_, err := fmt.Fprintln(w, muted(NoChains))
		return err
	}
	for i, words := range doc.Chains {
		if _, err := fmt.Fprintf(w, "%s %s\n", label(fmt.Sprintf("List %d:", i)), strings.Join(words, ",")); err != nil {
			return err
		}
	}

	return nil
}

// ShouldUseColor decides whether output to fd is styled. "always" and
// "never" are absolute; "auto" honours NO_COLOR, CLICOLOR_FORCE, CLICOLOR
// and falls back to terminal detection.
func ShouldUseColor(mode string, fd uintptr) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR_FORCE")) == "1" {
		return true
	}
	if strings.TrimSpace(os.Getenv("CLICOLOR")) == "0" {
		return false
	}

	return term.IsTerminal(int(fd))
}
