package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var errNoInput = errors.New("no request body, use --data or --file")

// runner decodes a request body and calls one endpoint
type runner func(ctx context.Context, raw []byte) (any, error)

type validator interface {
	Validate() error
}

func bind[P, R any](fn func(ctx context.Context, p P) (R, error)) runner {
	return func(ctx context.Context, raw []byte) (any, error) {
		var p P
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("can't parse request body: %w", err)
		}
		if v, ok := any(p).(validator); ok {
			if err := v.Validate(); err != nil {
				return nil, err
			}
		}
		return fn(ctx, p)
	}
}

// runWith builds the RunE of a command whose body comes from --data or --file
func runWith(build func() runner) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd.InOrStdin())
		if err != nil {
			return err
		}
		res, err := build()(cmd.Context(), raw)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), outputFormat, res)
	}
}

func readInput(stdin io.Reader) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	switch {
	case inputData != "":
		raw = []byte(inputData)
	case inputFile == "-":
		raw, err = io.ReadAll(stdin)
	case inputFile != "":
		raw, err = os.ReadFile(inputFile)
	default:
		return nil, errNoInput
	}
	if err != nil {
		return nil, fmt.Errorf("can't read request body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errNoInput
	}
	return raw, nil
}

func validateFormat(format string) error {
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

// render prints v as indented json, or as yaml through its json form so field names match
func render(w io.Writer, format string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if format == formatJSON {
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
