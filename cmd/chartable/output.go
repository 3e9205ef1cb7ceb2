package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/symchar/character"
	"github.com/katalvlaran/symchar/partition"
	"gopkg.in/yaml.v3"
)

// valueResult is the structured form of a single χ_λ(ρ).
type valueResult struct {
	Lambda partition.Partition `json:"lambda" yaml:"lambda"`
	Rho    partition.Partition `json:"rho" yaml:"rho"`
	Value  int                 `json:"value" yaml:"value"`
}

// partitionList is the structured form of the partitions of n.
type partitionList struct {
	Degree     int                   `json:"degree" yaml:"degree"`
	Count      int                   `json:"count" yaml:"count"`
	Partitions []partition.Partition `json:"partitions" yaml:"partitions"`
}

// writeTable renders t as an aligned grid (text) or a YAML/JSON document.
func writeTable(w io.Writer, t *character.Table, format string) error {
	return encode(w, format, t, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		header := make([]string, 0, t.Size()+1)
		header = append(header, "λ \\ ρ")
		for _, rho := range t.Partitions {
			header = append(header, rho.String())
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))

		for i, lambda := range t.Partitions {
			cells := make([]string, 0, t.Size()+1)
			cells = append(cells, lambda.String())
			for _, v := range t.Values[i] {
				cells = append(cells, fmt.Sprint(v))
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}

		return tw.Flush()
	})
}

// writeValue renders a single character value.
func writeValue(w io.Writer, v valueResult, format string) error {
	return encode(w, format, v, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, v.Value)

		return err
	})
}

// writePartitions renders the partitions of one n, one per line in text mode.
func writePartitions(w io.Writer, parts []partition.Partition, format string) error {
	degree := 0
	if len(parts) > 0 {
		degree = parts[0].Sum()
	}
	list := partitionList{Degree: degree, Count: len(parts), Partitions: parts}

	return encode(w, format, list, func(w io.Writer) error {
		for _, p := range parts {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}

		return nil
	})
}

// encode dispatches on format: text uses the given renderer, yaml and json
// serialize v.
func encode(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case formatText:
		return text(w)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
