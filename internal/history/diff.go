// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"slices"
)

// Diff holds the manifest changes between two runs.
type Diff struct {
	From    int64    `json:"from" yaml:"from"`
	To      int64    `json:"to" yaml:"to"`
	Added   []string `json:"added" yaml:"added"`
	Removed []string `json:"removed" yaml:"removed"`
}

// Empty reports whether the two manifests hold the same names.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Diff compares the manifests of runs from and to.
func (s *Store) Diff(ctx context.Context, from, to int64) (Diff, error) {
	a, err := s.Get(ctx, from)
	if err != nil {
		return Diff{}, err
	}
	b, err := s.Get(ctx, to)
	if err != nil {
		return Diff{}, err
	}
	d := Compare(a.Extensions, b.Extensions)
	d.From, d.To = from, to
	return d, nil
}

// Compare returns the names in newer but not older (Added) and in older
// but not newer (Removed), each sorted and without duplicates.
func Compare(older, newer []string) Diff {
	return Diff{
		Added:   missingFrom(newer, older),
		Removed: missingFrom(older, newer),
	}
}

// missingFrom returns the distinct names of xs absent from ys.
func missingFrom(xs, ys []string) []string {
	have := make(map[string]bool, len(ys))
	for _, y := range ys {
		have[y] = true
	}
	var out []string
	for _, x := range xs {
		if !have[x] {
			out = append(out, x)
			have[x] = true
		}
	}
	slices.Sort(out)
	return out
}
