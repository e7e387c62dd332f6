// Package testutil provides shared test helpers for the evaluation core's
// tests: loading (input, expected normal form) fixture pairs from disk.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhall-core/evalcore/pkg/syntax"
)

// FixturesDir is the relative path from a pkg/core test file to the shared
// normalization fixtures.
const FixturesDir = "../../testdata/fixtures"

// Fixture is one normalization test case: Input normalizes to Expected.
// Name and Tags are metadata only, carried through for readable test output
// and for selecting a subset of fixtures, mirroring the teacher's
// Scenario.Meta.Tags.
type Fixture struct {
	Name     string   `json:"name"`
	Tags     []string `json:"tags,omitempty"`
	Input    syntax.Expr
	Expected syntax.Expr
}

type fixtureFile struct {
	Name     string          `json:"name"`
	Tags     []string        `json:"tags,omitempty"`
	Input    json.RawMessage `json:"input"`
	Expected json.RawMessage `json:"expected"`
}

// LoadFixture loads a single fixture from a JSON file shaped
// {"name": ..., "tags": [...], "input": <Expr>, "expected": <Expr>}.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ff fixtureFile
	if err := json.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("testutil: %s: %w", path, err)
	}
	input, err := syntax.ExprFromJSON(ff.Input)
	if err != nil {
		return nil, fmt.Errorf("testutil: %s: input: %w", path, err)
	}
	expected, err := syntax.ExprFromJSON(ff.Expected)
	if err != nil {
		return nil, fmt.Errorf("testutil: %s: expected: %w", path, err)
	}
	return &Fixture{Name: ff.Name, Tags: ff.Tags, Input: input, Expected: expected}, nil
}

// LoadFixtures loads every *.json fixture file directly under root.
func LoadFixtures(root string) ([]*Fixture, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var fixtures []*Fixture
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		f, err := LoadFixture(filepath.Join(root, e.Name()))
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}
