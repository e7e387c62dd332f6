package core_test

import (
	"testing"

	"github.com/dhall-core/evalcore/internal/testutil"
	"github.com/dhall-core/evalcore/pkg/core"
)

// TestConformance normalizes every fixture under testdata/fixtures and
// checks the result against its expected normal form, mirroring the
// teacher's scenario-driven conformance test but over normalization
// fixtures instead of full program runs.
func TestConformance(t *testing.T) {
	fixtures, err := testutil.LoadFixtures(testutil.FixturesDir)
	if err != nil {
		t.Fatalf("failed to load fixtures: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, fx := range fixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			got, err := core.Normalize(fx.Input, core.Limits{MaxSteps: 10000, MaxQuoteDepth: 1000})
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if !testutil.ExprEqual(got, fx.Expected) {
				t.Errorf("normal form mismatch:\n got  %#v\n want %#v", got, fx.Expected)
			}
		})
	}
}

// TestNormalizeIdempotent checks that normalizing an already-normal term
// returns it unchanged, and that normalizing a normal form twice gives the
// same result as normalizing it once.
func TestNormalizeIdempotent(t *testing.T) {
	fixtures, err := testutil.LoadFixtures(testutil.FixturesDir)
	if err != nil {
		t.Fatalf("failed to load fixtures: %v", err)
	}

	for _, fx := range fixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			again, err := core.Normalize(fx.Expected, core.Limits{MaxSteps: 10000, MaxQuoteDepth: 1000})
			if err != nil {
				t.Fatalf("Normalize(Expected): %v", err)
			}
			if !testutil.ExprEqual(again, fx.Expected) {
				t.Errorf("normalizing an already-normal term changed it:\n got  %#v\n want %#v", again, fx.Expected)
			}
		})
	}
}

// TestNormalizeStepLimit checks that a MaxSteps of zero never aborts a
// well-behaved term, and that a deliberately tiny step limit surfaces an
// InternalError rather than silently truncating the result.
func TestNormalizeStepLimit(t *testing.T) {
	fx, err := testutil.LoadFixture(testutil.FixturesDir + "/list_fold_sum.json")
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}

	if _, err := core.Normalize(fx.Input, core.Limits{}); err != nil {
		t.Fatalf("Normalize with no limit: %v", err)
	}

	_, err = core.Normalize(fx.Input, core.Limits{MaxSteps: 1})
	if err == nil {
		t.Fatal("expected a step-limit error, got nil")
	}
	if _, ok := err.(*core.InternalError); !ok {
		t.Fatalf("got error of type %T, want *core.InternalError", err)
	}
}
