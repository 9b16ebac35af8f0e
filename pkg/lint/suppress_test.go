package lint_test

import (
	"context"
	"testing"

	"github.com/yaklabco/goswiftlint/pkg/lint"
	swiftparser "github.com/yaklabco/goswiftlint/pkg/parser/swift"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

func parseSnapshot(t *testing.T, source string) *swast.FileSnapshot {
	t.Helper()

	file, err := swiftparser.NewParser().Parse(context.Background(), "test.swift", []byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return file
}

func TestComputeDisabledRegions(t *testing.T) {
	t.Parallel()

	t.Run("paired disable and enable", func(t *testing.T) {
		t.Parallel()

		source := "let a = 1\n" +
			"// goswiftlint:disable force-cast\n" +
			"let b = x as! Int\n" +
			"// goswiftlint:enable force-cast\n" +
			"let c = 3\n"
		file := parseSnapshot(t, source)

		regions := lint.ComputeDisabledRegions(file)
		if len(regions) != 1 {
			t.Fatalf("got %d regions, want 1: %+v", len(regions), regions)
		}

		r := regions[0]
		if len(r.Rules) != 1 || r.Rules[0] != "force-cast" {
			t.Errorf("region rules = %v", r.Rules)
		}
		// The as! on the middle line is inside the region.
		inside := len("let a = 1\n// goswiftlint:disable force-cast\nlet b = x ")
		if !lint.Suppressed(regions, "force-cast", inside) {
			t.Error("offset inside region should be suppressed")
		}
		// The line after the enable is not.
		if lint.Suppressed(regions, "force-cast", len(source)-3) {
			t.Error("offset past enable should not be suppressed")
		}
		// Other rules are unaffected.
		if lint.Suppressed(regions, "line-length", inside) {
			t.Error("unrelated rule should not be suppressed")
		}
	})

	t.Run("disable all extends to end of file", func(t *testing.T) {
		t.Parallel()

		source := "let a = 1\n// goswiftlint:disable\nlet b = 2\n"
		file := parseSnapshot(t, source)

		regions := lint.ComputeDisabledRegions(file)
		if len(regions) != 1 {
			t.Fatalf("got %d regions, want 1", len(regions))
		}
		if regions[0].Rules != nil {
			t.Errorf("wildcard region should have nil rules, got %v", regions[0].Rules)
		}
		if regions[0].End != len(source) {
			t.Errorf("open region end = %d, want %d", regions[0].End, len(source))
		}
		if !lint.Suppressed(regions, "anything", len(source)-1) {
			t.Error("every rule should be suppressed in a wildcard region")
		}
	})

	t.Run("legacy swiftlint prefix accepted", func(t *testing.T) {
		t.Parallel()

		source := "// swiftlint:disable todo\n// TODO later\n"
		file := parseSnapshot(t, source)

		regions := lint.ComputeDisabledRegions(file)
		if len(regions) != 1 {
			t.Fatalf("got %d regions, want 1", len(regions))
		}
		if len(regions[0].Rules) != 1 || regions[0].Rules[0] != "todo" {
			t.Errorf("region rules = %v", regions[0].Rules)
		}
	})

	t.Run("multiple rules in one directive", func(t *testing.T) {
		t.Parallel()

		source := "// goswiftlint:disable force-cast, todo\nlet x = 1\n"
		file := parseSnapshot(t, source)

		regions := lint.ComputeDisabledRegions(file)
		if len(regions) != 2 {
			t.Fatalf("got %d regions, want 2", len(regions))
		}
		if !lint.Suppressed(regions, "force-cast", 45) || !lint.Suppressed(regions, "todo", 45) {
			t.Error("both named rules should be suppressed")
		}
	})

	t.Run("mismatched enable is ignored", func(t *testing.T) {
		t.Parallel()

		source := "// goswiftlint:enable force-cast\nlet x = 1\n"
		file := parseSnapshot(t, source)

		regions := lint.ComputeDisabledRegions(file)
		if len(regions) != 0 {
			t.Errorf("got %d regions, want 0", len(regions))
		}
	})

	t.Run("non-directive comments are not directives", func(t *testing.T) {
		t.Parallel()

		source := "// just a note about goswiftlint\n// goswiftlint:disarm\nlet x = 1\n"
		file := parseSnapshot(t, source)

		regions := lint.ComputeDisabledRegions(file)
		if len(regions) != 0 {
			t.Errorf("got %d regions, want 0: %+v", len(regions), regions)
		}
	})

	t.Run("block comment directive", func(t *testing.T) {
		t.Parallel()

		source := "/* goswiftlint:disable all */\nlet x = 1\n"
		file := parseSnapshot(t, source)

		regions := lint.ComputeDisabledRegions(file)
		if len(regions) != 1 || regions[0].Rules != nil {
			t.Fatalf("regions = %+v, want one wildcard region", regions)
		}
	})
}

func TestSuppressedRange(t *testing.T) {
	t.Parallel()

	regions := []lint.DisabledRegion{
		{Start: 10, End: 20, Rules: []string{"trailing-whitespace"}},
		{Start: 30, End: 40},
	}

	tests := []struct {
		name       string
		ruleID     string
		start, end int
		want       bool
	}{
		{"edit inside named region", "trailing-whitespace", 12, 15, true},
		{"edit overlapping region start", "trailing-whitespace", 5, 11, true},
		{"edit for other rule", "line-length", 12, 15, false},
		{"edit before region", "trailing-whitespace", 0, 10, false},
		{"edit in wildcard region", "anything", 35, 36, true},
		{"edit after all regions", "trailing-whitespace", 40, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := lint.SuppressedRange(regions, tt.ruleID, tt.start, tt.end)
			if got != tt.want {
				t.Errorf("SuppressedRange = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisabledRegionCovers(t *testing.T) {
	t.Parallel()

	named := lint.DisabledRegion{Start: 10, End: 20, Rules: []string{"todo"}}
	if !named.Covers("todo", 10) {
		t.Error("start offset should be covered")
	}
	if named.Covers("todo", 20) {
		t.Error("end offset is exclusive")
	}
	if named.Covers("force-cast", 15) {
		t.Error("other rule should not be covered")
	}

	wildcard := lint.DisabledRegion{Start: 0, End: 5}
	if !wildcard.Covers("any-rule", 3) {
		t.Error("wildcard region should cover every rule")
	}
}
