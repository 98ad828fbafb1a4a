package dataset

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func TestGenerateCounts(t *testing.T) {
	gen := NewGenerator(42)

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			for _, count := range []int{0, 1, 7, 50} {
				records := gen.Generate(kind, count)
				if len(records) != count {
					t.Errorf("count %d: got %d records", count, len(records))
				}
			}
		})
	}
}

func TestGenerateSchemaFields(t *testing.T) {
	gen := NewGenerator(42)

	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			schema := kind.Schema()

			for i, rec := range gen.Generate(kind, 20) {
				if len(rec) != len(schema) {
					t.Errorf("record %d: %d fields, want %d",
						i, len(rec), len(schema))
				}

				for _, field := range schema {
					if _, present := rec[field]; !present {
						t.Errorf("record %d: missing field %q", i, field)
					}
				}
			}
		})
	}
}

func TestComponentRanges(t *testing.T) {
	gen := NewGenerator(7)
	records := gen.Generate(Component, 100)

	for i, rec := range records {
		mass, err := strconv.ParseFloat(rec["mass"], 64)
		if err != nil {
			t.Fatalf("record %d: bad mass %q: %v", i, rec["mass"], err)
		}
		if mass < 0.01 || mass > 2.0 {
			t.Errorf("record %d: mass %v out of [0.01, 2.0]", i, mass)
		}

		cost, err := strconv.ParseFloat(rec["cost"], 64)
		if err != nil {
			t.Fatalf("record %d: bad cost %q: %v", i, rec["cost"], err)
		}
		if cost < 0.50 || cost > 150.0 {
			t.Errorf("record %d: cost %v out of [0.50, 150.0]", i, cost)
		}

		want := fmt.Sprintf("PN-%04d", i+1)
		if rec["part_number"] != want {
			t.Errorf("record %d: part_number %q, want %q",
				i, rec["part_number"], want)
		}

		if rec["make_buy"] != "make" && rec["make_buy"] != "buy" {
			t.Errorf("record %d: make_buy %q", i, rec["make_buy"])
		}
	}
}

func TestRiskRatings(t *testing.T) {
	gen := NewGenerator(7)

	for i, rec := range gen.Generate(Risk, 100) {
		for _, field := range []string{"severity", "occurrence", "detection"} {
			v, err := strconv.Atoi(rec[field])
			if err != nil {
				t.Fatalf("record %d: bad %s %q: %v", i, field, rec[field], err)
			}
			if v < 1 || v > 10 {
				t.Errorf("record %d: %s = %d out of [1,10]", i, field, v)
			}
		}

		if rec["type"] != "design" && rec["type"] != "process" {
			t.Errorf("record %d: type %q", i, rec["type"])
		}
	}
}

func TestRequirementVocabularies(t *testing.T) {
	gen := NewGenerator(3)

	for i, rec := range gen.Generate(Requirement, 50) {
		if !slices.Contains(reqTypes, rec["type"]) {
			t.Errorf("record %d: type %q", i, rec["type"])
		}
		if !slices.Contains(priorities, rec["priority"]) {
			t.Errorf("record %d: priority %q", i, rec["priority"])
		}
		if !slices.Contains(statuses, rec["status"]) {
			t.Errorf("record %d: status %q", i, rec["status"])
		}
		if !slices.Contains(categories, rec["category"]) {
			t.Errorf("record %d: category %q", i, rec["category"])
		}

		tags := strings.Split(rec["tags"], ",")
		if len(tags) != 2 {
			t.Errorf("record %d: tags %q, want two entries", i, rec["tags"])
		}
	}
}

func TestTestVocabularies(t *testing.T) {
	gen := NewGenerator(3)

	for i, rec := range gen.Generate(Test, 50) {
		if !slices.Contains(testTypes, rec["type"]) {
			t.Errorf("record %d: type %q", i, rec["type"])
		}
		if !slices.Contains(testLevels, rec["level"]) {
			t.Errorf("record %d: level %q", i, rec["level"])
		}
		if !slices.Contains(testMethods, rec["method"]) {
			t.Errorf("record %d: method %q", i, rec["method"])
		}
		if !strings.HasSuffix(rec["estimated_duration"], " min") {
			t.Errorf("record %d: estimated_duration %q",
				i, rec["estimated_duration"])
		}
	}
}

func TestSupplierDerivedFields(t *testing.T) {
	gen := NewGenerator(3)
	records := gen.Generate(Supplier, 12)

	for i, rec := range records {
		want := fmt.Sprintf("SUP%02d", i+1)
		if rec["short_name"] != want {
			t.Errorf("record %d: short_name %q, want %q",
				i, rec["short_name"], want)
		}

		if !strings.HasSuffix(rec["contact_email"], ".example") {
			t.Errorf("record %d: contact_email %q not a placeholder",
				i, rec["contact_email"])
		}
		if !strings.HasSuffix(rec["website"], ".example") {
			t.Errorf("record %d: website %q not a placeholder",
				i, rec["website"])
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			first := NewGenerator(99).Generate(kind, 10)
			second := NewGenerator(99).Generate(kind, 10)

			if !reflect.DeepEqual(first, second) {
				t.Error("same seed produced different records")
			}
		})
	}
}

func TestGenerateUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown kind")
		}
	}()

	NewGenerator(1).Generate(Kind("widget"), 1)
}
