package collection

import (
	"reflect"
	"testing"
)

func TestNormalizeDedupsModelIDs(t *testing.T) {
	c := Collection{Name: "Benchy", ModelIDs: []string{"m1", "m2", "m1", "m3", "m2"}}
	c.Normalize()
	want := []string{"m1", "m2", "m3"}
	if !reflect.DeepEqual(c.ModelIDs, want) {
		t.Fatalf("expected %v, got %v", want, c.ModelIDs)
	}
}

func TestNormalizeCategorySentinel(t *testing.T) {
	c := Collection{Name: "Benchy", Category: "  "}
	c.Normalize()
	if c.Category != DefaultCategory {
		t.Fatalf("expected %q, got %q", DefaultCategory, c.Category)
	}

	c = Collection{Name: "Benchy", Category: "Boats"}
	c.Normalize()
	if c.Category != "Boats" {
		t.Fatalf("category should survive normalize, got %q", c.Category)
	}
}

func TestNormalizeKeepsTagOrder(t *testing.T) {
	c := Collection{Name: "Benchy", Tags: []string{"calibration", " boat ", "calibration", ""}}
	c.Normalize()
	want := []string{"calibration", "boat"}
	if !reflect.DeepEqual(c.Tags, want) {
		t.Fatalf("expected %v, got %v", want, c.Tags)
	}
}

func TestValidate(t *testing.T) {
	if err := (Collection{Name: "   "}).Validate(); err == nil {
		t.Fatalf("expected name validation error")
	}
	if err := (Collection{ID: "a", Name: "Loop", ParentID: "a"}).Validate(); err == nil {
		t.Fatalf("expected self-parent validation error")
	}
	if err := (Collection{ID: "a", Name: "Fine", ParentID: "b"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := Collection{Name: "Benchy", ModelIDs: []string{"m1"}, Tags: []string{"a"}, Images: []string{"i1"}}
	clone := c.Clone()
	clone.ModelIDs[0] = "changed"
	clone.Tags[0] = "changed"
	clone.Images[0] = "changed"
	if c.ModelIDs[0] != "m1" || c.Tags[0] != "a" || c.Images[0] != "i1" {
		t.Fatalf("clone mutated the original: %+v", c)
	}
}
