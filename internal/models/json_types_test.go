package models

import (
	"reflect"
	"testing"
)

func TestJSONValueScan(t *testing.T) {
	original := JSON{"source": "editor", "attempt": float64(2)}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var scanned JSON
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !reflect.DeepEqual(scanned, original) {
		t.Errorf("roundtrip = %v, want %v", scanned, original)
	}
}

func TestJSONNilValue(t *testing.T) {
	var j JSON
	value, err := j.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if string(value.([]byte)) != "{}" {
		t.Errorf("nil Value() = %s, want {}", value)
	}

	var scanned JSON
	if err := scanned.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if scanned != nil {
		t.Errorf("Scan(nil) = %v, want nil", scanned)
	}
}

func TestStringArrayValueScan(t *testing.T) {
	original := StringArray{"golang", "writing"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var scanned StringArray
	if err := scanned.Scan(string(value.([]byte))); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !reflect.DeepEqual(scanned, original) {
		t.Errorf("roundtrip = %v, want %v", scanned, original)
	}
}

func TestStringArrayNilValue(t *testing.T) {
	var a StringArray
	value, err := a.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if string(value.([]byte)) != "[]" {
		t.Errorf("nil Value() = %s, want []", value)
	}
}

func TestScanRejectsUnsupportedType(t *testing.T) {
	var j JSON
	if err := j.Scan(42); err == nil {
		t.Error("Scan(int) expected error, got nil")
	}

	var a StringArray
	if err := a.Scan(42); err == nil {
		t.Error("Scan(int) expected error, got nil")
	}
}
