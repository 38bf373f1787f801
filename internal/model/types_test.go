// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"reflect"
	"testing"
)

func TestStringListValue(t *testing.T) {
	t.Run("nil encodes as empty array", func(t *testing.T) {
		var l StringList
		v, err := l.Value()
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		if v != "[]" {
			t.Errorf("Value = %q, want %q", v, "[]")
		}
	})

	t.Run("elements preserve order", func(t *testing.T) {
		l := StringList{"go", "sql", "redis"}
		v, err := l.Value()
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		if v != `["go","sql","redis"]` {
			t.Errorf("Value = %q", v)
		}
	})
}

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want StringList
	}{
		{"null column", nil, StringList{}},
		{"empty bytes", []byte{}, StringList{}},
		{"json null", []byte("null"), StringList{}},
		{"bytes", []byte(`["a","b"]`), StringList{"a", "b"}},
		{"string", `["عربي","en"]`, StringList{"عربي", "en"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			if err := l.Scan(tt.src); err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if l == nil {
				t.Fatal("Scan produced nil list")
			}
			if !reflect.DeepEqual(l, tt.want) {
				t.Errorf("Scan = %v, want %v", l, tt.want)
			}
		})
	}

	t.Run("rejects malformed json", func(t *testing.T) {
		var l StringList
		if err := l.Scan([]byte(`{"not":"a list"}`)); err == nil {
			t.Error("expected error for non-array payload")
		}
	})

	t.Run("rejects unsupported source type", func(t *testing.T) {
		var l StringList
		if err := l.Scan(42); err == nil {
			t.Error("expected error for int source")
		}
	})
}

func TestStringListClone(t *testing.T) {
	orig := StringList{"a", "b"}
	clone := orig.Clone()
	clone[0] = "z"
	if orig[0] != "a" {
		t.Error("Clone shares backing storage with original")
	}

	var empty StringList
	if got := empty.Clone(); got == nil {
		t.Error("Clone of nil list should be non-nil")
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	t.Run("nil encodes as empty object", func(t *testing.T) {
		var m Metadata
		v, err := m.Value()
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		if v != "{}" {
			t.Errorf("Value = %q, want %q", v, "{}")
		}
	})

	t.Run("null column scans to empty map", func(t *testing.T) {
		var m Metadata
		if err := m.Scan(nil); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		if m == nil || len(m) != 0 {
			t.Errorf("Scan = %v, want empty map", m)
		}
	})

	t.Run("values pass through", func(t *testing.T) {
		m := Metadata{"browser": "Chrome", "bot": false}
		v, err := m.Value()
		if err != nil {
			t.Fatalf("Value: %v", err)
		}

		var got Metadata
		if err := got.Scan(v); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		if got["browser"] != "Chrome" {
			t.Errorf("browser = %v", got["browser"])
		}
		if got["bot"] != false {
			t.Errorf("bot = %v", got["bot"])
		}
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		var m Metadata
		if err := m.Scan([]byte(`[1,2]`)); err == nil {
			t.Error("expected error for non-object payload")
		}
	})
}

func TestIsValidAnalyticsType(t *testing.T) {
	for _, valid := range []string{AnalyticsTypePageView, AnalyticsTypeContactForm, AnalyticsTypeProjectView} {
		if !IsValidAnalyticsType(valid) {
			t.Errorf("IsValidAnalyticsType(%q) = false", valid)
		}
	}
	for _, invalid := range []string{"", "click", "PAGE_VIEW"} {
		if IsValidAnalyticsType(invalid) {
			t.Errorf("IsValidAnalyticsType(%q) = true", invalid)
		}
	}
}

func TestIsValidCvType(t *testing.T) {
	for _, valid := range []string{CvTypeEducation, CvTypeExperience, CvTypeSkill, CvTypeCertification} {
		if !IsValidCvType(valid) {
			t.Errorf("IsValidCvType(%q) = false", valid)
		}
	}
	if IsValidCvType("award") {
		t.Error(`IsValidCvType("award") = true`)
	}
}
