// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package geoip

import "testing"

func TestResolver_Disabled(t *testing.T) {
	r, err := NewResolver("")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	if r.Enabled() {
		t.Error("resolver with empty path should be disabled")
	}
	if got := r.Country("8.8.8.8"); got != "" {
		t.Errorf("Country on disabled resolver = %q, want empty", got)
	}
	if err := r.Reload(); err != nil {
		t.Errorf("Reload on disabled resolver: %v", err)
	}
}

func TestResolver_MissingDatabase(t *testing.T) {
	r, err := NewResolver("/nonexistent/GeoLite2-Country.mmdb")
	if err == nil {
		t.Fatal("expected error for missing database file")
	}
	if r.Enabled() {
		t.Error("resolver should be disabled after load failure")
	}
}

func TestResolver_Country_Local(t *testing.T) {
	r, _ := NewResolver("")

	tests := []struct {
		ip   string
		want string
	}{
		{"127.0.0.1", "LOCAL"},
		{"::1", "LOCAL"},
		{"10.1.2.3", "LOCAL"},
		{"172.16.5.5", "LOCAL"},
		{"192.168.1.100", "LOCAL"},
		{"fe80::1", "LOCAL"},
		{"fc00::1", "LOCAL"},
		{"not-an-ip", ""},
		{"", ""},
		{"8.8.8.8", ""}, // public IP, no database loaded
	}
	for _, tt := range tests {
		if got := r.Country(tt.ip); got != tt.want {
			t.Errorf("Country(%q) = %q, want %q", tt.ip, got, tt.want)
		}
	}
}

func TestCountryName(t *testing.T) {
	tests := []struct {
		code, lang, want string
	}{
		{"YE", "en", "Yemen"},
		{"YE", "ar", "اليمن"},
		{"LOCAL", "en", "Local"},
		{"SA", "ar", "السعودية"},
		{"ZZ", "en", "ZZ"},
		{"ZZ", "ar", "ZZ"},
	}
	for _, tt := range tests {
		if got := CountryName(tt.code, tt.lang); got != tt.want {
			t.Errorf("CountryName(%q, %q) = %q, want %q", tt.code, tt.lang, got, tt.want)
		}
	}
}

func TestResolver_Close(t *testing.T) {
	r, _ := NewResolver("")
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if r.Enabled() {
		t.Error("resolver should stay disabled after Close")
	}
}
