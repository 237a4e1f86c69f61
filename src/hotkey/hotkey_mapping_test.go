package hotkey

import (
	"reflect"
	"testing"
)

func TestKeyNameToRawcodes(t *testing.T) {
	tests := []struct {
		keyName  string
		expected []uint16
	}{
		// Modifier keys
		{"ctrl", []uint16{162, 163}},
		{"alt", []uint16{164, 165}},
		{"shift", []uint16{160, 161}},
		{"win", []uint16{91, 92}},
		{"cmd", []uint16{91, 92}},

		// Letter keys
		{"a", []uint16{65}},
		{"q", []uint16{81}},
		{"z", []uint16{90}},

		// Number keys
		{"0", []uint16{48}},
		{"9", []uint16{57}},

		// Function keys
		{"f1", []uint16{112}},
		{"f12", []uint16{123}},
		{"f24", []uint16{135}},

		// Special keys
		{"space", []uint16{32}},
		{"enter", []uint16{13}},
		{"esc", []uint16{27}},

		// Unknown keys
		{"unknown", nil},
		{"f25", nil},
		{"f0", nil},
	}

	for _, tt := range tests {
		t.Run(tt.keyName, func(t *testing.T) {
			got := keyNameToRawcodes(tt.keyName)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("keyNameToRawcodes(%q) = %v, expected %v", tt.keyName, got, tt.expected)
			}
		})
	}
}

func TestParseHotkey(t *testing.T) {
	tests := []struct {
		config   string
		expected []string
	}{
		{"F12", []string{"f12"}},
		{"Ctrl+Alt+Q", []string{"ctrl", "alt", "q"}},
		{"Win+S", []string{"cmd", "s"}},
		{" Shift + F5 ", []string{"shift", "f5"}},
	}

	for _, tt := range tests {
		got := parseHotkey(tt.config)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("parseHotkey(%q) = %v, expected %v", tt.config, got, tt.expected)
		}
	}
}
