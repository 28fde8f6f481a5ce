package util

import (
	"encoding/json"
	"testing"
)

func TestAnyToFloat(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		want   float64
		wantOk bool
	}{
		{name: "float64", input: float64(2.5), want: 2.5, wantOk: true},
		{name: "float32", input: float32(1.5), want: 1.5, wantOk: true},
		{name: "int", input: 7, want: 7, wantOk: true},
		{name: "int32", input: int32(9), want: 9, wantOk: true},
		{name: "int64", input: int64(-3), want: -3, wantOk: true},
		{name: "json number", input: json.Number("4.25"), want: 4.25, wantOk: true},
		{name: "numeric string", input: "12.5", want: 12.5, wantOk: true},
		{name: "padded string", input: " 7 ", want: 7, wantOk: true},
		{name: "non numeric string", input: "seven", wantOk: false},
		{name: "empty string", input: "", wantOk: false},
		{name: "nil", input: nil, wantOk: false},
		{name: "bool", input: true, wantOk: false},
		{name: "map", input: map[string]interface{}{}, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AnyToFloat(tt.input)
			if ok != tt.wantOk {
				t.Errorf("AnyToFloat() ok = %v, want %v", ok, tt.wantOk)
				return
			}
			if !tt.wantOk {
				return
			}
			if got != tt.want {
				t.Errorf("AnyToFloat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	// Runtime variables so the "float artifact" sum happens in float64
	// arithmetic; as a constant expression 0.1 + 0.2 folds exactly to 0.3.
	a, b := 0.1, 0.2
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "integer", input: 28, want: "28"},
		{name: "negative", input: -6, want: "-6"},
		{name: "fraction", input: 2.5, want: "2.5"},
		{name: "zero", input: 0, want: "0"},
		{name: "million", input: 1e6, want: "1000000"},
		{name: "repeating", input: 1.0 / 3.0, want: "0.3333333333333333"},
		{name: "float artifact", input: a + b, want: "0.30000000000000004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFloat(tt.input); got != tt.want {
				t.Errorf("FormatFloat() = %q, want %q", got, tt.want)
			}
		})
	}
}
