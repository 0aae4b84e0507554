//go:build js && wasm

package main

import (
	"strings"
	"syscall/js"
	"testing"
)

func TestParseArgsRejectsBadTypes(t *testing.T) {
	samples := js.ValueOf([]any{0.0, 1.0, 0.0, -1.0})
	tests := []struct {
		name string
		args []js.Value
		want string
	}{
		{name: "too few", args: []js.Value{samples}, want: "expected"},
		{name: "undefined samples", args: []js.Value{js.Undefined(), js.ValueOf(0.1), js.ValueOf(1)}, want: "samples"},
		{name: "number samples", args: []js.Value{js.ValueOf(3), js.ValueOf(0.1), js.ValueOf(1)}, want: "samples"},
		{name: "string height", args: []js.Value{samples, js.ValueOf("high"), js.ValueOf(1)}, want: "minHeight"},
		{name: "undefined distance", args: []js.Value{samples, js.ValueOf(0.1), js.Undefined()}, want: "minDistance"},
		{name: "negative distance", args: []js.Value{samples, js.ValueOf(0.1), js.ValueOf(-2)}, want: "minDistance"},
		{name: "string sample", args: []js.Value{js.ValueOf([]any{0.0, "x"}), js.ValueOf(0.1), js.ValueOf(1)}, want: "samples[1]"},
		{name: "bad limit", args: []js.Value{samples, js.ValueOf(0.1), js.ValueOf(1), js.ValueOf(map[string]any{"limit": "half"})}, want: "limit"},
	}

	for _, tt := range tests {
		_, _, _, _, msg := parseArgs(tt.args)
		if !strings.Contains(msg, tt.want) {
			t.Fatalf("%s: message=%q, want it to contain %q", tt.name, msg, tt.want)
		}
	}
}

func TestParseArgsAcceptsFloat32Array(t *testing.T) {
	arr := js.Global().Get("Float32Array").New(4)
	arr.SetIndex(1, 1)
	arr.SetIndex(3, -1)

	samples, minHeight, minDistance, opts, msg := parseArgs([]js.Value{
		arr, js.ValueOf(0.5), js.ValueOf(1), js.ValueOf(map[string]any{"limit": "nyquist", "maxPeaks": 2}),
	})
	if msg != "" {
		t.Fatalf("unexpected error %q", msg)
	}
	if len(samples) != 4 || samples[1] != 1 || samples[3] != -1 {
		t.Fatalf("samples=%v", samples)
	}
	if minHeight != 0.5 || minDistance != 1 || len(opts) != 2 {
		t.Fatalf("minHeight=%v minDistance=%d opts=%d", minHeight, minDistance, len(opts))
	}
}
