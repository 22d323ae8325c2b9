package schema

import "testing"

func TestTypeEncoder_Encode(t *testing.T) {
	tests := []struct {
		typ  string
		code string
	}{
		{typ: "string", code: "s"},
		{typ: "number", code: "n"},
		{typ: "null", code: "0"},
		{typ: "any", code: "*"},
		{typ: "bytes", code: "y"},
		{typ: "DateTime", code: "t"},
		{typ: "array", code: "a"},
		{typ: "array<string>", code: "as"},
		{typ: "array<option<int>>", code: "a?i"},
		{typ: "option<duration>", code: "?d"},
		{typ: "option<array<record>>", code: "?ar"},
		{typ: "array<>", code: "*"},
		{typ: "set<string>", code: "*"},
		{typ: "something", code: "*"},
		{typ: "", code: "*"},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			enc := NewTypeEncoder(nil)
			code := enc.Encode(tt.typ)
			if code != tt.code {
				t.Fatalf("unexpected code; want: %v, got: %v", tt.code, code)
			}
		})
	}
}

// The bare code of "array" equals the prefix code of "array<T>"; the
// encoding is one-way and this ambiguity is part of the format.
func TestTypeEncoder_ArrayAmbiguity(t *testing.T) {
	enc := NewTypeEncoder(nil)
	if enc.Encode("array<any>") != "a*" {
		t.Fatalf("unexpected code for array<any>: %v", enc.Encode("array<any>"))
	}
	if enc.Encode("array") != "a" {
		t.Fatalf("unexpected code for array: %v", enc.Encode("array"))
	}
	// "aa" could read as bare array twice or as array<array>; the
	// encoded form cannot tell.
	if enc.Encode("array<array>") != "aa" {
		t.Fatalf("unexpected code for array<array>: %v", enc.Encode("array<array>"))
	}
}
