// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/hjson/ast"
	"github.com/google/go-cmp/cmp"
)

func writeTemp(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestParseFile(t *testing.T) {
	const want = `{"name":"aloe","count":3,"tags":["spiky","green"]}`

	tests := []struct {
		name, text string
	}{
		{"plant.hjson", `
# a plant
name: aloe
count: 3
tags: [
  spiky
  green
]
`},
		{"plant.json", `{"name": "aloe", "count": 3, "tags": ["spiky", "green"]}`},
		{"plant.jsonc", `{
  // a plant
  "name": "aloe",
  "count": 3,
  "tags": ["spiky", "green"],
}`},
		{"plant.hujson", `{"name": "aloe", "count": 3, "tags": ["spiky", "green"] /*trailer*/}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := ast.ParseFile(writeTemp(t, test.name, test.text))
			if err != nil {
				t.Fatalf("ParseFile: unexpected error: %v", err)
			}
			if got := jsonOf(t, v); got != want {
				t.Errorf("ParseFile: got %s, want %s", got, want)
			}
		})
	}
}

func TestParseFile_errors(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		if v, err := ast.ParseFile(filepath.Join(t.TempDir(), "nonesuch.hjson")); err == nil {
			t.Errorf("ParseFile: got %+v, want error", v)
		}
	})
	t.Run("BadSyntax", func(t *testing.T) {
		path := writeTemp(t, "bad.hjson", `{a: "unclosed`)
		_, err := ast.ParseFile(path)
		if err == nil {
			t.Fatal("ParseFile: got nil, want error")
		}
		if !strings.Contains(err.Error(), "bad.hjson") {
			t.Errorf("Error %q does not name the file", err)
		}
		if !strings.Contains(err.Error(), "string is not closed") {
			t.Errorf("Error %q does not carry the scan diagnostic", err)
		}
	})
	t.Run("BadJSON", func(t *testing.T) {
		path := writeTemp(t, "bad.json", `{"a": }`)
		if v, err := ast.ParseFile(path); err == nil {
			t.Errorf("ParseFile: got %+v, want error", v)
		}
	})
}

func TestWriteFile(t *testing.T) {
	v := mustParse(t, "name: aloe\ncount: 3")

	t.Run("Hjson", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.hjson")
		if err := ast.WriteFile(path, v, nil); err != nil {
			t.Fatalf("WriteFile: unexpected error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if diff := cmp.Diff("name: aloe\ncount: 3\n", string(data)); diff != "" {
			t.Errorf("Output: (-want, +got)\n%s", diff)
		}
	})
	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		if err := ast.WriteFile(path, v, nil); err != nil {
			t.Fatalf("WriteFile: unexpected error: %v", err)
		}
		back, err := ast.ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile: unexpected error: %v", err)
		}
		if diff := cmp.Diff(jsonOf(t, v), jsonOf(t, back)); diff != "" {
			t.Errorf("Round trip: (-want, +got)\n%s", diff)
		}
	})
}
