// Copyright (c) 2025 Mukesh Ghildiyal.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const copyrightLine = "// Copyright (c) 2025 Mukesh Ghildiyal."

// Files that carry no license header.
var bareFiles = map[string]bool{
	"main.go":                   true,
	"cliparse/cliparse.go":      true,
	"cliparse/cliparse_test.go": true,
	"models/types.go":           true,
}

func TestSourceHeaders(t *testing.T) {
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		first, err := firstLine(path)
		if err != nil {
			return err
		}
		rel := filepath.ToSlash(path)
		switch {
		case bareFiles[rel]:
			if strings.HasPrefix(first, "// Copyright") {
				t.Errorf("%s: expected no license header, got %q", rel, first)
			}
		case strings.HasPrefix(first, "// Copyright") && first != copyrightLine:
			t.Errorf("%s: header %q, want %q", rel, first, copyrightLine)
		case !strings.HasPrefix(first, "// Copyright"):
			t.Errorf("%s: missing license header", rel)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Scan()
	return sc.Text(), sc.Err()
}
