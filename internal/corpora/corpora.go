// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora runs golden-file test corpora: table-driven tests
// where the table lives on the filesystem. Each fixture file under a
// corpus root is one test case; its expected outputs live next to it,
// one file per output extension.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes one golden-file test corpus.
type Corpus struct {
	// The root of the fixture directory, relative to the test file that
	// calls [Corpus.Run].
	Root string

	// An environment variable holding a glob of test cases whose golden
	// outputs should be rewritten instead of compared.
	Refresh string

	// The file extension (without dot) of fixture files, e.g. "yaml".
	Extension string

	// The output extensions. For a fixture "foo.yaml" and an output
	// extension "issues.txt", the expected output lives in
	// "foo.yaml.issues.txt". A missing output file is treated as
	// expecting the empty string.
	Outputs []string

	// Test runs one fixture and returns one string per entry of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Run enumerates the corpus and runs each fixture as a subtest.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var fixtures []string
	err := filepath.Walk(root, func(path string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			fixtures = append(fixtures, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: error while walking %q: %v", root, err)
	}

	refresh := ""
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid refresh glob %q", refresh)
		}
	}
	if refresh != "" {
		// Force a failure so a refresh run cannot be mistaken for a pass.
		t.Logf("corpora: refreshing golden outputs because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, path := range fixtures {
		name, _ := filepath.Rel(testDir, path)
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while reading fixture %q: %v", path, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			rewrite, _ := doublestar.Match(refresh, name)
			for i, ext := range c.Outputs {
				outPath := fmt.Sprint(path, ".", ext)

				if rewrite {
					if err := os.WriteFile(outPath, []byte(results[i]), 0o660); err != nil {
						t.Errorf("corpora: error while writing %q: %v", outPath, err)
					}
					continue
				}

				want, err := os.ReadFile(outPath)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while reading %q: %v", outPath, err)
					continue
				}
				if diff := unifiedDiff(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", outPath, diff)
				}
			}
		})
	}
}

func unifiedDiff(got, want string) string {
	if got == want {
		return ""
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
