// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2015 Devin Acker
// Source: github.com/devinacker/halpack

package halpack

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestCompatibility_ExhalInhalCorpus decodes every packed/plain pair under
// testdata/corpus, if present. The corpus isn't checked in; this exists so
// one can be dropped in (e.g. packed ROM banks alongside their expected
// unpacked contents) without writing new test code.
func TestCompatibility_ExhalInhalCorpus(t *testing.T) {
	packedDir := filepath.Join("testdata", "corpus", "packed")
	plainDir := filepath.Join("testdata", "corpus", "plain")

	if _, err := os.Stat(packedDir); err != nil {
		t.Skipf("compat corpus not found: %v", err)
	}

	entries, err := os.ReadDir(packedDir)
	if err != nil {
		t.Fatalf("ReadDir(%q): %v", packedDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if filepath.Ext(name) != ".bin" {
			continue
		}

		testName := name
		t.Run(testName, func(t *testing.T) {
			packedPath := filepath.Join(packedDir, testName)
			packedData, err := os.ReadFile(packedPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", packedPath, err)
			}

			baseName := testName[:len(testName)-len(".bin")]
			plainPath := filepath.Join(plainDir, baseName)
			plainData, err := os.ReadFile(plainPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", plainPath, err)
			}

			out, err := Unpack(packedData)
			if err != nil {
				t.Fatalf("Unpack(%q): %v", testName, err)
			}

			if !bytes.Equal(out, plainData) {
				t.Fatalf("decoded mismatch for %q: got=%d want=%d", testName, len(out), len(plainData))
			}
		})
	}
}
