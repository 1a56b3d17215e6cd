/*
MIT License

Copyright (c) 2025 Misael Monterroca

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package reader

import (
	"testing"

	"github.com/yonatan-v/minidocx/domain"
)

func TestCoalesceMergesMatchingRuns(t *testing.T) {
	runs := []domain.Run{
		{Text: "foo", Bold: true},
		{Text: "bar", Bold: true},
	}
	got := Coalesce(runs)
	if len(got) != 1 {
		t.Fatalf("len(Coalesce(runs)) = %d; want 1", len(got))
	}
	if got[0].Text != "foobar" {
		t.Errorf("Text = %q; want foobar", got[0].Text)
	}
	if !got[0].Bold {
		t.Error("Bold = false; want true")
	}
}

func TestCoalesceSplitsOnDifferentStyle(t *testing.T) {
	runs := []domain.Run{
		{Text: "foo", Bold: true},
		{Text: "bar", Bold: false},
	}
	got := Coalesce(runs)
	if len(got) != 2 {
		t.Fatalf("len(Coalesce(runs)) = %d; want 2", len(got))
	}
}

func TestCoalesceNeverMergesNoteReferences(t *testing.T) {
	runs := []domain.Run{
		{NoteID: 1, Text: "1"},
		{NoteID: 1, Text: "1"},
	}
	got := Coalesce(runs)
	if len(got) != 2 {
		t.Fatalf("len(Coalesce(runs)) = %d; want 2 (note references never merge)", len(got))
	}
}

func TestCoalesceEmptyInputYieldsEmptyOutput(t *testing.T) {
	got := Coalesce(nil)
	if len(got) != 0 {
		t.Errorf("Coalesce(nil) = %v; want empty", got)
	}
}

func TestCoalesceIdempotent(t *testing.T) {
	// P5: applying the coalescer twice yields the same list as applying it once.
	runs := []domain.Run{
		{Text: "a", FontFamily: "Arial"},
		{Text: "b", FontFamily: "Arial"},
		{Text: "c", FontFamily: "Times"},
	}
	once := Coalesce(runs)
	twice := Coalesce(once)

	if len(once) != len(twice) {
		t.Fatalf("len(once)=%d len(twice)=%d; want equal", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("run %d: once=%+v twice=%+v", i, once[i], twice[i])
		}
	}
}

func TestCoalescePreservesTextConcatenation(t *testing.T) {
	// P6: concatenation of run texts in order is unchanged by coalescing.
	runs := []domain.Run{
		{Text: "foo", Bold: true},
		{Text: "bar", Bold: true},
		{Text: "baz", Bold: false},
	}
	before := concatText(runs)
	after := concatText(Coalesce(runs))
	if before != after {
		t.Errorf("text concatenation changed: %q -> %q", before, after)
	}
}

func concatText(runs []domain.Run) string {
	var out string
	for _, r := range runs {
		out += r.Text
	}
	return out
}
