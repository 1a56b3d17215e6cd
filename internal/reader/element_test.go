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

import "testing"

func TestParseXMLTreeNavigatesChildren(t *testing.T) {
	root, err := ParseXMLTree([]byte(`<w:document xmlns:w="w"><w:body><w:p/><w:p/></w:body></w:document>`))
	if err != nil {
		t.Fatalf("ParseXMLTree: %v", err)
	}
	if root.Name.Local != "document" {
		t.Errorf("root.Name.Local = %q; want document", root.Name.Local)
	}
	body := FindChild(root, "body")
	if body == nil {
		t.Fatal("FindChild(root, body) = nil")
	}
	if got := len(FindChildren(body, "p")); got != 2 {
		t.Errorf("len(FindChildren(body, p)) = %d; want 2", got)
	}
}

func TestGetAttrMissing(t *testing.T) {
	root, err := ParseXMLTree([]byte(`<w:p xmlns:w="w"/>`))
	if err != nil {
		t.Fatalf("ParseXMLTree: %v", err)
	}
	if _, ok := GetAttr(root, "styleId"); ok {
		t.Error("GetAttr found an attribute that was never set")
	}
}

func TestHasChildTogglePresence(t *testing.T) {
	root, err := ParseXMLTree([]byte(`<w:rPr xmlns:w="w"><w:b/></w:rPr>`))
	if err != nil {
		t.Fatalf("ParseXMLTree: %v", err)
	}
	if !HasChild(root, "b") {
		t.Error("HasChild(root, b) = false; want true")
	}
	if HasChild(root, "i") {
		t.Error("HasChild(root, i) = true; want false")
	}
}

func TestParseXMLTreeInvalidInputErrors(t *testing.T) {
	if _, err := ParseXMLTree([]byte("")); err == nil {
		t.Error("ParseXMLTree(\"\") = nil error; want error on empty input")
	}
	if _, err := ParseXMLTree([]byte("not xml")); err == nil {
		t.Error("ParseXMLTree(garbage) = nil error; want error")
	}
}
