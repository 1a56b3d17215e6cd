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
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/yonatan-v/minidocx/pkg/constants"
	"github.com/yonatan-v/minidocx/pkg/errors"
)

const (
	opLoadFromPath  = "reader.LoadPackageFromPath"
	opLoadFromBytes = "reader.LoadPackageFromBytes"
	opLoadFromZip   = "reader.loadFromZip"
)

// LoadPackageFromPath opens a DOCX archive on disk and extracts its parts.
// A path that cannot be opened, or an archive that is not a valid ZIP, is a
// hard error: the caller (the document assembler) turns it into an empty
// Document rather than propagating it.
func LoadPackageFromPath(path string) (*Package, error) {
	if path == "" {
		return nil, errors.Errorf(errors.ErrCodeInvalidState, opLoadFromPath, "path cannot be empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCodeIO, opLoadFromPath)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCodeIO, opLoadFromPath)
	}

	zr, err := zip.NewReader(file, info.Size())
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCodeIO, opLoadFromPath)
	}

	return loadFromZip(zr)
}

// LoadPackageFromBytes extracts the fixed set of parts from an in-memory
// DOCX archive.
func LoadPackageFromBytes(data []byte) (*Package, error) {
	if len(data) == 0 {
		return nil, errors.Errorf(errors.ErrCodeInvalidState, opLoadFromBytes, "data cannot be empty")
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCodeIO, opLoadFromBytes)
	}

	return loadFromZip(zr)
}

func loadFromZip(zr *zip.Reader) (*Package, error) {
	pkg := &Package{}

	for _, file := range zr.File {
		if file == nil || file.FileInfo().IsDir() {
			continue
		}

		name := normalizePartName(file.Name)
		var target *[]byte
		switch name {
		case constants.PathDocument:
			target = &pkg.MainDocument
		case constants.PathStyles:
			target = &pkg.Styles
		case constants.PathFootnotes:
			target = &pkg.Footnotes
		case constants.PathEndnotes:
			target = &pkg.Endnotes
		default:
			continue
		}

		data, err := readZipFile(file)
		if err != nil {
			return nil, errors.WrapWithContext(err, opLoadFromZip, map[string]interface{}{"part": file.Name})
		}
		*target = data
	}

	return pkg, nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rc.Close()
	}()

	return io.ReadAll(rc)
}
