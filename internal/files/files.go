// Package files locates exported seed catalog files and opens them as
// decoded text streams.
package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding is one of the two text encodings a catalog export can use.
// Catalogs written by the game itself are UTF-16LE; hand-converted ones
// are UTF-8.
type Encoding uint8

const (
	UTF16 Encoding = iota
	UTF8
)

func (e Encoding) String() string {
	if e == UTF8 {
		return "UTF-8"
	}
	return "UTF-16LE"
}

// Toggled returns the other encoding.
func (e Encoding) Toggled() Encoding {
	if e == UTF8 {
		return UTF16
	}
	return UTF8
}

// File is one discovered catalog file. It satisfies the scanner's source
// interface.
type File struct {
	Path     string
	Encoding Encoding
}

func (f File) Name() string { return f.Path }

// Open returns the file's contents decoded to UTF-8 text. UTF-16LE files
// are decoded through a transforming reader; their byte order mark is
// consumed by the decoder.
func (f File) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	if f.Encoding == UTF8 {
		return file, nil
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	return &decodedFile{
		Reader: transform.NewReader(file, dec),
		closer: file,
	}, nil
}

type decodedFile struct {
	io.Reader
	closer io.Closer
}

func (d *decodedFile) Close() error { return d.closer.Close() }

// Discover lists the catalog files of the preferred encoding directly
// under dir. If none are found it retries with the other encoding, so a
// directory of hand-converted UTF-8 exports still works without a flag.
// The encoding actually used is returned alongside the files.
func Discover(dir string, preferred Encoding) ([]File, Encoding, error) {
	found, err := discover(dir, preferred)
	if err != nil {
		return nil, preferred, err
	}
	if len(found) > 0 {
		return found, preferred, nil
	}

	toggled := preferred.Toggled()
	found, err = discover(dir, toggled)
	if err != nil {
		return nil, toggled, err
	}
	return found, toggled, nil
}

func discover(dir string, enc Encoding) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var found []File
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if matchesEncoding(path, enc) {
			found = append(found, File{Path: path, Encoding: enc})
		}
	}
	return found, nil
}

// matchesEncoding sniffs the byte order mark. UTF-16LE files must open
// with FF FE; the UTF-8 side is permissive, since UTF-8 exports carry no
// mandatory mark.
func matchesEncoding(path string, enc Encoding) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var bom [2]byte
	n, _ := io.ReadFull(f, bom[:])

	if enc == UTF16 {
		return n == 2 && bom[0] == 0xFF && bom[1] == 0xFE
	}
	return true
}
