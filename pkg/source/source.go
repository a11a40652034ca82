// Package source reads deck scripts from files or stdin and decodes them to
// UTF-8 text for the parser.
package source

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/arthur-debert/deckscript/pkg/errors"
	"github.com/arthur-debert/deckscript/pkg/logging"
)

// Stdin is the path that selects standard input
const Stdin = "-"

// DefaultEncoding is used when no encoding name is given
const DefaultEncoding = "utf-8"

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Script is a decoded script and where it came from
type Script struct {
	// Name is the path, or "<stdin>"
	Name string
	// Encoding is the canonical name of the encoding actually used
	Encoding string
	Text     string
}

// Read loads path ("-" for stdin) and decodes it with the named encoding
func Read(path, encodingName string) (*Script, error) {
	if path == Stdin || path == "" {
		return ReadFrom(os.Stdin, "<stdin>", encodingName)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceRead, "cannot open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	return ReadFrom(f, path, encodingName)
}

// ReadFrom reads r fully and decodes it. A UTF-8 or UTF-16 byte order mark
// overrides encodingName and is removed from the text.
func ReadFrom(r io.Reader, name, encodingName string) (*Script, error) {
	logger := logging.GetLogger("source")

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceRead, "cannot read %s", name).
			WithDetail("path", name)
	}

	enc, canonical, err := Lookup(encodingName)
	if err != nil {
		return nil, err
	}
	if bom := detectBOM(data); bom != "" {
		canonical = bom
	} else if enc == unicode.UTF8 && !utf8.Valid(data) {
		return nil, errors.Newf(errors.ErrSourceDecode,
			"%s is not valid UTF-8, set --encoding to its legacy encoding", name).
			WithDetail("path", name).
			WithDetail("encoding", canonical)
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceDecode, "cannot decode %s as %s", name, canonical).
			WithDetail("path", name).
			WithDetail("encoding", canonical)
	}

	logger.Debug().
		Str("path", name).
		Str("encoding", canonical).
		Int("bytes", len(data)).
		Msg("Read script")

	return &Script{Name: name, Encoding: canonical, Text: string(decoded)}, nil
}

// Lookup resolves a WHATWG encoding label such as "cp1251" or "latin1"
func Lookup(name string) (encoding.Encoding, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrSourceDecode, "unknown encoding %q", name).
			WithDetail("encoding", name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	return enc, canonical, nil
}

func detectBOM(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return "utf-8"
	case bytes.HasPrefix(data, bomUTF16LE):
		return "utf-16le"
	case bytes.HasPrefix(data, bomUTF16BE):
		return "utf-16be"
	}
	return ""
}
