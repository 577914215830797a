package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var charsetRule = regexp.MustCompile(`^@charset\s+"([^"]+)"\s*;`)

// readSource reads whole input from file or STDIN, refusing anything larger
// than limit bytes.
func readSource(name string, limit int64) ([]byte, error) {
	var in io.Reader = os.Stdin
	if len(name) > 0 && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("unable to open source '%s': %w", name, err)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(io.LimitReader(in, limit+1))
	if err != nil {
		return nil, fmt.Errorf("unable to read source: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("source is larger than %d bytes", limit)
	}
	return data, nil
}

// lookupEncoding resolves IANA character set name.
func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding '%s': %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding '%s'", name)
	}
	return enc, nil
}

// decodeSource converts raw input to UTF-8 text with @charset rule removed.
// Forced encoding wins, then BOM, then @charset rule and finally content
// sniffing.
func decodeSource(data []byte, forced encoding.Encoding, log *zap.Logger) (string, error) {
	enc, how := forced, "forced"
	if enc == nil {
		enc, how = detectEncoding(data)
	}
	name, _ := ianaindex.IANA.Name(enc)
	log.Debug("Input encoding", zap.String("encoding", name), zap.String("source", how))

	// BOM is stripped regardless of encoding
	text, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("unable to decode source: %w", err)
	}
	return strings.TrimSpace(charsetRule.ReplaceAllString(string(text), "")), nil
}

func detectEncoding(data []byte) (encoding.Encoding, string) {
	if enc, _ := charset.Lookup(bomName(data)); enc != nil {
		return enc, "bom"
	}
	if m := charsetRule.FindSubmatch(data); m != nil {
		if enc, _ := charset.Lookup(string(m[1])); enc != nil {
			return enc, "@charset"
		}
	}
	enc, name, _ := charset.DetermineEncoding(data, "text/css")
	return enc, "sniffed " + name
}

func bomName(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return "utf-8"
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return "utf-16be"
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return "utf-16le"
	}
	return ""
}
