package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/bodegapp/bodegapp-api/internal/application/dto"
)

// Exportaciones de cajas antiguas llegan en Windows-1252 / Latin-1.
func decoderFor(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", name)
	}
}

// readSnapshot lee {products, sales[, now]} desde path ("-" = stdin).
func readSnapshot(path, enc string, stdin io.Reader) (*dto.EvaluateRequest, error) {
	cs, err := decoderFor(enc)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("abrir snapshot: %w", err)
		}
		defer f.Close()
		r = f
	}
	if cs != nil {
		r = transform.NewReader(r, cs.NewDecoder())
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var req dto.EvaluateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("snapshot JSON inválido: %w", err)
	}
	return &req, nil
}
