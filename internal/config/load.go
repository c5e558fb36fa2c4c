package config

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// hashDomain separates run-file hashes from any other use of the digest.
const hashDomain = "threepg/run/v1"

// Load reads, decodes, normalizes and validates the run file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		var se *SchemaError
		if errors.As(err, &se) {
			se.Path = path
		}
		return nil, err
	}
	return f, nil
}

// Parse decodes run-file YAML, rejecting unknown fields, checks the document
// against the schema, then normalizes and validates the decoded file.
func Parse(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateDocument("run.yaml", data); err != nil {
		return nil, err
	}

	f.normalize()
	if err := Validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// normalize puts species names in NFC so visually identical names compare
// equal byte for byte.
func (f *File) normalize() {
	for i := range f.Species {
		f.Species[i].Name = norm.NFC.String(strings.TrimSpace(f.Species[i].Name))
	}
}

// Hash returns a stable identity for the run file's content.
// Format: hex(SHA256(domain + 0x00 + json)).
func (f *File) Hash() (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("hash run file: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(hashDomain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SpeciesNames returns the species names in file order.
func (f *File) SpeciesNames() []string {
	names := make([]string, len(f.Species))
	for i, sp := range f.Species {
		names[i] = sp.Name
	}
	return names
}
