package sheet

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// Export renders the sheet as a YAML document meant for hand editing.
// Top-level entries are separated by blank lines.
func Export(sh *Sheet) ([]byte, error) {
	c := sh.Clone()
	c.normalize()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return bytes.ReplaceAll(buf.Bytes(), []byte("\n  - "), []byte("\n\n  - ")), nil
}

// Import parses a document produced by Export, possibly edited by hand
func Import(data []byte) (*Sheet, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Err: errors.New("document is empty")}
	}

	var sh Sheet
	if err := yaml.Unmarshal(data, &sh); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := sh.Validate(); err != nil {
		return nil, &ParseError{Err: err}
	}
	sh.normalize()

	return &sh, nil
}
