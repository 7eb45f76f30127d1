package sheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// TimestampLayout is the on-disk format: UTC, microsecond precision, literal Z
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// parseLayouts are tried in order when reading. The first accepts an
// optional fractional second, so sheets written without microseconds load.
var parseLayouts = []string{
	"2006-01-02T15:04:05Z",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// FormatTimestamp renders t in TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp reads a timestamp written by FormatTimestamp or a close variant
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// sessionDoc is the wire shape of a Session. Lists are pointers so an
// absent list and an empty one survive a round trip unchanged.
type sessionDoc struct {
	Name  string    `json:"name" yaml:"name"`
	Start string    `json:"start" yaml:"start"`
	End   string    `json:"end,omitempty" yaml:"end,omitempty"`
	Notes *[]string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags  *[]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func (s *Session) toDoc() sessionDoc {
	doc := sessionDoc{
		Name:  s.Name,
		Start: FormatTimestamp(s.Start),
	}
	if s.Notes != nil {
		notes := s.Notes
		doc.Notes = &notes
	}
	if s.Tags.items != nil {
		tags := append([]string{}, s.Tags.items...)
		doc.Tags = &tags
	}
	if s.End != nil {
		doc.End = FormatTimestamp(*s.End)
	}
	return doc
}

func (s *Session) fromDoc(doc sessionDoc) error {
	if doc.Start == "" {
		return errors.New("session has no start")
	}
	start, err := ParseTimestamp(doc.Start)
	if err != nil {
		return fmt.Errorf("session %q start: %w", doc.Name, err)
	}

	*s = Session{
		Name:  doc.Name,
		Start: start,
	}
	if doc.Notes != nil {
		s.Notes = append([]string{}, *doc.Notes...)
	}
	if doc.Tags != nil {
		s.Tags = TagSet{items: []string{}}
		s.Tags.Union(*doc.Tags...)
	}

	if doc.End != "" {
		end, err := ParseTimestamp(doc.End)
		if err != nil {
			return fmt.Errorf("session %q end: %w", doc.Name, err)
		}
		s.End = &end
	}
	return nil
}

// MarshalJSON leaves HTML characters unescaped so names like "call<i>"
// stay readable in the file.
func (s Session) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s.toDoc()); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var doc sessionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return s.fromDoc(doc)
}

func (s Session) MarshalYAML() (interface{}, error) {
	return s.toDoc(), nil
}

func (s *Session) UnmarshalYAML(value *yaml.Node) error {
	var doc sessionDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	return s.fromDoc(doc)
}
