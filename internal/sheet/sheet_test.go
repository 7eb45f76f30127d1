package sheet

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 9, 0, 0, 123456000, time.UTC)

func closedSession(name string, start, end time.Time) *Session {
	return &Session{Name: name, Start: start, End: &end}
}

func TestSheet_CurrentAndStack(t *testing.T) {
	sh := New()
	assert.Nil(t, sh.Last())
	assert.Nil(t, sh.Current())
	assert.Nil(t, sh.Pop())

	sh.Append(closedSession("a", base, base.Add(time.Minute)))
	assert.False(t, sh.IsWorking())

	sh.Append(&Session{Name: "b", Start: base.Add(time.Minute)})
	require.NotNil(t, sh.Current())
	assert.Equal(t, "b", sh.Current().Name)

	sh.Push(sh.Work[0].Clone())
	sh.Push(closedSession("c", base, base.Add(time.Second)))
	assert.Equal(t, 2, sh.Depth())
	assert.Equal(t, "c", sh.Pop().Name)
	assert.Equal(t, "a", sh.Pop().Name)
	assert.Equal(t, 0, sh.Depth())

	assert.Len(t, sh.Sessions(), 2)
}

func TestSheet_Validate(t *testing.T) {
	end := base.Add(time.Hour)
	before := base.Add(-time.Hour)

	tests := []struct {
		name    string
		sheet   *Sheet
		wantErr bool
	}{
		{"empty", New(), false},
		{"last open", &Sheet{Work: []*Session{
			closedSession("a", base, end),
			{Name: "b", Start: end},
		}}, false},
		{"open in the middle", &Sheet{Work: []*Session{
			{Name: "a", Start: base},
			closedSession("b", base, end),
		}}, true},
		{"missing name", &Sheet{Work: []*Session{closedSession("", base, end)}}, true},
		{"ends before start", &Sheet{Work: []*Session{{Name: "a", Start: base, End: &before}}}, true},
		{"open stack entry", &Sheet{InterruptStack: []*Session{{Name: "a", Start: base}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sheet.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSession_Clone(t *testing.T) {
	s := closedSession("a", base, base.Add(time.Hour))
	s.Notes = []string{"one"}
	s.Tags = NewTagSet("x")

	c := s.Clone()
	c.Notes[0] = "changed"
	c.Tags.Union("y")
	*c.End = base

	assert.Equal(t, "one", s.Notes[0])
	assert.False(t, s.Tags.Has("y"))
	assert.True(t, base.Add(time.Hour).Equal(*s.End))
}

func TestTagSet(t *testing.T) {
	ts := NewTagSet("b", "a", "b")
	assert.Equal(t, []string{"b", "a"}, ts.Values())

	assert.Equal(t, 1, ts.Union("a", "c"))
	assert.Equal(t, []string{"b", "a", "c"}, ts.Values())
	assert.Equal(t, 3, ts.Len())

	var empty TagSet
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Has("a"))
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "2024-05-01T09:00:00.123456Z", FormatTimestamp(base))

	loc := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, "2024-05-01T11:00:00.000000Z", FormatTimestamp(time.Date(2024, 5, 1, 13, 0, 0, 0, loc)))

	for input, want := range map[string]time.Time{
		"2024-05-01T09:00:00.123456Z": base,
		"2024-05-01T09:00:00Z":        time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		"2024-05-01T11:00:00+02:00":   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		"2024-05-01 09:00:00":         time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	} {
		got, err := ParseTimestamp(input)
		require.NoError(t, err, input)
		assert.True(t, want.Equal(got), "%s: got %s", input, got)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestSession_JSON(t *testing.T) {
	s := closedSession("writing", base, base.Add(30*time.Minute))
	s.Notes = []string{"draft v1"}
	s.Tags = NewTagSet("docs")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "writing",
		"start": "2024-05-01T09:00:00.123456Z",
		"end": "2024-05-01T09:30:00.123456Z",
		"notes": ["draft v1"],
		"tags": ["docs"]
	}`, string(data))

	active, err := json.Marshal(&Session{Name: "reading", Start: base})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "reading", "start": "2024-05-01T09:00:00.123456Z"}`, string(active))

	var decoded Session
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s.Name, decoded.Name)
	assert.True(t, s.Start.Equal(decoded.Start))
	assert.True(t, s.End.Equal(*decoded.End))
	assert.Equal(t, s.Notes, decoded.Notes)
	assert.Equal(t, s.Tags.Values(), decoded.Tags.Values())
}

func TestSession_JSONRejectsBadTimestamps(t *testing.T) {
	var s Session
	assert.Error(t, json.Unmarshal([]byte(`{"name": "a"}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"name": "a", "start": "soon"}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"name": "a", "start": "2024-05-01T09:00:00Z", "end": "later"}`), &s))
}
