package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aki/ti/internal/sheet"
)

var base = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func closed(name string, startMin, endMin int) *sheet.Session {
	end := base.Add(time.Duration(endMin) * time.Minute)
	return &sheet.Session{
		Name:  name,
		Start: base.Add(time.Duration(startMin) * time.Minute),
		End:   &end,
	}
}

func open(name string, startMin int) *sheet.Session {
	return &sheet.Session{Name: name, Start: base.Add(time.Duration(startMin) * time.Minute)}
}

func mins(n int) time.Duration { return time.Duration(n) * time.Minute }

func TestAggregate_All(t *testing.T) {
	now := base.Add(mins(200))
	rep := Aggregate([]*sheet.Session{
		closed("writing", 0, 30),
		closed("reading", 30, 40),
		closed("writing", 40, 70),
		closed("Writing", 70, 80),
	}, All, now)

	require.Len(t, rep.Rows, 3)
	assert.Equal(t, Row{Name: "writing", Total: mins(60)}, rep.Rows[0])
	assert.Equal(t, "reading", rep.Rows[1].Name)
	assert.Equal(t, "Writing", rep.Rows[2].Name)
	assert.Equal(t, mins(80), rep.Total())
}

func TestAggregate_TiesKeepFirstAppearance(t *testing.T) {
	rep := Aggregate([]*sheet.Session{
		closed("b", 0, 10),
		closed("a", 10, 20),
		closed("c", 20, 30),
	}, All, base.Add(mins(60)))

	names := []string{rep.Rows[0].Name, rep.Rows[1].Name, rep.Rows[2].Name}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}

func TestAggregate_ActiveSessionRunsUntilNow(t *testing.T) {
	now := base.Add(mins(45))
	rep := Aggregate([]*sheet.Session{
		closed("writing", 0, 30),
		open("reading", 30),
	}, All, now)

	require.Len(t, rep.Rows, 2)
	assert.Equal(t, Row{Name: "writing", Total: mins(30)}, rep.Rows[0])
	assert.Equal(t, Row{Name: "reading", Total: mins(15), Active: true}, rep.Rows[1])
}

func TestAggregate_OutsideWindowIsEmpty(t *testing.T) {
	w := Window{Start: base.Add(mins(100)), End: base.Add(mins(200))}
	rep := Aggregate([]*sheet.Session{
		closed("before", 0, 50),
		closed("touching", 50, 100),
		closed("after", 200, 250),
	}, w, base.Add(mins(300)))

	assert.True(t, rep.Empty())
}

func TestAggregate_ClipsStraddlingSessions(t *testing.T) {
	w := Window{Start: base.Add(mins(60)), End: base.Add(mins(120))}
	rep := Aggregate([]*sheet.Session{
		closed("left", 30, 90),
		closed("right", 100, 180),
		closed("over", 0, 300),
		closed("inside", 70, 75),
	}, w, base.Add(mins(400)))

	totals := map[string]time.Duration{}
	for _, row := range rep.Rows {
		totals[row.Name] = row.Total
	}
	assert.Equal(t, mins(30), totals["left"])
	assert.Equal(t, mins(20), totals["right"])
	assert.Equal(t, mins(60), totals["over"])
	assert.Equal(t, mins(5), totals["inside"])
	assert.Equal(t, "over", rep.Rows[0].Name)
}

func TestAggregate_ActiveOutsideWindowNotMarked(t *testing.T) {
	w := Window{Start: base, End: base.Add(mins(60))}
	rep := Aggregate([]*sheet.Session{
		closed("writing", 0, 30),
		open("reading", 120),
	}, w, base.Add(mins(150)))

	require.Len(t, rep.Rows, 1)
	assert.False(t, rep.Rows[0].Active)
}

func TestFromSheet_CountsSuspendedSessionsOnce(t *testing.T) {
	sh := sheet.New()
	writing := closed("writing", 0, 30)
	sh.Append(writing)
	sh.Append(open("phone<i>", 30))
	sh.Push(writing.Clone())
	sh.Push(closed("orphan", 100, 110))

	rep := FromSheet(sh, All, base.Add(mins(40)))

	totals := map[string]time.Duration{}
	for _, row := range rep.Rows {
		totals[row.Name] = row.Total
	}
	assert.Equal(t, mins(30), totals["writing"])
	assert.Equal(t, mins(10), totals["phone<i>"])
	assert.Equal(t, mins(10), totals["orphan"])
}

func TestDay(t *testing.T) {
	offset := 2 * time.Hour
	// 23:30 UTC on May 1 is 01:30 local on May 2
	now := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)

	today := Day(now, offset, 0)
	assert.Equal(t, time.Date(2024, 5, 1, 22, 0, 0, 0, time.UTC), today.Start)
	assert.Equal(t, time.Date(2024, 5, 2, 22, 0, 0, 0, time.UTC), today.End)

	yesterday := Day(now, offset, -1)
	assert.Equal(t, time.Date(2024, 4, 30, 22, 0, 0, 0, time.UTC), yesterday.Start)
	assert.Equal(t, today.Start, yesterday.End)
}

func TestNamed(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for _, period := range []string{"", "all", "ALL"} {
		w, err := Named(period, now, 0)
		require.NoError(t, err)
		assert.Equal(t, All, w)
	}

	for _, period := range []string{"today", "t"} {
		w, err := Named(period, now, 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), w.Start)
	}

	for _, period := range []string{"yesterday", "y"} {
		w, err := Named(period, now, 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), w.Start)
	}

	_, err := Named("last week", now, 0)
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 seconds"},
		{time.Second, "1 second"},
		{45 * time.Second, "45 seconds"},
		{time.Minute, "1 minute"},
		{30 * time.Minute, "30 minutes"},
		{time.Hour, "1 hour"},
		{time.Hour + time.Second, "1 hour and 1 second"},
		{2*time.Hour + time.Minute + 5*time.Second, "2 hours, 1 minute and 5 seconds"},
		{26*time.Hour + 3*time.Minute, "26 hours and 3 minutes"},
		{90*time.Second + 400*time.Millisecond, "1 minute and 30 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func TestTimegap(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "less than a minute"},
		{time.Minute, "a minute"},
		{43 * time.Minute, "43 minutes"},
		{60 * time.Minute, "about an hour"},
		{89 * time.Minute, "about 1 hour"},
		{100 * time.Minute, "about 2 hours"},
		{119 * time.Minute, "about 2 hours"},
		{5 * time.Hour, "about 5 hours"},
		{30 * time.Hour, "about a day"},
		{2600 * time.Minute, "about 2 days"},
		{5 * 24 * time.Hour, "about 5 days"},
		{45 * 24 * time.Hour, "about a month"},
		{90 * 24 * time.Hour, "about 3 months"},
		{400 * 24 * time.Hour, "more than a year"},
		{-time.Minute, "less than a minute"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Timegap(tt.d))
		})
	}
}

func TestScenarioWritingReport(t *testing.T) {
	sh := sheet.New()
	s := closed("writing", 0, 30)
	s.Tags = sheet.NewTagSet("docs")
	s.Notes = []string{"draft v1"}
	sh.Append(s)

	rep := FromSheet(sh, All, base.Add(mins(60)))
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "writing", rep.Rows[0].Name)
	assert.Equal(t, "30 minutes", FormatDuration(rep.Rows[0].Total))
}
