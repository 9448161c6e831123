package ordering

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type item struct {
	name  string
	index int
	day   int
	time  string
}

func (i item) Index() int { return i.index }

func names(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.name)
	}
	return out
}

func TestSort(t *testing.T) {
	byDay := ByInt(func(i item) int { return i.day })
	byTime := ByClockString(func(i item) string { return i.time })

	tests := []struct {
		name      string
		in        []item
		tieBreaks []TieBreak[item]
		want      []string
	}{
		{
			name: "ascending index, negatives and gaps allowed",
			in:   []item{{name: "a", index: 10}, {name: "b", index: -3}, {name: "c", index: 4}},
			want: []string{"b", "c", "a"},
		},
		{
			name: "ties without tie-break keep input order",
			in:   []item{{name: "a"}, {name: "b"}, {name: "c"}},
			want: []string{"a", "b", "c"},
		},
		{
			name:      "day number breaks index ties",
			in:        []item{{name: "d3", index: 1, day: 3}, {name: "d1", index: 1, day: 1}, {name: "d0", index: 0, day: 9}},
			tieBreaks: []TieBreak[item]{byDay},
			want:      []string{"d0", "d1", "d3"},
		},
		{
			name:      "zero padded times sort chronologically",
			in:        []item{{name: "ten", index: 1, time: "10:00"}, {name: "nine", index: 1, time: "09:00"}},
			tieBreaks: []TieBreak[item]{byTime},
			want:      []string{"nine", "ten"},
		},
		{
			name:      "unpadded times sort as strings",
			in:        []item{{name: "nine", index: 1, time: "9:00"}, {name: "ten", index: 1, time: "10:00"}},
			tieBreaks: []TieBreak[item]{byTime},
			want:      []string{"ten", "nine"},
		},
		{
			name:      "missing time sorts before timed siblings",
			in:        []item{{name: "late", index: 1, time: "18:00"}, {name: "none", index: 1}},
			tieBreaks: []TieBreak[item]{byTime},
			want:      []string{"none", "late"},
		},
		{
			name:      "untimed sibling does not break string order of timed ones",
			in:        []item{{name: "nine", index: 1, time: "9:00"}, {name: "none", index: 1}, {name: "ten", index: 1, time: "10:00"}},
			tieBreaks: []TieBreak[item]{byTime},
			want:      []string{"none", "ten", "nine"},
		},
		{
			name:      "untimed siblings keep input order among themselves",
			in:        []item{{name: "x", index: 0}, {name: "late", index: 0, time: "23:00"}, {name: "y", index: 0}, {name: "early", index: 0, time: "01:00"}},
			tieBreaks: []TieBreak[item]{byTime},
			want:      []string{"x", "y", "early", "late"},
		},
		{
			name:      "index wins over time",
			in:        []item{{name: "early", index: 2, time: "06:00"}, {name: "late", index: 1, time: "22:00"}},
			tieBreaks: []TieBreak[item]{byTime},
			want:      []string{"late", "early"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]item(nil), tt.in...)
			Sort(got, tt.tieBreaks...)
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortIsIdempotent(t *testing.T) {
	in := []item{{name: "a", index: 2}, {name: "b", index: 1}, {name: "c", index: 2}, {name: "d", index: 1}}
	first := append([]item(nil), in...)
	Sort(first)
	second := append([]item(nil), first...)
	Sort(second)
	assert.Equal(t, names(first), names(second))
	assert.Equal(t, []string{"b", "d", "a", "c"}, names(first))
}
