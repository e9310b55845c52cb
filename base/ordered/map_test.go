package ordered_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/glstyle/base/ordered"
)

type entry struct {
	k string
	v int
}

func collect(m *ordered.Map[string, int]) []entry {
	var got []entry
	for k, v := range m.Iter() {
		got = append(got, entry{k: k, v: v})
	}
	return got
}

func TestMap(t *testing.T) {
	tests := []struct {
		entries []entry
		want    []entry
	}{
		{
			entries: []entry{
				{k: "a_population", v: 1},
				{k: "a_heading", v: 2},
				{k: "a_color", v: 3},
			},
			want: []entry{
				{k: "a_population", v: 1},
				{k: "a_heading", v: 2},
				{k: "a_color", v: 3},
			},
		},
		{
			entries: []entry{
				{k: "u_var_a", v: 1},
				{k: "u_var_b", v: 2},
				{k: "u_var_a", v: 3},
			},
			want: []entry{
				{k: "u_var_a", v: 3},
				{k: "u_var_b", v: 2},
			},
		},
	}
	for ti, test := range tests {
		m := ordered.NewMap[string, int]()
		for _, entry := range test.entries {
			m.Store(entry.k, entry.v)
		}
		m = m.Clone()
		if m.Size() != len(test.want) {
			t.Errorf("test %d: map has %d entries but want %d", ti, m.Size(), len(test.want))
			continue
		}
		got := collect(m)
		if !cmp.Equal(got, test.want, cmp.AllowUnexported(entry{})) {
			t.Errorf("test %d: incorrect entries:\n%s", ti, cmp.Diff(got, test.want, cmp.AllowUnexported(entry{})))
		}
		var wantKeys []string
		for _, e := range test.want {
			wantKeys = append(wantKeys, e.k)
		}
		if gotKeys := slices.Collect(m.Keys()); !cmp.Equal(gotKeys, wantKeys) {
			t.Errorf("test %d: got keys %v but want %v", ti, gotKeys, wantKeys)
		}
		for i, k := range wantKeys {
			if got := m.Index(k); got != i {
				t.Errorf("test %d: index of %q is %d but want %d", ti, k, got, i)
			}
		}
	}
}

func TestLoadOrStore(t *testing.T) {
	m := ordered.NewMap[string, int]()
	if v, loaded := m.LoadOrStore("abc", 0); loaded || v != 0 {
		t.Errorf("first LoadOrStore returned (%d, %v) but want (0, false)", v, loaded)
	}
	if v, loaded := m.LoadOrStore("def", 1); loaded || v != 1 {
		t.Errorf("second LoadOrStore returned (%d, %v) but want (1, false)", v, loaded)
	}
	if v, loaded := m.LoadOrStore("abc", 7); !loaded || v != 0 {
		t.Errorf("LoadOrStore of an existing key returned (%d, %v) but want (0, true)", v, loaded)
	}
	if got := m.Index("missing"); got != -1 {
		t.Errorf("index of a missing key is %d but want -1", got)
	}
	if got := slices.Collect(m.Values()); !cmp.Equal(got, []int{0, 1}) {
		t.Errorf("got values %v but want [0 1]", got)
	}
}
