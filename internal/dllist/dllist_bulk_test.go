package dllist

import (
	"slices"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/ringlist/internal/tlog"
)

func TestCopy(t *testing.T) {
	l := Of(1, 2, 3)
	c := l.Copy()
	if !Equal(l, c) {
		t.Errorf("copy %s differs from the source %s", c, l)
	}

	c.Append(4)
	if tlog.Check(t, c.Set(0, 100)) {
		return
	}
	checkValues(t, l, 1, 2, 3)
	checkValues(t, c, 100, 2, 3, 4)

	l.Prepend(0)
	checkValues(t, c, 100, 2, 3, 4)
}

func TestConcat(t *testing.T) {
	a := Of(1, 2)
	b := Of(3, 4, 5)

	c := a.Concat(b)
	checkValues(t, c, 1, 2, 3, 4, 5)
	checkValues(t, a, 1, 2)
	checkValues(t, b, 3, 4, 5)

	c.Append(6)
	checkValues(t, a, 1, 2)
	checkValues(t, b, 3, 4, 5)

	t.Run("with-itself", func(t *testing.T) {
		checkValues(t, a.Concat(a), 1, 2, 1, 2)
	})

	t.Run("with-nil", func(t *testing.T) {
		checkValues(t, a.Concat(nil), 1, 2)
	})

	t.Run("empties", func(t *testing.T) {
		checkValues(t, New[int]().Concat(New[int]()))
	})
}

func TestExtend(t *testing.T) {
	l := New[int]()
	if l.Extend(slices.Values([]int{1, 2})) != l {
		t.Error("extend must return the list itself")
	}
	l.ExtendValues(3, 4)
	checkValues(t, l, 1, 2, 3, 4)

	t.Run("by-itself", func(t *testing.T) {
		m := Of(1, 2)
		m.Extend(m.All())
		checkValues(t, m, 1, 2, 1, 2)
	})

	t.Run("collect", func(t *testing.T) {
		checkValues(t, Collect(l.Backward()), 4, 3, 2, 1)
	})
}

func TestIteration(t *testing.T) {
	l := Of("a", "b", "c")

	t.Run("restartable", func(t *testing.T) {
		first := slices.Collect(l.All())
		second := slices.Collect(l.All())
		if !deepequal.Equal(first, second) {
			t.Error("iterations must be the same")
			deepequal.SideBySide(t, "iterations", first, second)
		}
	})

	t.Run("early-stop", func(t *testing.T) {
		var got []string
		for v := range l.All() {
			got = append(got, v)
			if v == "b" {
				break
			}
		}
		if !deepequal.Equal([]string{"a", "b"}, got) {
			deepequal.SideBySide(t, "early stop", []string{"a", "b"}, got)
		}
	})

	t.Run("backward", func(t *testing.T) {
		got := slices.Collect(l.Backward())
		if !deepequal.Equal([]string{"c", "b", "a"}, got) {
			t.Error("reverse order mismatch")
			deepequal.SideBySide(t, "backward", []string{"c", "b", "a"}, got)
		}
	})

	t.Run("enumerate", func(t *testing.T) {
		for i, v := range l.Enumerate() {
			w, err := l.Get(i)
			if err != nil || w != v {
				t.Errorf("enumerate yields %q at %d while get returns %q", v, i, w)
			}
		}
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		l    *List[float64]
		want string
	}{
		{
			name: "empty",
			l:    New[float64](),
			want: "[]",
		},
		{
			name: "single",
			l:    Of(1.5),
			want: "[1.5]",
		},
		{
			name: "several",
			l:    Of(1.0, 2.5, -3.0),
			want: "[1, 2.5, -3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.String(); got != tt.want {
				t.Errorf("%q expected, got %q", tt.want, got)
			}
			if got := tt.l.GoString(); got != tt.want {
				t.Errorf("%q expected from GoString, got %q", tt.want, got)
			}
		})
	}
}
