package arena

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddAndGet(t *testing.T) {
	var a Arena[string]
	x := a.Add("x")
	y := a.Add("y")

	if x == 0 || y == 0 || x == y {
		t.Fatalf("bad ids: x=%d y=%d", x, y)
	}
	if v, ok := a.Get(y); !ok || v != "y" {
		t.Errorf("Get(y) = %q, %v", v, ok)
	}
	if _, ok := a.Get(99); ok {
		t.Error("Get of unknown id should fail")
	}
	if a.Index(x) != 0 || a.Index(y) != 1 || a.Index(99) != -1 {
		t.Error("Index gave wrong positions")
	}
}

func TestIDsNotReused(t *testing.T) {
	var a Arena[int]
	a.Add(1)
	b := a.Add(2)
	a.Remove(b)
	a.Reset()
	if c := a.Add(3); c <= b {
		t.Errorf("id %d reused or went backwards (last removed %d)", c, b)
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	var a Arena[string]
	ids := []ID{a.Add("a"), a.Add("b"), a.Add("c"), a.Add("d")}

	if !a.Remove(ids[1]) {
		t.Fatal("Remove returned false")
	}
	if a.Remove(ids[1]) {
		t.Error("second Remove should return false")
	}
	if diff := cmp.Diff([]string{"a", "c", "d"}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if got := a.Index(ids[3]); got != 2 {
		t.Errorf("Index(d) = %d, want 2", got)
	}
}

func TestRemoveFunc(t *testing.T) {
	var a Arena[int]
	for i := 0; i < 6; i++ {
		a.Add(i)
	}
	removed := a.RemoveFunc(func(_ ID, v int) bool { return v%2 == 1 })
	if diff := cmp.Diff([]ID{2, 4, 6}, removed); diff != "" {
		t.Errorf("removed mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2, 4}, a.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertAndMove(t *testing.T) {
	var a Arena[string]
	a.Add("a")
	c := a.Add("c")
	a.Insert(1, "b")
	a.Insert(-5, "start")
	a.Insert(100, "end")

	if diff := cmp.Diff([]string{"start", "a", "b", "c", "end"}, a.Values()); diff != "" {
		t.Fatalf("after Insert (-want +got):\n%s", diff)
	}

	tests := []struct {
		name string
		to   int
		want []string
	}{
		{"to front", 0, []string{"c", "start", "a", "b", "end"}},
		{"to back", 10, []string{"start", "a", "b", "end", "c"}},
		{"in place", 3, []string{"start", "a", "b", "c", "end"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := Arena[string]{Items: append([]Entry[string](nil), a.Items...), Last: a.Last}
			pos := cp.Move(c, tt.to)
			if cp.Items[pos].ID != c {
				t.Errorf("Move returned %d but item is elsewhere", pos)
			}
			if diff := cmp.Diff(tt.want, cp.Values()); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if a.Move(999, 0) != -1 {
		t.Error("Move of unknown id should return -1")
	}
}

func TestSetAndPtr(t *testing.T) {
	var a Arena[int]
	id := a.Add(1)
	if !a.Set(id, 5) {
		t.Fatal("Set returned false")
	}
	*a.Ptr(id) += 1
	if v, _ := a.Get(id); v != 6 {
		t.Errorf("value = %d, want 6", v)
	}
	if a.Set(42, 0) || a.Ptr(42) != nil {
		t.Error("Set/Ptr of unknown id should fail")
	}
}
