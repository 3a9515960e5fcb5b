package collections

import "testing"

func TestSetAddContains(t *testing.T) {
	set := make(Set[int])
	set.Add(1)
	set.Add(3)
	set.Add(3)

	if len(set) != 2 || !set.Contains(1) || !set.Contains(3) {
		t.Fatalf("unexpected set: %v", set)
	}
	if set.Contains(2) {
		t.Fatalf("set contains an element never added: %v", set)
	}
}
