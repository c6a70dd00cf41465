package shell

import "testing"

func TestScope_ReleasesInReverseOrderOnce(t *testing.T) {
	s := &scope{}
	var order []int

	s.add(func() { order = append(order, 1) })
	s.add(func() { order = append(order, 2) })

	s.close()
	s.close()

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("expected releases [2 1], got %v", order)
	}
}

func TestScope_AddAfterClose(t *testing.T) {
	s := &scope{}
	s.close()

	if s.add(func() {}) {
		t.Error("add should fail on a closed scope")
	}
}
