package rdp

import "testing"

func TestStackPushPopRestoresValue(t *testing.T) {
	var s Stack[int]
	s.Set(1)
	s.Push()
	s.Set(2)
	s.Push()
	s.Set(3)
	if s.Current() != 3 {
		t.Fatalf("expected 3, got %d", s.Current())
	}
	s.Pop()
	if s.Current() != 2 {
		t.Fatalf("expected 2, got %d", s.Current())
	}
	s.Pop()
	if s.Current() != 1 {
		t.Fatalf("expected 1, got %d", s.Current())
	}
}

func TestStackPopEmptyIsNoop(t *testing.T) {
	var s Stack[int]
	s.Set(5)
	s.Pop()
	if s.Current() != 5 {
		t.Fatalf("expected pop on empty stack to be a no-op, got %d", s.Current())
	}
}

func TestStackPushClampsAtDepth(t *testing.T) {
	var s Stack[int]
	for i := 0; i < ExtendedStackDepth+4; i++ {
		s.Set(i)
		s.Push()
	}
	if s.Depth() != ExtendedStackDepth {
		t.Fatalf("expected depth clamped to %d, got %d", ExtendedStackDepth, s.Depth())
	}
}
