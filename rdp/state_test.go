package rdp

import (
	"errors"
	"testing"

	"github.com/gogpu/n64hle/fixed"
)

func TestNewStateDefaults(t *testing.T) {
	s := New()
	if s.OtherMode != DefaultOtherMode() {
		t.Fatalf("expected default other mode, got %+v", s.OtherMode)
	}
	want := fixed.FromPixels(0, 0, 8192, 8192)
	if s.Scissor.Current().Rect != want {
		t.Fatalf("expected default scissor %+v, got %+v", want, s.Scissor.Current().Rect)
	}
}

func TestResetClearsFault(t *testing.T) {
	s := New()
	s.SetFault(errors.New("boom"))
	s.Reset()
	if s.Fault() != nil {
		t.Fatalf("expected Reset to clear fault, got %v", s.Fault())
	}
}

func TestFaultIsSticky(t *testing.T) {
	s := New()
	first := errors.New("first")
	second := errors.New("second")
	s.SetFault(first)
	s.SetFault(second)
	if s.Fault() != first {
		t.Fatalf("expected first fault to stick, got %v", s.Fault())
	}
}

func TestImageDescriptorRowBytes(t *testing.T) {
	d := ImageDescriptor{Size: Siz16b, Width: 320}
	if d.RowBytes() != 640 {
		t.Fatalf("expected 640, got %d", d.RowBytes())
	}
}
