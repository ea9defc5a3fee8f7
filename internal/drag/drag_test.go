package drag

import (
	"errors"
	"testing"

	"github.com/gogpu/vecedit"
)

func TestSessionLifecycle(t *testing.T) {
	var s Session[int, vecedit.Vec2]
	if s.Active() {
		t.Fatal("zero session should be idle")
	}

	if err := s.Begin(7, vecedit.V2(1, 2)); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	target, grab, err := s.Grab()
	if err != nil || target != 7 || grab != vecedit.V2(1, 2) {
		t.Errorf("Grab() = %v, %v, %v", target, grab, err)
	}
	if k, ok := s.Target(); !ok || k != 7 {
		t.Errorf("Target() = %v, %v", k, ok)
	}

	k, err := s.End()
	if err != nil || k != 7 {
		t.Errorf("End() = %v, %v", k, err)
	}
	if s.Active() {
		t.Error("session still active after End")
	}
}

func TestSessionMisuse(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Session[string, float64]) error
	}{
		{"update without begin", func(s *Session[string, float64]) error {
			_, _, err := s.Grab()
			return err
		}},
		{"end without begin", func(s *Session[string, float64]) error {
			_, err := s.End()
			return err
		}},
		{"begin twice", func(s *Session[string, float64]) error {
			if err := s.Begin("a", 0); err != nil {
				return err
			}
			return s.Begin("b", 0)
		}},
		{"end twice", func(s *Session[string, float64]) error {
			if err := s.Begin("a", 0); err != nil {
				return err
			}
			if _, err := s.End(); err != nil {
				return err
			}
			_, err := s.End()
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Session[string, float64]
			if err := tt.run(&s); !errors.Is(err, vecedit.ErrState) {
				t.Errorf("err = %v, want ErrState", err)
			}
		})
	}
}

func TestSessionBeginTwiceKeepsFirst(t *testing.T) {
	var s Session[string, float64]
	_ = s.Begin("first", 1.5)
	_ = s.Begin("second", 9)
	if k, g, _ := s.Grab(); k != "first" || g != 1.5 {
		t.Errorf("Grab() = %v, %v; second Begin must not replace the drag", k, g)
	}
}

func TestSessionReset(t *testing.T) {
	var s Session[string, float64]
	_ = s.Begin("a", 1)
	s.Reset()
	if s.Active() {
		t.Error("Reset left session active")
	}
	if err := s.Begin("b", 2); err != nil {
		t.Errorf("Begin after Reset: %v", err)
	}
}
