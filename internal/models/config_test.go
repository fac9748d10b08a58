package models

import (
	"errors"
	"testing"
)

func TestDefaultSettingIsValid(t *testing.T) {
	if err := ValidateSetting(DefaultSetting()); err != nil {
		t.Fatalf("default setting rejected: %v", err)
	}
}

func TestDurabilityBuckets(t *testing.T) {
	s := DefaultSetting()
	if got := s.DurabilityBuckets(); got != 11 {
		t.Errorf("DurabilityBuckets() = %d, want 11", got)
	}
}

func TestValidateSetting(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Setting)
		ok     bool
	}{
		{"default", func(*Setting) {}, true},
		{"zero cp", func(s *Setting) { s.MaxCP = 0 }, true},
		{"sustain", func(s *Setting) { s.Sustain = true }, true},
		{"durability not multiple of 5", func(s *Setting) { s.MaxDurability = 57 }, false},
		{"zero durability", func(s *Setting) { s.MaxDurability = 0 }, false},
		{"negative durability", func(s *Setting) { s.MaxDurability = -5 }, false},
		{"durability too large", func(s *Setting) { s.MaxDurability = 205 }, false},
		{"negative cp", func(s *Setting) { s.MaxCP = -1 }, false},
		{"cp too large", func(s *Setting) { s.MaxCP = MaxCPCap + 1 }, false},
		{"zero accuracy", func(s *Setting) { s.ProcessAccuracy = 0 }, false},
		{"zero required accuracy", func(s *Setting) { s.RequiredProcessAccuracy = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSetting()
			tt.mutate(&s)
			err := ValidateSetting(s)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidSetting) {
					t.Errorf("error %v does not wrap ErrInvalidSetting", err)
				}
			}
		})
	}
}
