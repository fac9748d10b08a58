package models

import (
	"errors"
	"fmt"
)

// ErrInvalidSetting is returned when a setting cannot be used to build a table
var ErrInvalidSetting = errors.New("invalid setting")

// Bounds accepted by ValidateSetting
const (
	DurabilityStep   = 5
	MaxDurabilityCap = 200
	MaxCPCap         = 2000
)

// Setting describes one crafting attempt. It is immutable for the lifetime
// of a table build.
type Setting struct {
	MaxDurability           int  `yaml:"max_durability" json:"max_durability"`
	MaxCP                   int  `yaml:"max_cp" json:"max_cp"`
	Sustain                 bool `yaml:"sustain" json:"sustain"`
	ProcessAccuracy         int  `yaml:"process_accuracy" json:"process_accuracy"`
	RequiredProcessAccuracy int  `yaml:"required_process_accuracy" json:"required_process_accuracy"`
}

// DefaultSetting returns the reference crafting setting
func DefaultSetting() Setting {
	return Setting{
		MaxDurability:           55,
		MaxCP:                   657,
		Sustain:                 false,
		ProcessAccuracy:         2910,
		RequiredProcessAccuracy: 2540,
	}
}

// DurabilityBuckets returns the number of distinct positive durability values
func (s Setting) DurabilityBuckets() int {
	return s.MaxDurability / DurabilityStep
}

// ValidateSetting checks that a setting is within the bounds the solver supports.
// The solver itself performs no validation.
func ValidateSetting(s Setting) error {
	if s.MaxDurability <= 0 || s.MaxDurability%DurabilityStep != 0 {
		return fmt.Errorf("%w: max_durability must be a positive multiple of %d, got %d",
			ErrInvalidSetting, DurabilityStep, s.MaxDurability)
	}
	if s.MaxDurability > MaxDurabilityCap {
		return fmt.Errorf("%w: max_durability %d exceeds %d", ErrInvalidSetting, s.MaxDurability, MaxDurabilityCap)
	}
	if s.MaxCP < 0 || s.MaxCP > MaxCPCap {
		return fmt.Errorf("%w: max_cp must be in [0, %d], got %d", ErrInvalidSetting, MaxCPCap, s.MaxCP)
	}
	if s.ProcessAccuracy <= 0 {
		return fmt.Errorf("%w: process_accuracy must be positive, got %d", ErrInvalidSetting, s.ProcessAccuracy)
	}
	if s.RequiredProcessAccuracy <= 0 {
		return fmt.Errorf("%w: required_process_accuracy must be positive, got %d",
			ErrInvalidSetting, s.RequiredProcessAccuracy)
	}
	return nil
}
