package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind describes how a setting stores its value.
type Kind int

const (
	KindBool Kind = iota
	KindEnum
)

var (
	ErrUnknownSetting = errors.New("unknown setting")
	ErrInvalidValue   = errors.New("invalid setting value")
)

// Setting is a single named, typed value in the tree.
type Setting struct {
	Name     string
	Label    string
	Group    string
	Kind     Kind
	Advanced bool
	Options  []string

	on     bool
	option int
	def    string
}

// Bool reports the value of a boolean setting.
func (s *Setting) Bool() bool {
	if s == nil {
		return false
	}
	return s.on
}

// Option returns the selected option index of an enum setting.
func (s *Setting) Option() int {
	if s == nil {
		return 0
	}
	return s.option
}

// Value returns the canonical string form, suitable for config files.
func (s *Setting) Value() string {
	if s == nil {
		return ""
	}
	switch s.Kind {
	case KindBool:
		return strconv.FormatBool(s.on)
	case KindEnum:
		if s.option >= 0 && s.option < len(s.Options) {
			return s.Options[s.option]
		}
	}
	return ""
}

// Display returns the value as shown in the menu.
func (s *Setting) Display() string {
	if s == nil {
		return ""
	}
	if s.Kind == KindBool {
		if s.on {
			return "ON"
		}
		return "OFF"
	}
	return strings.ToUpper(s.Value())
}

// Toggle flips a boolean setting.
func (s *Setting) Toggle() {
	if s == nil || s.Kind != KindBool {
		return
	}
	s.on = !s.on
}

// Cycle moves an enum setting by delta options, or toggles a boolean one.
// Without wrap the value stops at either end. It reports whether the value
// changed.
func (s *Setting) Cycle(delta int, wrap bool) bool {
	if s == nil || delta == 0 {
		return false
	}
	if s.Kind == KindBool {
		s.Toggle()
		return true
	}
	n := len(s.Options)
	if n == 0 {
		return false
	}
	next := s.option + delta
	if wrap {
		next = ((next % n) + n) % n
	} else {
		if next < 0 {
			next = 0
		}
		if next > n-1 {
			next = n - 1
		}
	}
	if next == s.option {
		return false
	}
	s.option = next
	return true
}

// SetOption selects the option at idx.
func (s *Setting) SetOption(idx int) error {
	if s == nil || s.Kind != KindEnum {
		return fmt.Errorf("set option on %s: %w", s.name(), ErrInvalidValue)
	}
	if idx < 0 || idx >= len(s.Options) {
		return fmt.Errorf("option %d for %s: %w", idx, s.Name, ErrInvalidValue)
	}
	s.option = idx
	return nil
}

// Set parses value according to the setting kind.
func (s *Setting) Set(value string) error {
	if s == nil {
		return ErrUnknownSetting
	}
	trimmed := strings.TrimSpace(value)
	switch s.Kind {
	case KindBool:
		parsed, err := strconv.ParseBool(trimmed)
		if err != nil {
			switch strings.ToLower(trimmed) {
			case "on", "yes":
				parsed = true
			case "off", "no":
				parsed = false
			default:
				return fmt.Errorf("%s=%q: %w", s.Name, value, ErrInvalidValue)
			}
		}
		s.on = parsed
		return nil
	case KindEnum:
		for i, opt := range s.Options {
			if strings.EqualFold(opt, trimmed) {
				s.option = i
				return nil
			}
		}
		return fmt.Errorf("%s=%q: %w", s.Name, value, ErrInvalidValue)
	}
	return fmt.Errorf("%s: %w", s.Name, ErrInvalidValue)
}

// Reset restores the default value.
func (s *Setting) Reset() {
	if s == nil {
		return
	}
	_ = s.Set(s.def)
}

func (s *Setting) name() string {
	if s == nil {
		return "<nil>"
	}
	return s.Name
}
