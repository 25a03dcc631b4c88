// Package config defines the user settings shared by the pages and the
// renderer, and their fixed binary encoding.
package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// CurrentVersion is bumped whenever the binary layout changes.
const CurrentVersion uint16 = 1

// Size is the encoded length of Settings.
const Size = 8

var (
	ErrInvalidSize       = errors.New("invalid data size")
	ErrUnknownTransition = errors.New("unknown transition")
)

// Transition selects the animation played when a page navigates.
type Transition uint8

const (
	TransitionDither Transition = iota
	TransitionScale
	TransitionSlide
	TransitionDoom
	TransitionNone
	transitionCount
)

var transitionNames = [transitionCount]string{"dither", "scale", "slide", "doom", "none"}

// Transitions lists every transition in menu order.
func Transitions() []Transition {
	out := make([]Transition, transitionCount)
	for i := range out {
		out[i] = Transition(i)
	}
	return out
}

func (t Transition) Valid() bool { return t < transitionCount }

func (t Transition) String() string {
	if !t.Valid() {
		return fmt.Sprintf("transition(%d)", uint8(t))
	}
	return transitionNames[t]
}

// ParseTransition parses a transition name, case-insensitively.
func ParseTransition(s string) (Transition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range transitionNames {
		if name == s {
			return Transition(i), nil
		}
	}
	return TransitionDither, fmt.Errorf("%q: %w", s, ErrUnknownTransition)
}

const flagStartupSkip = 1 << 0

// Settings are the persisted user preferences.
//
// Binary format (little-endian, 8 bytes):
//
//	[0:2] Version
//	[2]   Transition
//	[3:6] HSV
//	[6]   Flags (bit 0: skip startup animation)
//	[7]   Reserved
type Settings struct {
	Version     uint16
	Transition  Transition
	HSV         [3]uint8
	StartupSkip bool
}

// Default returns the factory settings.
func Default() Settings {
	return Settings{
		Version:    CurrentVersion,
		Transition: TransitionDither,
		HSV:        [3]uint8{0, 255, 255},
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Settings) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint16(buf[0:], s.Version)
	buf[2] = uint8(s.Transition)
	copy(buf[3:6], s.HSV[:])
	if s.StartupSkip {
		buf[6] |= flagStartupSkip
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. An out-of-range
// transition decodes as TransitionDither.
func (s *Settings) UnmarshalBinary(data []byte) error {
	if len(data) < Size {
		return ErrInvalidSize
	}
	s.Version = binary.LittleEndian.Uint16(data[0:])
	s.Transition = Transition(data[2])
	if !s.Transition.Valid() {
		s.Transition = TransitionDither
	}
	copy(s.HSV[:], data[3:6])
	s.StartupSkip = data[6]&flagStartupSkip != 0
	return nil
}
