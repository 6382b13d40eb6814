// Package transition holds the catalog of built-in view transitions and the
// progress mapper that turns a 0..1 animation value into slot offsets.
package transition

import (
	"fmt"
	"strings"
)

// Kind identifies a built-in transition.
type Kind int

const (
	None Kind = iota
	PushLeft
	PushRight
	PushUp
	PushDown
	CoverLeft
	CoverRight
	CoverUp
	CoverDown
	RevealLeft
	RevealRight
	RevealUp
	RevealDown
)

var kindNames = [...]string{
	None:        "none",
	PushLeft:    "push_left",
	PushRight:   "push_right",
	PushUp:      "push_up",
	PushDown:    "push_down",
	CoverLeft:   "cover_left",
	CoverRight:  "cover_right",
	CoverUp:     "cover_up",
	CoverDown:   "cover_down",
	RevealLeft:  "reveal_left",
	RevealRight: "reveal_right",
	RevealUp:    "reveal_up",
	RevealDown:  "reveal_down",
}

// Kinds returns every catalog entry in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		out = append(out, Kind(k))
	}
	return out
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool {
	return k >= None && int(k) < len(kindNames)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a name such as "cover_up" (case-insensitive, '-' accepted
// for '_') to its Kind.
func ParseKind(s string) (Kind, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, name := range kindNames {
		if name == n {
			return Kind(k), nil
		}
	}
	return None, fmt.Errorf("unknown transition %q", s)
}

// IsPush reports whether k is one of the PUSH_* kinds.
func IsPush(k Kind) bool { return k >= PushLeft && k <= PushDown }

// IsCover reports whether k is one of the COVER_* kinds.
func IsCover(k Kind) bool { return k >= CoverLeft && k <= CoverDown }

// IsReveal reports whether k is one of the REVEAL_* kinds.
// Reveal is the only family where the outgoing view stacks on top.
func IsReveal(k Kind) bool { return k >= RevealLeft && k <= RevealDown }

func (k Kind) IsPush() bool   { return IsPush(k) }
func (k Kind) IsCover() bool  { return IsCover(k) }
func (k Kind) IsReveal() bool { return IsReveal(k) }

var reverse = map[Kind]Kind{
	PushLeft:    PushRight,
	PushRight:   PushLeft,
	PushUp:      PushDown,
	PushDown:    PushUp,
	CoverLeft:   RevealRight,
	CoverRight:  RevealLeft,
	CoverUp:     RevealDown,
	CoverDown:   RevealUp,
	RevealLeft:  CoverRight,
	RevealRight: CoverLeft,
	RevealUp:    CoverDown,
	RevealDown:  CoverUp,
}

// Reverse returns the kind that plays k backwards, so a pop can undo the
// motion of the push that preceded it. None and unknown kinds map to None.
func Reverse(k Kind) Kind {
	return reverse[k]
}
