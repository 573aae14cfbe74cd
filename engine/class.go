package engine

import "github.com/dhamidi/lexkit/reader"

// ClassRange is an inclusive range of runes.
type ClassRange struct {
	Lo, Hi rune
}

// Class matches a single character from a set of rune ranges. The name is
// used in diagnostics ("expected letter").
type Class struct {
	name   string
	ranges []ClassRange
}

func NewClass(name string, ranges ...ClassRange) *Class {
	return &Class{name: name, ranges: ranges}
}

// Add returns a class extended by more ranges; the receiver is unchanged.
func (c *Class) Add(ranges ...ClassRange) *Class {
	combined := make([]ClassRange, 0, len(c.ranges)+len(ranges))
	combined = append(combined, c.ranges...)
	combined = append(combined, ranges...)
	return &Class{name: c.name, ranges: combined}
}

func (c *Class) Contains(ch rune) bool {
	for _, rr := range c.ranges {
		if ch >= rr.Lo && ch <= rr.Hi {
			return true
		}
	}
	return false
}

func (c *Class) Match(r *reader.Reader) Code {
	if !c.Contains(r.Peek()) {
		return ErrClass
	}
	r.Advance()
	return OK
}

func (c *Class) String() string {
	return c.name
}
