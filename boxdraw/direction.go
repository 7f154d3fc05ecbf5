package boxdraw

import (
	"fmt"
	"math/bits"
)

// Direction is a single cardinal bit of a Mask
type Direction uint8

// Bit order is clockwise from Up and is part of the mask contract
const (
	Up    Direction = 1 << iota // bit 0
	Right                       // bit 1
	Down                        // bit 2
	Left                        // bit 3
)

// Directions lists the cardinal directions in bit order
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Mask is a set of directions with a segment drawn from the cell center
type Mask uint8

const (
	MaskNone Mask = 0
	MaskAll  Mask = Mask(Up | Right | Down | Left)
)

// MaskOf builds a mask from directions
func MaskOf(dirs ...Direction) Mask {
	var m Mask
	for _, d := range dirs {
		m |= Mask(d)
	}
	return m
}

func (m Mask) Has(d Direction) bool { return m&Mask(d) != 0 }

func (m Mask) With(d Direction) Mask { return m | Mask(d) }

func (m Mask) Without(d Direction) Mask { return m &^ Mask(d) }

// Union is the stacking operator
func (m Mask) Union(o Mask) Mask { return m | o }

// Count returns the number of directions set
func (m Mask) Count() int { return bits.OnesCount8(uint8(m)) }

// Valid reports whether only the low 4 bits are used
func (m Mask) Valid() bool { return m <= MaskAll }

// Rotate turns the mask 90° clockwise: Up→Right→Down→Left→Up
func (m Mask) Rotate() Mask {
	return ((m << 1) | (m >> 3)) & MaskAll
}

func (m Mask) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mask(%d)", uint8(m))
	}
	if m == MaskNone {
		return "-"
	}
	buf := make([]byte, 0, 4)
	for i, d := range Directions {
		if m.Has(d) {
			buf = append(buf, "URDL"[i])
		}
	}
	return string(buf)
}
