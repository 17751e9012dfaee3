package robot

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure in this package.
var ErrInvalidInput = errors.New("invalid input")

// Orientation is one of the four cardinal facings, ordered clockwise so
// that index arithmetic modulo 4 implements rotation.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// Unset is the facing of a robot that has not been placed yet.
const Unset Orientation = -1

var orientations = [...]Orientation{North, East, South, West}

var orientationNames = [...]string{"north", "east", "south", "west"}

func (o Orientation) String() string {
	if o < North || o > West {
		return "unset"
	}
	return orientationNames[o]
}

// ParseOrientation maps a canonical direction name to its Orientation.
// Names are case-sensitive.
func ParseOrientation(name string) (Orientation, error) {
	for i, n := range orientationNames {
		if n == name {
			return orientations[i], nil
		}
	}
	return Unset, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, name)
}

// Position is a point on the unbounded integer grid.
type Position struct {
	X, Y int
}

// Robot tracks position and facing on an unbounded grid. A new robot is
// unplaced: until Place succeeds, every mutating operation fails and the
// accessors report the unplaced state.
type Robot struct {
	placed bool
	facing Orientation
	pos    Position
}

func NewRobot() *Robot {
	return &Robot{facing: Unset}
}

// Placed reports whether the robot has been placed on the grid.
func (r *Robot) Placed() bool {
	return r.placed
}

// Place puts the robot at (x, y) facing direction. Setting both fields is
// atomic from the caller's side: on a bad direction name nothing changes.
func (r *Robot) Place(x, y int, direction string) error {
	o, err := ParseOrientation(direction)
	if err != nil {
		return err
	}
	r.pos = Position{X: x, Y: y}
	r.facing = o
	r.placed = true
	return nil
}

// Orient turns the robot to face direction without moving it.
func (r *Robot) Orient(direction string) error {
	o, err := ParseOrientation(direction)
	if err != nil {
		return err
	}
	if !r.placed {
		return errNotPlaced()
	}
	return r.orient(o)
}

func (r *Robot) orient(o Orientation) error {
	if o < North || o > West {
		return fmt.Errorf("%w: orientation out of range", ErrInvalidInput)
	}
	r.facing = o
	return nil
}

// Bearing returns the current facing, or Unset before placement.
func (r *Robot) Bearing() Orientation {
	if !r.placed {
		return Unset
	}
	return r.facing
}

// Coordinates returns the current position by value. ok is false before
// placement.
func (r *Robot) Coordinates() (pos Position, ok bool) {
	if !r.placed {
		return Position{}, false
	}
	return r.pos, true
}

// TurnLeft rotates one step counter-clockwise through the
// north-east-south-west cycle.
func (r *Robot) TurnLeft() error {
	return r.rotate(3)
}

// TurnRight rotates one step clockwise.
func (r *Robot) TurnRight() error {
	return r.rotate(1)
}

// rotate advances the facing by steps through the cycle and re-applies the
// result through orient, so a rotation can never leave the facing invalid.
func (r *Robot) rotate(steps int) error {
	if !r.placed {
		return errNotPlaced()
	}
	return r.orient(orientations[(int(r.facing)+steps)%len(orientations)])
}

// Advance moves one cell in the direction the robot is facing. The grid is
// unbounded, so coordinates may go negative.
func (r *Robot) Advance() error {
	if !r.placed {
		return errNotPlaced()
	}
	switch r.facing {
	case North:
		r.pos.Y++
	case South:
		r.pos.Y--
	case East:
		r.pos.X++
	case West:
		r.pos.X--
	}
	return nil
}

// Evaluate decodes commands and executes the resulting instructions in
// order. Decoding happens up front: on a bad command string, or on an
// unplaced robot, no instruction runs and the state is untouched.
func (r *Robot) Evaluate(commands string) error {
	seq, err := Decode(commands)
	if err != nil {
		return err
	}
	if !r.placed {
		return errNotPlaced()
	}
	for _, in := range seq {
		switch in {
		case Advance:
			err = r.Advance()
		case TurnLeft:
			err = r.TurnLeft()
		case TurnRight:
			err = r.TurnRight()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func errNotPlaced() error {
	return fmt.Errorf("%w: robot not placed", ErrInvalidInput)
}
