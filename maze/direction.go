package maze

// Direction is one of the four grid directions. Grid y grows southwards.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the four directions in clockwise order from North.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// IsValid reports whether d is one of the four directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets of one step towards d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
