package tape

// Direction is a head movement.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	LEFT  = Direction(0) // <
	STAY  = Direction(1) // ^
	RIGHT = Direction(2) // >
)

// directionMap maps movement glyphs to directions.
var directionMap = map[string]Direction{
	LEFT.String():  LEFT,
	STAY.String():  STAY,
	RIGHT.String(): RIGHT,
}

// ParseDirection returns the direction for a movement glyph.
func ParseDirection(glyph string) (dir Direction, ok bool) {
	dir, ok = directionMap[glyph]
	return
}
