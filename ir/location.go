package ir

import "go/token"

// Location records where an instruction or branch originated, reusing
// go/token's position type.
type Location struct {
	Pos token.Position
}

func (l Location) String() string {
	if l.Pos.Filename == "" {
		return "<unknown>"
	}
	return l.Pos.String()
}
