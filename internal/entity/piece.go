package entity

// Side - one of the two competing players.
type Side string

const (
	SideA  Side = "A"
	SideB  Side = "B"
	NoSide Side = ""
)

// Sides - both sides in seating order.
var Sides = [2]Side{SideA, SideB}

// Opponent - returns the other side. NoSide has no opponent.
func (that Side) Opponent() Side {
	switch that {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return NoSide
	}
}

func (that Side) IsValid() bool {
	return that == SideA || that == SideB
}

// PieceKind - movement role of a piece.
type PieceKind string

const (
	Pawn1 PieceKind = "P1"
	Pawn2 PieceKind = "P2"
	Pawn3 PieceKind = "P3"
	Hero1 PieceKind = "H1"
	Hero2 PieceKind = "H2"
)

// HomeRowOrder - column order of the pieces on a home row.
var HomeRowOrder = [5]PieceKind{Pawn1, Pawn2, Hero1, Hero2, Pawn3}

func (that PieceKind) IsPawn() bool {
	return that == Pawn1 || that == Pawn2 || that == Pawn3
}

func (that PieceKind) IsValid() bool {
	return that.IsPawn() || that == Hero1 || that == Hero2
}

type Direction string

const (
	Left         Direction = "L"
	Right        Direction = "R"
	Forward      Direction = "F"
	Backward     Direction = "B"
	ForwardLeft  Direction = "FL"
	ForwardRight Direction = "FR"
	BackLeft     Direction = "BL"
	BackRight    Direction = "BR"
)

func (that Direction) IsDiagonal() bool {
	switch that {
	case ForwardLeft, ForwardRight, BackLeft, BackRight:
		return true
	default:
		return false
	}
}

func (that Direction) IsValid() bool {
	switch that {
	case Left, Right, Forward, Backward:
		return true
	default:
		return that.IsDiagonal()
	}
}

// Piece - an immutable (owner, kind) value. The zero Piece is an empty cell.
type Piece struct {
	Owner Side      `json:"player"`
	Kind  PieceKind `json:"type"`
}

func (that Piece) IsEmpty() bool {
	return that.Owner == NoSide
}

// Position - a grid cell addressed as (row, col). Row 0 is side B's home row.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move - a parsed move command.
type Move struct {
	Side      Side
	Kind      PieceKind
	Direction Direction
}
