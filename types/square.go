package types

import "fmt"

// Square is one of the 64 squares, 0..63, plus the SqNone sentinel.
// Square 0 is A1, square 63 is H8: file = sq%8, rank = sq/8.
type Square int8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone // 64
)

// SqLength is the number of real squares on the board.
const SqLength = 64

// IsValid reports whether sq is one of the 64 real squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square for the given file and rank, or SqNone if
// either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses a square string like "e4" and returns SqNone if it is
// not exactly two valid characters.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns the file+rank string (e.g. "e4"), or "-" if sq is invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square reached by stepping in direction d, or SqNone if
// that step would leave the board (including wraparound across files).
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return validOrNone(sq + Square(d))
	case South:
		return validOrNone(sq + Square(d))
	case East:
		if sq.FileOf() == FileH {
			return SqNone
		}
		return validOrNone(sq + Square(d))
	case West:
		if sq.FileOf() == FileA {
			return SqNone
		}
		return validOrNone(sq + Square(d))
	case Northeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		return validOrNone(sq + Square(d))
	case Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		return validOrNone(sq + Square(d))
	case Northwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		return validOrNone(sq + Square(d))
	case Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		return validOrNone(sq + Square(d))
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

func validOrNone(sq Square) Square {
	if sq < SqA1 || sq > SqH8 {
		return SqNone
	}
	return sq
}
