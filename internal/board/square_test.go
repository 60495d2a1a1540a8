package board

import (
	"errors"
	"testing"
)

func TestSquareNames(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
	}{
		{"a8", A8},
		{"h8", H8},
		{"e8", E8},
		{"a1", A1},
		{"e1", E1},
		{"h1", H1},
		{"d5", 27},
		{"e2", 52},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSquare(tc.name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tc.name, err)
			}
			if got != tc.sq {
				t.Errorf("ParseSquare(%q) = %d, want %d", tc.name, got, tc.sq)
			}
			if tc.sq.String() != tc.name {
				t.Errorf("Square(%d).String() = %q, want %q", tc.sq, tc.sq.String(), tc.name)
			}
		})
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "e", "i1", "a0", "a9", "e44", "E4"} {
		if _, err := ParseSquare(s); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", s, err)
		}
	}
}

func TestSquareAt(t *testing.T) {
	if got := SquareAt(3, 2); got != 19 {
		t.Errorf("SquareAt(3, 2) = %d, want 19", got)
	}
	if got := SquareAt(7, 7); got != 63 {
		t.Errorf("SquareAt(7, 7) = %d, want 63", got)
	}
	if got := SquareAt(8, 0); got != NoSquare {
		t.Errorf("SquareAt(8, 0) = %d, want NoSquare", got)
	}
	if got := SquareAt(0, 8); got != NoSquare {
		t.Errorf("SquareAt(0, 8) = %d, want NoSquare", got)
	}
}

func TestStepEdges(t *testing.T) {
	tests := []struct {
		name    string
		from    Square
		n       uint8
		forward bool
		want    Square
	}{
		{"right from h-file wraps", 7, 1, true, NoSquare},
		{"left from a-file wraps", 8, 1, false, NoSquare},
		{"right inside row", 3, 1, true, 4},
		{"down off the board", 60, 8, true, NoSquare},
		{"up off the board", 3, 8, false, NoSquare},
		{"down-right from h-file wraps", 15, 9, true, NoSquare},
		{"down-left from a-file wraps", 8, 7, true, NoSquare},
		{"up-left from a-file wraps", 16, 9, false, NoSquare},
		{"up-right from h-file wraps", 15, 7, false, NoSquare},
		{"down-right", 27, 9, true, 36},
		{"down-left", 27, 7, true, 34},
		{"up-left", 27, 9, false, 18},
		{"up-right", 27, 7, false, 20},
		{"knight two left from b-file", 9, 6, true, NoSquare},
		{"knight two right from g-file", 14, 10, true, NoSquare},
		{"knight one left from a-file", 0, 15, true, NoSquare},
		{"knight one right from h-file", 7, 17, true, NoSquare},
		{"knight up two right from a-file", 16, 6, false, 10},
		{"knight up two right from g-file wraps", 14, 6, false, NoSquare},
		{"knight up two right", 27, 6, false, 21},
		{"double push", 52, 16, false, 36},
		{"underflow", 5, 9, false, NoSquare},
		{"overflow", 63, 1, true, NoSquare},
		{"invalid origin", NoSquare, 1, false, NoSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got Square
			if tc.forward {
				got = tc.from.Forward(tc.n)
			} else {
				got = tc.from.Backward(tc.n)
			}
			if got != tc.want {
				t.Errorf("step(%d, %d, forward=%v) = %d, want %d", tc.from, tc.n, tc.forward, got, tc.want)
			}
		})
	}
}

// Every step that lands on the board moves at most two columns.
func TestStepNeverWraps(t *testing.T) {
	for sq := Square(0); sq < NoSquare; sq++ {
		for _, n := range []uint8{1, 6, 7, 8, 9, 10, 15, 16, 17} {
			for _, to := range []Square{sq.Forward(n), sq.Backward(n)} {
				if to == NoSquare {
					continue
				}
				if !to.IsValid() {
					t.Fatalf("step from %d by %d produced %d", sq, n, to)
				}
				d := to.Col() - sq.Col()
				if d < -2 || d > 2 {
					t.Errorf("step from %s by %d landed on %s", sq, n, to)
				}
			}
		}
	}
}
