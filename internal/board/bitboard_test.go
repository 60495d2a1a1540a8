package board

import (
	"encoding/json"
	"testing"
)

func TestBitboardInsertRemove(t *testing.T) {
	var bb Bitboard

	for i := Square(0); i < 62; i++ {
		bb.Insert(i)
		if !bb.Contains(i) {
			t.Fatalf("Contains(%d) = false after Insert", i)
		}
	}

	if bb.Contains(63) {
		t.Error("Contains(63) = true, never inserted")
	}

	bb.Remove(1)
	if bb.Contains(1) {
		t.Error("Contains(1) = true after Remove")
	}

	// Removing again is a no-op
	bb.Remove(1)
	if got := len(bb.Squares()); got != 61 {
		t.Errorf("len(Squares()) = %d, want 61", got)
	}
}

func TestBitboardIndexWraps(t *testing.T) {
	var bb Bitboard
	bb.Insert(64 + 5)
	if !bb.Contains(5) {
		t.Error("Insert(69) should set square 5")
	}
	if !bb.Contains(69) {
		t.Error("Contains(69) should read square 5")
	}
	bb.Remove(69)
	if !bb.IsEmpty() {
		t.Errorf("bitboard = %x after Remove(69), want empty", uint64(bb))
	}
}

func TestBitboardUnion(t *testing.T) {
	a := SquareBB(1) | SquareBB(10)
	b := SquareBB(10) | SquareBB(63)
	got := a.Union(b)
	want := SquareBB(1) | SquareBB(10) | SquareBB(63)
	if got != want {
		t.Errorf("Union = %x, want %x", uint64(got), uint64(want))
	}
	if !Empty.IsEmpty() || got.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}

func TestBitboardIter(t *testing.T) {
	bb := SquareBB(63) | SquareBB(0) | SquareBB(17) | SquareBB(40)
	want := []Square{0, 17, 40, 63}

	it := bb.Iter()
	if it.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", it.Len(), len(want))
	}
	for i, w := range want {
		sq, ok := it.Next()
		if !ok || sq != w {
			t.Fatalf("Next() #%d = %d, %v, want %d, true", i, sq, ok, w)
		}
		if it.Len() != len(want)-i-1 {
			t.Errorf("Len() after %d = %d, want %d", i+1, it.Len(), len(want)-i-1)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after exhaustion returned ok")
	}

	// A fresh iterator starts over
	again := bb.Iter()
	if sq, _ := again.Next(); sq != 0 {
		t.Errorf("restarted Next() = %d, want 0", sq)
	}

	var seen []Square
	for sq := range bb.All() {
		seen = append(seen, sq)
		if sq == 17 {
			break
		}
	}
	if len(seen) != 2 {
		t.Errorf("All() with early break yielded %v", seen)
	}
}

func TestBitboardJSON(t *testing.T) {
	bb := SquareBB(36) | SquareBB(44) | SquareBB(3)
	data, err := json.Marshal(bb)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[3,36,44]" {
		t.Errorf("Marshal = %s, want [3,36,44]", data)
	}

	var back Bitboard
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != bb {
		t.Errorf("Unmarshal = %x, want %x", uint64(back), uint64(bb))
	}

	if err := json.Unmarshal([]byte("[64]"), &back); err == nil {
		t.Error("Unmarshal([64]) should fail")
	}

	data, _ = json.Marshal(Empty)
	if string(data) != "[]" {
		t.Errorf("Marshal(Empty) = %s, want []", data)
	}
}
