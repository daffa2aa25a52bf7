package bytescan

import (
	"bytes"
	"testing"
)

func TestFirstLocatesEarliestMatch(t *testing.T) {
	buf := []byte("xxabxxabxx")
	offset, ok := First(buf, []byte("ab"), 0)
	if !ok || offset != 2 {
		t.Fatalf("expected match at 2, got %d (ok=%v)", offset, ok)
	}

	offset, ok = First(buf, []byte("ab"), 3)
	if !ok || offset != 6 {
		t.Fatalf("expected match at 6 with start=3, got %d (ok=%v)", offset, ok)
	}
}

func TestFirstNoMatch(t *testing.T) {
	if _, ok := First([]byte("abcdef"), []byte("zz"), 0); ok {
		t.Fatal("expected no match")
	}
	if _, ok := First([]byte("abc"), []byte("a"), 10); ok {
		t.Fatal("start past end must not match")
	}
	if _, ok := First([]byte("abc"), nil, 0); ok {
		t.Fatal("empty pattern must not match")
	}
}

func TestAllReturnsEveryOffsetAscending(t *testing.T) {
	buf := []byte("ab--ab--ab")
	got := Collect(buf, []byte("ab"), 0)
	want := []int{0, 4, 8}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	for _, offset := range got {
		if !bytes.Equal(buf[offset:offset+2], []byte("ab")) {
			t.Fatalf("offset %d does not start a match", offset)
		}
	}
}

func TestAllMatchesAreNonOverlapping(t *testing.T) {
	got := Collect([]byte("aaaa"), []byte("aa"), 0)
	want := []int{0, 2}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAllAgreesWithFirst(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("no match here"),
		[]byte("needle"),
		[]byte("hayneedlehayneedle"),
	}
	pattern := []byte("needle")
	for _, buf := range cases {
		all := Collect(buf, pattern, 0)
		first, ok := First(buf, pattern, 0)
		if !ok {
			if len(all) != 0 {
				t.Fatalf("First found nothing but All returned %v for %q", all, buf)
			}
			continue
		}
		if len(all) == 0 || all[0] != first {
			t.Fatalf("First=%d disagrees with All=%v for %q", first, all, buf)
		}
	}
}

func TestAllIsRestartable(t *testing.T) {
	buf := []byte("ab--ab")
	seq := All(buf, []byte("ab"), 0)
	for range seq {
		break
	}
	count := 0
	for range seq {
		count++
	}
	if count != 2 {
		t.Fatalf("expected a fresh scan to yield 2 matches, got %d", count)
	}
}
