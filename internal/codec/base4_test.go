package codec_test

import (
	"testing"

	"asm10/internal/codec"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		n        int
		minWidth int
		want     string
	}{
		{0, 0, ""},
		{0, 1, "a"},
		{100, 1, "bcba"},
		{1, 3, "aab"},
		{0, 3, "aaa"},
		{3, 1, "d"},
		{4, 1, "ba"},
	}

	for _, tc := range cases {
		if got := codec.Encode(tc.n, tc.minWidth); got != tc.want {
			t.Errorf("Encode(%d, %d) = %q, want %q", tc.n, tc.minWidth, got, tc.want)
		}
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"a", 0},
		{"bcba", 100},
		{"d", 3},
		{"ba", 4},
	}

	for _, tc := range cases {
		got, err := codec.Decode(tc.s)
		if err != nil {
			t.Fatalf("Decode(%q): %s", tc.s, err)
		}

		if got != tc.want {
			t.Errorf("Decode(%q) = %d, want %d", tc.s, got, tc.want)
		}
	}
}

func TestDecode_invalid(t *testing.T) {
	if _, err := codec.Decode("be"); err == nil {
		t.Errorf("Decode(%q): expected error", "be")
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n < 1<<20; n += 37 {
		for w := 0; w <= 10; w++ {
			s := codec.Encode(n, w)

			got, err := codec.Decode(s)
			if err != nil {
				t.Fatalf("Decode(Encode(%d, %d)=%q): %s", n, w, s, err)
			}

			if got != n {
				t.Fatalf("round trip: n=%d w=%d: got %d", n, w, got)
			}
		}
	}
}
