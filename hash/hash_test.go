package hash

import "testing"

func TestFNV1a_KnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"", 0x811c9dc5},
		{"a", 0xe40c292c},
		{"foobar", 0xbf9cf968},
	}
	for _, c := range cases {
		if got := FNV1a(c.in); got != c.want {
			t.Fatalf("FNV1a(%q)=%#08x want %#08x", c.in, got, c.want)
		}
	}
}

func TestFNV1a_CaseInsensitive(t *testing.T) {
	if FNV1a("mAnimationResourceData") != FNV1a("manimationresourcedata") {
		t.Fatalf("expected case-folded hash")
	}
	if FNV1a("FOOBAR") != 0xbf9cf968 {
		t.Fatalf("upper case must hash like lower case")
	}
}

func TestName_UnknownLiteral(t *testing.T) {
	if got := Name("unk_0xdeadbeef"); got != 0xdeadbeef {
		t.Fatalf("got %#08x", got)
	}
	if got := Name("0x1234"); got != 0x1234 {
		t.Fatalf("got %#08x", got)
	}
	// malformed literal falls back to hashing the text
	if got := Name("unk_0xzz"); got != FNV1a("unk_0xzz") {
		t.Fatalf("got %#08x", got)
	}
}

func TestXXH64_KnownVector(t *testing.T) {
	if got := XXH64(""); got != 0xef46db3751d8e999 {
		t.Fatalf("XXH64(\"\")=%#016x", got)
	}
	if XXH64("Data/Characters/Annie/Annie.bin") != XXH64("data/characters/annie/annie.bin") {
		t.Fatalf("expected case-folded path hash")
	}
}

func TestPath_Literal(t *testing.T) {
	if got := Path("0x00000000000000ff"); got != 0xff {
		t.Fatalf("got %#x", got)
	}
	if got := Path("data/x.bin"); got != XXH64("data/x.bin") {
		t.Fatalf("got %#x", got)
	}
}
