package parser

import (
	"strings"
	"testing"
)

func TestDecodeUTF8Preferred(t *testing.T) {
	// "café" as UTF-8. The bytes would also decode under Latin-1 (as
	// "cafÃ©"), but valid UTF-8 must win.
	raw := []byte("caf\xc3\xa9")

	got, ok := Decode(raw, "test", nil)
	if !ok {
		t.Fatal("Decode failed")
	}
	if got != "café" {
		t.Errorf("Decode = %q, want %q", got, "café")
	}
}

func TestDecodeLatin1Fallback(t *testing.T) {
	// "café" in Latin-1: 0xE9 is not valid UTF-8.
	raw := []byte("caf\xe9")

	got, ok := Decode(raw, "test", nil)
	if !ok {
		t.Fatal("Decode failed")
	}
	if !strings.HasPrefix(got, "caf") || got == "caf�" {
		t.Errorf("Decode = %q, want a caf* string without replacement runes", got)
	}
	if got != "café" {
		t.Errorf("Decode = %q, want %q", got, "café")
	}
}

func TestDecodeEmpty(t *testing.T) {
	got, ok := Decode(nil, "test", nil)
	if !ok || got != "" {
		t.Errorf("Decode(nil) = %q, %v", got, ok)
	}
}

func TestDecodeLongNonUTF8(t *testing.T) {
	// A realistic Latin-1 XML body, long enough for statistical detection
	// to have something to chew on. Whatever path decodes it, the umlauts
	// must survive.
	body := "<?xml version=\"1.0\"?><doc>Stra\xdfe im M\xe4rz, \xdcbung</doc>"
	raw := []byte(strings.Repeat(" ", 64) + body)

	got, ok := Decode(raw, "test", nil)
	if !ok {
		t.Fatal("Decode failed")
	}
	if !strings.Contains(got, "Straße im März, Übung") {
		t.Errorf("Decode = %q, want the umlauts decoded", got)
	}
}
