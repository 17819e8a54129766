package normalization

import (
	"testing"
)

func TestNormalizeID(t *testing.T) {
	if got := NormalizeID(" 12345678a "); got != "12345678A" {
		t.Fatalf("NormalizeID (trim+upper): got=%q", got)
	}
	if got := NormalizeID(""); got != "" {
		t.Fatalf("NormalizeID (empty): got=%q", got)
	}
	if got := NormalizeID("   "); got != "" {
		t.Fatalf("NormalizeID (whitespace only): got=%q", got)
	}
}

func TestNormalizeIDIdempotent(t *testing.T) {
	inputs := []string{"x1234567y", " X1234567Y ", "\t9876543-Z\n", "", "a"}
	for _, in := range inputs {
		once := NormalizeID(in)
		twice := NormalizeID(once)
		if once != twice {
			t.Fatalf("NormalizeID not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNormalizeIDCaseAndWhitespaceInsensitive(t *testing.T) {
	if NormalizeID("12345678a") != NormalizeID("  12345678A") {
		t.Fatalf("variants of the same identifier should normalize equal")
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Ana García "); got != "Ana García" {
		t.Fatalf("NormalizeName: got=%q", got)
	}
}
