package utils

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Rogério", "rogerio"},
		{"  ROGERIO ", "rogerio"},
		{"São João", "sao joao"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := NormalizeName(c.in); got != c.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAdminCode(t *testing.T) {
	if err := SetAdminCode("166480"); err != nil {
		t.Fatalf("set admin code: %v", err)
	}
	if !CheckAdminCode("166480") {
		t.Fatal("correct code rejected")
	}
	if CheckAdminCode("000000") {
		t.Fatal("wrong code accepted")
	}
}

func TestGenerateJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("19999999999", "Maria", "customer")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
}
