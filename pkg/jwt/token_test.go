package jwtPkg

import "testing"

func TestSignature(t *testing.T) {
	cases := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{"compact jwt", "aGVhZGVy.cGF5bG9hZA.c2lnbmF0dXJl", "c2lnbmF0dXJl", false},
		{"missing signature", "aGVhZGVy.cGF5bG9hZA.", "", true},
		{"two segments", "aGVhZGVy.cGF5bG9hZA", "", true},
		{"four segments", "a.b.c.d", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Signature(tc.token)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Signature(%q) = %q, want %q", tc.token, got, tc.want)
			}
		})
	}
}
