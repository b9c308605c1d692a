package config

import "testing"

func TestPasswordRule(t *testing.T) {
	validate := NewValidator()

	type probe struct {
		Password string `validate:"password"`
	}

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"upper lower digit", "Sup3rsecret", true},
		{"missing uppercase", "sup3rsecret", false},
		{"missing lowercase", "SUP3RSECRET", false},
		{"missing digit", "Supersecret", false},
		{"symbols allowed", "Sup3r!secret", true},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(probe{Password: tc.password})
			if tc.valid && err != nil {
				t.Fatalf("expected %q to pass, got %v", tc.password, err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("expected %q to fail", tc.password)
			}
		})
	}
}
