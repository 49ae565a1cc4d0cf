package users

import "testing"

func TestValidatePasswordPolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"letters and digits", "delivery99", false},
		{"too short", "abc1", true},
		{"digits only", "12345678", true},
		{"letters only", "abcdefgh", true},
		{"symbols allowed alongside", "g0down-keeper!", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordPolicy(tc.password)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidatePasswordPolicy(%q) err = %v, wantErr %v", tc.password, err, tc.wantErr)
			}
		})
	}
}
