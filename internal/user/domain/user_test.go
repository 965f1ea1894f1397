package domain

import (
	"encoding/json"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := map[string]Role{
		"User":    RoleUser,
		"seller":  RoleSeller,
		"Seller":  RoleSeller,
		"ADMIN":   RoleAdmin,
		" admin ": RoleAdmin,
		"":        RoleUser,
		"root":    RoleUser,
	}
	for in, want := range tests {
		if got := ParseRole(in); got != want {
			t.Errorf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUserJSONCarriesRoleFlagsAndHidesPassword(t *testing.T) {
	u := User{ID: 3, Name: "Geralt", Email: "g@kaer.morhen", Password: "hash", Role: RoleSeller}

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}

	if _, ok := got["password"]; ok {
		t.Error("password leaked")
	}
	if got["isSeller"] != true || got["isUser"] != false || got["isAdmin"] != false {
		t.Errorf("flags = %v/%v/%v", got["isUser"], got["isSeller"], got["isAdmin"])
	}
	if got["role"] != "seller" || got["email"] != "g@kaer.morhen" {
		t.Errorf("payload = %v", got)
	}
}
