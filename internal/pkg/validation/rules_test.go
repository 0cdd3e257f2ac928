package validation

import "testing"

func TestValidIdentifier(t *testing.T) {
	valid := []string{"S2021001", "L1001", "CS101", "abc"}
	for _, id := range valid {
		if !ValidIdentifier(id) {
			t.Errorf("ValidIdentifier(%q) = false", id)
		}
	}

	invalid := []string{"", "ab", "has space", "semi;colon", "way-too-long-identifier-exceeding-thirty-two-chars"}
	for _, id := range invalid {
		if ValidIdentifier(id) {
			t.Errorf("ValidIdentifier(%q) = true", id)
		}
	}
}

func TestValidCode(t *testing.T) {
	if !ValidCode("AB12CD") {
		t.Error("ValidCode(AB12CD) = false")
	}
	for _, code := range []string{"ab12cd", "AB1", "AB12CD3456789"} {
		if ValidCode(code) {
			t.Errorf("ValidCode(%q) = true", code)
		}
	}
}

func TestValidPasswordAndName(t *testing.T) {
	if ValidPassword("abc") || !ValidPassword("abcdef") {
		t.Error("password length rule broken")
	}
	if ValidName("a") || !ValidName("Ada Lovelace") {
		t.Error("name length rule broken")
	}
}
