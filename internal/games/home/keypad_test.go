package home

import "testing"

func TestKeypadAcceptsSecret(t *testing.T) {
	k := NewKeypad("69420", 5)
	for _, r := range "694" {
		k.Press(r)
	}
	k.Press('2')
	k.Press('0')

	if k.Digits() != "69420" {
		t.Fatalf("Digits() = %q", k.Digits())
	}
	if !k.Submit() {
		t.Error("matching code should be accepted")
	}
	if k.Digits() != "" {
		t.Error("buffer should be cleared after submit")
	}
}

func TestKeypadRejectsWrongCode(t *testing.T) {
	k := NewKeypad("69420", 5)
	for _, r := range "111" {
		k.Press(r)
	}
	if k.Submit() {
		t.Error("wrong code should be rejected")
	}
	if k.Digits() != "" {
		t.Error("buffer should be cleared after a rejected submit")
	}
}

func TestKeypadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		erase int
		want  string
	}{
		{"digits only", "6a9-4", 0, "694"},
		{"capacity", "1234567", 0, "12345"},
		{"erase", "123", 1, "12"},
		{"erase past empty", "1", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKeypad("69420", 5)
			for _, r := range tt.input {
				k.Press(r)
			}
			for i := 0; i < tt.erase; i++ {
				k.Erase()
			}
			if k.Digits() != tt.want {
				t.Errorf("Digits() = %q, expected %q", k.Digits(), tt.want)
			}
		})
	}
}

func TestKeypadDisplay(t *testing.T) {
	k := NewKeypad("69420", 5)
	k.Press('6')
	k.Press('9')
	if got := k.Display(); got != "6 9 _ _ _" {
		t.Errorf("Display() = %q", got)
	}
}
