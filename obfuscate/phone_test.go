package obfuscate

import "testing"

func TestParsePhone(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "nine plain digits", in: "123456789"},
		{name: "grouped with plus", in: "+44 123 456 789"},
		{name: "grouped without plus", in: "44 123 456 789"},
		{name: "plus then space", in: "+ 44 123 456 789"},
		{name: "eight digits too short", in: "12345678", wantErr: true},
		{name: "interior plus", in: "44+123456789", wantErr: true},
		{name: "double plus", in: "++44123456789", wantErr: true},
		{name: "trailing plus", in: "44123456789+", wantErr: true},
		{name: "dash separator", in: "44-123-456-789", wantErr: true},
		{name: "letter", in: "4412345678a", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "plus only", in: "+", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePhone(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePhone(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestPhoneMasked(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "uk style", in: "+44 123 456 789", want: "+**-***-**6-789"},
		{name: "ru style", in: "+7 999 123 45 67", want: "+*-***-***-45-67"},
		{name: "bare nine digits", in: "123456789", want: "*****6789"},
		{name: "bare thirteen digits", in: "1234567890123", want: "*********0123"},
		{name: "no plus grouped", in: "44 123 456 789", want: "**-***-**6-789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePhone(tt.in)
			if err != nil {
				t.Fatalf("ParsePhone(%q) unexpected error: %v", tt.in, err)
			}
			if got := p.Masked(); got != tt.want {
				t.Fatalf("Masked(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPhoneAccessors(t *testing.T) {
	p, err := ParsePhone("+44 123 456 789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.HasPlus() {
		t.Fatal("HasPlus() = false, want true")
	}
	if p.DigitCount() != 11 {
		t.Fatalf("DigitCount() = %d, want 11", p.DigitCount())
	}
	if p.String() != "+44 123 456 789" {
		t.Fatalf("String() = %q", p.String())
	}
}
