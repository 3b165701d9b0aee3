package pdf

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain",
			text: "Available at https://doi.org/10.1093/molbev/msaa123 online",
			want: "10.1093/molbev/msaa123",
		},
		{
			name: "trailing punctuation",
			text: "see 10.1000/xyz.456.",
			want: "10.1000/xyz.456",
		},
		{
			name: "none",
			text: "no identifiers here",
			want: "",
		},
		{
			name: "too short rejected",
			text: "fake 10.1/x marker",
			want: "",
		},
		{
			name: "first valid wins",
			text: "10.1001/first.one then 10.1002/second.one",
			want: "10.1001/first.one",
		},
	}
	for _, tt := range tests {
		if got := findDOI(tt.text); got != tt.want {
			t.Errorf("%s: findDOI = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsValidDOI(t *testing.T) {
	tests := []struct {
		doi  string
		want bool
	}{
		{"10.1093/molbev/msaa123", true},
		{"10.1000/182", true},
		{"11.1000/182", false},  // wrong prefix
		{"10.1000182", false},   // no slash
		{"10.1/x", false},       // too short
		{"10.1000/", false},     // nothing after slash
	}
	for _, tt := range tests {
		if got := isValidDOI(tt.doi); got != tt.want {
			t.Errorf("isValidDOI(%q) = %v, want %v", tt.doi, got, tt.want)
		}
	}
}

func TestIsBoilerplateLine(t *testing.T) {
	if !isBoilerplateLine("Journal of Molecular Biology") {
		t.Error("journal header should be boilerplate")
	}
	if !isBoilerplateLine("Copyright 2024 The Authors") {
		t.Error("copyright line should be boilerplate")
	}
	if isBoilerplateLine("A Novel Approach to Sequence Alignment") {
		t.Error("title line should not be boilerplate")
	}
}
