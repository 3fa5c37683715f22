package utils

import "testing"

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-05-10", true},
		{"2024-02-29", true},  // leap year
		{"2023-02-29", false}, // not a leap year
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-5-10", false}, // not zero-padded
		{"10-05-2024", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, c := range cases {
		if got := IsValidDate(c.in); got != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"09:30", true},
		{"24:00", false},
		{"12:60", false},
		{"9:30", false},
		{"0930", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidTime(c.in); got != c.want {
			t.Errorf("IsValidTime(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTimeToMinutes(t *testing.T) {
	if m, ok := TimeToMinutes("09:30"); !ok || m != 570 {
		t.Errorf("TimeToMinutes(09:30) = %d, %v", m, ok)
	}
	if _, ok := TimeToMinutes("25:00"); ok {
		t.Error("TimeToMinutes(25:00) should not be ok")
	}
}

func TestCompareTimes(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"09:00", "10:00", -1},
		{"10:00", "09:00", 1},
		{"09:00", "09:00", 0},
		{"bogus", "09:00", 0}, // invalid compares equal to everything
		{"09:00", "bogus", 0},
	}
	for _, c := range cases {
		if got := CompareTimes(c.a, c.b); got != c.want {
			t.Errorf("CompareTimes(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	if got := NormalizeText("  Dentist Visit "); got != "dentist visit" {
		t.Errorf("NormalizeText = %q", got)
	}
}

func TestNormalizeCategoryName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  My   Category ", "My Category"},
		{"Work", "Work"},
		{"a\t b\n c", "a b c"},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := NormalizeCategoryName(c.in); got != c.want {
			t.Errorf("NormalizeCategoryName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDateLabel(t *testing.T) {
	if got := FormatDateLabel("2024-05-10"); got != "Fri, May 10" {
		t.Errorf("FormatDateLabel = %q", got)
	}
	if got := FormatDateLabel("junk"); got != "junk" {
		t.Errorf("FormatDateLabel passthrough = %q", got)
	}
}
