package semver

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"14", []int{14}},
		{"14.2", []int{14, 2}},
		{"14.2.1", []int{14, 2, 1}},
		{" 10.3 ", []int{10, 3}},
		{"", nil},
		{"garbage", nil},
		{"1.x", []int{1}},
	}
	for _, c := range cases {
		got := Parse(c.in)
		if len(got.Parts) != len(c.want) {
			t.Fatalf("Parse(%q) = %v, want %v", c.in, got.Parts, c.want)
		}
		for i := range c.want {
			if got.Parts[i] != c.want[i] {
				t.Fatalf("Parse(%q) = %v, want %v", c.in, got.Parts, c.want)
			}
		}
	}
}

func TestCompareMissingTrailingComponentsAreZero(t *testing.T) {
	a := Parse("14")
	b := Parse("14.0.0")
	if Compare(a, b) != 0 {
		t.Fatalf("14 should equal 14.0.0")
	}
}

func TestCompareOrdering(t *testing.T) {
	cases := []struct {
		a, b string
		sign int
	}{
		{"1.2", "1.10", -1},
		{"2", "1.9.9", 1},
		{"0.36", "0.4", 1},
		{"11", "11", 0},
	}
	for _, c := range cases {
		got := Compare(Parse(c.a), Parse(c.b))
		switch {
		case c.sign < 0 && got >= 0, c.sign > 0 && got <= 0, c.sign == 0 && got != 0:
			t.Fatalf("Compare(%s, %s) = %d, want sign %d", c.a, c.b, got, c.sign)
		}
	}
}

func TestAtLeast(t *testing.T) {
	if !AtLeast(Parse("10.1"), Parse("10")) {
		t.Fatalf("10.1 >= 10")
	}
	if AtLeast(Parse("9.9"), Parse("10")) {
		t.Fatalf("9.9 < 10")
	}
}

func TestStringRoundTrip(t *testing.T) {
	if s := Parse("14.2.1").String(); s != "14.2.1" {
		t.Fatalf("got %q", s)
	}
	if s := (Semver{}).String(); s != "" {
		t.Fatalf("zero Semver should print empty, got %q", s)
	}
}
