package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple title", "Team A vs. Team B!", "team-a-vs-team-b"},
		{"already a slug", "team-a-vs-team-b", "team-a-vs-team-b"},
		{"whitespace runs", "Real   Madrid \t vs \n Barcelona", "real-madrid-vs-barcelona"},
		{"repeated hyphens", "a -- b", "a-b"},
		{"edge hyphens", "- trimmed -", "trimmed"},
		{"unicode stripped", "Atlético Nacional", "atltico-nacional"},
		{"digits kept", "Round 16: Ajax vs PSV", "round-16-ajax-vs-psv"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Make(tc.in); got != tc.want {
				t.Fatalf("Make(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMakeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Team A vs. Team B!",
		"  spaced   out  ",
		"UPPER case",
		"already-slugged",
	}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Fatalf("Make not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	in := "Liverpool vs Manchester United"
	first := Make(in)
	for i := 0; i < 10; i++ {
		if got := Make(in); got != first {
			t.Fatalf("expected stable output, got %q then %q", first, got)
		}
	}
}
