package take

import (
	"errors"
	"slices"
	"testing"
)

func TestTakeIncludeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		cond      Condition[rune]
		wantRest  string
		wantTaken string
		wantErr   bool
	}{
		{
			name:      "finds_single_rune",
			input:     "Hello, world",
			cond:      Text(","),
			wantRest:  " world",
			wantTaken: "Hello,",
		},
		{
			name:    "fails_when_not_found",
			input:   "Hello world",
			cond:    Text(","),
			wantErr: true,
		},
		{
			name:      "finds_sequence",
			input:     "abc123xyz",
			cond:      Text("123"),
			wantRest:  "xyz",
			wantTaken: "abc123",
		},
		{
			name:      "match_at_start",
			input:     "aabb",
			cond:      Text("a"),
			wantRest:  "abb",
			wantTaken: "a",
		},
		{
			name:      "newline_condition",
			input:     "This is one line of text.\nThis is another line.",
			cond:      Text("\n"),
			wantRest:  "This is another line.",
			wantTaken: "This is one line of text.\n",
		},
		{
			name:      "digit_predicate",
			input:     "Hello123",
			cond:      Predicate("digit", 1, func(w []rune) bool { return w[0] >= '0' && w[0] <= '9' }),
			wantRest:  "23",
			wantTaken: "Hello1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rest, taken, err := TakeInclude(tt.cond)(Runes(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("TakeInclude(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrNoMatch) {
					t.Errorf("error = %v, want ErrNoMatch", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("TakeInclude(%q) failed: %v", tt.input, err)
			}
			if got := string(rest); got != tt.wantRest {
				t.Errorf("rest = %q, want %q", got, tt.wantRest)
			}
			if got := Str(taken); got != tt.wantTaken {
				t.Errorf("taken = %q, want %q", got, tt.wantTaken)
			}
		})
	}
}

func TestTakeIncludeInts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     []int
		cond      Condition[int]
		wantRest  []int
		wantTaken []int
		wantErr   bool
	}{
		{
			name:      "finds_element",
			input:     []int{1, 2, 3, 4, 5},
			cond:      Element(3),
			wantRest:  []int{4, 5},
			wantTaken: []int{1, 2, 3},
		},
		{
			name:      "single_arg_predicate",
			input:     []int{1, 2, 3, 4, 5},
			cond:      Predicate("over_3", 1, func(w []int) bool { return w[0] > 3 }),
			wantRest:  []int{5},
			wantTaken: []int{1, 2, 3, 4},
		},
		{
			name:      "multi_arg_predicate",
			input:     []int{1, 2, 3, 4, 5},
			cond:      Predicate("sum_over_6", 2, func(w []int) bool { return w[0]+w[1] > 6 }),
			wantRest:  []int{5},
			wantTaken: []int{1, 2, 3, 4},
		},
		{
			name:    "fails_predicate_never_true",
			input:   []int{1, 2, 3},
			cond:    Predicate("sum_over_10", 2, func(w []int) bool { return w[0]+w[1] > 10 }),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rest, taken, err := TakeInclude(tt.cond)(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("TakeInclude(%v) failed: %v", tt.input, err)
			}
			if !slices.Equal(rest, tt.wantRest) {
				t.Errorf("rest = %v, want %v", rest, tt.wantRest)
			}
			if !slices.Equal(taken.([]int), tt.wantTaken) {
				t.Errorf("taken = %v, want %v", taken, tt.wantTaken)
			}
		})
	}
}

func TestTakeIncludeBytes(t *testing.T) {
	t.Parallel()

	rest, taken, err := TakeInclude(Sequence([]byte("123")))([]byte("abc123"))
	if err != nil {
		t.Fatalf("TakeInclude failed: %v", err)
	}
	if string(rest) != "" || Str(taken) != "abc123" {
		t.Errorf("TakeInclude = (%q, %q), want (\"\", \"abc123\")", string(rest), Str(taken))
	}
}
