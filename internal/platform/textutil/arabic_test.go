package textutil

import "testing"

func TestNormalizeArabic(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hamza above alef", input: "أعلان", want: "اعلان"},
		{name: "hamza below alef", input: "إعلان", want: "اعلان"},
		{name: "alef madda", input: "آلة", want: "اله"},
		{name: "taa marbuta", input: "ساعة", want: "ساعه"},
		{name: "alef maqsura", input: "مستشفى", want: "مستشفي"},
		{name: "plain arabic untouched", input: "منتج", want: "منتج"},
		{name: "latin folded", input: "Wireless HEADPHONES", want: "wireless headphones"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeArabic(tc.input); got != tc.want {
				t.Fatalf("NormalizeArabic(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	if got := Fold("Aloe Vera"); got != "aloe vera" {
		t.Fatalf("Fold lowercased to %q", got)
	}
	if got := Fold("قميص"); got != "قميص" {
		t.Fatalf("Fold altered arabic text: %q", got)
	}
}
