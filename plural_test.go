package polingo

import "testing"

func TestPluralIndex_Default(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 0},
		{2, 1},
		{5, 1},
		{21, 1},
		{100, 1},
		{-1, 1},
	}

	for _, tt := range tests {
		for _, locale := range []string{"en", "es", "de", "it", "xx"} {
			if got := PluralIndex(tt.n, locale); got != tt.want {
				t.Errorf("PluralIndex(%d, %q) = %d, want %d", tt.n, locale, got, tt.want)
			}
		}
	}
}

func TestPluralIndex_French(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{10, 1},
	}

	for _, tt := range tests {
		for _, locale := range []string{"fr", "pt", "fr_FR", "pt-BR"} {
			if got := PluralIndex(tt.n, locale); got != tt.want {
				t.Errorf("PluralIndex(%d, %q) = %d, want %d", tt.n, locale, got, tt.want)
			}
		}
	}
}

func TestPluralIndex_Slavic(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{21, 0},
		{101, 0},
		{2, 1},
		{3, 1},
		{4, 1},
		{22, 1},
		{0, 2},
		{5, 2},
		{11, 2},
		{12, 2},
		{14, 2},
		{111, 2},
		{112, 2},
	}

	for _, tt := range tests {
		for _, locale := range []string{"ru", "uk", "sr"} {
			if got := PluralIndex(tt.n, locale); got != tt.want {
				t.Errorf("PluralIndex(%d, %q) = %d, want %d", tt.n, locale, got, tt.want)
			}
		}
	}
}

func TestPluralIndex_Polish(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{2, 1},
		{4, 1},
		{22, 1},
		{0, 2},
		{5, 2},
		{12, 2},
		{21, 2}, // unlike Russian, 21 is not the singular form in Polish
		{112, 2},
	}

	for _, tt := range tests {
		if got := PluralIndex(tt.n, "pl"); got != tt.want {
			t.Errorf("PluralIndex(%d, \"pl\") = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPluralIndex_Czech(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 1},
		{0, 2},
		{5, 2},
		{100, 2},
	}

	for _, tt := range tests {
		for _, locale := range []string{"cs", "sk"} {
			if got := PluralIndex(tt.n, locale); got != tt.want {
				t.Errorf("PluralIndex(%d, %q) = %d, want %d", tt.n, locale, got, tt.want)
			}
		}
	}
}

func TestPluralIndex_NoPlural(t *testing.T) {
	for _, locale := range []string{"zh", "ja", "ko", "zh_CN", "ja-JP"} {
		for _, n := range []int{0, 1, 2, 100} {
			if got := PluralIndex(n, locale); got != 0 {
				t.Errorf("PluralIndex(%d, %q) = %d, want 0", n, locale, got)
			}
		}
	}
}

func TestPluralIndex_LocaleNormalization(t *testing.T) {
	// Region subtags and case never change the rule family.
	variants := []string{"ru", "RU", "ru_RU", "ru-RU", "Ru_Ru"}

	for _, locale := range variants {
		if got := PluralIndex(21, locale); got != 0 {
			t.Errorf("PluralIndex(21, %q) = %d, want 0", locale, got)
		}
	}
}

func TestPluralIndex_Deterministic(t *testing.T) {
	for n := -10; n <= 200; n++ {
		first := PluralIndex(n, "uk")
		for i := 0; i < 3; i++ {
			if got := PluralIndex(n, "uk"); got != first {
				t.Fatalf("PluralIndex(%d, \"uk\") not deterministic: %d then %d", n, first, got)
			}
		}
	}
}

func TestPluralFormCount(t *testing.T) {
	tests := []struct {
		locale string
		want   int
	}{
		{"en", 2},
		{"es", 2},
		{"fr", 2},
		{"ru", 3},
		{"pl", 3},
		{"cs", 3},
		{"zh", 1},
		{"ja_JP", 1},
		{"unknown", 2},
	}

	for _, tt := range tests {
		if got := PluralFormCount(tt.locale); got != tt.want {
			t.Errorf("PluralFormCount(%q) = %d, want %d", tt.locale, got, tt.want)
		}
	}
}
