package translit

import (
	"sync"
	"testing"
)

func TestTransliterateASCIIIdentity(t *testing.T) {
	eng := Default()
	for _, input := range []string{
		"",
		"Hello, world!",
		"all printable: ~`!@#$%^&*()_+-={}[]|\\:;\"'<>,.?/ 0123456789",
	} {
		if got := eng.Transliterate(input); got != input {
			t.Errorf("Transliterate(%q) = %q, want identity on ASCII", input, got)
		}
	}
}

func TestTransliterateLatin(t *testing.T) {
	eng := Default()
	tests := []struct {
		input, want string
	}{
		{"café", "cafe"},
		{"FRANÇOIS", "FRANCOIS"},
		{"straße", "strasse"},
		{"½ cup", "1/2 cup"},
		{"Łódź", "Lodz"},
		{"smart “quotes” – ok", "smart \"quotes\" - ok"},
		{"100€", "100EUR"},
	}
	for _, tt := range tests {
		if got := eng.Transliterate(tt.input); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransliterateGreekCyrillic(t *testing.T) {
	eng := Default()
	tests := []struct {
		input, want string
	}{
		{"αβγ", "abg"},
		{"Ωμέγα", "Omega"},
		{"Москва", "Moskva"},
		{"щи", "shchi"},
	}
	for _, tt := range tests {
		if got := eng.Transliterate(tt.input); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransliterateUnknownSentinelPreservesSpaced(t *testing.T) {
	// U+00A4 CURRENCY SIGN carries the [?] sentinel in the bundled
	// Latin-1 table.
	eng := Default()
	if got := eng.Transliterate("a¤b"); got != "a ¤ b" {
		t.Errorf("Transliterate(%q) = %q, want %q", "a¤b", got, "a ¤ b")
	}
}

func TestTransliterateDropsUnmappedBlocks(t *testing.T) {
	eng := Default()
	tests := []struct {
		input, want string
	}{
		{"a中b", "ab"},                    // CJK: no x04e table bundled
		{"x\U0001F600y", "xy"},           // emoji block absent
		{"p" + string(rune(0xF0000)), "p"}, // above the mapped planes
	}
	for _, tt := range tests {
		if got := eng.Transliterate(tt.input); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransliterateDeterministicWarmAndCold(t *testing.T) {
	input := "café Москва 中 ¤ αβ"

	cold := Default()
	first := cold.Transliterate(input)

	// Second call hits a warm cache.
	if warm := cold.Transliterate(input); warm != first {
		t.Errorf("warm = %q, cold = %q; engine must be deterministic", warm, first)
	}

	// A fresh engine over the same source agrees.
	if other := Default().Transliterate(input); other != first {
		t.Errorf("fresh engine = %q, want %q", other, first)
	}
}

func TestTransliterateConcurrent(t *testing.T) {
	eng := Default()
	input := "Élodie à Москва — ½ café 中"
	want := eng.Transliterate(input)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := eng.Transliterate(input); got != want {
					t.Errorf("concurrent Transliterate = %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCacheStats(t *testing.T) {
	eng := Default()
	if st := eng.CacheStats(); st.Loaded != 0 || st.Missing != 0 {
		t.Fatalf("fresh engine stats = %+v, want empty", st)
	}

	eng.Transliterate("é")  // loads x000
	eng.Transliterate("中") // x04e is not bundled
	st := eng.CacheStats()
	if st.Loaded != 1 {
		t.Errorf("Loaded = %d, want 1", st.Loaded)
	}
	if st.Missing != 1 {
		t.Errorf("Missing = %d, want 1", st.Missing)
	}
}
