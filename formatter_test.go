package datasize

import (
	"errors"
	"testing"

	bigdec "github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

func TestNewFormatter(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			pattern                  string
			minInt, minFrac, maxFrac int
			grouping                 int
			multiplier               int64
		}{
			{"", 1, 0, maxFracDigits, 0, 1},
			{"0", 1, 0, 0, 0, 1},
			{"0.0", 1, 1, 1, 0, 1},
			{"#,##0.00", 1, 2, 2, 3, 1},
			{"#,###.000", 0, 3, 3, 3, 1},
			{"#,##,##0.0#", 1, 1, 2, 3, 1},
			{"#.##", 0, 0, 2, 0, 1},
			{"000", 3, 0, 0, 0, 1},
			{"#0.0%", 1, 1, 1, 0, 100},
			{"#0‰", 1, 0, 0, 0, 1000},
			{"0.00 'kB'", 1, 2, 2, 0, 1},
			{"0.00;(0.00)", 1, 2, 2, 0, 1},
		}
		for _, tt := range tests {
			f, err := NewFormatter(tt.pattern, language.English)
			if err != nil {
				t.Errorf("NewFormatter(%q) failed: %v", tt.pattern, err)
				continue
			}
			if f.Pattern() != tt.pattern {
				t.Errorf("NewFormatter(%q).Pattern() = %q", tt.pattern, f.Pattern())
			}
			if f.Locale() != language.English {
				t.Errorf("NewFormatter(%q).Locale() = %v, want %v", tt.pattern, f.Locale(), language.English)
			}
			if f.minInt != tt.minInt || f.minFrac != tt.minFrac || f.maxFrac != tt.maxFrac {
				t.Errorf("NewFormatter(%q) digits = [%v %v %v], want [%v %v %v]",
					tt.pattern, f.minInt, f.minFrac, f.maxFrac, tt.minInt, tt.minFrac, tt.maxFrac)
			}
			if f.grouping != tt.grouping {
				t.Errorf("NewFormatter(%q).grouping = %v, want %v", tt.pattern, f.grouping, tt.grouping)
			}
			if f.multiplier != tt.multiplier {
				t.Errorf("NewFormatter(%q).multiplier = %v, want %v", tt.pattern, f.multiplier, tt.multiplier)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"multiple separators":    "0.0.0",
			"trailing grouping":      "0,",
			"grouping in fraction":   "#,##0.00,",
			"optional after zero":    "0#",
			"zero after optional":    "0.#0",
			"scientific notation":    "0.00E0",
			"unterminated quote":     "'abc",
			"no digits":              "abc",
			"only separator":         ".",
			"empty negative pattern": "0;",
			"three subpatterns":      "0;0;0",
			"digits in suffix":       "0 kB 0",
		}
		for name, pattern := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewFormatter(pattern, language.English)
				if err == nil {
					t.Errorf("NewFormatter(%q) did not fail", pattern)
					return
				}
				if !errors.Is(err, errInvalidPattern) {
					t.Errorf("NewFormatter(%q) = %v, want %v", pattern, err, errInvalidPattern)
				}
			})
		}
	})
}

func TestMustNewFormatter(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewFormatter(\"0.0.0\") did not panic")
			}
		}()
		MustNewFormatter("0.0.0", language.English)
	})
}

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		pattern string
		locale  language.Tag
		d       string
		want    string
	}{
		{"0.0", language.English, "212345", "212345.0"},
		{"#,###.000", language.English, "2073.689453125", "2,073.689"},
		{"#,##0.00", language.English, "1234567.891", "1,234,567.89"},
		{"#,##0.00", language.English, "-1234.5", "-1,234.50"},
		{"#,##0.00", language.German, "1234.5", "1.234,50"},
		{"#,##0.00", language.German, "-1234.5", "-1.234,50"},
		{"#,##0.0", language.German, "2344.980492", "2.345,0"},
		{"#.000", language.English, "0.5", ".500"},
		{"#.##", language.English, "0", "0"},
		{"0.##", language.English, "1.005", "1"},
		{"0.##", language.English, "1.5", "1.5"},
		{"0.00", language.English, "1.015", "1.02"},
		{"0.00", language.English, "2.345", "2.34"},
		{"0.00", language.English, "2.355", "2.36"},
		{"0.00", language.English, "-0.001", "0.00"},
		{"0", language.English, "2.5", "2"},
		{"0", language.English, "3.5", "4"},
		{"000", language.English, "7", "007"},
		{"#0.0%", language.English, "0.256", "25.6%"},
		{"#0‰", language.English, "0.0125", "12‰"},
		{"0.0 'kB'", language.English, "1", "1.0 kB"},
		{"'#'0", language.English, "5", "#5"},
		{"'It''s' 0", language.English, "5", "It's 5"},
		{"0.00;(0.00)", language.English, "-1.5", "(1.50)"},
		{"0.00;(0.00)", language.English, "1.5", "1.50"},
		{"0.", language.English, "3", "3."},
		{"", language.English, "1.5", "1.5"},
		{"", language.English, "0.25", "0.25"},
		{"", language.English, "-1234567.125", "-1234567.125"},
		{"", language.English, "0.000000000931322574615479", "0.000000000931322574615479"},
	}
	for _, tt := range tests {
		f := MustNewFormatter(tt.pattern, tt.locale)
		d := bigdec.RequireFromString(tt.d)
		if got := f.Format(d); got != tt.want {
			t.Errorf("NewFormatter(%q, %v).Format(%v) = %q, want %q", tt.pattern, tt.locale, tt.d, got, tt.want)
		}
	}
}

func TestFormatter_NativeDigits(t *testing.T) {
	f, err := parsePattern("#,##0.00")
	if err != nil {
		t.Fatalf("parsePattern() failed: %v", err)
	}
	f.sym = symbols{zero: '٠', decimal: "٫", group: "٬", minus: "-"}
	got := f.Format(bigdec.RequireFromString("-1234.5"))
	if want := "-١٬٢٣٤٫٥٠"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestParseProbe(t *testing.T) {
	tests := []struct {
		probe string
		want  symbols
	}{
		{"-1,234,567.5", symbols{zero: '0', decimal: ".", group: ",", minus: "-"}},
		{"-1.234.567,5", symbols{zero: '0', decimal: ",", group: ".", minus: "-"}},
		{"-1 234 567,5", symbols{zero: '0', decimal: ",", group: " ", minus: "-"}},
		{"-1234567.5", symbols{zero: '0', decimal: ".", group: "", minus: "-"}},
		{"−1’234’567.5", symbols{zero: '0', decimal: ".", group: "’", minus: "−"}},
		{"-١٬٢٣٤٬٥٦٧٫٥", symbols{zero: '٠', decimal: "٫", group: "٬", minus: "-"}},
		{"", defaultSymbols},
		{"NaN", defaultSymbols},
		{"1,234,567.5", defaultSymbols},
		{"-1,234", defaultSymbols},
		{"-12345675", defaultSymbols},
	}
	for _, tt := range tests {
		if got := parseProbe(tt.probe); got != tt.want {
			t.Errorf("parseProbe(%q) = %+v, want %+v", tt.probe, got, tt.want)
		}
	}
}
