package datasize

import (
	"encoding/json"
	"math/big"
	"testing"
)

func TestUnit_ZeroValue(t *testing.T) {
	var u Unit
	if u != Byte {
		t.Errorf("Unit(0) = %v, want %v", u, Byte)
	}
}

func TestParseUnit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			unit string
			want Unit
		}{
			{"B", Byte},
			{"b", Byte},
			{"byte", Byte},
			{"Bytes", Byte},
			{"KiB", Kibibyte},
			{"kib", Kibibyte},
			{"Kibibyte", Kibibyte},
			{"kibibytes", Kibibyte},
			{"kB", Kilobyte},
			{"KB", Kilobyte},
			{"kilobyte", Kilobyte},
			{"mb", Megabyte},
			{"MiB", Mebibyte},
			{" GiB ", Gibibyte},
			{"TB", Terabyte},
			{"pebibytes", Pebibyte},
			{"EB", Exabyte},
			{"ZiB", Zebibyte},
			{"yottabytes", Yottabyte},
			{"YiB", Yobibyte},
		}
		for _, tt := range tests {
			got, err := ParseUnit(tt.unit)
			if err != nil {
				t.Errorf("ParseUnit(%q) failed: %v", tt.unit, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseUnit(%q) = %v, want %v", tt.unit, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "KIBI", "xb", "bit", "Kb/s", "kilo", "1KiB",
		}
		for _, tt := range tests {
			_, err := ParseUnit(tt)
			if err == nil {
				t.Errorf("ParseUnit(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseUnit(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseUnit(\"KIBI\") did not panic")
			}
		}()
		MustParseUnit("KIBI")
	})
}

func TestUnit_Properties(t *testing.T) {
	tests := []struct {
		unit   Unit
		symbol string
		name   string
		family Family
		power  int
	}{
		{Byte, "B", "Byte", Binary, 0},
		{Kibibyte, "KiB", "Kibibyte", Binary, 1},
		{Mebibyte, "MiB", "Mebibyte", Binary, 2},
		{Gibibyte, "GiB", "Gibibyte", Binary, 3},
		{Tebibyte, "TiB", "Tebibyte", Binary, 4},
		{Pebibyte, "PiB", "Pebibyte", Binary, 5},
		{Exbibyte, "EiB", "Exbibyte", Binary, 6},
		{Zebibyte, "ZiB", "Zebibyte", Binary, 7},
		{Yobibyte, "YiB", "Yobibyte", Binary, 8},
		{Kilobyte, "kB", "Kilobyte", Decimal, 1},
		{Megabyte, "MB", "Megabyte", Decimal, 2},
		{Gigabyte, "GB", "Gigabyte", Decimal, 3},
		{Terabyte, "TB", "Terabyte", Decimal, 4},
		{Petabyte, "PB", "Petabyte", Decimal, 5},
		{Exabyte, "EB", "Exabyte", Decimal, 6},
		{Zettabyte, "ZB", "Zettabyte", Decimal, 7},
		{Yottabyte, "YB", "Yottabyte", Decimal, 8},
	}
	if len(tests) != unitCount {
		t.Fatalf("number of tested units = %v, want %v", len(tests), unitCount)
	}
	for _, tt := range tests {
		if got := tt.unit.Symbol(); got != tt.symbol {
			t.Errorf("%v.Symbol() = %q, want %q", tt.unit, got, tt.symbol)
		}
		if got := tt.unit.String(); got != tt.symbol {
			t.Errorf("%v.String() = %q, want %q", tt.unit, got, tt.symbol)
		}
		if got := tt.unit.Name(); got != tt.name {
			t.Errorf("%v.Name() = %q, want %q", tt.unit, got, tt.name)
		}
		if got := tt.unit.Family(); got != tt.family {
			t.Errorf("%v.Family() = %v, want %v", tt.unit, got, tt.family)
		}
		if got := tt.unit.Power(); got != tt.power {
			t.Errorf("%v.Power() = %v, want %v", tt.unit, got, tt.power)
		}
		want := bigPow(tt.family.Base(), tt.power)
		if got := tt.unit.Bytes(); got.Cmp(want) != 0 {
			t.Errorf("%v.Bytes() = %v, want %v", tt.unit, got, want)
		}
	}
}

func TestUnit_Bytes(t *testing.T) {
	t.Run("literals", func(t *testing.T) {
		tests := []struct {
			unit Unit
			want string
		}{
			{Byte, "1"},
			{Kibibyte, "1024"},
			{Mebibyte, "1048576"},
			{Gibibyte, "1073741824"},
			{Yobibyte, "1208925819614629174706176"},
			{Kilobyte, "1000"},
			{Megabyte, "1000000"},
			{Yottabyte, "1000000000000000000000000"},
		}
		for _, tt := range tests {
			got := tt.unit.Bytes().String()
			if got != tt.want {
				t.Errorf("%v.Bytes() = %v, want %v", tt.unit, got, tt.want)
			}
		}
	})

	t.Run("cascade", func(t *testing.T) {
		for _, f := range []Family{Binary, Decimal} {
			prev := Byte.Bytes()
			base := big.NewInt(f.Base())
			for _, u := range f.Units() {
				want := new(big.Int).Mul(prev, base)
				got := u.Bytes()
				if got.Cmp(want) != 0 {
					t.Errorf("%v.Bytes() = %v, want %v", u, got, want)
				}
				prev = got
			}
		}
	})

	t.Run("copy", func(t *testing.T) {
		b := Kibibyte.Bytes()
		b.SetInt64(1)
		if got := Kibibyte.Bytes().Int64(); got != 1024 {
			t.Errorf("Kibibyte.Bytes() = %v after modifying a copy, want 1024", got)
		}
	})
}

func TestUnit_Text(t *testing.T) {
	for u := Unit(0); u < unitCount; u++ {
		text, err := u.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", u, err)
			continue
		}
		var got Unit
		err = got.UnmarshalText(text)
		if err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", text, err)
			continue
		}
		if got != u {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, u)
		}
	}

	var u Unit
	if err := u.UnmarshalText([]byte("KIBI")); err == nil {
		t.Errorf("UnmarshalText(\"KIBI\") did not fail")
	}
}

func TestUnit_JSON(t *testing.T) {
	type object struct {
		Unit Unit `json:"unit"`
	}

	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(object{Unit: Mebibyte})
		if err != nil {
			t.Fatalf("json.Marshal() failed: %v", err)
		}
		if got, want := string(data), `{"unit":"MiB"}`; got != want {
			t.Errorf("json.Marshal() = %v, want %v", got, want)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data string
			want Unit
		}{
			{`{"unit":"MiB"}`, Mebibyte},
			{`{"unit":"gigabytes"}`, Gigabyte},
			{`{"unit":null}`, Terabyte},
		}
		for _, tt := range tests {
			got := object{Unit: Terabyte}
			err := json.Unmarshal([]byte(tt.data), &got)
			if err != nil {
				t.Errorf("json.Unmarshal(%v) failed: %v", tt.data, err)
				continue
			}
			if got.Unit != tt.want {
				t.Errorf("json.Unmarshal(%v) = %v, want %v", tt.data, got.Unit, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var got object
		err := json.Unmarshal([]byte(`{"unit":"KIBI"}`), &got)
		if err == nil {
			t.Errorf("json.Unmarshal() did not fail")
		}
	})
}
