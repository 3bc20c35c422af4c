package style

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestClampFontSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{10, MinFontSize},
		{16, 16},
		{40, 40},
		{88, 88},
		{90, MaxFontSize},
	}
	for _, tt := range tests {
		if got := ClampFontSize(tt.in); got != tt.want {
			t.Errorf("ClampFontSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLookupFontFamily(t *testing.T) {
	if got, ok := LookupFontFamily("times new roman"); !ok || got != "Times New Roman" {
		t.Errorf("LookupFontFamily(times new roman) = %q, %v", got, ok)
	}
	if got, ok := LookupFontFamily(" Cursive "); !ok || got != "cursive" {
		t.Errorf("LookupFontFamily(Cursive) = %q, %v", got, ok)
	}
	if _, ok := LookupFontFamily("Comic Sans"); ok {
		t.Error("LookupFontFamily accepted a family outside the set")
	}
	if FontIndex("Courier New") != len(FontFamilies)-1 {
		t.Errorf("FontIndex(Courier New) = %d", FontIndex("Courier New"))
	}
	if FontIndex("nope") != -1 {
		t.Error("FontIndex of unknown family should be -1")
	}
}

func TestLetterSpacing(t *testing.T) {
	cases := map[int]int{16: 0, 38: 0, 40: 1, 64: 2, 88: 3, 200: 3, 0: 0}
	for size, want := range cases {
		if got := LetterSpacing(size); got != want {
			t.Errorf("LetterSpacing(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#FF0000", "#ff0000", false},
		{"ff0000", "#ff0000", false},
		{"#f00", "#ff0000", false},
		{" #00ff7f ", "#00ff7f", false},
		{"", "", true},
		{"#ff00", "", true},
		{"#gg0000", "", true},
		{"#ff0000aa", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShiftHue(t *testing.T) {
	got, err := ShiftHue("#ff0000", 120)
	if err != nil {
		t.Fatal(err)
	}
	if got != "#00ff00" {
		t.Errorf("ShiftHue(red, 120) = %s, want #00ff00", got)
	}

	// Black has no hue; stepping must still produce a visible color.
	got, err = ShiftHue("#000000", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != "#ff0000" {
		t.Errorf("ShiftHue(black, 0) = %s, want #ff0000", got)
	}

	if _, err := ShiftHue("bogus", 10); err == nil {
		t.Error("ShiftHue accepted an invalid color")
	}
}

func TestShiftValue(t *testing.T) {
	got, err := ShiftValue("#ffffff", -1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "#000000" {
		t.Errorf("ShiftValue(white, -1) = %s", got)
	}
}

func TestTermColor(t *testing.T) {
	if got := TermColor("#ff0000"); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("TermColor(#ff0000) = %v", got)
	}
	if got := TermColor("junk"); got != tcell.ColorDefault {
		t.Errorf("TermColor(junk) = %v, want default", got)
	}
	if Contrasting("#ffffff") != tcell.ColorBlack || Contrasting("#000000") != tcell.ColorWhite {
		t.Error("Contrasting picked the wrong color")
	}
}

func TestDefault(t *testing.T) {
	want := State{FontFamily: "Arial", FontSize: 16, Color: "#000000", Text: "New Text"}
	if got := Default(); got != want {
		t.Errorf("Default() = %+v, want %+v", got, want)
	}
}

func TestLabelWidth(t *testing.T) {
	tests := []struct {
		name string
		s    State
		want int
	}{
		{"plain", State{Text: "New Text", FontSize: 16}, 8},
		{"spaced", State{Text: "abc", FontSize: 40}, 5},
		{"max spacing", State{Text: "ab", FontSize: 88}, 5},
		{"wide runes", State{Text: "日本", FontSize: 16}, 4},
		{"combining mark", State{Text: "é", FontSize: 64}, 1},
		{"empty", State{Text: "", FontSize: 16}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelWidth(tt.s); got != tt.want {
				t.Errorf("LabelWidth(%q @%d) = %d, want %d", tt.s.Text, tt.s.FontSize, got, tt.want)
			}
		})
	}
}
