package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/yuletide/constant"
)

func newSimTerminal(t *testing.T, cols, rows int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return NewTerminal(screen, 8, 16), screen
}

func TestTerminalRegions(t *testing.T) {
	term, _ := newSimTerminal(t, 80, 30)

	w, h, ok := term.Measure(RegionSnow)
	if !ok || w != 80*8 || h != 30*16 {
		t.Errorf("Snow region = %vx%v ok=%v, want 640x480", w, h, ok)
	}

	w, h, _ = term.Measure(RegionOrnaments)
	if w != 40*8 || h != 24*16 {
		t.Errorf("Tree region = %vx%v, want 320x384", w, h)
	}

	for _, e := range []Element{ElementScene, ElementBackLayer, ElementMidLayer, ElementDays, ElementHours, ElementMins, ElementSecs} {
		if !term.HasElement(e) {
			t.Errorf("Element %v missing", e)
		}
	}
}

func TestTerminalResizeTracksScreen(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 30)
	screen.SetSize(40, 20)
	term.Resize()

	if cols, rows := term.Size(); cols != 40 || rows != 20 {
		t.Fatalf("Size = %dx%d, want 40x20", cols, rows)
	}
	w, h, _ := term.Measure(RegionOrnaments)
	if w != 20*8 || h != 14*16 {
		t.Errorf("Tree region = %vx%v after shrink", w, h)
	}
}

func TestTerminalDrawsMarkers(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 30)
	now := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)

	term.AddMarker(RegionOrnaments, Marker{Kind: KindOrnament, Glyph: 'o', X: 80, Y: 160, Tags: []string{"x"}})
	term.AddMarker(RegionSnow, Marker{
		Kind:      KindSnowflake,
		Glyph:     '❄',
		X:         50,
		Opacity:   1,
		Duration:  10 * time.Second,
		CreatedAt: now.Add(-5 * time.Second),
	})
	term.SetText(ElementDays, "05")
	term.SetText(ElementHours, "00")
	term.SetText(ElementMins, "00")
	term.SetText(ElementSecs, "00")

	term.Draw(now)

	ox, oy := term.CellOf(RegionOrnaments, 80, 160)
	if r, _, _, _ := screen.GetContent(ox, oy); r != 'o' {
		t.Errorf("Expected ornament at (%d,%d), got %q", ox, oy, r)
	}

	// Halfway through its fall, centered horizontally, no sway set
	if r, _, _, _ := screen.GetContent(40, 14); r != '❄' {
		t.Errorf("Expected snowflake at (40,14), got %q", r)
	}

	line := ""
	for x := 0; x < 80; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		line += string(r)
	}
	if want := "05 days  00:00:00"; !strings.Contains(line, want) {
		t.Errorf("Header %q missing %q", line, want)
	}
}

func TestTerminalSkipsFinishedFlakes(t *testing.T) {
	term, screen := newSimTerminal(t, 20, 10)
	now := time.Now()
	term.AddMarker(RegionSnow, Marker{Glyph: '*', X: 50, Duration: time.Second, CreatedAt: now.Add(-2 * time.Second)})

	term.Draw(now)
	for y := 0; y < 10; y++ {
		if r, _, _, _ := screen.GetContent(10, y); r == '*' {
			t.Fatalf("Finished flake drawn at row %d", y)
		}
	}
}

func TestTerminalScroll(t *testing.T) {
	term, _ := newSimTerminal(t, 80, 30)

	if got := term.ScrollBy(-3); got != 0 {
		t.Errorf("Scroll should clamp at 0, got %v", got)
	}
	if got := term.ScrollBy(2); got != 32 {
		t.Errorf("ScrollBy(2) = %v, want 32", got)
	}
	if got := term.ScrollBy(1000); got != term.MaxScroll() {
		t.Errorf("Scroll should clamp at %v, got %v", term.MaxScroll(), got)
	}

	term.ScrollBy(-1000)
	term.ScrollBy(2)
	x0, y0 := term.CellOf(RegionOrnaments, 0, 0)
	if x0 != term.tree.x || y0 != term.tree.y-2 {
		t.Errorf("Tree content should move up with scroll, got (%d,%d)", x0, y0)
	}
	if _, y := term.CellOf(RegionSnow, 0, 0); y != 0 {
		t.Error("Snow is fixed to the viewport")
	}
}

func TestTerminalLightsDrawing(t *testing.T) {
	term, screen := newSimTerminal(t, 80, 30)
	now := time.Now()
	term.AddMarker(RegionGarland, Marker{Kind: KindLight, Glyph: '•', X: 160, Y: 100})
	x, y := term.CellOf(RegionGarland, 160, 100)

	term.Draw(now)
	_, _, off, _ := screen.GetContent(x, y)
	fgOff, _, _ := off.Decompose()
	if fgOff != RgbLightOff {
		t.Errorf("Unlit bulb color = %v, want %v", fgOff, RgbLightOff)
	}

	term.SetClass(ElementScene, constant.ClassLightsOn, true)
	term.Draw(now)
	_, _, on, _ := screen.GetContent(x, y)
	if fgOn, _, _ := on.Decompose(); fgOn == RgbLightOff {
		t.Error("Lit bulb should take a hue color")
	}
}
