package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/yuletide/constant"
	"github.com/lixenwraith/yuletide/vmath"
)

// rect is a cell rectangle
type rect struct {
	x, y, w, h int
}

// Scene geometry in cells
const (
	headerRows  = 2 // countdown line plus spacer
	footerRows  = 1
	trunkRows   = 2
	anchorRows  = 3
	treeMinCols = 16
	treeMaxCols = 48
	treeMinRows = 8
	treeMaxRows = 24
)

// Terminal is a Surface backed by a tcell screen
// Markers live in the embedded Memory; Draw projects them from layout pixels onto cells
type Terminal struct {
	*Memory

	screen tcell.Screen
	cellW  float64
	cellH  float64

	cols, rows int
	tree       rect
	scrollY    float64 // px, host-owned page scroll

	status string
}

// NewTerminal wraps an initialized screen and sizes every region to it
func NewTerminal(screen tcell.Screen, cellW, cellH int) *Terminal {
	if cellW <= 0 {
		cellW = constant.DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = constant.DefaultCellHeight
	}
	t := &Terminal{
		Memory: NewMemory(),
		screen: screen,
		cellW:  float64(cellW),
		cellH:  float64(cellH),
	}
	for _, e := range []Element{ElementScene, ElementBackLayer, ElementMidLayer, ElementDays, ElementHours, ElementMins, ElementSecs} {
		t.AddElement(e)
	}
	t.Resize()
	return t
}

// Resize re-measures the screen and resizes every region; markers are kept until relayout
func (t *Terminal) Resize() {
	t.cols, t.rows = t.screen.Size()

	tw := vmath.ClampInt(t.cols/2, treeMinCols, treeMaxCols)
	th := vmath.ClampInt(t.rows-headerRows-footerRows-trunkRows-1, treeMinRows, treeMaxRows)
	t.tree = rect{
		x: (t.cols - tw) / 2,
		y: headerRows + 1,
		w: tw,
		h: th,
	}

	t.AddRegion(RegionSnow, float64(t.cols)*t.cellW, float64(t.rows)*t.cellH)
	t.AddRegion(RegionOrnaments, float64(tw)*t.cellW, float64(th)*t.cellH)
	t.AddRegion(RegionGarland, float64(tw)*t.cellW, float64(th)*t.cellH)
	t.AddRegion(RegionAnchor, float64(tw)*t.cellW, anchorRows*t.cellH)
}

// Size returns the screen size in cells as of the last Resize
func (t *Terminal) Size() (cols, rows int) {
	return t.cols, t.rows
}

// MaxScroll is half a screen of page below the fold
func (t *Terminal) MaxScroll() float64 {
	return float64(t.rows) * t.cellH / 2
}

// ScrollBy moves the page and returns the clamped scroll offset in px
func (t *Terminal) ScrollBy(rows int) float64 {
	t.scrollY = vmath.Clamp(t.scrollY+float64(rows)*t.cellH, 0, t.MaxScroll())
	return t.scrollY
}

// ScrollY returns the page scroll offset in px
func (t *Terminal) ScrollY() float64 {
	return t.scrollY
}

// SetStatus replaces the footer text
func (t *Terminal) SetStatus(s string) {
	t.status = s
}

// CellOf maps a region-relative pixel position to a screen cell, page scroll included
func (t *Terminal) CellOf(r Region, x, y float64) (int, int) {
	scrollRows := t.scrollRows()
	switch r {
	case RegionOrnaments, RegionGarland, RegionAnchor:
		return t.tree.x + int(math.Floor(x/t.cellW)), t.tree.y + int(math.Floor(y/t.cellH)) - scrollRows
	default:
		return int(math.Floor(x / t.cellW)), int(math.Floor(y / t.cellH))
	}
}

func (t *Terminal) scrollRows() int {
	return vmath.RoundHalfUp(t.scrollY / t.cellH)
}

// Draw renders one frame
func (t *Terminal) Draw(now time.Time) {
	t.screen.SetStyle(tcell.StyleDefault.Background(RgbSky))
	t.screen.Clear()

	layers := []struct {
		priority RenderPriority
		draw     func(time.Time)
	}{
		{PriorityBackLayer, t.drawBackLayer},
		{PriorityMidLayer, t.drawMidLayer},
		{PriorityTree, t.drawTree},
		{PriorityGarland, t.drawGarland},
		{PriorityOrnament, t.drawOrnaments},
		{PrioritySparkle, t.drawSparkles},
		{PrioritySnow, t.drawSnow},
		{PriorityUI, t.drawUI},
	}
	for _, l := range layers {
		l.draw(now)
	}

	t.screen.Show()
}

func (t *Terminal) lit() bool {
	return t.HasClass(ElementScene, constant.ClassLightsOn)
}

func (t *Terminal) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= t.cols || y >= t.rows {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		t.set(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (t *Terminal) centered(y int, s string, style tcell.Style) {
	t.text((t.cols-runewidth.StringWidth(s))/2, y, s, style)
}

// drawRidge fills below a ridge line; the layer's TranslateY shifts it down against the page scroll
func (t *Terminal) drawRidge(e Element, base, amp, freq, phase float64, fill rune, color tcell.Color) {
	st, ok := t.Style(e)
	if !ok {
		return
	}
	shift := vmath.RoundHalfUp((st.TranslateY - t.scrollY) / t.cellH)
	bg := tcell.StyleDefault.Background(RgbSky)

	for x := 0; x < t.cols; x++ {
		ridge := float64(t.rows) - base - amp*(math.Sin(float64(x)*freq+phase)+0.5*math.Sin(float64(x)*freq*2.7))
		top := int(ridge) + shift
		for y := top; y < t.rows; y++ {
			if y == top {
				t.set(x, y, '▁', bg.Foreground(RgbSnowCap))
				continue
			}
			t.set(x, y, fill, bg.Foreground(color))
		}
	}
}

func (t *Terminal) drawBackLayer(time.Time) {
	t.drawRidge(ElementBackLayer, 7, 3, 0.09, 0.4, '░', RgbBackLayer)
}

func (t *Terminal) drawMidLayer(time.Time) {
	t.drawRidge(ElementMidLayer, 3, 2, 0.16, 2.1, '▒', RgbMidLayer)
}

func (t *Terminal) drawTree(now time.Time) {
	lit := t.lit()
	bg := tcell.StyleDefault.Background(RgbSky)
	scrollRows := t.scrollRows()

	padCols := math.Max(10, float64(t.tree.w)*t.cellW*0.06) / t.cellW
	maxHalf := float64(t.tree.w)/2 - padCols
	cx := t.tree.x + t.tree.w/2

	for r := 0; r < t.tree.h; r++ {
		frac := (float64(r) + 0.5) / float64(t.tree.h)
		half := int(math.Max(0.5, maxHalf*frac))
		y := t.tree.y + r - scrollRows
		for x := cx - half; x <= cx+half; x++ {
			color := RgbTreeDark
			if lit && (x+r)%3 == 0 {
				color = RgbTreeLight
			}
			t.set(x, y, '▲', bg.Foreground(color))
		}
	}

	for r := 0; r < trunkRows; r++ {
		y := t.tree.y + t.tree.h + r - scrollRows
		for x := cx - 1; x <= cx+1; x++ {
			t.set(x, y, '█', bg.Foreground(RgbTrunk))
		}
	}

	star := RgbStarDim
	if lit && now.UnixMilli()/500%2 == 0 {
		star = RgbStar
	} else if lit {
		star = RgbOrnamentGd
	}
	t.set(cx, t.tree.y-1-scrollRows, '★', bg.Foreground(star).Bold(lit))
}

func (t *Terminal) drawGarland(now time.Time) {
	lit := t.lit()
	secs := float64(now.UnixMilli()) / 1000
	for _, m := range t.Markers(RegionGarland) {
		x, y := t.CellOf(RegionGarland, m.X, m.Y)
		color := RgbLightOff
		if lit {
			color = LightColor(m.Phase, secs)
		}
		t.set(x, y, m.Glyph, tcell.StyleDefault.Background(RgbSky).Foreground(color).Bold(lit))
	}
}

// ornamentGlyphs give the d1..d8 variants distinct shapes
var ornamentGlyphs = [constant.OrnamentStyleVariants]rune{'o', '●', '◉', 'o', '◍', '●', 'o', '◎'}

func (t *Terminal) drawOrnaments(time.Time) {
	lit := t.lit()
	for _, m := range t.Markers(RegionOrnaments) {
		x, y := t.CellOf(RegionOrnaments, m.X, m.Y)
		glyph := m.Glyph
		for v := 1; v <= constant.OrnamentStyleVariants; v++ {
			if m.HasTag(fmt.Sprintf("d%d", v)) {
				glyph = ornamentGlyphs[v-1]
				break
			}
		}
		t.set(x, y, glyph, tcell.StyleDefault.Background(RgbSky).Foreground(OrnamentColor(&m, lit)))
	}
}

func (t *Terminal) drawSparkles(now time.Time) {
	for _, m := range t.Markers(RegionAnchor) {
		age := 0.0
		if m.Duration > 0 {
			age = vmath.Clamp(float64(now.Sub(m.CreatedAt))/float64(m.Duration), 0, 1)
		}
		// Sparkle offsets are measured below the star, which sits one row above the tree box
		x, y := t.CellOf(RegionAnchor, m.X, m.Y-t.cellH)
		t.set(x, y, m.Glyph, tcell.StyleDefault.Background(RgbSky).Foreground(SparkleColor(age)))
	}
}

// drawSnow projects each flake's fall; snow is fixed to the viewport and ignores page scroll
func (t *Terminal) drawSnow(now time.Time) {
	for _, m := range t.Markers(RegionSnow) {
		age := now.Sub(m.CreatedAt)
		progress := 0.0
		if m.Duration > 0 {
			progress = vmath.Clamp(float64(age)/float64(m.Duration), 0, 1)
		}
		if progress >= 1 {
			continue
		}

		sway := 0.0
		if m.Sway > 0 {
			sway = math.Sin(2*math.Pi*float64(age)/float64(m.Sway)) * 1.5
		}
		x := int(math.Floor(m.X/100*float64(t.cols) + sway))
		y := int(math.Floor(vmath.Lerp(-1, float64(t.rows), progress)))

		style := tcell.StyleDefault.Background(RgbSky).Foreground(SnowColor(m.Opacity))
		if m.Size >= 12 {
			style = style.Bold(true)
		}
		t.set(x, y, m.Glyph, style)
	}
}

func (t *Terminal) drawUI(time.Time) {
	bg := tcell.StyleDefault.Background(RgbSky)
	days, _ := t.Text(ElementDays)
	hours, _ := t.Text(ElementHours)
	mins, _ := t.Text(ElementMins)
	secs, _ := t.Text(ElementSecs)

	if days != "" {
		line := fmt.Sprintf("%s days  %s:%s:%s", days, hours, mins, secs)
		t.centered(0, line, bg.Foreground(RgbCountdown).Bold(true))
	}
	if t.status != "" {
		t.text(1, t.rows-1, t.status, bg.Foreground(RgbStatusText))
	}
}
