package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/frame"
)

// Styles
var (
	styleDefault    = tcell.StyleDefault
	styleCurve      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHandle     = tcell.StyleDefault.Foreground(tcell.ColorSkyblue)
	styleMarker     = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleMarkerSel  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSidebar    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSidebarH   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSidebarSel = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo    = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgSuccess = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	styleMsgWarning = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy)
	styleHelp       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleInput      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleBorder     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const (
	runeCurve  = '•'
	runeHandle = '·'
	runeMarker = '■'
)

// cell is a terminal coordinate.
type cell struct {
	X, Y int
}

func toCell(p bezier.Point) cell {
	return cell{int(math.Round(p.X)), int(math.Round(p.Y))}
}

// cellLine returns the cells on the Bresenham line from a to b, both
// endpoints included.
func cellLine(a, b cell) []cell {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	cells := make([]cell, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	e := dx + dy
	for {
		cells = append(cells, cell{x, y})
		if x == b.X && y == b.Y {
			return cells
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// cellRenderer implements frame.Renderer on the terminal grid. Markers are
// buffered and flushed last so lines never hide them.
type cellRenderer struct {
	screen      tcell.Screen
	width       int
	height      int
	showHandles bool
	markers     []cellMarker
}

type cellMarker struct {
	at       cell
	selected bool
}

var _ frame.Renderer = (*cellRenderer)(nil)

func (r *cellRenderer) inside(c cell) bool {
	return c.X >= 0 && c.X < r.width && c.Y >= 0 && c.Y < r.height
}

func (r *cellRenderer) DrawSegment(a, b bezier.Point, s frame.Stroke) {
	ch, style := runeCurve, styleCurve
	if s == frame.StrokeHandle {
		if !r.showHandles {
			return
		}
		ch, style = runeHandle, styleHandle
	}

	for _, c := range cellLine(toCell(a), toCell(b)) {
		if !r.inside(c) {
			continue
		}
		// Handles never overwrite the curve.
		if s == frame.StrokeHandle {
			if cur, _, _, _ := r.screen.GetContent(c.X, c.Y); cur == runeCurve {
				continue
			}
		}
		r.screen.SetContent(c.X, c.Y, ch, nil, style)
	}
}

func (r *cellRenderer) DrawMarker(p bezier.Point, _ float64, selected bool) {
	r.markers = append(r.markers, cellMarker{toCell(p), selected})
}

func (r *cellRenderer) flush() {
	for _, m := range r.markers {
		if !r.inside(m.at) {
			continue
		}
		style := styleMarker
		if m.selected {
			style = styleMarkerSel
		}
		r.screen.SetContent(m.at.X, m.at.Y, runeMarker, nil, style)
	}
	r.markers = r.markers[:0]
}

func (ed *Editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	ed.drawCanvas(w, h)
	ed.drawSidebar(w, h)

	switch ed.mode {
	case ModeInput:
		ed.drawInputBox(w, h)
	case ModeHelp:
		ed.drawHelpOverlay(w, h)
	}

	ed.drawStatusBar(w, h)
}

// drawCanvas runs one frame of the loop: queued pointer events are applied,
// then the curve is drawn into the canvas area.
func (ed *Editor) drawCanvas(w, h int) {
	r := &cellRenderer{
		screen:      ed.screen,
		width:       w - ed.sidebarWidth,
		height:      h - 2,
		showHandles: ed.showHandles,
	}
	ed.loop.Step(r)
	r.flush()
}

func (ed *Editor) drawSidebar(w, h int) {
	x := w - ed.sidebarWidth
	if x < 0 {
		return
	}
	for y := 0; y < h-2; y++ {
		ed.screen.SetContent(x, y, '│', nil, styleBorder)
	}

	store := ed.loop.Store()
	ed.drawString(x+2, 0, fmt.Sprintf("Points %d/%d", store.Len(), store.Cap()), styleSidebarH)

	selected, _ := store.Selection()
	points := store.Points()
	rows := h - 5
	start := 0
	if len(points) > rows && rows > 0 {
		start = len(points) - rows
	}
	for i := start; i < len(points); i++ {
		style := styleSidebar
		if i == selected {
			style = styleSidebarSel
		}
		line := fmt.Sprintf("%3d (%g, %g)", i, points[i].X, points[i].Y)
		ed.drawString(x+2, 2+i-start, truncate(line, ed.sidebarWidth-3), style)
	}
}

// flashInverted reports whether a flashing message is drawn inverted
// elapsed milliseconds after it was shown: two blinks over 500ms.
func flashInverted(elapsed int64) bool {
	if elapsed < 0 || elapsed >= 500 {
		return false
	}
	phase := elapsed / 125
	return phase == 1 || phase == 3
}

func flashes(msgType MessageType) bool {
	return msgType != MsgInfo
}

func (ed *Editor) messageStyle(now int64) tcell.Style {
	style := styleMsgInfo
	switch ed.messageType {
	case MsgError:
		style = styleMsgError
	case MsgSuccess:
		style = styleMsgSuccess
	case MsgWarning:
		style = styleMsgWarning
	}
	if start := ed.messageFlashStart.Load(); flashes(ed.messageType) && start > 0 && flashInverted(now-start) {
		style = style.Reverse(true)
	}
	return style
}

func (ed *Editor) drawStatusBar(w, h int) {
	y := h - 1

	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	store := ed.loop.Store()
	info := fmt.Sprintf("%d points", store.Len())
	if ed.loop.CurveVisible() {
		info += fmt.Sprintf(" | %s", strings.ToUpper(ed.config.Export.FileType))
	}
	ed.drawString(1, y, info, styleStatus)

	modeStr := ed.modeString()
	ed.drawString(w/2-len(modeStr)/2, y, modeStr, styleStatus)

	if ed.message != "" {
		msg := truncate(ed.message, w/2-2)
		ed.drawString(w-len([]rune(msg))-2, y, msg, ed.messageStyle(time.Now().UnixMilli()))
	}

	// Help bar
	y = h - 2
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
	ed.drawString(1, y, ed.helpString(), styleHelp)
}

func (ed *Editor) drawInputBox(w, h int) {
	boxW := 60
	if boxW > w-2 {
		boxW = w - 2
	}
	boxH := 3
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	ed.drawBox(boxX, boxY, boxW, boxH, styleInput)

	input := ed.inputBuffer + "_"
	room := boxW - 4 - len(ed.inputPrompt)
	if room > 0 && len(input) > room {
		input = input[len(input)-room:]
	}
	ed.drawString(boxX+2, boxY+1, ed.inputPrompt, styleInput)
	ed.drawString(boxX+2+len(ed.inputPrompt), boxY+1, input, styleInput)
}

var helpLines = []string{
	"Click        add a control point",
	"Drag         move a control point",
	"w            show/hide handle lines",
	"t            toggle export type PNG/SVG",
	"e            export the curve",
	"h ?          this help",
	"q Ctrl+C     quit",
}

func (ed *Editor) drawHelpOverlay(w, h int) {
	boxW := 44
	boxH := len(helpLines) + 4
	x := (w - boxW) / 2
	y := (h - boxH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	ed.drawTitledBox(x, y, boxW, boxH, "Help")
	for i, line := range helpLines {
		ed.drawString(x+3, y+2+i, line, styleDefault)
	}
}

func (ed *Editor) drawTitledBox(x, y, w, h int, title string) {
	ed.screen.SetContent(x, y, '┌', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y, '┐', nil, styleBorder)

	if title != "" {
		titleX := x + (w-len(title)-2)/2
		ed.screen.SetContent(titleX, y, ' ', nil, styleBorder)
		ed.drawString(titleX+1, y, title, styleSidebarH)
		ed.screen.SetContent(titleX+1+len(title), y, ' ', nil, styleBorder)
	}

	for row := 1; row < h-1; row++ {
		ed.screen.SetContent(x, y+row, '│', nil, styleBorder)
		for col := 1; col < w-1; col++ {
			ed.screen.SetContent(x+col, y+row, ' ', nil, styleDefault)
		}
		ed.screen.SetContent(x+w-1, y+row, '│', nil, styleBorder)
	}

	ed.screen.SetContent(x, y+h-1, '└', nil, styleBorder)
	for i := 1; i < w-1; i++ {
		ed.screen.SetContent(x+i, y+h-1, '─', nil, styleBorder)
	}
	ed.screen.SetContent(x+w-1, y+h-1, '┘', nil, styleBorder)
}

func (ed *Editor) drawBox(x, y, w, h int, style tcell.Style) {
	ed.drawTitledBox(x, y, w, h, "")
	for row := y + 1; row < y+h-1; row++ {
		for col := x + 1; col < x+w-1; col++ {
			ed.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (ed *Editor) drawString(x, y int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		ed.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}

func (ed *Editor) modeString() string {
	switch ed.mode {
	case ModeInput:
		return "EXPORT"
	case ModeHelp:
		return "HELP"
	}
	if _, dragging := ed.loop.Store().Selection(); dragging {
		return "MOVE"
	}
	return ""
}

func (ed *Editor) helpString() string {
	switch ed.mode {
	case ModeInput:
		return "Enter: Confirm  Esc: Cancel"
	case ModeHelp:
		return "Esc: Close"
	}
	return "Click: Add  Drag: Move  W: Handles  E: Export  T: Type  H: Help  Q: Quit"
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		if maxLen < 0 {
			maxLen = 0
		}
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
