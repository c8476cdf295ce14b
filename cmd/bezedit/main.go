// Command bezedit is a TUI editor for Bézier curves.
//
// Left-click on empty canvas to add a control point, drag an existing point
// to move it. Once four points exist the handle lines and the curve are
// traced through the terminal cells.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sgostarter/i/l"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/config"
	"github.com/ha1tch/bezier-toolkit/pkg/editor"
	"github.com/ha1tch/bezier-toolkit/pkg/frame"
	"github.com/ha1tch/bezier-toolkit/pkg/render"
)

// Terminal cells map to export pixels at 10px per column and 20px per row.
const (
	cellWidth      = 10.0
	cellHeight     = 20.0
	cellMarkerSize = 2.0 // hit box side in cells
)

// Editor holds all editor state
type Editor struct {
	screen     tcell.Screen
	loop       *frame.Loop
	logger     l.Wrapper
	config     config.Config
	configPath string
	mode       Mode

	message           string
	messageType       MessageType
	messageFlashStart atomic.Int64 // Unix milliseconds when message was shown; read by the refresh ticker

	// Left-button tracking; tcell reports button state, not transitions
	leftMouseDown bool

	// Display options
	showHandles bool // toggle handle lines with 'w'

	// UI regions
	sidebarWidth int

	// Input state
	inputBuffer string
	inputPrompt string
	inputAction func(string)
}

// Mode represents editor mode
type Mode int

const (
	ModeCanvas Mode = iota
	ModeInput
	ModeHelp
)

// MessageType for status messages
type MessageType int

const (
	MsgInfo    MessageType = iota // Informative, no flash
	MsgError                      // Errors, flash
	MsgSuccess                    // State changes, flash
	MsgWarning                    // Warnings, flash
)

// newEditor wires a store and frame loop from cfg.
func newEditor(screen tcell.Screen, cfg config.Config, logger l.Wrapper) *Editor {
	store := editor.NewStore(editor.Options{
		Capacity:   cfg.Capacity,
		MarkerSize: cellMarkerSize,
		Logger:     logger,
	})

	return &Editor{
		screen: screen,
		loop: frame.NewLoop(store, frame.Options{
			MinCurvePoints: cfg.MinCurvePoints,
			StepCount:      cfg.StepCount,
			Logger:         logger,
		}),
		logger:       logger.WithFields(l.StringField(l.ClsKey, "bezedit")),
		config:       cfg,
		mode:         ModeCanvas,
		showHandles:  true,
		sidebarWidth: 26,
	}
}

func main() {
	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", cfgPath, err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// The terminal is the canvas; console logging would corrupt it.
	logger := l.NewNopLoggerWrapper()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	ed := newEditor(screen, cfg, logger)
	ed.configPath = cfgPath
	ed.showMessage("Click to add points, drag to move them", MsgInfo)

	ed.run()

	screen.Fini()
}

func (ed *Editor) run() {
	// Periodic refresh while a status message is flashing
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			if ed.flashing(time.Now().UnixMilli()) {
				ed.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	for {
		ed.draw()
		ed.screen.Show()

		ev := ed.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			ed.screen.Sync()
		case *tcell.EventKey:
			if ed.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			ed.handleMouse(ev)
		case *tcell.EventInterrupt:
			// Refresh event for flash animation - just redraw
		case nil:
			return
		}
	}
}

func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}

	switch ed.mode {
	case ModeInput:
		return ed.handleInputKey(ev)
	case ModeHelp:
		return ed.handleHelpKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		ed.clearMessage()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'h', 'H', '?':
			ed.mode = ModeHelp
		case 'w', 'W':
			ed.showHandles = !ed.showHandles
			if ed.showHandles {
				ed.showMessage("Handles visible", MsgInfo)
			} else {
				ed.showMessage("Handles hidden", MsgInfo)
			}
		case 't', 'T':
			ed.toggleFileType()
		case 'e', 'E':
			ed.startExport()
		}
	}
	return false
}

func (ed *Editor) handleInputKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		ed.mode = ModeCanvas
		ed.inputAction = nil
	case tcell.KeyEnter:
		ed.mode = ModeCanvas
		if ed.inputAction != nil {
			action := ed.inputAction
			ed.inputAction = nil
			action(ed.inputBuffer)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(ed.inputBuffer) > 0 {
			ed.inputBuffer = ed.inputBuffer[:len(ed.inputBuffer)-1]
		}
	case tcell.KeyRune:
		ed.inputBuffer += string(ev.Rune())
	}
	return false
}

func (ed *Editor) handleHelpKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		ed.mode = ModeCanvas
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q', 'h', 'H', '?':
			ed.mode = ModeCanvas
		}
	}
	return false
}

// canvasPoint converts a screen cell to a canvas point. The second result
// is false for cells outside the canvas (sidebar, status lines).
func (ed *Editor) canvasPoint(x, y int) (bezier.Point, bool) {
	w, h := ed.screen.Size()
	if x < 0 || x >= w-ed.sidebarWidth || y < 0 || y >= h-2 {
		return bezier.Point{}, false
	}
	return bezier.Pt(float64(x), float64(y)), true
}

// handleMouse turns tcell's button state into press/move/release events.
func (ed *Editor) handleMouse(ev *tcell.EventMouse) {
	if ed.mode != ModeCanvas {
		return
	}

	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	pos, onCanvas := ed.canvasPoint(x, y)

	switch {
	case down && !ed.leftMouseDown:
		ed.leftMouseDown = true
		if !onCanvas {
			return
		}
		before := ed.loop.Store().Len()
		ed.loop.Post(frame.Event{Kind: frame.Press, Pos: pos})
		ed.loop.Update()
		ed.reportPress(before)
	case down && ed.leftMouseDown:
		if onCanvas {
			ed.loop.Post(frame.Event{Kind: frame.Move, Pos: pos})
		}
	case !down && ed.leftMouseDown:
		ed.leftMouseDown = false
		if _, dragging := ed.loop.Store().Selection(); dragging {
			ed.showMessage("Point moved", MsgInfo)
		}
		ed.loop.Post(frame.Event{Kind: frame.Release})
	default:
		if onCanvas {
			ed.loop.Post(frame.Event{Kind: frame.Move, Pos: pos})
		}
	}
}

func (ed *Editor) reportPress(before int) {
	store := ed.loop.Store()
	switch {
	case store.Len() > before:
		ed.showMessage(fmt.Sprintf("Added point %d", store.Len()-1), MsgSuccess)
	case store.State() == editor.StateDragging:
		idx, _ := store.Selection()
		ed.showMessage(fmt.Sprintf("Dragging point %d", idx), MsgInfo)
	case store.Len() == store.Cap():
		ed.showMessage(fmt.Sprintf("Capacity reached (%d points)", store.Cap()), MsgWarning)
	}
}

func (ed *Editor) toggleFileType() {
	if ed.config.Export.FileType == "png" {
		ed.config.Export.FileType = "svg"
	} else {
		ed.config.Export.FileType = "png"
	}
	ed.saveConfig()
	ed.showMessage("Export type: "+strings.ToUpper(ed.config.Export.FileType), MsgInfo)
}

func (ed *Editor) startExport() {
	if ed.loop.Store().Len() == 0 {
		ed.showMessage("Nothing to export", MsgWarning)
		return
	}

	ed.mode = ModeInput
	ed.inputPrompt = "Export to: "
	ed.inputBuffer = filepath.Join(ed.config.Export.LastDir, "curve."+ed.config.Export.FileType)
	ed.inputAction = func(path string) {
		if path == "" {
			return
		}
		if err := ed.exportSnapshot(path); err != nil {
			ed.logger.WithFields(l.ErrorField(err), l.StringField("path", path)).Error("export failed")
			ed.showMessage(fmt.Sprintf("Export failed: %v", err), MsgError)
			return
		}
		ed.config.Export.LastDir = filepath.Dir(path)
		ed.saveConfig()
		ed.showMessage("Exported "+filepath.Base(path), MsgSuccess)
	}
}

// exportSnapshot renders the current points, scaled from cells to pixels,
// through a fresh store so the export uses pixel-sized markers.
func (ed *Editor) exportSnapshot(path string) error {
	store := editor.NewStore(editor.Options{
		Capacity:   ed.loop.Store().Cap(),
		MarkerSize: ed.config.MarkerSize,
		Logger:     ed.logger,
	})
	for _, p := range ed.loop.Store().Points() {
		store.Append(bezier.Pt(p.X*cellWidth+cellWidth/2, p.Y*cellHeight+cellHeight/2))
	}
	loop := frame.NewLoop(store, frame.Options{
		MinCurvePoints: ed.config.MinCurvePoints,
		StepCount:      ed.config.StepCount,
		Logger:         ed.logger,
	})

	w, h := ed.screen.Size()
	width := int(float64(w-ed.sidebarWidth) * cellWidth)
	height := int(float64(h-2) * cellHeight)

	return render.WriteFile(path, render.FileOptions{
		Width:  width,
		Height: height,
		Labels: true,
	}, loop.Draw)
}

func (ed *Editor) saveConfig() {
	if ed.configPath == "" {
		return
	}
	if err := config.Save(ed.configPath, ed.config); err != nil {
		ed.logger.WithFields(l.ErrorField(err)).Error("save config failed")
	}
}

func (ed *Editor) showMessage(msg string, msgType MessageType) {
	ed.message = msg
	ed.messageType = msgType
	ed.messageFlashStart.Store(time.Now().UnixMilli())
	// Trigger immediate refresh for flash animation
	if ed.screen != nil {
		ed.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

func (ed *Editor) clearMessage() {
	ed.messageFlashStart.Store(0)
	ed.message = ""
}

// flashing reports whether a message shown recently still needs refreshes.
// It only touches the atomic flash start, so the ticker goroutine may call it.
func (ed *Editor) flashing(now int64) bool {
	start := ed.messageFlashStart.Load()
	if start <= 0 {
		return false
	}
	elapsed := now - start
	return elapsed >= 0 && elapsed < 700
}
