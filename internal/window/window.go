package window

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/bep/debounce"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"

	"github.com/strumkit/fretfinder/internal/audio"
	"github.com/strumkit/fretfinder/internal/config"
	"github.com/strumkit/fretfinder/internal/fretboard"
	"github.com/strumkit/fretfinder/internal/theory"
)

// MainWindow manages the main application window
type MainWindow struct {
	window fyne.Window
	app    fyne.App
	cfg    *config.Config
	audio  *audio.Manager
	log    *zap.Logger
	onSave func()

	// Playback state, never persisted
	output audio.Output
	cache  *audio.Cache

	// Fretboard tab state
	chordEntry  *widget.Entry
	statusLabel *widget.Label
	boardBox    *fyne.Container
	debounced   func(func())
	labelFont   *truetype.Font // parsed once, reused across grid rebuilds

	// Derived per redraw from config + chord text
	tuning fretboard.Tuning
	board  fretboard.Board
	chord  fretboard.PitchClassSet
	root   theory.PitchClass
}

// NewMainWindow creates the main application window
func NewMainWindow(app fyne.App, cfg *config.Config, audioMgr *audio.Manager, log *zap.Logger, onSave func()) *MainWindow {
	win := app.NewWindow("FretFinder")

	mw := &MainWindow{
		window:    win,
		app:       app,
		cfg:       cfg,
		audio:     audioMgr,
		log:       log,
		onSave:    onSave,
		cache:     audio.NewCache(audio.MaxHandles),
		debounced: debounce.New(200 * time.Millisecond),
	}

	mw.openOutput()
	mw.reloadBoard()
	mw.setupUI()
	mw.applyChordText(cfg.ChordText)

	win.Resize(fyne.NewSize(1100, 560))
	win.CenterOnScreen()

	win.SetCloseIntercept(func() {
		win.Hide()
	})

	return mw
}

// Show displays the window
func (mw *MainWindow) Show() {
	mw.window.Show()
}

// Shutdown releases every live voice and stops playback
func (mw *MainWindow) Shutdown() {
	mw.cache.Close()
}

func (mw *MainWindow) setupUI() {
	boardTab := container.NewTabItem("Fretboard", mw.createFretboardTab())
	settingsTab := container.NewTabItem("Settings", mw.createSettingsTab())

	tabs := container.NewAppTabs(boardTab, settingsTab)
	tabs.SetTabLocation(container.TabLocationTop)

	mw.window.SetContent(tabs)
}

// openOutput (re)opens the configured MIDI output, falling back to the
// silent output when the port cannot be opened
func (mw *MainWindow) openOutput() {
	out, err := mw.audio.Output(mw.cfg.OutPort, uint8(mw.cfg.Channel))
	if err != nil {
		mw.log.Warn("falling back to silent output",
			zap.String("port", mw.cfg.OutPort), zap.Error(err))
		out, _ = mw.audio.Output("", 0)
	}
	mw.output = out
}

// reloadBoard regenerates the note grid from the selected tuning preset.
// Notes are a pure function of tuning and fret count, so this only runs when
// one of those settings changes, not on chord edits.
func (mw *MainWindow) reloadBoard() {
	preset := mw.cfg.CurrentTuning()
	tuning, err := fretboard.ParseTuning(preset.Strings)
	if err != nil {
		mw.log.Error("invalid tuning preset, using standard guitar",
			zap.String("preset", preset.Name), zap.Error(err))
		tuning = fretboard.StandardGuitar
	}
	mw.tuning = tuning
	mw.board = fretboard.Generate(tuning, mw.cfg.FretCount)
}

// ============ FRETBOARD TAB ============

func (mw *MainWindow) createFretboardTab() fyne.CanvasObject {
	mw.chordEntry = widget.NewEntry()
	mw.chordEntry.SetPlaceHolder("Chord, e.g. Cmaj7 or Am/G")
	mw.chordEntry.SetText(mw.cfg.ChordText)
	mw.chordEntry.OnChanged = func(text string) {
		mw.debounced(func() {
			fyne.Do(func() {
				mw.applyChordText(text)
			})
		})
	}

	mw.statusLabel = widget.NewLabel("")

	header := widget.NewLabelWithStyle("Chord", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	entryRow := container.NewBorder(nil, nil, header, nil, mw.chordEntry)

	mw.boardBox = container.NewStack()
	mw.refreshGrid()

	top := container.NewVBox(entryRow, mw.statusLabel)
	return container.NewBorder(top, nil, nil, nil, container.NewScroll(mw.boardBox))
}

// applyChordText normalizes the entry text, parses it, and recomputes the
// enabled-cell set. It runs on every (debounced) keystroke.
func (mw *MainWindow) applyChordText(text string) {
	normalized := theory.Normalize(text)
	if normalized != text {
		// Idempotent, so the OnChanged this triggers settles immediately
		mw.chordEntry.SetText(normalized)
	}

	mw.cfg.ChordText = normalized
	mw.chord = 0
	mw.root = 0

	trimmed := strings.TrimSpace(normalized)
	if trimmed == "" {
		mw.statusLabel.SetText("Type a chord to highlight its notes")
	} else if chord, err := theory.ParseChord(trimmed); err != nil {
		// Parse failure behaves like no chord: the whole board stays enabled
		mw.log.Debug("chord parse failed", zap.String("text", trimmed), zap.Error(err))
		mw.statusLabel.SetText("Not a chord yet: " + err.Error())
	} else {
		mw.chord = fretboard.NewPitchClassSet(chord.Notes())
		mw.root = chord.Root()
		mw.statusLabel.SetText(chord.Name + ": " + describeNotes(chord.Notes()))
	}

	mw.refreshGrid()
}

func describeNotes(notes []theory.Note) string {
	seen := make(map[theory.PitchClass]bool)
	var names []string
	for _, n := range notes {
		if !seen[n.Class] {
			seen[n.Class] = true
			names = append(names, n.Class.String())
		}
	}
	return strings.Join(names, " ")
}

// orientation resolves the configured layout mode, following the window
// aspect ratio in auto mode
func (mw *MainWindow) orientation() fretboard.Orientation {
	switch mw.cfg.Orientation {
	case config.OrientationHorizontal:
		return fretboard.Horizontal
	case config.OrientationVertical:
		return fretboard.Vertical
	default:
		size := mw.window.Canvas().Size()
		if size.Height > size.Width {
			return fretboard.Vertical
		}
		return fretboard.Horizontal
	}
}

func (mw *MainWindow) refreshGrid() {
	var grid fyne.CanvasObject
	if mw.orientation() == fretboard.Vertical {
		grid = mw.buildVerticalGrid()
	} else {
		grid = mw.buildHorizontalGrid()
	}
	mw.boardBox.Objects = []fyne.CanvasObject{grid}
	mw.boardBox.Refresh()
}

var cellSize = fyne.NewSize(64, 36)

// newCell builds one fretboard cell. Disabled cells stay in the grid so the
// fret columns keep their alignment.
func (mw *MainWindow) newCell(str, fret int) fyne.CanvasObject {
	note, ok := mw.board.Note(str, fret)
	if !ok {
		cell := newNoteCell("", cellSize, nil)
		cell.Disable()
		return cell
	}

	cell := newNoteCell(note.String(), cellSize, func() {
		mw.playNote(note)
	})
	if !fretboard.Enabled(note, mw.chord) {
		cell.Disable()
	} else if !mw.chord.Empty() && note.Class == mw.root {
		cell.Importance = widget.HighImportance
	}
	return cell
}

func (mw *MainWindow) buildHorizontalGrid() fyne.CanvasObject {
	cols := mw.board.Frets() + 1

	objects := make([]fyne.CanvasObject, 0, (mw.board.Strings()+1)*cols)

	// Fret marker header
	objects = append(objects, widget.NewLabel(""))
	for f := 0; f < mw.board.Frets(); f++ {
		objects = append(objects, widget.NewLabelWithStyle(
			fretboard.FretLabel(f), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	}

	for s := 0; s < mw.board.Strings(); s++ {
		objects = append(objects, widget.NewLabelWithStyle(
			mw.tuning[s].String(), fyne.TextAlignTrailing, fyne.TextStyle{Italic: true}))
		for f := 0; f < mw.board.Frets(); f++ {
			objects = append(objects, mw.newCell(s, f))
		}
	}

	return container.NewGridWithColumns(cols, objects...)
}

func (mw *MainWindow) buildVerticalGrid() fyne.CanvasObject {
	orient := fretboard.Vertical
	rows, cols := orient.Dimensions(mw.board)

	objects := make([]fyne.CanvasObject, 0, (rows+1)*(cols+1))

	// String name header, rotated so narrow columns stay readable
	objects = append(objects, widget.NewLabel(""))
	for c := 0; c < cols; c++ {
		str, _ := orient.Cell(mw.board, 0, c)
		objects = append(objects, container.NewCenter(mw.rotatedLabel(mw.tuning[str].String())))
	}

	for r := 0; r < rows; r++ {
		objects = append(objects, widget.NewLabelWithStyle(
			fretboard.FretLabel(r), fyne.TextAlignTrailing, fyne.TextStyle{Bold: true}))
		for c := 0; c < cols; c++ {
			str, fret := orient.Cell(mw.board, r, c)
			objects = append(objects, mw.newCell(str, fret))
		}
	}

	return container.NewGridWithColumns(cols+1, objects...)
}

// playNote triggers the note and retains its handle so the sound keeps
// rendering; the cache evicts the oldest voice once it is full
func (mw *MainWindow) playNote(note theory.Note) {
	handle, err := mw.output.Play(note, uint8(mw.cfg.Velocity))
	if err != nil {
		mw.log.Warn("note playback failed", zap.Stringer("note", note), zap.Error(err))
		return
	}
	mw.log.Debug("played note", zap.Stringer("note", note))
	mw.cache.Insert(handle)
}
