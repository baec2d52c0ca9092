package window

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/strumkit/fretfinder/internal/config"
	"github.com/strumkit/fretfinder/internal/fretboard"
	"github.com/strumkit/fretfinder/internal/startup"
)

const noPortLabel = "(silent)"

// ============ SETTINGS TAB ============

func (mw *MainWindow) createSettingsTab() fyne.CanvasObject {
	// --- Instrument ---

	tuningNames := make([]string, 0, len(mw.cfg.Tunings))
	for _, t := range mw.cfg.Tunings {
		tuningNames = append(tuningNames, t.Name)
	}
	tuningSelect := widget.NewSelect(tuningNames, func(name string) {
		preset := mw.cfg.TuningByName(name)
		if preset == nil {
			return
		}
		mw.cfg.TuningID = preset.ID
		mw.saveConfig()
		mw.reloadBoard()
		mw.refreshGrid()
	})
	tuningSelect.SetSelected(mw.cfg.CurrentTuning().Name)

	addTuningBtn := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		mw.showAddTuningDialog(tuningSelect)
	})
	tuningRow := container.NewBorder(nil, nil, nil, addTuningBtn, tuningSelect)

	fretLabel := widget.NewLabel(strconv.Itoa(mw.cfg.FretCount))
	fretSlider := widget.NewSlider(12, 21)
	fretSlider.Step = 1
	fretSlider.SetValue(float64(mw.cfg.FretCount))
	fretSlider.OnChanged = func(v float64) {
		fretLabel.SetText(strconv.Itoa(int(v)))
	}
	fretSlider.OnChangeEnded = func(v float64) {
		mw.cfg.FretCount = int(v)
		mw.saveConfig()
		mw.reloadBoard()
		mw.refreshGrid()
	}
	fretRow := container.NewBorder(nil, nil, nil, fretLabel, fretSlider)

	layoutSelect := widget.NewSelect([]string{"Auto", "Horizontal", "Vertical"}, func(choice string) {
		switch choice {
		case "Horizontal":
			mw.cfg.Orientation = config.OrientationHorizontal
		case "Vertical":
			mw.cfg.Orientation = config.OrientationVertical
		default:
			mw.cfg.Orientation = config.OrientationAuto
		}
		mw.saveConfig()
		mw.refreshGrid()
	})
	switch mw.cfg.Orientation {
	case config.OrientationHorizontal:
		layoutSelect.SetSelected("Horizontal")
	case config.OrientationVertical:
		layoutSelect.SetSelected("Vertical")
	default:
		layoutSelect.SetSelected("Auto")
	}

	// --- Playback ---

	portSelect := widget.NewSelect(mw.outPortOptions(), func(name string) {
		if name == noPortLabel {
			mw.cfg.OutPort = ""
		} else {
			mw.cfg.OutPort = name
		}
		mw.saveConfig()
		mw.openOutput()
	})
	if mw.cfg.OutPort == "" {
		portSelect.SetSelected(noPortLabel)
	} else {
		portSelect.SetSelected(mw.cfg.OutPort)
	}

	refreshPortsBtn := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		portSelect.Options = mw.outPortOptions()
		portSelect.Refresh()
	})
	portRow := container.NewBorder(nil, nil, nil, refreshPortsBtn, portSelect)

	channelOptions := make([]string, 16)
	for i := range channelOptions {
		channelOptions[i] = strconv.Itoa(i + 1)
	}
	channelSelect := widget.NewSelect(channelOptions, func(choice string) {
		ch, err := strconv.Atoi(choice)
		if err != nil {
			return
		}
		mw.cfg.Channel = ch - 1
		mw.saveConfig()
		mw.openOutput()
	})
	channelSelect.SetSelected(strconv.Itoa(mw.cfg.Channel + 1))

	velocityLabel := widget.NewLabel(strconv.Itoa(mw.cfg.Velocity))
	velocitySlider := widget.NewSlider(1, 127)
	velocitySlider.Step = 1
	velocitySlider.SetValue(float64(mw.cfg.Velocity))
	velocitySlider.OnChanged = func(v float64) {
		velocityLabel.SetText(strconv.Itoa(int(v)))
	}
	velocitySlider.OnChangeEnded = func(v float64) {
		mw.cfg.Velocity = int(v)
		mw.saveConfig()
	}
	velocityRow := container.NewBorder(nil, nil, nil, velocityLabel, velocitySlider)

	// --- Application ---

	startupCheck := widget.NewCheck("Open at startup", func(checked bool) {
		mw.cfg.OpenAtStartup = checked
		var err error
		if checked {
			err = startup.Enable()
		} else {
			err = startup.Disable()
		}
		if err != nil {
			mw.log.Warn("startup registration failed", zap.Bool("enable", checked), zap.Error(err))
		}
		mw.saveConfig()
	})
	startupCheck.SetChecked(mw.cfg.OpenAtStartup)

	form := widget.NewForm(
		widget.NewFormItem("Tuning", tuningRow),
		widget.NewFormItem("Frets", fretRow),
		widget.NewFormItem("Layout", layoutSelect),
		widget.NewFormItem("Output port", portRow),
		widget.NewFormItem("Channel", channelSelect),
		widget.NewFormItem("Velocity", velocityRow),
	)

	header := widget.NewLabelWithStyle("Instrument & Playback", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewVBox(header, form, widget.NewSeparator(), startupCheck)
}

// showAddTuningDialog collects a name and open-string notes for a new
// preset. The notes are validated the same way the board is built, so a
// preset that saves is a preset that renders.
func (mw *MainWindow) showAddTuningDialog(tuningSelect *widget.Select) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Open G")
	notesEntry := widget.NewEntry()
	notesEntry.SetPlaceHolder("D4 B3 G3 D3 G2 D2")

	items := []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Strings", notesEntry),
	}
	dialog.ShowForm("Add Tuning", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		name := strings.TrimSpace(nameEntry.Text)
		notes := strings.Fields(notesEntry.Text)
		if name == "" || len(notes) == 0 {
			return
		}
		if _, err := fretboard.ParseTuning(notes); err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		preset := config.NewTuningPreset(name, notes)
		mw.cfg.AddTuning(preset)
		tuningSelect.Options = append(tuningSelect.Options, preset.Name)
		// Selecting the new preset persists it and rebuilds the board
		tuningSelect.SetSelected(preset.Name)
	}, mw.window)
}

func (mw *MainWindow) outPortOptions() []string {
	return append([]string{noPortLabel}, mw.audio.ListOutPorts()...)
}

func (mw *MainWindow) saveConfig() {
	if err := mw.cfg.Save(); err != nil {
		mw.log.Error("failed to save config", zap.Error(err))
	}
	if mw.onSave != nil {
		mw.onSave()
	}
}
