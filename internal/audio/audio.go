// Package audio triggers notes on a MIDI output and keeps the resulting
// playback voices alive while they sound.
package audio

import (
	"fmt"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
	"go.uber.org/zap"

	"github.com/strumkit/fretfinder/internal/theory"
)

// Handle is an opaque playback resource. A voice keeps sounding while its
// handle is held; Release stops it and must be idempotent.
type Handle interface {
	Release()
}

// Output triggers a note and returns the handle that keeps it sounding.
type Output interface {
	Play(note theory.Note, velocity uint8) (Handle, error)
}

// Manager handles MIDI port discovery and opens outputs.
type Manager struct {
	mu  sync.RWMutex
	log *zap.Logger
}

// NewManager creates a new MIDI manager.
func NewManager(log *zap.Logger) *Manager {
	return &Manager{log: log}
}

// Close cleans up the MIDI driver.
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListOutPorts returns the names of available MIDI output ports.
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// ListInPorts returns the names of available MIDI input ports.
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// Output opens the named output port on the given channel. An empty port
// name selects the silent output, so the board stays usable on machines
// without a synth attached.
func (m *Manager) Output(portName string, channel uint8) (Output, error) {
	if portName == "" {
		return &silentOutput{log: m.log}, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	outPort := m.findOutPort(portName)
	if outPort == nil {
		return nil, fmt.Errorf("output port not found: %s", portName)
	}

	send, err := midi.SendTo(outPort)
	if err != nil {
		return nil, fmt.Errorf("failed to create sender: %w", err)
	}

	return &portOutput{send: send, channel: channel % 16, log: m.log}, nil
}

func (m *Manager) findOutPort(name string) drivers.Out {
	outs := midi.GetOutPorts()
	for _, out := range outs {
		if out.String() == name {
			return out
		}
	}
	return nil
}

// portOutput plays notes on a real MIDI output port.
type portOutput struct {
	send    func(midi.Message) error
	channel uint8
	log     *zap.Logger
}

func (o *portOutput) Play(note theory.Note, velocity uint8) (Handle, error) {
	id := note.ID()
	if _, err := id.Note(); err != nil {
		return nil, fmt.Errorf("cannot play %s: %w", note, err)
	}
	key := id.Key()
	if err := o.send(midi.NoteOn(o.channel, key, velocity&0x7F)); err != nil {
		return nil, fmt.Errorf("note on failed for %s: %w", note, err)
	}
	return &voice{output: o, key: key}, nil
}

// voice is a sounding note. Releasing it sends the matching NoteOff.
type voice struct {
	output *portOutput
	key    uint8
	once   sync.Once
}

func (v *voice) Release() {
	v.once.Do(func() {
		if err := v.output.send(midi.NoteOff(v.output.channel, v.key)); err != nil {
			v.output.log.Warn("note off failed", zap.Uint8("key", v.key), zap.Error(err))
		}
	})
}

// silentOutput is the fallback when no output port is configured. It hands
// out inert handles so the rest of the session behaves the same.
type silentOutput struct {
	log *zap.Logger
}

func (o *silentOutput) Play(note theory.Note, velocity uint8) (Handle, error) {
	o.log.Debug("no output port configured", zap.Stringer("note", note))
	return noopHandle{}, nil
}

type noopHandle struct{}

func (noopHandle) Release() {}
