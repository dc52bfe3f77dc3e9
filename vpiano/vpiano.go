package vpiano

import (
	"github.com/rapidmidiex/notedrill/pitch"
)

type (
	Key struct {
		Note pitch.Note
		// MIDI note number, based on C4=60
		MIDI int
		// Name of the key, ex: "C", "F#/Gb"
		Name string
		// Denotes if note is sharp/flat ie. "black" key.
		IsAccidental bool
		// qwerty keyboard key binding.
		KeyBinding string
	}

	Keys []Key

	KeyBindingMap map[string]Key
)

var keyNames = []struct {
	name         string
	isAccidental bool
}{
	{name: "C", isAccidental: false},
	{name: "C#/Db", isAccidental: true},
	{name: "D", isAccidental: false},
	{name: "D#/Eb", isAccidental: true},
	{name: "E", isAccidental: false},
	{name: "F", isAccidental: false},
	{name: "F#/Gb", isAccidental: true},
	{name: "G", isAccidental: false},
	{name: "G#/Ab", isAccidental: true},
	{name: "A", isAccidental: false},
	{name: "A#/Bb", isAccidental: true},
	{name: "B", isAccidental: false},
}

// qwerty keys for B2..C5, one per semitone, tracker style: the z-row plays
// the naturals of octave 3 with the a-row above for its accidentals, the
// q-row plays octave 4 with the number row for its accidentals.
var qwertyKeys = []string{
	"a", // B2
	"z", "s", "x", "d", "c", "v", "g", "b", "h", "n", "j", "m", // C3..B3
	"q", "2", "w", "3", "e", "r", "5", "t", "6", "y", "7", "u", // C4..B4
	"i", // C5
}

const (
	// Lowest and highest key of the practice keyboard.
	LowMIDI  = 47 // B2
	HighMIDI = 72 // C5
)

// Layout returns the practice keyboard from B2 to C5 in ascending order. It
// covers every note the selector can ask for.
func Layout() Keys {
	keys := make(Keys, 0, len(qwertyKeys))
	for i, kb := range qwertyKeys {
		midi := LowMIDI + i
		k := keyNames[midi%12]
		keys = append(keys, Key{
			Note:         pitch.FromNumber(midi),
			MIDI:         midi,
			Name:         k.name,
			IsAccidental: k.isAccidental,
			KeyBinding:   kb,
		})
	}
	return keys
}

func (keys Keys) ToBindingMap() KeyBindingMap {
	kMap := make(KeyBindingMap, len(keys))
	for _, k := range keys {
		kMap[k.KeyBinding] = k
	}
	return kMap
}

// White returns the natural keys, Black the accidental ones.
func (keys Keys) White() Keys {
	return keys.filter(false)
}

func (keys Keys) Black() Keys {
	return keys.filter(true)
}

func (keys Keys) filter(accidental bool) Keys {
	out := make(Keys, 0, len(keys))
	for _, k := range keys {
		if k.IsAccidental == accidental {
			out = append(out, k)
		}
	}
	return out
}

// Find returns the key that sounds n, if it is on the keyboard.
func (keys Keys) Find(n pitch.Note) (Key, bool) {
	for _, k := range keys {
		if pitch.Equal(k.Note, n) {
			return k, true
		}
	}
	return Key{}, false
}

// InRange reports whether midiNum is on an 88-key piano.
func InRange(midiNum int) bool {
	return midiNum > 20 && midiNum < 109
}
