package practiceui

import (
	"strings"

	"github.com/rapidmidiex/notedrill/pitch"
	"github.com/rapidmidiex/notedrill/styles"
)

// Staff rows are diatonic steps (pitch.StaffOffset). Treble lines are E4 G4
// B4 D5 F5, bass lines G2 B2 D3 F3 A3; middle C sits on a ledger between.
const (
	trebleBottom = 2
	trebleTop    = 10
	bassBottom   = -10
	bassTop      = -2

	staffWidth = 28
	noteCol    = 16
	labelWidth = 7
	stemLength = 5
)

func isStaffLine(offset int) bool {
	if offset%2 != 0 {
		return false
	}
	return (offset >= trebleBottom && offset <= trebleTop) ||
		(offset >= bassBottom && offset <= bassTop)
}

// needsLedger reports whether row offset needs a ledger line for a note at
// noteOffset.
func needsLedger(offset, noteOffset int) bool {
	if offset%2 != 0 || isStaffLine(offset) {
		return false
	}
	switch {
	case offset == 0:
		return noteOffset == 0
	case offset > trebleTop:
		return noteOffset >= offset
	case offset < bassBottom:
		return noteOffset <= offset
	}
	return false
}

func noteHead(d pitch.Duration) rune {
	if d == pitch.Quarter {
		return '●'
	}
	return 'o'
}

// Staff draws n on a grand staff, one string per diatonic step from top to
// bottom, without styling.
func Staff(n pitch.Note) []string {
	rows, _ := staffRows(n)
	return rows
}

func staffRows(n pitch.Note) (rows []string, noteRow int) {
	off := n.StaffOffset()
	top := max(trebleTop+2, off+stemLength+1)
	bottom := min(bassBottom-2, off-stemLength-1)

	// Notes below the middle line of their staff get an upward stem.
	middle := 6
	if n.Clef == pitch.Bass {
		middle = -6
	}
	stemUp := off < middle

	for r := top; r >= bottom; r-- {
		line := make([]rune, staffWidth)
		fill := ' '
		if isStaffLine(r) {
			fill = '─'
		}
		for i := range line {
			line[i] = fill
		}
		if needsLedger(r, off) {
			for c := noteCol - 2; c <= noteCol+2; c++ {
				line[c] = '─'
			}
		}

		if r == off {
			line[noteCol] = noteHead(n.Duration)
			if sym := []rune(n.Accidental.Symbol()); len(sym) > 0 {
				line[noteCol-1] = sym[0]
			}
			noteRow = len(rows)
		}
		if n.Duration != pitch.Whole {
			if stemUp && r > off && r <= off+stemLength {
				line[noteCol+1] = '│'
			}
			if !stemUp && r < off && r >= off-stemLength {
				line[noteCol-1] = '│'
			}
		}

		label := ""
		switch r {
		case 6:
			label = "treble"
		case -6:
			label = "bass"
		}
		rows = append(rows, padRight(label, labelWidth)+string(line))
	}
	return rows, noteRow
}

// RenderStaff draws n on a grand staff with the note highlighted.
func RenderStaff(n pitch.Note) string {
	rows, noteRow := staffRows(n)
	var b strings.Builder
	for i, row := range rows {
		if i == noteRow {
			runes := []rune(row)
			at := labelWidth + noteCol - 1
			b.WriteString(styles.StaffStyle.Render(string(runes[:at])))
			b.WriteString(styles.NoteStyle.Render(string(runes[at : at+2])))
			b.WriteString(styles.StaffStyle.Render(string(runes[at+2:])))
		} else {
			b.WriteString(styles.StaffStyle.Render(row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
