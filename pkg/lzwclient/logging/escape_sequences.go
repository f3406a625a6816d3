package logging

// EscapeSequences that the console logger emits to apply styling and
// to redraw the progress spinner. Leaving all fields unset yields plain
// output that is suitable for writing to files and pipes.
type EscapeSequences struct {
	Reset []byte

	Bold []byte

	Red   []byte
	Green []byte

	ClearLine  []byte
	HideCursor []byte
	ShowCursor []byte
}

var (
	NoEscapeSequences    = EscapeSequences{}
	VT100EscapeSequences = EscapeSequences{
		Reset: []byte("\x1b[m"),

		Bold: []byte("\x1b[1m"),

		Red:   []byte("\x1b[31m"),
		Green: []byte("\x1b[32m"),

		ClearLine:  []byte("\r\x1b[2K"),
		HideCursor: []byte("\x1b[?25l"),
		ShowCursor: []byte("\x1b[?25h"),
	}
)
