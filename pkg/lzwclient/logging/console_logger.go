package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/buildbarn/bb-storage/pkg/clock"
)

// SpinnerInterval is the amount of time between frames of the
// animation displayed by StartSpinner().
const SpinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type consoleLogger struct {
	w               io.Writer
	escapeSequences *EscapeSequences
	clock           clock.Clock

	lock           sync.Mutex
	spinnerActive  bool
	spinnerFrame   int
	spinnerMessage string
}

// NewConsoleLogger creates a Logger that writes human readable messages
// to a terminal or file. Messages are prefixed with their severity.
func NewConsoleLogger(w io.Writer, escapeSequences *EscapeSequences, clock clock.Clock) Logger {
	return &consoleLogger{
		w:               w,
		escapeSequences: escapeSequences,
		clock:           clock,
	}
}

// drawSpinnerLocked writes the current frame of the spinner, replacing
// whatever is on the last line of output.
func (l *consoleLogger) drawSpinnerLocked(b *bytes.Buffer) {
	b.Write(l.escapeSequences.ClearLine)
	b.WriteString(spinnerFrames[l.spinnerFrame%len(spinnerFrames)])
	b.WriteByte(' ')
	b.WriteString(l.spinnerMessage)
}

func (l *consoleLogger) writeLine(style []byte, prefix, message string) {
	var b bytes.Buffer
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.spinnerActive {
		b.Write(l.escapeSequences.ClearLine)
	}
	b.Write(style)
	b.WriteString(prefix)
	b.Write(l.escapeSequences.Reset)
	b.WriteString(message)
	b.WriteByte('\n')
	if l.spinnerActive {
		l.drawSpinnerLocked(&b)
	}
	l.w.Write(b.Bytes())
}

func (l *consoleLogger) errorStyle() []byte {
	return append(append([]byte(nil), l.escapeSequences.Bold...), l.escapeSequences.Red...)
}

func (l *consoleLogger) Error(v ...any) {
	l.writeLine(l.errorStyle(), "ERROR: ", fmt.Sprint(v...))
}

func (l *consoleLogger) Errorf(format string, v ...any) {
	l.writeLine(l.errorStyle(), "ERROR: ", fmt.Sprintf(format, v...))
}

func (l *consoleLogger) Fatal(v ...any) {
	l.Error(v...)
	os.Exit(1)
}

func (l *consoleLogger) Fatalf(format string, v ...any) {
	l.Errorf(format, v...)
	os.Exit(1)
}

func (l *consoleLogger) Info(v ...any) {
	l.writeLine(l.escapeSequences.Green, "INFO: ", fmt.Sprint(v...))
}

func (l *consoleLogger) Infof(format string, v ...any) {
	l.writeLine(l.escapeSequences.Green, "INFO: ", fmt.Sprintf(format, v...))
}

func (l *consoleLogger) Successf(format string, v ...any) {
	l.writeLine(l.escapeSequences.Green, "✓ ", fmt.Sprintf(format, v...))
}

func (l *consoleLogger) StartSpinner(message string) Spinner {
	if l.escapeSequences.ClearLine == nil {
		// Animations cannot be displayed without being able
		// to redraw the current line.
		return noopSpinner{}
	}

	l.lock.Lock()
	if l.spinnerActive {
		// Only a single spinner can be displayed at a time.
		l.lock.Unlock()
		return noopSpinner{}
	}
	l.spinnerActive = true
	l.spinnerFrame = 0
	l.spinnerMessage = message
	var b bytes.Buffer
	b.Write(l.escapeSequences.HideCursor)
	l.drawSpinnerLocked(&b)
	l.w.Write(b.Bytes())
	l.lock.Unlock()

	timer, timerChannel := l.clock.NewTimer(SpinnerInterval)
	s := &consoleSpinner{
		logger: l,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.run(timer, timerChannel)
	return s
}

type consoleSpinner struct {
	logger *consoleLogger
	once   sync.Once
	stop   chan struct{}
	done   chan struct{}
}

func (s *consoleSpinner) run(timer clock.Timer, timerChannel <-chan time.Time) {
	defer close(s.done)
	l := s.logger
	for {
		select {
		case <-s.stop:
			timer.Stop()
			return
		case <-timerChannel:
			var b bytes.Buffer
			l.lock.Lock()
			l.spinnerFrame++
			l.drawSpinnerLocked(&b)
			l.w.Write(b.Bytes())
			l.lock.Unlock()

			// Timers fire once, so schedule the next frame.
			timer, timerChannel = l.clock.NewTimer(SpinnerInterval)
		}
	}
}

func (s *consoleSpinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		<-s.done

		l := s.logger
		var b bytes.Buffer
		l.lock.Lock()
		l.spinnerActive = false
		b.Write(l.escapeSequences.ClearLine)
		b.Write(l.escapeSequences.ShowCursor)
		l.w.Write(b.Bytes())
		l.lock.Unlock()
	})
}

type noopSpinner struct{}

func (noopSpinner) Stop() {}
