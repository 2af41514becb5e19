package notebook

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/onyx/variables"
)

// FormatTag selects how a line is treated.
type FormatTag string

// Format tags recognized at the start of a line.
const (
	Math FormatTag = ".m"
	Plot FormatTag = ".p"
	Raw  FormatTag = ".r"
)

// SplitTag separates a leading format tag from content. The tag has to be
// followed by white space or end the content. Content without a recognized
// tag is a math line. The returned text has leading white space removed.
func SplitTag(content string) (FormatTag, string) {
	text := strings.TrimLeft(content, " \t")
	for _, tag := range []FormatTag{Math, Plot, Raw} {
		if rest, ok := strings.CutPrefix(text, string(tag)); ok {
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
				return tag, strings.TrimLeft(rest, " \t")
			}
		}
	}
	return Math, text
}

// Outcome is the result of evaluating a line. All fields are optional.
type Outcome struct {
	Result      string                 // the line as displayed, possibly with the answer appended
	Answer      string                 // the answer alone
	Declaration *variables.Declaration // variable declared by this line
	Error       string                 // raw engine diagnostic
	ErrorHint   string                 // short form of Error
	Plot        []string               // functions to plot
}

// Failed is true if the outcome carries an engine diagnostic.
func (o Outcome) Failed() bool {
	return o.Error != ""
}

// Line is a line of a notebook.
type Line struct {
	Content string // as entered, including a format tag
	Outcome
}

// Tag returns the format tag of a line.
func (l Line) Tag() FormatTag {
	tag, _ := SplitTag(l.Content)
	return tag
}

// ErrNoSuchLine is returned for line indices out of range.
var ErrNoSuchLine = errors.New("no such line")

// Store is a notebook of lines, addressed by index.
type Store struct {
	mu    sync.RWMutex
	lines []Line
}

// New creates a notebook with n empty lines.
func New(n int) *Store {
	return &Store{lines: make([]Line, n)}
}

// Len returns the number of lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// Line returns a copy of line i.
func (s *Store) Line(i int) (Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.lines) {
		return Line{}, fmt.Errorf("%w: %d", ErrNoSuchLine, i)
	}
	return s.lines[i], nil
}

// Lines returns a snapshot of all lines.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Append adds a line with content at the end and returns its index.
func (s *Store) Append(content string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, Line{Content: content})
	return len(s.lines) - 1
}

// Insert inserts an empty line before line i. i may equal Len().
func (s *Store) Insert(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i > len(s.lines) {
		return fmt.Errorf("%w: %d", ErrNoSuchLine, i)
	}
	s.lines = append(s.lines, Line{})
	copy(s.lines[i+1:], s.lines[i:])
	s.lines[i] = Line{}
	tracer().Debugf("inserted line %d", i)
	return nil
}

// Remove deletes line i. Following lines move up by one.
func (s *Store) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.lines) {
		return fmt.Errorf("%w: %d", ErrNoSuchLine, i)
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	tracer().Debugf("removed line %d", i)
	return nil
}

// SetContent replaces the content of line i and clears its outcome.
func (s *Store) SetContent(i int, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.lines) {
		return fmt.Errorf("%w: %d", ErrNoSuchLine, i)
	}
	s.lines[i] = Line{Content: content}
	return nil
}

// SetOutcome replaces the outcome of line i.
func (s *Store) SetOutcome(i int, o Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.lines) {
		return fmt.Errorf("%w: %d", ErrNoSuchLine, i)
	}
	s.lines[i].Outcome = o
	return nil
}

// Overlay collects the declarations of all lines into a variable overlay.
func (s *Store) Overlay() *variables.Overlay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ov := variables.NewOverlay()
	for i, l := range s.lines {
		if l.Declaration != nil {
			ov.Declare(i, *l.Declaration)
		}
	}
	return ov
}
