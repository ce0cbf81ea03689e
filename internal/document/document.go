package document

import (
	"iter"
	"strings"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/lined/foundation/core/error"
)

// DefaultMaxLineSize is the longest line, in bytes, accepted on insertion.
const DefaultMaxLineSize = 80

// Line is a single text record. ID is assigned on insertion and survives
// EditLine.
type Line struct {
	ID   uuid.UUID
	Text string
}

// Entry is a line as reported by Search and Entries: its 1-based number
// and its text.
type Entry struct {
	Number int
	Text   string
}

// Options configure a Document.
type Options struct {
	// MaxLineSize caps the byte length of inserted text. Values <= 0 select
	// DefaultMaxLineSize.
	MaxLineSize int
}

// Document is an ordered sequence of lines addressed by 1-based line
// numbers. Requests that are out of range or oversize are rejected without
// touching the document and reported through a structured error.
//
// A Document is not safe for concurrent use.
type Document struct {
	lines       []*Line
	maxLineSize int
}

// New creates an empty document.
func New(opts Options) *Document {
	limit := opts.MaxLineSize
	if limit <= 0 {
		limit = DefaultMaxLineSize
	}
	return &Document{maxLineSize: limit}
}

// Size returns the number of lines.
func (d *Document) Size() int {
	return len(d.lines)
}

// IsEmpty reports whether the document has no lines.
func (d *Document) IsEmpty() bool {
	return len(d.lines) == 0
}

// MaxLineSize returns the insertion limit in bytes.
func (d *Document) MaxLineSize() int {
	return d.maxLineSize
}

// InsertEnd appends text as the new last line.
func (d *Document) InsertEnd(text string) error {
	if err := d.checkLength("document.InsertEnd", text); err != nil {
		return err
	}
	d.lines = append(d.lines, newLine(text))
	return nil
}

// InsertAt inserts text before the line currently at lineNumber.
// lineNumber == Size()+1 appends.
func (d *Document) InsertAt(lineNumber int, text string) error {
	const op = "document.InsertAt"
	if err := d.checkRange(op, lineNumber, len(d.lines)+1); err != nil {
		return err
	}
	if err := d.checkLength(op, text); err != nil {
		return err
	}

	idx := lineNumber - 1
	d.lines = append(d.lines, nil)
	copy(d.lines[idx+1:], d.lines[idx:])
	d.lines[idx] = newLine(text)
	return nil
}

// DeleteLine removes the line at lineNumber.
func (d *Document) DeleteLine(lineNumber int) error {
	if err := d.checkRange("document.DeleteLine", lineNumber, len(d.lines)); err != nil {
		return err
	}

	idx := lineNumber - 1
	copy(d.lines[idx:], d.lines[idx+1:])
	d.lines[len(d.lines)-1] = nil
	d.lines = d.lines[:len(d.lines)-1]
	return nil
}

// EditLine replaces the text of the line at lineNumber. Unlike the insert
// operations it does not enforce the max line size.
func (d *Document) EditLine(lineNumber int, text string) error {
	if err := d.checkRange("document.EditLine", lineNumber, len(d.lines)); err != nil {
		return err
	}
	d.lines[lineNumber-1].Text = text
	return nil
}

// FindLine returns a copy of the line at lineNumber.
func (d *Document) FindLine(lineNumber int) (Line, bool) {
	if lineNumber < 1 || lineNumber > len(d.lines) {
		return Line{}, false
	}
	return *d.lines[lineNumber-1], true
}

// Search returns every line containing text, in line order. The match is
// a plain case-sensitive substring test. When nothing matches the result is
// empty and the error carries CodeNotFound.
func (d *Document) Search(text string) ([]Entry, error) {
	var matches []Entry
	for n, line := range d.All() {
		if strings.Contains(line, text) {
			matches = append(matches, Entry{Number: n, Text: line})
		}
	}
	if len(matches) == 0 {
		return nil, mdwerror.New("not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("document.Search").
			WithDetail("text", text)
	}
	return matches, nil
}

// All yields (line number, text) pairs in document order.
func (d *Document) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, line := range d.lines {
			if !yield(i+1, line.Text) {
				return
			}
		}
	}
}

// Entries returns the whole document as numbered entries.
func (d *Document) Entries() []Entry {
	entries := make([]Entry, 0, len(d.lines))
	for n, text := range d.All() {
		entries = append(entries, Entry{Number: n, Text: text})
	}
	return entries
}

// Texts returns the line texts in order.
func (d *Document) Texts() []string {
	texts := make([]string, len(d.lines))
	for i, line := range d.lines {
		texts[i] = line.Text
	}
	return texts
}

func newLine(text string) *Line {
	return &Line{ID: uuid.New(), Text: text}
}

// checkRange rejects lineNumber outside [1, upper].
func (d *Document) checkRange(op string, lineNumber, upper int) error {
	if lineNumber <= 0 {
		return mdwerror.New("line number must be a positive number").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation(op).
			WithDetail("lineNumber", lineNumber)
	}
	if lineNumber > upper {
		return mdwerror.New("line number too large").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation(op).
			WithDetail("lineNumber", lineNumber).
			WithDetail("size", len(d.lines))
	}
	return nil
}

func (d *Document) checkLength(op, text string) error {
	if len(text) > d.maxLineSize {
		return mdwerror.Newf("max line size is %d", d.maxLineSize).
			WithCode(mdwerror.CodeInvalidLength).
			WithOperation(op).
			WithDetail("length", len(text))
	}
	return nil
}
