package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	mdwerror "github.com/msto63/lined/foundation/core/error"
	mdwlog "github.com/msto63/lined/foundation/core/log"
	"github.com/msto63/lined/internal/document"
)

// maxInputLine bounds a single line read by Run.
const maxInputLine = 1 << 20

// Options configure an Interpreter.
type Options struct {
	// Output receives print, search and commands output. Defaults to io.Discard.
	Output io.Writer

	// Diagnostics, when set, receives one "error: ..." line per rejected
	// command. Nil keeps rejections silent.
	Diagnostics io.Writer

	// Prompt is written to Output before each line Run reads.
	Prompt string

	Logger   *mdwlog.Logger
	Registry *Registry
}

// Interpreter turns input lines into document operations.
type Interpreter struct {
	doc      *document.Document
	registry *Registry
	out      io.Writer
	diag     io.Writer
	prompt   string
	logger   *mdwlog.Logger
}

// NewInterpreter creates an interpreter that operates on doc.
func NewInterpreter(doc *document.Document, opts Options) *Interpreter {
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.Registry == nil {
		opts.Registry = Builtins()
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Interpreter{
		doc:      doc,
		registry: opts.Registry,
		out:      opts.Output,
		diag:     opts.Diagnostics,
		prompt:   opts.Prompt,
		logger:   opts.Logger.WithField("component", "interpreter"),
	}
}

// Document returns the document the interpreter edits.
func (in *Interpreter) Document() *document.Document {
	return in.doc
}

// Registry returns the command registry.
func (in *Interpreter) Registry() *Registry {
	return in.registry
}

// Execute runs a single input line. Blank lines, unknown commands and
// malformed arguments leave the document untouched and return Continue
// together with an error describing the rejection. Search misses return an
// error with CodeNotFound after printing the not-found marker.
func (in *Interpreter) Execute(line string) (Outcome, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Continue, nil
	}

	if in.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		in.logger.Trace("tokenized input", mdwlog.Fields{"tokens": tokens})
	}

	name := tokens[0]
	def, ok := in.registry.Lookup(name)
	if !ok {
		err := mdwerror.New(`invalid command. To list valid commands, type "commands"`).
			WithCode(mdwerror.CodeUnknownCommand).
			WithOperation("command.Execute").
			WithDetail("command", name)
		in.report(name, err)
		return Continue, err
	}

	args, err := def.Validate(tokens[1:])
	if err != nil {
		in.report(name, err)
		return Continue, err
	}

	outcome, err := def.Handler(in, args)
	if err != nil {
		in.report(name, err)
	}
	return outcome, err
}

// Run reads commands from r until quit, end of input or ctx is done.
// Cancellation is checked between lines; a blocked read is not interrupted.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLine)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if in.prompt != "" {
			fmt.Fprint(in.out, in.prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if outcome, _ := in.Execute(line); outcome == Quit {
			in.logger.Debug("quit requested", mdwlog.Fields{"lines": in.doc.Size()})
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return mdwerror.Wrap(err, "failed to read input").
			WithCode(mdwerror.CodeInternal).
			WithOperation("command.Run")
	}
	in.logger.Debug("end of input", mdwlog.Fields{"lines": in.doc.Size()})
	return nil
}

// report logs err at the level its severity maps to and, for rejections,
// writes a diagnostic when enabled.
func (in *Interpreter) report(name string, err error) {
	in.logger.WithField("command", name).LogError(err)
	if in.diag == nil || !mdwerror.IsRejection(err) {
		return
	}
	msg := err.Error()
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		msg = mdwErr.Message()
	}
	fmt.Fprintf(in.diag, "error: %s\n", msg)
}
