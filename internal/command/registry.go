package command

import (
	"fmt"
	"strings"
	"sync"

	mdwerror "github.com/msto63/lined/foundation/core/error"
)

// ArgKind is the expected shape of a command argument.
type ArgKind int

const (
	// ArgNumber is a base-10 integer, e.g. a line number
	ArgNumber ArgKind = iota
	// ArgQuoted is a double-quoted text argument
	ArgQuoted
)

// String returns the string representation of the argument kind
func (k ArgKind) String() string {
	switch k {
	case ArgNumber:
		return "number"
	case ArgQuoted:
		return "quoted text"
	default:
		return "unknown"
	}
}

// Value is a validated argument. Number is set for ArgNumber, Text (already
// unquoted) for ArgQuoted.
type Value struct {
	Kind   ArgKind
	Number int
	Text   string
}

// Outcome tells the read loop whether to keep going.
type Outcome int

const (
	// Continue keeps reading input.
	Continue Outcome = iota
	// Quit ends the read loop.
	Quit
)

// Handler runs a validated command against the interpreter's document.
type Handler func(in *Interpreter, args []Value) (Outcome, error)

// Definition describes one command: its name, the exact argument shape it
// accepts, help text and handler.
type Definition struct {
	Name        string
	Args        []ArgKind
	Usage       string
	Description string
	Handler     Handler
}

// Registry holds command definitions in registration order.
type Registry struct {
	mu    sync.RWMutex
	order []string
	defs  map[string]*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a command. Names are case-sensitive.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return mdwerror.New("command definition cannot be nil").
			WithCode(mdwerror.CodeInternal).
			WithOperation("command.Register")
	}
	if strings.TrimSpace(def.Name) == "" || strings.ContainsAny(def.Name, " \"") {
		return mdwerror.Newf("invalid command name %q", def.Name).
			WithCode(mdwerror.CodeInternal).
			WithOperation("command.Register")
	}
	if def.Handler == nil {
		return mdwerror.Newf("command %s has no handler", def.Name).
			WithCode(mdwerror.CodeInternal).
			WithOperation("command.Register")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.Name]; exists {
		return mdwerror.Newf("command %s already registered", def.Name).
			WithCode(mdwerror.CodeInternal).
			WithOperation("command.Register")
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// MustRegister is Register for static tables; it panics on error.
func (r *Registry) MustRegister(def *Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	return def, ok
}

// Definitions returns all definitions in registration order.
func (r *Registry) Definitions() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.defs[name])
	}
	return defs
}

// Help renders the command list shown by `commands`.
func (r *Registry) Help() string {
	var b strings.Builder
	b.WriteString("Valid commands:\n")
	for _, def := range r.Definitions() {
		fmt.Fprintf(&b, "%s -- %s\n", def.Usage, def.Description)
	}
	return b.String()
}

// Validate checks tokens (command name excluded) against the definition
// and converts them into values.
func (def *Definition) Validate(tokens []string) ([]Value, error) {
	if len(tokens) != len(def.Args) {
		return nil, def.syntaxError().
			WithDetail("want", len(def.Args)).
			WithDetail("got", len(tokens))
	}

	values := make([]Value, len(tokens))
	for i, kind := range def.Args {
		tok := tokens[i]
		switch kind {
		case ArgNumber:
			n, ok := ParseNum(tok)
			if !ok {
				return nil, def.syntaxError().WithDetail("argument", tok)
			}
			values[i] = Value{Kind: ArgNumber, Number: n}
		case ArgQuoted:
			if !IsQuote(tok) {
				return nil, def.syntaxError().WithDetail("argument", tok)
			}
			values[i] = Value{Kind: ArgQuoted, Text: Unquote(tok)}
		}
	}
	return values, nil
}

func (def *Definition) syntaxError() *mdwerror.Error {
	return mdwerror.Newf("syntax for %s is %s", def.Name, def.Usage).
		WithCode(mdwerror.CodeInvalidSyntax).
		WithOperation("command.Validate").
		WithDetail("command", def.Name)
}
