package command

import (
	"fmt"
)

// Builtins returns a registry with the editor commands, in the order the
// help text lists them.
func Builtins() *Registry {
	r := NewRegistry()

	r.MustRegister(&Definition{
		Name:        "insertEnd",
		Args:        []ArgKind{ArgQuoted},
		Usage:       `insertEnd "text"`,
		Description: "insert given text at the end of the document",
		Handler: func(in *Interpreter, args []Value) (Outcome, error) {
			return Continue, in.doc.InsertEnd(args[0].Text)
		},
	})

	r.MustRegister(&Definition{
		Name:        "insert",
		Args:        []ArgKind{ArgNumber, ArgQuoted},
		Usage:       `insert 3 "text"`,
		Description: "insert given text at the line indicated by index given",
		Handler: func(in *Interpreter, args []Value) (Outcome, error) {
			return Continue, in.doc.InsertAt(args[0].Number, args[1].Text)
		},
	})

	r.MustRegister(&Definition{
		Name:        "delete",
		Args:        []ArgKind{ArgNumber},
		Usage:       "delete 3",
		Description: "delete line at index given",
		Handler: func(in *Interpreter, args []Value) (Outcome, error) {
			return Continue, in.doc.DeleteLine(args[0].Number)
		},
	})

	r.MustRegister(&Definition{
		Name:        "edit",
		Args:        []ArgKind{ArgNumber, ArgQuoted},
		Usage:       `edit 3 "text"`,
		Description: "replace the line at the index given with the given text",
		Handler: func(in *Interpreter, args []Value) (Outcome, error) {
			return Continue, in.doc.EditLine(args[0].Number, args[1].Text)
		},
	})

	r.MustRegister(&Definition{
		Name:        "print",
		Usage:       "print",
		Description: "print the entire document, with line numbers",
		Handler: func(in *Interpreter, _ []Value) (Outcome, error) {
			for n, text := range in.doc.All() {
				fmt.Fprintf(in.out, "%d %s\n", n, text)
			}
			return Continue, nil
		},
	})

	r.MustRegister(&Definition{
		Name:        "search",
		Args:        []ArgKind{ArgQuoted},
		Usage:       `search "text"`,
		Description: "print the line number and line that contains the given text",
		Handler: func(in *Interpreter, args []Value) (Outcome, error) {
			matches, err := in.doc.Search(args[0].Text)
			if err != nil {
				fmt.Fprintln(in.out, NotFound)
				return Continue, err
			}
			for _, m := range matches {
				fmt.Fprintf(in.out, "%d %s\n", m.Number, m.Text)
			}
			return Continue, nil
		},
	})

	r.MustRegister(&Definition{
		Name:        "quit",
		Usage:       "quit",
		Description: "quit/exit the program",
		Handler: func(*Interpreter, []Value) (Outcome, error) {
			return Quit, nil
		},
	})

	r.MustRegister(&Definition{
		Name:        "commands",
		Usage:       "commands",
		Description: "list valid commands",
		Handler: func(in *Interpreter, _ []Value) (Outcome, error) {
			fmt.Fprint(in.out, in.registry.Help())
			return Continue, nil
		},
	})

	return r
}

// NotFound is printed by search when no line matches.
const NotFound = "not found"
