package command

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"only spaces", "    ", nil},
		{"single word", "print", []string{"print"}},
		{"quoted text keeps quotes", `insertEnd "hello world"`, []string{"insertEnd", `"hello world"`}},
		{"repeated spaces", `insert   3    "a  b"`, []string{"insert", "3", `"a  b"`}},
		{"leading and trailing spaces", `  delete 2  `, []string{"delete", "2"}},
		{"empty quotes", `search ""`, []string{"search", `""`}},
		{"quote glued to word", `edit 1 x"y z"`, []string{"edit", "1", `x"y z"`}},
		{"unbalanced quote runs to end", `insertEnd "a b c`, []string{"insertEnd", `"a b c`}},
		{"unbalanced quote glues tokens", `insertEnd "a" "b c`, []string{"insertEnd", `"a"`, `"b c`}},
		{"tab is not a separator", "print\tnow", []string{"print\tnow"}},
		{"lone quote", `search "`, []string{"search", `"`}},
		{"utf-8 text", `insertEnd "grüße welt"`, []string{"insertEnd", `"grüße welt"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokensIsLazy(t *testing.T) {
	var got []string
	for tok := range Tokens(`a b c d`) {
		got = append(got, tok)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Tokens() yielded %q", got)
	}
}

func TestLexerInQuotes(t *testing.T) {
	l := NewLexer(`x "open`)
	for {
		if _, ok := l.Next(); !ok {
			break
		}
	}
	if !l.InQuotes() {
		t.Error("InQuotes() should report the unbalanced quote")
	}

	l = NewLexer(`x "closed"`)
	for {
		if _, ok := l.Next(); !ok {
			break
		}
	}
	if l.InQuotes() {
		t.Error("InQuotes() should be false for balanced input")
	}
}

func TestIsQuote(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{`"text"`, true},
		{`""`, true},
		{`"a b"`, true},
		{`"`, false},
		{``, false},
		{`text`, false},
		{`"text`, false},
		{`text"`, false},
		{`x"y"`, false},
	}

	for _, tt := range tests {
		if got := IsQuote(tt.token); got != tt.want {
			t.Errorf("IsQuote(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestIsNum(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"3", true},
		{"0", true},
		{"-2", true},
		{"+4", true},
		{"42", true},
		{"3abc", false},
		{"abc", false},
		{"", false},
		{"1.5", false},
		{" 3", false},
		{"99999999999999999999999", false},
	}

	for _, tt := range tests {
		if got := IsNum(tt.token); got != tt.want {
			t.Errorf("IsNum(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{`"hello world"`, "hello world"},
		{`""`, ""},
		{`"a"b"`, `a"b`},
		{`"`, ""},
	}

	for _, tt := range tests {
		if got := Unquote(tt.token); got != tt.want {
			t.Errorf("Unquote(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestParseNum(t *testing.T) {
	tests := []struct {
		token  string
		want   int
		wantOK bool
	}{
		{"3", 3, true},
		{"-2", -2, true},
		{"3abc", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNum(tt.token)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("ParseNum(%q) = %d, %v, want %d, %v", tt.token, got, ok, tt.want, tt.wantOK)
		}
	}
}
