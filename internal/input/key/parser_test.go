package key

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		spec string
		want Key
	}{
		// Names
		{"esc", Named(CodeEsc)},
		{"pgup", Named(CodePageUp)},
		{"pgdn", Named(CodePageDown)},
		{"del", Named(CodeDelete)},
		{"backspace", Named(CodeBackspace)},
		{"up", Named(CodeUp)},
		{"down", Named(CodeDown)},
		{"left", Named(CodeLeft)},
		{"right", Named(CodeRight)},

		// Whitespace characters
		{"space", Char(' ')},
		{"enter", Char('\n')},
		{"tab", Char('\t')},

		// Single characters
		{"j", Char('j')},
		{"K", Char('K')},
		{"/", Char('/')},
		{"#", Char('#')},
		{"é", Char('é')},

		// Modifiers
		{"C-c", Ctrl('c')},
		{"C-?", Ctrl('?')},
		{"A-P", Alt('P')},
		{"A-x", Alt('x')},

		// Only the character after the prefix counts
		{"C-xyz", Ctrl('x')},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"ESC", ErrInvalidSpec},
		{"Space", ErrInvalidSpec},
		{"escape", ErrInvalidSpec},
		{"f1", ErrInvalidSpec},
		{"C-", ErrInvalidSpec},
		{"A-", ErrInvalidSpec},
		{"c-x", ErrInvalidSpec},
		{"Ctrl+S", ErrInvalidSpec},
		{"jk", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseSpec(tt.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestMustParseSpecPanics(t *testing.T) {
	assert.Equal(t, Ctrl('x'), MustParseSpec("C-x"))
	assert.Panics(t, func() { MustParseSpec("nope") })
}

func TestFormatSpec(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Named(CodeEsc), "esc"},
		{Named(CodePageDown), "pgdn"},
		{Named(CodeDelete), "del"},
		{Char(' '), "space"},
		{Char('\n'), "enter"},
		{Char('\t'), "tab"},
		{Char('j'), "j"},
		{Ctrl('c'), "C-c"},
		{Alt('P'), "A-P"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, ok := FormatSpec(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)

			back, err := ParseSpec(got)
			require.NoError(t, err)
			assert.Equal(t, tt.key, back)
		})
	}
}

func TestFormatSpecUnsupported(t *testing.T) {
	unsupported := []Key{
		F(1),
		Named(CodeHome),
		Named(CodeInsert),
		{Code: CodeRune, Rune: 'x', Mod: ModCtrl | ModAlt},
		Ctrl(' '),
		Alt('\t'),
		Char('\v'),
		Char('\u00a0'),
	}
	for _, k := range unsupported {
		_, ok := FormatSpec(k)
		assert.False(t, ok, "FormatSpec(%s)", k)
	}
}
