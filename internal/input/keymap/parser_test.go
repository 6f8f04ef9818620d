package keymap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/voidkeys/internal/input/action"
	"github.com/dshills/voidkeys/internal/input/key"
)

func TestParseOverridesDefault(t *testing.T) {
	base := Default()

	km, err := Parse("quit: C-c", base)
	require.NoError(t, err)

	got, ok := km.Lookup(action.Normal, key.Ctrl('c'))
	require.True(t, ok)
	assert.Equal(t, action.Of(action.Quit), got)
}

func TestParseReplacesConflictingDefault(t *testing.T) {
	km, err := Parse("save: C-c\nauto_arrange: C-p", Default())
	require.NoError(t, err)

	got, _ := km.Lookup(action.Normal, key.Ctrl('c'))
	assert.Equal(t, action.Of(action.Save), got)

	got, _ = km.Lookup(action.Normal, key.Ctrl('p'))
	assert.Equal(t, action.Of(action.AutoArrange), got)

	// Old Save binding stays
	got, _ = km.Lookup(action.Normal, key.Ctrl('x'))
	assert.Equal(t, action.Of(action.Save), got)
}

func TestParseLeavesBaseUntouched(t *testing.T) {
	base := Default()

	_, err := Parse("save: C-c", base)
	require.NoError(t, err)

	got, _ := base.Lookup(action.Normal, key.Ctrl('c'))
	assert.Equal(t, action.Of(action.Quit), got)
}

func TestParseSkipsBlankAndComments(t *testing.T) {
	km, err := Parse("\n#comment\nsave: C-s", New())
	require.NoError(t, err)
	require.Equal(t, 1, km.Len())

	got, ok := km.Lookup(action.Normal, key.Ctrl('s'))
	require.True(t, ok)
	assert.Equal(t, action.Of(action.Save), got)

	// Line numbers keep counting skipped lines
	_, err = Parse("\n#comment\nbogus: x", New())
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
}

func TestParseInsertModeAction(t *testing.T) {
	km, err := Parse("erase: C-h", Default())
	require.NoError(t, err)

	got, ok := km.Lookup(action.Insert, key.Ctrl('h'))
	require.True(t, ok)
	assert.Equal(t, action.Of(action.EraseChar), got)

	// Normal mode Ctrl-h is untouched
	got, _ = km.Lookup(action.Normal, key.Ctrl('h'))
	assert.Equal(t, action.Of(action.ToggleHideCompleted), got)
}

func TestParseWhitespaceAndLineEndings(t *testing.T) {
	text := "  select_up  :   k  \r\n\t\r\n   \ntoggle_collapsed:space\r\n"
	km, err := Parse(text, New())
	require.NoError(t, err)

	got, ok := km.Lookup(action.Normal, key.Char('k'))
	require.True(t, ok)
	assert.Equal(t, action.Of(action.SelectUp), got)

	got, ok = km.Lookup(action.Normal, key.Char(' '))
	require.True(t, ok)
	assert.Equal(t, action.Of(action.ToggleCollapsed), got)
}

func TestParseAllKeyForms(t *testing.T) {
	text := `
# every key form
scroll_up: pgup
scroll_down: pgdn
delete: del
select_up: up
select_down: down
select_left: left
select_right: right
create_child: tab
execute: enter
unselect: esc
select_parent: A-p
`
	km, err := Parse(text, New())
	require.NoError(t, err)
	assert.Equal(t, 11, km.Len())

	got, _ := km.Lookup(action.Normal, key.Char('\n'))
	assert.Equal(t, action.Of(action.ExecSelected), got)

	got, _ = km.Lookup(action.Normal, key.Alt('p'))
	assert.Equal(t, action.Of(action.SelectParent), got)

	got, _ = km.Lookup(action.Normal, key.Named(key.CodeEsc))
	assert.Equal(t, action.Of(action.Unselect), got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLine int
		wantErr  error
		wantText string
	}{
		{
			name:     "unknown action",
			text:     "bogus_action: k",
			wantLine: 1,
			wantErr:  ErrUnknownAction,
			wantText: "bogus_action: k",
		},
		{
			name:     "no colon",
			text:     "quit C-c",
			wantLine: 1,
			wantErr:  ErrMalformedLine,
			wantText: "quit C-c",
		},
		{
			name:     "two colons",
			text:     "save: C-s\nenter_command: :",
			wantLine: 2,
			wantErr:  ErrMalformedLine,
			wantText: "enter_command: :",
		},
		{
			name:     "unknown key",
			text:     "# header\nquit: Ctrl+C",
			wantLine: 2,
			wantErr:  ErrUnknownKey,
			wantText: "quit: Ctrl+C",
		},
		{
			name:     "empty key",
			text:     "quit:",
			wantLine: 1,
			wantErr:  ErrUnknownKey,
			wantText: "quit:",
		},
		{
			name:     "case sensitive action",
			text:     "Quit: C-c",
			wantLine: 1,
			wantErr:  ErrUnknownAction,
			wantText: "Quit: C-c",
		},
		{
			name:     "indented comment",
			text:     "  # not a comment",
			wantLine: 1,
			wantErr:  ErrMalformedLine,
			wantText: "  # not a comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, err := Parse(tt.text, Default())
			require.Error(t, err)
			assert.Nil(t, km)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantLine, pe.Line)
			assert.Equal(t, tt.wantText, pe.Text)
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	_, err := Parse("quit C-c", New())
	require.Error(t, err)
	assert.Equal(t, "keyfile line 1: expected exactly one ':' separator: quit C-c", err.Error())

	_, err = Parse("save: C-s\n\nenter_command: :", New())
	require.Error(t, err)
	assert.Equal(t, "keyfile line 3: expected exactly one ':' separator: enter_command: :", err.Error())

	_, err = Parse("bogus_action: k", New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "bogus_action: k")
	assert.Contains(t, err.Error(), `unknown action "bogus_action"`)
}

func TestParseStopsAtFirstError(t *testing.T) {
	base := Default()
	km, err := Parse("save: C-s\nnope: x\nquit: q", base)
	require.Error(t, err)
	assert.Nil(t, km)

	_, ok := base.Lookup(action.Normal, key.Ctrl('s'))
	assert.False(t, ok)
}
