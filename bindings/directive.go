// This file is part of Controlmapper.
//
// Controlmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Controlmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Controlmapper.  If not, see <https://www.gnu.org/licenses/>.

package bindings

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/curated"
	"github.com/jetsetilly/controlmapper/keys"
)

// Sentinal errors returned by ParseDirective().
const (
	NotDirective   = "bindings: not a control directive"
	UnknownControl = "bindings: control '%s' unknown"
	DirectiveUsage = "bindings: %s <controlname> <keyname> [<2nd keyname>]: set controls for player %d"
)

// the commands recognised by ParseDirective()
const (
	cmdPlayerOne = "setcontrol"
	cmdPlayerTwo = "setcontrol2"
)

// Directive is a single binding instruction, as found in a saved
// configuration.
type Directive struct {
	Player  int
	Control controls.Control
	Keys    [2]keys.Key

	// the number of arguments in the directive, including the command name
	Args int
}

func (d Directive) command() string {
	if d.Player == PlayerTwo {
		return cmdPlayerTwo
	}
	return cmdPlayerOne
}

// String returns the directive in the form used in saved configurations. The
// second key is omitted if it is the Null key.
func (d Directive) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s \"%s\" \"%s\"", d.command(), d.Control.Name(), keys.Name(d.Keys[0])))
	if d.Keys[1] != keys.Null {
		s.WriteString(fmt.Sprintf(" \"%s\"", keys.Name(d.Keys[1])))
	}
	return s.String()
}

// tokenise splits a line into whitespace separated tokens. Double quotes
// group text containing whitespace into a single token. Everything following
// a double slash outside of quotes is ignored.
func tokenise(line string) []string {
	var toks []string
	var tok strings.Builder
	var inToken bool
	var quoted bool

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quoted:
			if c == '"' {
				quoted = false
				toks = append(toks, tok.String())
				tok.Reset()
				inToken = false
			} else {
				tok.WriteByte(c)
			}
		case c == '"':
			if inToken {
				toks = append(toks, tok.String())
				tok.Reset()
			}
			quoted = true
			inToken = true
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			i = len(line)
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			if inToken {
				toks = append(toks, tok.String())
				tok.Reset()
				inToken = false
			}
		default:
			tok.WriteByte(c)
			inToken = true
		}
	}

	// an unterminated quote still produces a token
	if inToken {
		toks = append(toks, tok.String())
	}

	return toks
}

// ParseDirective parses a single line of a saved configuration. Lines that
// are not binding directives return the NotDirective error.
func ParseDirective(line string) (Directive, error) {
	toks := tokenise(line)
	if len(toks) == 0 {
		return Directive{}, curated.Errorf(NotDirective)
	}

	var d Directive
	switch strings.ToLower(toks[0]) {
	case cmdPlayerOne:
		d.Player = PlayerOne
	case cmdPlayerTwo:
		d.Player = PlayerTwo
	default:
		return Directive{}, curated.Errorf(NotDirective)
	}

	d.Args = len(toks)
	if d.Args != 3 && d.Args != 4 {
		return Directive{}, curated.Errorf(DirectiveUsage, d.command(), d.Player+1)
	}

	var ok bool
	d.Control, ok = controls.Lookup(toks[1])
	if !ok {
		return Directive{}, curated.Errorf(UnknownControl, toks[1])
	}

	d.Keys[0] = keys.Parse(toks[2])
	if d.Args == 4 {
		d.Keys[1] = keys.Parse(toks[3])
	}

	return d, nil
}

// Apply the directive to the table. The version is the version of the
// configuration the directive was read from. See FilterKeyByVersion() for
// how the version affects the keys that are bound.
//
// The primary key is bound with the eviction rules of the table's policy.
// The secondary key is stored without eviction and is dropped if it is the
// same as the primary key.
func (t *Table) Apply(d Directive, version int) {
	if !d.Control.Valid() {
		return
	}

	player := d.Player & 1
	c := d.Control
	k1, k2 := d.Keys[0], d.Keys[1]
	nested := false

	key := t.FilterKeyByVersion(c, 0, player, &k1, &k2, &nested, version)
	if key >= 0 {
		t.CheckDoubleUsage(key, true)

		// the primary key was refused so try again with the secondary key
		if key == keys.Null && k2 != keys.Null {
			k1 = k2
			k2 = keys.Null
			key = t.FilterKeyByVersion(c, 0, player, &k1, &k2, &nested, version)
			if key >= 0 {
				t.CheckDoubleUsage(key, true)
			}
		}
	}
	if key >= 0 {
		t.players[player][c][0] = key
	}

	if k2 == keys.Null {
		t.players[player][c][1] = keys.Null
		return
	}

	key = t.FilterKeyByVersion(c, 1, player, &k1, &k2, &nested, version)
	if key >= 0 {
		if key == t.players[player][c][0] {
			t.players[player][c][1] = keys.Null
		} else {
			t.players[player][c][1] = key
		}
	}
}
