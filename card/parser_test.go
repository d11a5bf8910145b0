package card

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParserLine(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line    string
		kind    Kind
		args    []string
		comment string
	}){
		{"+", ADD, nil, ""},
		{"-", SUBTRACT, nil, ""},
		{"*", MULTIPLY, nil, ""},
		{"×", MULTIPLY, nil, ""},
		{"/", DIVIDE, nil, ""},
		{"÷ quotient", DIVIDE, nil, "quotient"},
		{"N0 10000", NUMBER, []string{"0", "10000"}, ""},
		{"N001 -3.14159 pi, roughly", NUMBER, []string{"001", "-3.14159"}, "pi, roughly"},
		{"N7 +.5", NUMBER, []string{"7", "+.5"}, ""},
		{"L1", LOAD, []string{"1"}, ""},
		{"L12'", LOADPRIME, []string{"12"}, ""},
		{"Z3", ZLOAD, []string{"3"}, ""},
		{"Z3'", ZLOADPRIME, []string{"3"}, ""},
		{"S2", STORE, []string{"2"}, ""},
		{"S2' quotient", STOREPRIME, []string{"2"}, "quotient"},
		{"<", LSHIFT, nil, ""},
		{">", RSHIFT, nil, ""},
		{"<10", LSHIFTN, []string{"10"}, ""},
		{">3", RSHIFTN, []string{"3"}, ""},
		{"CF?4", CFORWARD, []string{"4"}, ""},
		{"CF+1", FORWARD, []string{"1"}, ""},
		{"CB?2", CBACKWARD, []string{"2"}, ""},
		{"CB+5", BACKWARD, []string{"5"}, ""},
		{"(", BACKSTART, nil, ""},
		{"(? while run up", CBACKSTART, nil, "while run up"},
		{")", BACKEND, nil, ""},
		{"{", FORWARDSTART, nil, ""},
		{"{?", CFORWARDSTART, nil, ""},
		{"}", FORWARDEND, nil, ""},
		{"}{", ALTERNATION, nil, ""},
		{"B", BELL, nil, ""},
		{"H", HALT, nil, ""},
		{"P", PRINT, nil, ""},
		{"D+", DRAW, nil, ""},
		{"D-", MOVE, nil, ""},
		{"DX", SETX, nil, ""},
		{"DY", SETY, nil, ""},
		{"T1", TRACEON, nil, ""},
		{"T0", TRACEOFF, nil, ""},
		{"A include cards lib/sqrt.ae", INCLUDE, []string{"lib/sqrt.ae"}, ""},
		{"A include from library cards for sqrt", INCLUDELIB, []string{"sqrt"}, ""},
		{"A set decimal places to 5", DECIMALEXPAND, []string{"5"}, ""},
		{"A set decimal places to -2", DECIMALEXPAND, []string{"-2"}, ""},
		{"A write numbers as 9,999", WRITEPICTURE, []string{"9,999"}, ""},
		{"A write numbers with decimal point", WRITEDECIMAL, nil, ""},
		{"A write in rows", WRITEROWS, nil, ""},
		{"A write in columns", WRITECOLUMNS, nil, ""},
		{"A write new line", NEWLINE, nil, ""},
		{"A write annotation x = ", ANNOTATE, []string{"x = "}, ""},
		{"", COMMENT, []string{""}, ""},
		{". a comment", COMMENT, []string{". a comment"}, ""},
		{"  indented", COMMENT, []string{"  indented"}, ""},
	}

	p := &Parser{}
	for _, entry := range table {
		c, err := p.ParseLine(entry.line, 1)
		assert.NoError(err, entry.line)
		assert.Equal(entry.kind, c.Kind, entry.line)
		assert.Equal(len(entry.args), len(c.Args), entry.line)
		for n, arg := range entry.args {
			assert.Equal(arg, c.Arg(n), entry.line)
		}
		assert.Equal(entry.comment, c.Comment, entry.line)
		assert.Equal(c.Kind.Arity(), len(c.Args), entry.line)
	}
}

func TestParserErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"Q", ErrCardUnknown},
		{"N", ErrAddressInvalid},
		{"Nx 3", ErrAddressInvalid},
		{"N1", ErrArgumentMissing},
		{"N1 1.2.3", ErrParseNumber("1.2.3")},
		{"N1 abc", ErrParseNumber("abc")},
		{"L", ErrAddressInvalid},
		{"S1''", ErrAddressInvalid},
		{"CF?", ErrCountInvalid},
		{"CB+x", ErrCountInvalid},
		{"<x", ErrCountInvalid},
		{"A make tea", ErrAttendantUnknown},
		{"A include cards ", ErrArgumentMissing},
		{"A set decimal places to 1.5", ErrParseNumber("1.5")},
	}

	p := &Parser{}
	for _, entry := range table {
		_, err := p.ParseLine(entry.line, 1)
		assert.ErrorIs(err, entry.err, entry.line)
	}
}

func TestParserExpression(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}
	assert.NoError(p.Predefine("COLUMN", "0x10"))
	assert.Error(p.Predefine("BAD", "ten"))

	c, err := p.ParseLine("N$(COLUMN + 1) $(10*10*10)", 1)
	assert.NoError(err)
	assert.Equal(NUMBER, c.Kind)
	assert.Equal([]string{"17", "1000"}, c.Args)

	c, err = p.ParseLine("L$(LINENO * 2)", 21)
	assert.NoError(err)
	assert.Equal([]string{"42"}, c.Args)

	// Beyond 64 bits.
	c, err = p.ParseLine("N0 $(100000000000 * 100000000000 * 100000000000)", 1)
	assert.NoError(err)
	assert.Equal("1000000000000000000000000000000000", c.Arg(1))

	_, err = p.ParseLine("N0 $(\"text\")", 1)
	var perr ErrParseExpression
	assert.True(errors.As(err, &perr))

	_, err = p.ParseLine("N0 $(UNDEFINED)", 1)
	assert.Error(err)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		". divide",
		"N0 10000",
		"N1 3",
		"/",
		"L0",
		"L1",
		"S2'",
		"P",
	}

	p := &Parser{}
	cards, err := p.Parse("divide.ae", strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(len(program), len(cards))
	for n, c := range cards {
		assert.Equal("divide.ae", c.Source)
		assert.Equal(n+1, c.LineNo)
	}
	assert.Equal("divide.ae:4", cards[3].Position())

	program = append(program, "X bad")
	_, err = p.Parse("divide.ae", strings.NewReader(strings.Join(program, "\n")))
	var serr *ErrSyntax
	assert.True(errors.As(err, &serr))
	if serr != nil {
		assert.Equal(9, serr.LineNo)
		assert.Equal("X bad", serr.Line)
		assert.ErrorIs(err, ErrCardUnknown)
	}
}

func TestCardString(t *testing.T) {
	assert := assert.New(t)

	lines := []string{
		"+", "-", "*", "/", "<", ">", "<5", ">12",
		"N3 -1.25", "L1", "L1'", "Z4", "Z4'", "S9", "S9'",
		"CF?2", "CF+3", "CB?4", "CB+5",
		"(", "(?", ")", "{", "{?", "}", "}{",
		"B", "H", "P", "D+", "D-", "DX", "DY", "T1", "T0",
		"A include cards prog.ae",
		"A include from library cards for cube",
		"A set decimal places to +2",
		"A write numbers as ±9.99",
		"A write numbers with decimal point",
		"A write in rows",
		"A write in columns",
		"A write new line",
		"A write annotation Total: ",
		". comment",
		"L7 load seven",
		"",
	}

	p := &Parser{}
	for _, line := range lines {
		c, err := p.ParseLine(line, 1)
		assert.NoError(err, line)
		assert.Equal(line, c.String())

		again, err := p.ParseLine(c.String(), 1)
		assert.NoError(err, line)
		assert.Equal(c, again, line)
	}

	assert.Equal(". generated", MakeComment("generated").String())
}

func TestMake(t *testing.T) {
	assert := assert.New(t)

	c := Make(NUMBER, "1", "2")
	assert.Equal(NUMBER, c.Kind)
	assert.Equal("-", c.Position())

	assert.Panics(func() { Make(NUMBER, "1") })
	assert.Panics(func() { Make(Kind(-1)) })

	where := Card{Source: "x.ae", LineNo: 3}
	moved := Make(FORWARD, "2").At(where)
	assert.Equal("x.ae:3", moved.Position())
	assert.Equal("", c.Arg(5))
}

func TestKind(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("CBACKSTART", CBACKSTART.String())
	assert.Equal("Kind(99)", Kind(99).String())

	assert.True(LOAD.Executable())
	assert.True(LSHIFTN.Executable())
	assert.True(COMMENT.Executable())
	for _, kind := range []Kind{LSHIFT, RSHIFT, WRITEDECIMAL, DECIMALEXPAND, INCLUDE, INCLUDELIB,
		BACKSTART, CBACKSTART, BACKEND, FORWARDSTART, CFORWARDSTART, FORWARDEND, ALTERNATION} {
		assert.False(kind.Executable(), kind.String())
	}
	assert.False(Kind(99).Executable())

	assert.True(STOREPRIME.Prime())
	assert.False(STORE.Prime())
	assert.Equal(2, NUMBER.Arity())
	assert.Equal(0, Kind(99).Arity())
}
