package card

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// attendantPhrase maps an attendant request to its card kind.
type attendantPhrase struct {
	phrase string
	kind   Kind
}

// Order matters; longer phrases that share a prefix come first.
var attendantPhrases = []attendantPhrase{
	{"include from library cards for ", INCLUDELIB},
	{"include cards ", INCLUDE},
	{"set decimal places to ", DECIMALEXPAND},
	{"write numbers as ", WRITEPICTURE},
	{"write numbers with decimal point", WRITEDECIMAL},
	{"write in rows", WRITEROWS},
	{"write in columns", WRITECOLUMNS},
	{"write new line", NEWLINE},
	{"write annotation ", ANNOTATE},
}

// Single token cards.
var tokenMap = map[string]Kind{
	"+":  ADD,
	"-":  SUBTRACT,
	"*":  MULTIPLY,
	"×":  MULTIPLY,
	"/":  DIVIDE,
	"÷":  DIVIDE,
	"<":  LSHIFT,
	">":  RSHIFT,
	"(":  BACKSTART,
	"(?": CBACKSTART,
	")":  BACKEND,
	"{":  FORWARDSTART,
	"{?": CFORWARDSTART,
	"}":  FORWARDEND,
	"}{": ALTERNATION,
	"B":  BELL,
	"H":  HALT,
	"P":  PRINT,
	"D+": DRAW,
	"D-": MOVE,
	"DX": SETX,
	"DY": SETY,
	"T1": TRACEON,
	"T0": TRACEOFF,
}

// Prefixed count cards.
var countMap = []struct {
	prefix string
	kind   Kind
}{
	{"CF?", CFORWARD},
	{"CF+", FORWARD},
	{"CB?", CBACKWARD},
	{"CB+", BACKWARD},
	{"<", LSHIFTN},
	{">", RSHIFTN},
}

// Store transfer cards, by letter and prime.
var transferMap = map[byte][2]Kind{
	'L': {LOAD, LOADPRIME},
	'Z': {ZLOAD, ZLOADPRIME},
	'S': {STORE, STOREPRIME},
}

var (
	reDigits     = regexp.MustCompile(`^[0-9]+$`)
	reSigned     = regexp.MustCompile(`^[+-]?[0-9]+$`)
	reNumber     = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)$`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
)

// IsNumber returns true if the text is a numeric literal, optionally
// signed and optionally containing a decimal point.
func IsNumber(text string) bool {
	return reNumber.MatchString(text)
}

// Parser converts card notation into cards.
type Parser struct {
	predefine map[string]*big.Int
}

// Predefine defines an integer name usable in $(...) expressions.
func (p *Parser) Predefine(name string, value string) (err error) {
	v, ok := new(big.Int).SetString(value, 0)
	if !ok {
		err = ErrParseNumber(value)
		return
	}

	if p.predefine == nil {
		p.predefine = make(map[string]*big.Int)
	}
	p.predefine[name] = v

	return
}

// evaluate does compile-time $(...) evaluations
func (p *Parser) evaluate(expr string, lineno int) (value *big.Int, err error) {
	thread := starlark.Thread{Name: "card"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
	for name, v := range p.predefine {
		pred[name] = starlark.MakeBigInt(v)
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value = st_int.BigInt()
	return
}

// expand replaces every $(...) in the line with its value.
func (p *Parser) expand(line string, lineno int) (text string, err error) {
	text = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := p.evaluate(str[2:len(str)-1], lineno)
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return value.String()
	})

	return
}

// ParseLine parses a single line of card notation.
func (p *Parser) ParseLine(line string, lineno int) (c Card, err error) {
	line = strings.TrimRight(line, "\r\n")

	if len(line) == 0 || line[0] == '.' || line[0] == ' ' || line[0] == '\t' {
		c = MakeComment(line)
		return
	}

	line, err = p.expand(line, lineno)
	if err != nil {
		return
	}

	if rest, ok := strings.CutPrefix(line, "A "); ok {
		return parseAttendant(rest)
	}

	token, comment, _ := strings.Cut(line, " ")
	comment = strings.TrimSpace(comment)

	defer func() {
		if err == nil {
			c.Comment = comment
		}
	}()

	if kind, ok := tokenMap[token]; ok {
		c = Make(kind)
		return
	}

	for _, cm := range countMap {
		count, ok := strings.CutPrefix(token, cm.prefix)
		if !ok {
			continue
		}
		if !reDigits.MatchString(count) {
			err = fmt.Errorf("%w: '%v'", ErrCountInvalid, count)
			return
		}
		c = Make(cm.kind, count)
		return
	}

	switch token[0] {
	case 'N':
		addr := token[1:]
		if !reDigits.MatchString(addr) {
			err = fmt.Errorf("%w: '%v'", ErrAddressInvalid, addr)
			return
		}
		var value string
		value, comment, _ = strings.Cut(comment, " ")
		comment = strings.TrimSpace(comment)
		if len(value) == 0 {
			err = ErrArgumentMissing
			return
		}
		if !IsNumber(value) {
			err = ErrParseNumber(value)
			return
		}
		c = Make(NUMBER, addr, value)
		return
	case 'L', 'Z', 'S':
		kinds := transferMap[token[0]]
		addr, prime := strings.CutSuffix(token[1:], "'")
		if !reDigits.MatchString(addr) {
			err = fmt.Errorf("%w: '%v'", ErrAddressInvalid, addr)
			return
		}
		kind := kinds[0]
		if prime {
			kind = kinds[1]
		}
		c = Make(kind, addr)
		return
	}

	err = ErrCardUnknown
	return
}

// parseAttendant parses the request text following "A ".
func parseAttendant(request string) (c Card, err error) {
	request = strings.TrimLeft(request, " \t")

	for _, attn := range attendantPhrases {
		if attn.kind.Arity() == 0 {
			if strings.TrimSpace(request) == attn.phrase {
				c = Make(attn.kind)
				return
			}
			continue
		}

		arg, ok := strings.CutPrefix(request, attn.phrase)
		if !ok {
			continue
		}
		if attn.kind != ANNOTATE {
			arg = strings.TrimSpace(arg)
		}
		if len(arg) == 0 {
			err = ErrArgumentMissing
			return
		}
		if attn.kind == DECIMALEXPAND && !reSigned.MatchString(arg) {
			err = ErrParseNumber(arg)
			return
		}
		c = Make(attn.kind, arg)
		return
	}

	err = ErrAttendantUnknown
	return
}

// Parse parses an input stream of card notation. Every card records the
// source name and its line number.
func (p *Parser) Parse(source string, input io.Reader) (cards []Card, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{Source: source, LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		var c Card
		c, err = p.ParseLine(line, lineno)
		if err != nil {
			return
		}
		c.Source = source
		c.LineNo = lineno
		cards = append(cards, c)
	}

	err = scanner.Err()
	return
}
