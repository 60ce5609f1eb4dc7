package level

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadFormula is returned for object names that start with "f." but are
// not a well-formed call such as f.door(1, "red").
var ErrBadFormula = errors.New("bad formula")

// formulaParser reads `name(arg, "quoted arg", ...)`.
type formulaParser struct {
	src string
	pos int
}

func (p *formulaParser) head() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *formulaParser) accept(c byte) bool {
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *formulaParser) skipSpaces() {
	for p.accept(' ') {
	}
}

func (p *formulaParser) fail(format string, args ...any) error {
	return fmt.Errorf("%w: %q at %d: %s", ErrBadFormula, p.src, p.pos, fmt.Sprintf(format, args...))
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// identifier reads a name. Arguments may also contain dots so that bare
// numbers like 0.5 need no quotes.
func (p *formulaParser) identifier(allowDot bool) string {
	start := p.pos
	for p.pos < len(p.src) && (isIdentChar(p.src[p.pos]) || allowDot && p.src[p.pos] == '.') {
		p.pos++
	}
	return p.src[start:p.pos]
}

// duplicateSuffix accepts the ".001" suffix editors append to copied objects.
func (p *formulaParser) duplicateSuffix() bool {
	if !p.accept('.') {
		return false
	}
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	return p.pos > start
}

func (p *formulaParser) quoted() (string, error) {
	start := p.pos
	for p.pos < len(p.src) {
		if p.src[p.pos] == '"' {
			s := p.src[start:p.pos]
			p.pos++
			return s, nil
		}
		p.pos++
	}
	return "", p.fail("unterminated string")
}

func (p *formulaParser) argument() (string, error) {
	p.skipSpaces()
	if p.accept('"') {
		return p.quoted()
	}
	arg := p.identifier(true)
	if arg == "" {
		return "", p.fail("expected argument")
	}
	return arg, nil
}

// parseCall splits a formula into its name followed by its arguments.
func parseCall(src string) ([]string, error) {
	p := &formulaParser{src: src}

	name := p.identifier(false)
	if name == "" {
		return nil, p.fail("expected name")
	}
	words := []string{name}

	if p.accept('(') {
		first := true
		for {
			p.skipSpaces()
			if p.accept(')') {
				break
			}
			if p.pos >= len(p.src) {
				return nil, p.fail("expected ')'")
			}
			if !first && !p.accept(',') {
				return nil, p.fail("expected ','")
			}
			arg, err := p.argument()
			if err != nil {
				return nil, err
			}
			words = append(words, arg)
			first = false
		}
	}

	if p.head() == '.' && !p.duplicateSuffix() {
		return nil, p.fail("bad suffix")
	}
	if p.head() != 0 {
		return nil, p.fail("trailing characters")
	}
	return words, nil
}

// parseFormula returns the thing type and its positional config.
func parseFormula(src string) (string, Props, error) {
	words, err := parseCall(src)
	if err != nil {
		return "", nil, err
	}
	config := make(Props, len(words)-1)
	for i, w := range words[1:] {
		config[strconv.Itoa(i)] = w
	}
	return words[0], config, nil
}
