package jsfmt

import "strings"

// printer owns the output buffer, indentation, mode stack, and the
// handful of contextual flags the emission rules read. It mutates
// itself one token at a time; nothing outside this file writes to
// output.
type printer struct {
	output strings.Builder

	indentUnit  string
	indentLevel int

	modes *modeStack

	lastTypeVal TokenType
	lastTextVal string
	lastWord    string

	ifLineFlagVal     bool
	varLine           bool
	varLineTainted    bool
	inCase            bool
	doBlockJustClosed bool
}

func newPrinter(opts Options) *printer {
	p := &printer{
		indentUnit:  opts.indentString(),
		indentLevel: opts.IndentLevel,
		modes:       newModeStack(),
		lastTypeVal: TKStartExpr,
		lastTextVal: "",
	}
	return p
}

// lastTokenState implementation, consulted by the Tokenizer.

func (p *printer) lastType() TokenType { return p.lastTypeVal }
func (p *printer) lastText() string    { return p.lastTextVal }
func (p *printer) ifLineFlag() bool    { return p.ifLineFlagVal }
func (p *printer) emitNewline()        { p.printNewline(false) }

// primitives

func (p *printer) printSpace() {
	s := p.output.String()
	if s == "" {
		return
	}
	last := s[len(s)-1]
	if last == ' ' || last == '\n' || last == '\t' {
		return
	}
	p.output.WriteByte(' ')
}

func (p *printer) trimOutput() {
	s := p.output.String()
	end := len(s)
	for end > 0 && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	if end != len(s) {
		p.output.Reset()
		p.output.WriteString(s[:end])
	}
}

func (p *printer) printNewline(ignoreRepeat bool) {
	p.ifLineFlagVal = false

	p.trimOutput()
	s := p.output.String()
	if s != "" && !(ignoreRepeat && strings.HasSuffix(s, "\n")) {
		p.output.WriteByte('\n')
	}
	p.writeIndent()
}

func (p *printer) writeIndent() {
	for i := 0; i < p.indentLevel; i++ {
		p.output.WriteString(p.indentUnit)
	}
}

func (p *printer) printToken(text string) {
	p.output.WriteString(text)
}

func (p *printer) indent() {
	p.indentLevel++
}

func (p *printer) unindent() {
	if p.indentLevel > 0 {
		p.indentLevel--
	}
}

// removeIndent strips one trailing indent unit from the output, used
// when a case/default label lines up with its enclosing switch rather
// than nesting one level deeper.
func (p *printer) removeIndent() {
	s := p.output.String()
	if strings.HasSuffix(s, p.indentUnit) && p.indentUnit != "" {
		p.output.Reset()
		p.output.WriteString(s[:len(s)-len(p.indentUnit)])
	}
}

// result returns the accumulated output. Idempotent: the printer is
// never mutated after Format calls it.
func (p *printer) result() string {
	return p.output.String()
}

// handle dispatches a single token to its per-type emission rule, then
// records it as the new last-emitted token.
func (p *printer) handle(tok Token) {
	switch tok.Type {
	case TKStartExpr:
		p.handleStartExpr(tok)
	case TKEndExpr:
		p.handleEndExpr(tok)
	case TKStartBlock:
		p.handleStartBlock(tok)
	case TKEndBlock:
		p.handleEndBlock(tok)
	case TKWord:
		p.handleWord(tok)
	case TKSemicolon:
		p.handleSemicolon(tok)
	case TKString:
		p.handleString(tok)
	case TKOperator:
		p.handleOperator(tok)
	case TKBlockComment:
		p.handleBlockComment(tok)
	case TKComment:
		p.handleComment(tok)
	case TKUnknown:
		p.handleUnknown(tok)
	}

	p.lastTypeVal = tok.Type
	p.lastTextVal = tok.Text
}

func (p *printer) handleStartExpr(tok Token) {
	p.modes.push(ModeExpression)

	if p.lastTextVal == ";" || p.lastTypeVal == TKStartBlock {
		p.printNewline(false)
	} else if p.lastTypeVal == TKEndExpr || p.lastTypeVal == TKStartExpr {
		p.printNewline(true)
	}

	if p.lastTypeVal != TKWord && p.lastTypeVal != TKOperator {
		p.printSpace()
	}
	if isLineStarter(p.lastWord) {
		p.printSpace()
	}

	p.printToken(tok.Text)
}

func (p *printer) handleEndExpr(tok Token) {
	p.printToken(tok.Text)
	p.modes.pop()
}

func (p *printer) handleStartBlock(tok Token) {
	if p.lastWord == "do" {
		p.modes.push(ModeDoBlock)
	} else {
		p.modes.push(ModeBlock)
	}

	if p.lastTypeVal != TKOperator && p.lastTypeVal != TKStartExpr {
		if p.lastTypeVal == TKStartBlock {
			p.printNewline(false)
		} else {
			p.printSpace()
		}
	}

	p.printToken(tok.Text)
	p.indentLevel++
}

func (p *printer) handleEndBlock(tok Token) {
	if p.lastTypeVal == TKStartBlock {
		p.trimOutput()
		p.unindent()
	} else {
		p.unindent()
		p.printNewline(false)
	}

	p.printToken(tok.Text)
	wasDoBlock := p.modes.pop()
	p.doBlockJustClosed = wasDoBlock
}

func (p *printer) handleWord(tok Token) {
	word := tok.Text

	if p.doBlockJustClosed {
		p.printSpace()
		p.printToken(word)
		p.printSpace()
		p.doBlockJustClosed = false
		p.finishWord(word)
		return
	}

	if word == "case" || word == "default" {
		if p.lastTextVal == ":" {
			p.removeIndent()
		} else {
			p.unindent()
			p.printNewline(false)
			p.indent()
		}
		p.printToken(word)
		p.inCase = true
		p.finishWord(word)
		return
	}

	const (
		prefixNone = iota
		prefixNewline
		prefixSpace
	)

	prefix := prefixNone
	spaceEmittedEarly := false

	switch {
	case p.lastTypeVal == TKEndBlock:
		if word == "else" || word == "catch" || word == "finally" {
			prefix = prefixSpace
			p.printSpace()
			spaceEmittedEarly = true
		} else {
			prefix = prefixNewline
		}
	case p.lastTypeVal == TKSemicolon:
		if p.modes.current() == ModeBlock {
			prefix = prefixNewline
		} else {
			prefix = prefixSpace
		}
	case p.lastTypeVal == TKString:
		prefix = prefixNewline
	case p.lastTypeVal == TKWord:
		prefix = prefixSpace
	case p.lastTypeVal == TKStartBlock:
		prefix = prefixNewline
	case p.lastTypeVal == TKEndExpr:
		p.printSpace()
		prefix = prefixNewline
		spaceEmittedEarly = true
	}

	switch {
	case p.lastTypeVal != TKEndBlock && (word == "else" || word == "catch" || word == "finally"):
		p.printNewline(false)
	case isLineStarter(word) || prefix == prefixNewline:
		switch {
		case p.lastTextVal == "else":
			p.printSpace()
		case (p.lastTypeVal == TKStartExpr || p.lastTextVal == "=" || p.lastTextVal == ",") && word == "function":
			// no separator
		case p.lastTypeVal == TKWord && (p.lastTextVal == "return" || p.lastTextVal == "throw"):
			p.printSpace()
		case p.lastTypeVal != TKEndExpr:
			if (p.lastTypeVal == TKStartExpr && word == "var") || p.lastTextVal == ":" {
				// nothing
			} else if word == "if" && p.lastWord == "else" {
				p.printSpace()
			} else {
				p.printNewline(false)
			}
		default: // last_type == TK_END_EXPR
			if isLineStarter(word) && p.lastTextVal != ")" {
				p.printNewline(false)
			}
		}
	case prefix == prefixSpace && !spaceEmittedEarly:
		p.printSpace()
	}

	p.printToken(word)
	p.finishWord(word)
}

// finishWord applies the bookkeeping common to every TK_WORD emission:
// last_word tracking and the var/if/else flags.
func (p *printer) finishWord(word string) {
	p.lastWord = word
	if word == "var" {
		p.varLine = true
		p.varLineTainted = false
	}
	if word == "if" || word == "else" {
		p.ifLineFlagVal = true
	}
}

func (p *printer) handleSemicolon(tok Token) {
	p.printToken(tok.Text)
	p.varLine = false
}

func (p *printer) handleString(tok Token) {
	switch p.lastTypeVal {
	case TKStartBlock, TKEndBlock, TKSemicolon:
		p.printNewline(false)
	case TKWord:
		p.printSpace()
	}
	p.printToken(tok.Text)
}

func (p *printer) handleOperator(tok Token) {
	text := tok.Text
	startDelim, endDelim := true, true

	if p.varLine && text != "," {
		p.varLineTainted = true
		if text == ":" {
			p.varLine = false
		}
	}
	if p.varLine && text == "," && p.modes.current() == ModeExpression {
		p.varLineTainted = false
	}

	if text == ":" && p.inCase {
		p.printToken(":")
		p.printNewline(false)
		p.inCase = false
		return
	}

	if text == "::" {
		p.printToken(text)
		return
	}

	if text == "," {
		switch {
		case p.varLine:
			if p.varLineTainted {
				p.printToken(",")
				p.printNewline(false)
				p.varLineTainted = false
			} else {
				p.printToken(",")
				p.printSpace()
			}
		case p.lastTypeVal == TKEndBlock:
			p.printToken(",")
			p.printNewline(false)
		case p.modes.current() == ModeBlock:
			p.printToken(",")
			p.printNewline(false)
		default:
			p.printToken(",")
			p.printSpace()
		}
		return
	}

	switch {
	case text == "++" || text == "--":
		if p.lastTextVal == ";" {
			if p.modes.current() == ModeBlock {
				p.printNewline(false)
			}
			startDelim, endDelim = true, false
		} else {
			if p.lastTextVal == "{" {
				p.printNewline(false)
			}
			startDelim, endDelim = false, false
		}
	case (text == "!" || text == "+" || text == "-") && (p.lastTextVal == "return" || p.lastTextVal == "case"):
		startDelim, endDelim = true, false
	case (text == "!" || text == "+" || text == "-") && p.lastTypeVal == TKStartExpr:
		startDelim, endDelim = false, false
	case p.lastTypeVal == TKOperator:
		startDelim, endDelim = false, false
	case p.lastTypeVal == TKEndExpr:
		startDelim, endDelim = true, true
	case text == ".":
		startDelim, endDelim = false, false
	case text == ":":
		startDelim = p.isTernaryOp()
	}

	if startDelim {
		p.printSpace()
	}
	p.printToken(text)
	if endDelim {
		p.printSpace()
	}
}

func (p *printer) handleBlockComment(tok Token) {
	p.printNewline(false)
	p.printToken(tok.Text)
	p.printNewline(false)
}

func (p *printer) handleComment(tok Token) {
	p.printSpace()
	p.printToken(tok.Text)
	p.printNewline(false)
}

func (p *printer) handleUnknown(tok Token) {
	if p.lastTextVal != tok.Text {
		if p.lastTypeVal == TKSemicolon || p.lastTypeVal == TKStartBlock {
			p.printNewline(false)
		}
		p.printToken(tok.Text)
	}
}

// isTernaryOp scans the output backward to decide whether a ':' closes a
// ternary expression (leading space) or is an object-literal/label colon
// (no leading space). Trailing whitespace/indent characters are skipped.
func (p *printer) isTernaryOp() bool {
	s := p.output.String()
	level := 0
	colonCount := 0

	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case ':':
			if level == 0 {
				colonCount++
			}
		case '?':
			if level == 0 {
				if colonCount == 0 {
					return true
				}
				colonCount--
			}
		case '{':
			if level == 0 {
				return false
			}
			level--
		case '(', '[':
			level--
		case ')', ']', '}':
			level++
		}
	}
	return false
}
