package jsfmt

// The helpers below expose the tokenizer standalone, independent of the
// printer, for callers that want to inspect a source file's token stream
// rather than reformat it. They drive a Tokenizer against a minimal
// lastTokenState that only tracks what the tokenizer itself reads back
// (last type/text, if_line_flag) — none of the output-shaping logic the
// printer owns.

type trackingState struct {
	typ           TokenType
	text          string
	ifLineFlagVal bool
}

func (s *trackingState) lastType() TokenType { return s.typ }
func (s *trackingState) lastText() string    { return s.text }
func (s *trackingState) ifLineFlag() bool    { return s.ifLineFlagVal }
func (s *trackingState) emitNewline()        {}

func (s *trackingState) record(t Token) {
	if t.Type == TKWord && (t.Text == "if" || t.Text == "else") {
		s.ifLineFlagVal = true
	} else if t.Type != TKOperator {
		s.ifLineFlagVal = false
	}
	s.typ, s.text = t.Type, t.Text
}

// TokenizeAll tokenizes the entire input and returns every token,
// including the trailing TK_EOF.
func TokenizeAll(source string) []Token {
	state := &trackingState{typ: TKStartExpr}
	tok := newTokenizer(source, false, state)
	tokens := []Token{}
	for {
		t := tok.Next()
		tokens = append(tokens, t)
		state.record(t)
		if t.Type == TKEOF {
			break
		}
	}
	return tokens
}

// TokenizeFiltered tokenizes the input and drops comment tokens.
func TokenizeFiltered(source string) []Token {
	all := TokenizeAll(source)
	out := make([]Token, 0, len(all))
	for _, t := range all {
		if t.Type == TKComment || t.Type == TKBlockComment {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CountTokens returns the number of tokens of each type in the input.
func CountTokens(source string) map[TokenType]int {
	counts := make(map[TokenType]int)
	for _, t := range TokenizeAll(source) {
		counts[t.Type]++
	}
	return counts
}

// FindTokens returns all tokens matching any of the given types.
func FindTokens(source string, types ...TokenType) []Token {
	want := make(map[TokenType]bool, len(types))
	for _, t := range types {
		want[t] = true
	}

	var out []Token
	for _, t := range TokenizeAll(source) {
		if want[t.Type] {
			out = append(out, t)
		}
	}
	return out
}

// HasToken reports whether source contains at least one token of type t.
func HasToken(source string, t TokenType) bool {
	state := &trackingState{typ: TKStartExpr}
	tok := newTokenizer(source, false, state)
	for {
		next := tok.Next()
		if next.Type == t {
			return true
		}
		state.record(next)
		if next.Type == TKEOF {
			return false
		}
	}
}

// ExtractStrings returns the text of every string/regex literal found in
// the input, quotes and all.
func ExtractStrings(source string) []string {
	tokens := FindTokens(source, TKString)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// ExtractFunctionCalls returns identifiers that appear immediately
// before an opening parenthesis, a heuristic for likely function calls.
func ExtractFunctionCalls(source string) []string {
	all := TokenizeFiltered(source)
	var calls []string
	for i := 0; i < len(all)-1; i++ {
		if all[i].Type == TKWord && all[i+1].Type == TKStartExpr && all[i+1].Text == "(" {
			calls = append(calls, all[i].Text)
		}
	}
	return calls
}
