package jsfmt

import "strings"

const (
	scriptOpenTag  = `<script type="text/javascript">`
	scriptCloseTag = `</script>`
)

// Format reads a JavaScript source string and returns a re-indented,
// re-spaced, semantically equivalent rendering of it. It never errors:
// malformed input is tokenized on a best-effort basis and the formatter
// always returns some output. Format is a pure function of (source,
// opts); it owns no state beyond the single call.
func Format(source string, opts Options) string {
	body, addScriptTags := stripScriptTags(source)

	p := newPrinter(opts)
	tok := newTokenizer(body, opts.PreserveNewlines, p)

	for {
		t := tok.Next()
		if t.Type == TKEOF {
			break
		}
		p.handle(t)
	}

	out := p.result()
	if addScriptTags {
		out = scriptOpenTag + out + scriptCloseTag
	}
	return out
}

// stripScriptTags removes one occurrence each of the opening and closing
// <script type="text/javascript"> envelope, iff both are present, and
// reports whether they were removed so Format can re-wrap the result.
// A partial match (only one of the two substrings present) does not
// trigger stripping, matching the "total length changed" detection test
// in the specification.
func stripScriptTags(source string) (body string, addScriptTags bool) {
	if !strings.Contains(source, scriptOpenTag) || !strings.Contains(source, scriptCloseTag) {
		return source, false
	}

	stripped := strings.Replace(source, scriptOpenTag, "", 1)
	stripped = strings.Replace(stripped, scriptCloseTag, "", 1)

	return stripped, len(stripped) != len(source)
}

// Beautifier is the constructor + result-accessor surface the
// specification describes: build one from a source string and an
// option map, then call Result as many times as you like — it always
// returns the same string, computed once at construction.
type Beautifier struct {
	result string
}

// NewBeautifier constructs a Beautifier, running the full
// tokenize-and-print pass immediately. options may be nil; unrecognized
// keys are ignored and non-conforming values fall back to their
// defaults silently.
func NewBeautifier(source string, options map[string]any) *Beautifier {
	return &Beautifier{result: Format(source, FromMap(options))}
}

// Result returns the beautified source. Idempotent: repeated calls
// return the identical string.
func (b *Beautifier) Result() string {
	return b.result
}

// New is a convenience one-shot form of NewBeautifier(...).Result().
func New(source string, options map[string]any) string {
	return NewBeautifier(source, options).Result()
}
