package jsfmt

import "testing"

func TestTokenizeFilteredDropsComments(t *testing.T) {
	toks := TokenizeFiltered("x; // comment\n/* block */ y;")
	for _, tok := range toks {
		if tok.Type == TKComment || tok.Type == TKBlockComment {
			t.Errorf("TokenizeFiltered should drop comments, found %+v", tok)
		}
	}
}

func TestFindTokens(t *testing.T) {
	toks := FindTokens("var a = 1; var b = 2;", TKSemicolon)
	if len(toks) != 2 {
		t.Fatalf("FindTokens(TKSemicolon) = %d tokens, want 2", len(toks))
	}
}

func TestHasToken(t *testing.T) {
	if !HasToken("var a = /x/;", TKString) {
		t.Error("HasToken(TKString) = false, want true for a regex literal")
	}
	if HasToken("var a = 1;", TKString) {
		t.Error("HasToken(TKString) = true, want false")
	}
}

func TestExtractStrings(t *testing.T) {
	got := ExtractStrings(`var a = "x"; var b = 'y';`)
	if len(got) != 2 || got[0] != `"x"` || got[1] != `'y'` {
		t.Errorf("ExtractStrings = %v, want [\"x\" 'y']", got)
	}
}
