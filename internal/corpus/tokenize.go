package corpus

import "unicode"

// offsetToken is a token with its rune offsets in the source text. Only
// the BRAT path needs offsets: BRAT annotates characters, so spans must
// be aligned back onto token boundaries.
type offsetToken struct {
	Text  string
	Start int // inclusive rune offset
	End   int // exclusive rune offset
}

// tokenize splits text on whitespace, then peels leading and trailing
// punctuation into their own tokens. A trailing "--" splits off as a
// single token (annotated prose uses it as an em-dash). This is a rule
// tokenizer, deliberately simple: converters that already carry token
// boundaries (CoNLL, GENIA) never go through it.
func tokenize(text string) []offsetToken {
	runes := []rune(text)
	var tokens []offsetToken

	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && !unicode.IsSpace(runes[j]) {
			j++
		}
		tokens = append(tokens, splitChunk(runes, i, j)...)
		i = j
	}
	return tokens
}

// splitChunk splits the whitespace-free rune range [start, end) into
// tokens, peeling punctuation off both ends.
func splitChunk(runes []rune, start, end int) []offsetToken {
	var head, tail []offsetToken

	// Leading punctuation, one rune at a time.
	for start < end-1 && isPunct(runes[start]) {
		head = append(head, offsetToken{Text: string(runes[start]), Start: start, End: start + 1})
		start++
	}

	// Trailing punctuation, collected innermost-last.
	for start < end-1 && isPunct(runes[end-1]) {
		if runes[end-1] == '-' && runes[end-2] == '-' && end-2 > start {
			tail = append([]offsetToken{{Text: "--", Start: end - 2, End: end}}, tail...)
			end -= 2
			continue
		}
		tail = append([]offsetToken{{Text: string(runes[end-1]), Start: end - 1, End: end}}, tail...)
		end--
	}

	core := offsetToken{Text: string(runes[start:end]), Start: start, End: end}
	out := append(head, core)
	return append(out, tail...)
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
