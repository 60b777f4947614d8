package shell

import "unicode"

// Tokenize splits a raw input line into shell words.
//
// Outside quotes, whitespace separates words and a backslash escapes the
// next character. Single quotes copy everything literally. Inside double
// quotes a backslash only escapes `"`, `\`, `$`, backtick and newline; any
// other backslash is kept as a literal backslash. An unterminated quote is
// tolerated, the consumed characters become the final word.
func Tokenize(line string) []string {
	var tokens []string
	var cur []rune

	runes := []rune(line)
	n := len(runes)

	inSingle := false
	inDouble := false

	for i := 0; i < n; i++ {
		ch := runes[i]

		if inSingle {
			if ch == '\'' {
				inSingle = false
			} else {
				cur = append(cur, ch)
			}
			continue
		}

		if inDouble {
			switch ch {
			case '"':
				inDouble = false
			case '\\':
				if i+1 < n {
					switch next := runes[i+1]; next {
					case '"', '\\', '$', '`', '\n':
						cur = append(cur, next)
						i++
					default:
						cur = append(cur, ch)
					}
				} else {
					cur = append(cur, ch)
				}
			default:
				cur = append(cur, ch)
			}
			continue
		}

		switch {
		case ch == '\'':
			inSingle = true
		case ch == '"':
			inDouble = true
		case ch == '\\':
			if i+1 < n {
				i++
				cur = append(cur, runes[i])
			}
		case unicode.IsSpace(ch):
			if len(cur) > 0 {
				tokens = append(tokens, string(cur))
				cur = cur[:0]
			}
		default:
			cur = append(cur, ch)
		}
	}

	if len(cur) > 0 {
		tokens = append(tokens, string(cur))
	}
	return tokens
}
