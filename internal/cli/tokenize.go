package cli

import "strings"

// Tokenize splits a command line on whitespace while keeping quoted
// runs (single or double) together as one token. Quotes themselves are
// stripped; an unterminated quote runs to the end of the line.
func Tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	inToken := false
	var quote byte

	flush := func() {
		if inToken {
			tokens = append(tokens, cur.String())
			cur.Reset()
			inToken = false
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '"' || c == '\'':
			quote = c
			inToken = true
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteByte(c)
			inToken = true
		}
	}
	flush()
	return tokens
}

// splitArgs separates "--name value" option pairs from positional
// arguments. An option with no following value gets the empty string.
func splitArgs(args []string) (positional []string, opts map[string]string) {
	opts = map[string]string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "--") {
			name := strings.TrimPrefix(arg, "--")
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
				opts[name] = args[i+1]
				i++
			} else {
				opts[name] = ""
			}
			continue
		}
		positional = append(positional, arg)
	}
	return positional, opts
}
