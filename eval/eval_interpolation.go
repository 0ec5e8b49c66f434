package eval

import (
	"strconv"
	"strings"

	"github.com/golci/lci/errs"
	"github.com/golci/lci/objects"
	"github.com/golci/lci/scope"
)

// interpolate expands a string literal's `:` escapes per spec.md §4.4:
// :" :) :> :o :: are fixed substitutions, :(hex) is a codepoint escape,
// :[name] is a named-codepoint escape (always unknown here, since the
// Unicode name table lives outside this module's scope per spec.md §2's
// ownership split), and :{identifier} splices a variable's string form.
func (e *Evaluator) interpolate(s string, scp *scope.Scope, file string, line int) (string, *errs.Error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if c != ':' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}

		next := s[i+1]
		switch next {
		case '"':
			b.WriteByte('"')
			i += 2
			continue
		case ')':
			b.WriteByte('\n')
			i += 2
			continue
		case '>':
			b.WriteByte('\t')
			i += 2
			continue
		case 'o':
			b.WriteByte('\a')
			i += 2
			continue
		case ':':
			b.WriteByte(':')
			i += 2
			continue
		case '(':
			end := strings.IndexByte(s[i+2:], ')')
			if end < 0 {
				return "", errs.New(errs.RuntimeUnclosedEscape, file, line, "", ":(")
			}
			hex := s[i+2 : i+2+end]
			n, perr := strconv.ParseInt(hex, 16, 64)
			if perr != nil {
				return "", errs.New(errs.RuntimeBadEscape, file, line, hex, ":("+hex+")")
			}
			if n <= 0 {
				return "", errs.New(errs.RuntimeNonPositiveCodepoint, file, line, "")
			}
			b.WriteRune(rune(n))
			i += 2 + end + 1
			continue
		case '[':
			end := strings.IndexByte(s[i+2:], ']')
			if end < 0 {
				return "", errs.New(errs.RuntimeUnclosedEscape, file, line, "", ":[")
			}
			name := s[i+2 : i+2+end]
			return "", errs.New(errs.RuntimeUnknownCodepointName, file, line, name, name)
		case '{':
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return "", errs.New(errs.RuntimeUnclosedEscape, file, line, "", ":{")
			}
			name := s[i+2 : i+2+end]
			val, ok := scp.LookUp(name)
			if !ok {
				return "", errs.New(errs.RuntimeUndefinedName, file, line, name, name)
			}
			str, err := objects.AsString(val, file, line)
			if err != nil {
				return "", err
			}
			b.WriteString(str)
			i += 2 + end + 1
			continue
		default:
			return "", errs.New(errs.RuntimeBadEscape, file, line, string(next), ":"+string(next))
		}
	}
	return b.String(), nil
}
