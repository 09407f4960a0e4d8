package disasm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/retroenv/dexgodisasm/internal/nibble"
	"github.com/retroenv/dexgodisasm/internal/token"
)

// placeholderMatcher matches an operand placeholder: a run of uppercase
// letters preceded by exactly one non-letter character. The run's last letter
// names the decoded operand, its length is the operand width in nibbles.
var placeholderMatcher = regexp.MustCompile(`.[A-Z]+`)

// substituteOperands replaces all operand placeholders of a syntax word with
// their decoded values in lowercase hexadecimal. Values preceded by 'v' or
// '@' are register indexes or constant pool indexes and render unsigned, all
// other values are sign extended using the placeholder width.
func (d *Decoder) substituteOperands(res *Result, word string, fields nibble.Fields) string {
	return placeholderMatcher.ReplaceAllStringFunc(word, func(match string) string {
		letter := match[len(match)-1]
		value, ok := fields[letter]
		if !ok {
			d.diag(res, LevelError, fmt.Sprintf("no decoded operand %c for placeholder %q", letter, match))
		}

		prefix := match[0]
		if prefix == 'v' || prefix == '@' {
			return string(prefix) + strconv.FormatUint(value, 16)
		}
		signed := nibble.SignExtend(value, len(match)-1)
		return string(prefix) + strconv.FormatInt(signed, 16)
	})
}

// renderWord renders one word of a syntax template into tokens, substituting
// decoded operands and resolving constant pool references.
func (d *Decoder) renderWord(res *Result, word string, fields nibble.Fields) {
	var suffix []token.Token
	if strings.HasSuffix(word, ",") {
		word = word[:len(word)-1]
		suffix = append(suffix, token.OperandSeparator())
	}
	// the closing brace check has to run after the comma check
	if strings.HasSuffix(word, "}") {
		word = word[:len(word)-1]
		suffix = append([]token.Token{token.Text("}")}, suffix...)
	}
	if strings.HasPrefix(word, "{") {
		res.Tokens = append(res.Tokens, token.Text("{"))
		word = word[1:]
	}

	formatted := d.substituteOperands(res, word, fields)

	switch {
	case formatted == "": // empty register group {}

	case formatted[0] == 'v':
		d.renderRegister(res, formatted)

	case strings.HasPrefix(formatted, "#+"):
		d.renderInteger(res, formatted)

	case strings.Contains(formatted, "@"):
		d.renderReference(res, formatted)

	case formatted[0] == '+':
		d.renderOffset(res, formatted)

	case formatted == "..": // register range marker
		res.Tokens = append(res.Tokens, token.Text(".."))

	default:
		d.diag(res, LevelWarn, fmt.Sprintf("rendering unknown syntax word %q as %q", word, formatted))
		res.Tokens = append(res.Tokens, token.Text(formatted))
	}

	res.Tokens = append(res.Tokens, suffix...)
}

// renderRegister renders a substituted register word like "v1a".
// Registers above 255 are representable but most downstream analyses only
// track 256 registers, a diagnostic flags them.
func (d *Decoder) renderRegister(res *Result, formatted string) {
	index, err := strconv.ParseUint(formatted[1:], 16, 64)
	if err != nil {
		d.diag(res, LevelWarn, fmt.Sprintf("rendering unknown syntax word %q", formatted))
		res.Tokens = append(res.Tokens, token.Text(formatted))
		return
	}

	if index >= 256 {
		d.diag(res, LevelWarn, fmt.Sprintf("register v%d exceeds the 255 tracked registers", index))
	}
	res.Tokens = append(res.Tokens, token.Register("v"+strconv.FormatUint(index, 10), int64(index)))
}

// renderInteger renders a literal like "#+12" or "#+-80000000".
func (d *Decoder) renderInteger(res *Result, formatted string) {
	value, err := strconv.ParseInt(formatted[2:], 16, 64)
	if err != nil {
		d.diag(res, LevelWarn, fmt.Sprintf("rendering unknown syntax word %q", formatted))
		res.Tokens = append(res.Tokens, token.Text(formatted))
		return
	}
	res.Tokens = append(res.Tokens, token.Integer(formatHex(value), value))
}

// renderOffset renders a branch offset like "+11" or "+-1f". Non-negative
// offsets keep an explicit leading plus sign as text.
func (d *Decoder) renderOffset(res *Result, formatted string) {
	value, err := strconv.ParseInt(formatted[1:], 16, 64)
	if err != nil {
		d.diag(res, LevelWarn, fmt.Sprintf("rendering unknown syntax word %q", formatted))
		res.Tokens = append(res.Tokens, token.Text(formatted))
		return
	}

	if value >= 0 {
		res.Tokens = append(res.Tokens, token.Text("+"))
	}
	res.Tokens = append(res.Tokens, token.Address(formatted[1:], value))
}

// renderReference resolves a constant pool reference like "meth@1f" and
// renders the resolved record. Unresolvable references render as their raw
// word with a diagnostic instead of failing the decode.
func (d *Decoder) renderReference(res *Result, formatted string) {
	kind, indexText, _ := strings.Cut(formatted, "@")
	index, err := strconv.ParseUint(indexText, 16, 64)
	if err != nil {
		d.diag(res, LevelWarn, fmt.Sprintf("rendering unknown syntax word %q", formatted))
		res.Tokens = append(res.Tokens, token.Text(formatted))
		return
	}

	switch kind {
	case "field":
		d.renderField(res, formatted, index)

	case "meth":
		d.renderMethod(res, formatted, index)

	case "string":
		d.renderString(res, formatted, index)

	case "type":
		typ, err := d.resolver.Type(index)
		if err != nil {
			d.resolveFailed(res, formatted, err)
			return
		}
		res.Tokens = append(res.Tokens, token.Text(typ))

	case "call_site", "method_handle", "proto":
		d.diag(res, LevelWarn, kind+" references are not implemented yet")
		res.Tokens = append(res.Tokens, token.Text(formatted))

	default:
		d.diag(res, LevelError, fmt.Sprintf("unknown lookup kind in %q", formatted))
		res.Tokens = append(res.Tokens, token.Text(formatted))
	}
}

func (d *Decoder) renderField(res *Result, formatted string, index uint64) {
	field, err := d.resolver.Field(index)
	if err != nil {
		d.resolveFailed(res, formatted, err)
		return
	}

	res.Tokens = append(res.Tokens,
		token.Text(field.Class),
		token.Text("->"),
		token.Text(field.Name),
		token.Text(":"),
		token.Text(field.Type),
	)
}

func (d *Decoder) renderMethod(res *Result, formatted string, index uint64) {
	method, err := d.resolver.Method(index)
	if err != nil {
		d.resolveFailed(res, formatted, err)
		return
	}

	res.Tokens = append(res.Tokens, token.Text(method.Class), token.Text("->"))

	if method.HasCodeOffset {
		res.Tokens = append(res.Tokens, token.ResolvedAddress(method.Name, int64(method.CodeOffset)))
	} else {
		res.Tokens = append(res.Tokens, token.Text(method.Name))
	}

	res.Tokens = append(res.Tokens, token.Text("("))
	for _, param := range method.Proto.Parameters {
		res.Tokens = append(res.Tokens, token.Text(param))
	}
	res.Tokens = append(res.Tokens, token.Text(")"), token.Text(method.Proto.ReturnType))
}

func (d *Decoder) renderString(res *Result, formatted string, index uint64) {
	text, err := d.resolver.String(index)
	if err != nil {
		d.resolveFailed(res, formatted, err)
		return
	}

	res.Tokens = append(res.Tokens,
		token.Text(`"`),
		token.Text(escapeString(text)),
		token.Text(`"`),
	)
}

func (d *Decoder) resolveFailed(res *Result, formatted string, err error) {
	d.diag(res, LevelWarn, fmt.Sprintf("resolving %q: %s", formatted, err))
	res.Tokens = append(res.Tokens, token.Text(formatted))
}

// escapeString renders control and non-printable characters with backslash
// escapes so that resolved strings stay on a single disassembly line.
func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			switch {
			case r >= 0x20 && r <= 0x7e:
				sb.WriteRune(r)
			case r <= 0xff:
				fmt.Fprintf(&sb, `\x%02x`, r)
			case r <= 0xffff:
				fmt.Fprintf(&sb, `\u%04x`, r)
			default:
				fmt.Fprintf(&sb, `\U%08x`, r)
			}
		}
	}
	return sb.String()
}

// formatHex renders a signed value in 0x notation with the sign in front.
func formatHex(value int64) string {
	if value < 0 {
		return "-0x" + strconv.FormatInt(-value, 16)
	}
	return "0x" + strconv.FormatInt(value, 16)
}
