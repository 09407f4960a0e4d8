package disasm

import (
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/dexgodisasm/internal/payload"
)

// listPayload renders a payload record as its smali listing text. The fill
// array data listing is a debug dump, its exact text is not part of the
// output contract.
func listPayload(entry payload.Payload) string {
	switch p := entry.(type) {
	case *payload.PackedSwitch:
		var sb strings.Builder
		sb.WriteString(".packed-switch ")
		sb.WriteString(formatHex(int64(p.FirstKey)))
		sb.WriteString("\n")
		for _, target := range p.Targets {
			sb.WriteString("        :pswitch_offset_")
			sb.WriteString(strconv.FormatInt(int64(target), 16))
			sb.WriteString("\n")
		}
		sb.WriteString("    .end packed-switch")
		return sb.String()

	case *payload.SparseSwitch:
		var sb strings.Builder
		sb.WriteString(".sparse-switch\n")
		for i := 0; i < p.EntryCount; i++ {
			sb.WriteString("        ")
			sb.WriteString(formatHex(int64(p.Keys[i])))
			sb.WriteString(" -> :sswitch_offset_")
			sb.WriteString(strconv.FormatInt(int64(p.Targets[i]), 16))
			sb.WriteString("\n")
		}
		sb.WriteString("    .end sparse-switch")
		return sb.String()

	case *payload.FillArrayData:
		return "pseudo-instruction: " + spew.Sprintf("%+v", p)

	default: // cannot happen, the payload union is closed
		return ""
	}
}
