package metadata

// formatRows lists all Dalvik instruction format families with their
// bit-layout and syntax templates. Formats carrying several guarded syntax
// alternatives encode each alternative behind an [A=n] guard.
var formatRows = []Format{
	{ID: "10x", Layout: "ØØ|op", Syntax: "op"},
	{ID: "12x", Layout: "B|A|op", Syntax: "op vA, vB"},
	{ID: "11n", Layout: "B|A|op", Syntax: "op vA, #+B"},
	{ID: "11x", Layout: "AA|op", Syntax: "op vAA"},
	{ID: "10t", Layout: "AA|op", Syntax: "op +AA"},
	{ID: "20t", Layout: "ØØ|op AAAA", Syntax: "op +AAAA"},
	{ID: "20bc", Layout: "AA|op BBBB", Syntax: "op AA, kind@BBBB"},
	{ID: "22x", Layout: "AA|op BBBB", Syntax: "op vAA, vBBBB"},
	{ID: "21t", Layout: "AA|op BBBB", Syntax: "op vAA, +BBBB"},
	{ID: "21s", Layout: "AA|op BBBB", Syntax: "op vAA, #+BBBB"},
	{ID: "21h", Layout: "AA|op BBBB", Syntax: "op vAA, #+BBBB0000"},
	{ID: "21c", Layout: "AA|op BBBB", Syntax: "op vAA, kind@BBBB"},
	{ID: "23x", Layout: "AA|op CC|BB", Syntax: "op vAA, vBB, vCC"},
	{ID: "22b", Layout: "AA|op CC|BB", Syntax: "op vAA, vBB, #+CC"},
	{ID: "22t", Layout: "B|A|op CCCC", Syntax: "op vA, vB, +CCCC"},
	{ID: "22s", Layout: "B|A|op CCCC", Syntax: "op vA, vB, #+CCCC"},
	{ID: "22c", Layout: "B|A|op CCCC", Syntax: "op vA, vB, kind@CCCC"},
	{ID: "22cs", Layout: "B|A|op CCCC", Syntax: "op vA, vB, fieldoff@CCCC"},
	{ID: "30t", Layout: "ØØ|op AAAAlo AAAAhi", Syntax: "op +AAAAAAAA"},
	{ID: "32x", Layout: "ØØ|op AAAA BBBB", Syntax: "op vAAAA, vBBBB"},
	{ID: "31i", Layout: "AA|op BBBBlo BBBBhi", Syntax: "op vAA, #+BBBBBBBB"},
	{ID: "31t", Layout: "AA|op BBBBlo BBBBhi", Syntax: "op vAA, +BBBBBBBB"},
	{ID: "31c", Layout: "AA|op BBBBlo BBBBhi", Syntax: "op vAA, string@BBBBBBBB"},
	{ID: "35c", Layout: "A|G|op BBBB F|E|D|C", Syntax: "[A=5] op {vC, vD, vE, vF, vG}, kind@BBBB " +
		"[A=4] op {vC, vD, vE, vF}, kind@BBBB [A=3] op {vC, vD, vE}, kind@BBBB " +
		"[A=2] op {vC, vD}, kind@BBBB [A=1] op {vC}, kind@BBBB [A=0] op {}, kind@BBBB"},
	{ID: "35ms", Layout: "A|G|op BBBB F|E|D|C", Syntax: "[A=5] op {vC, vD, vE, vF, vG}, vtaboff@BBBB " +
		"[A=4] op {vC, vD, vE, vF}, vtaboff@BBBB [A=3] op {vC, vD, vE}, vtaboff@BBBB " +
		"[A=2] op {vC, vD}, vtaboff@BBBB [A=1] op {vC}, vtaboff@BBBB"},
	{ID: "35mi", Layout: "A|G|op BBBB F|E|D|C", Syntax: "[A=5] op {vC, vD, vE, vF, vG}, inline@BBBB " +
		"[A=4] op {vC, vD, vE, vF}, inline@BBBB [A=3] op {vC, vD, vE}, inline@BBBB " +
		"[A=2] op {vC, vD}, inline@BBBB [A=1] op {vC}, inline@BBBB"},
	{ID: "3rc", Layout: "AA|op BBBB CCCC", Syntax: "op {vCCCC .. vNNNN}, kind@BBBB"},
	{ID: "3rms", Layout: "AA|op BBBB CCCC", Syntax: "op {vCCCC .. vNNNN}, vtaboff@BBBB"},
	{ID: "3rmi", Layout: "AA|op BBBB CCCC", Syntax: "op {vCCCC .. vNNNN}, inline@BBBB"},
	{ID: "45cc", Layout: "A|G|op BBBB F|E|D|C HHHH", Syntax: "[A=5] op {vC, vD, vE, vF, vG}, meth@BBBB, proto@HHHH " +
		"[A=4] op {vC, vD, vE, vF}, meth@BBBB, proto@HHHH [A=3] op {vC, vD, vE}, meth@BBBB, proto@HHHH " +
		"[A=2] op {vC, vD}, meth@BBBB, proto@HHHH [A=1] op {vC}, meth@BBBB, proto@HHHH"},
	{ID: "4rcc", Layout: "AA|op BBBB CCCC HHHH", Syntax: "op {vCCCC .. vNNNN}, meth@BBBB, proto@HHHH"},
	{ID: "51l", Layout: "AA|op BBBBlo BBBB BBBB BBBBhi", Syntax: "op vAA, #+BBBBBBBBBBBBBBBB"},
}

// instructionRows lists all assigned Dalvik opcodes. The syntax column holds
// the operand part of the reference syntax, the mnemonic is kept separate.
// Unassigned opcode ranges (3e..43, 73, 79..7a, e3..f9) have no row.
var instructionRows = []Instruction{
	{Opcode: 0x00, FormatID: "10x", Mnemonic: "nop", Syntax: ""},
	{Opcode: 0x01, FormatID: "12x", Mnemonic: "move", Syntax: "vA, vB"},
	{Opcode: 0x02, FormatID: "22x", Mnemonic: "move/from16", Syntax: "vAA, vBBBB"},
	{Opcode: 0x03, FormatID: "32x", Mnemonic: "move/16", Syntax: "vAAAA, vBBBB"},
	{Opcode: 0x04, FormatID: "12x", Mnemonic: "move-wide", Syntax: "vA, vB"},
	{Opcode: 0x05, FormatID: "22x", Mnemonic: "move-wide/from16", Syntax: "vAA, vBBBB"},
	{Opcode: 0x06, FormatID: "32x", Mnemonic: "move-wide/16", Syntax: "vAAAA, vBBBB"},
	{Opcode: 0x07, FormatID: "12x", Mnemonic: "move-object", Syntax: "vA, vB"},
	{Opcode: 0x08, FormatID: "22x", Mnemonic: "move-object/from16", Syntax: "vAA, vBBBB"},
	{Opcode: 0x09, FormatID: "32x", Mnemonic: "move-object/16", Syntax: "vAAAA, vBBBB"},
	{Opcode: 0x0a, FormatID: "11x", Mnemonic: "move-result", Syntax: "vAA"},
	{Opcode: 0x0b, FormatID: "11x", Mnemonic: "move-result-wide", Syntax: "vAA"},
	{Opcode: 0x0c, FormatID: "11x", Mnemonic: "move-result-object", Syntax: "vAA"},
	{Opcode: 0x0d, FormatID: "11x", Mnemonic: "move-exception", Syntax: "vAA"},
	{Opcode: 0x0e, FormatID: "10x", Mnemonic: "return-void", Syntax: ""},
	{Opcode: 0x0f, FormatID: "11x", Mnemonic: "return", Syntax: "vAA"},
	{Opcode: 0x10, FormatID: "11x", Mnemonic: "return-wide", Syntax: "vAA"},
	{Opcode: 0x11, FormatID: "11x", Mnemonic: "return-object", Syntax: "vAA"},
	{Opcode: 0x12, FormatID: "11n", Mnemonic: "const/4", Syntax: "vA, #+B"},
	{Opcode: 0x13, FormatID: "21s", Mnemonic: "const/16", Syntax: "vAA, #+BBBB"},
	{Opcode: 0x14, FormatID: "31i", Mnemonic: "const", Syntax: "vAA, #+BBBBBBBB"},
	{Opcode: 0x15, FormatID: "21h", Mnemonic: "const/high16", Syntax: "vAA, #+BBBB0000"},
	{Opcode: 0x16, FormatID: "21s", Mnemonic: "const-wide/16", Syntax: "vAA, #+BBBB"},
	{Opcode: 0x17, FormatID: "31i", Mnemonic: "const-wide/32", Syntax: "vAA, #+BBBBBBBB"},
	{Opcode: 0x18, FormatID: "51l", Mnemonic: "const-wide", Syntax: "vAA, #+BBBBBBBBBBBBBBBB"},
	{Opcode: 0x19, FormatID: "21h", Mnemonic: "const-wide/high16", Syntax: "vAA, #+BBBB000000000000"},
	{Opcode: 0x1a, FormatID: "21c", Mnemonic: "const-string", Syntax: "vAA, string@BBBB"},
	{Opcode: 0x1b, FormatID: "31c", Mnemonic: "const-string/jumbo", Syntax: "vAA, string@BBBBBBBB"},
	{Opcode: 0x1c, FormatID: "21c", Mnemonic: "const-class", Syntax: "vAA, type@BBBB"},
	{Opcode: 0x1d, FormatID: "11x", Mnemonic: "monitor-enter", Syntax: "vAA"},
	{Opcode: 0x1e, FormatID: "11x", Mnemonic: "monitor-exit", Syntax: "vAA"},
	{Opcode: 0x1f, FormatID: "21c", Mnemonic: "check-cast", Syntax: "vAA, type@BBBB"},
	{Opcode: 0x20, FormatID: "22c", Mnemonic: "instance-of", Syntax: "vA, vB, type@CCCC"},
	{Opcode: 0x21, FormatID: "12x", Mnemonic: "array-length", Syntax: "vA, vB"},
	{Opcode: 0x22, FormatID: "21c", Mnemonic: "new-instance", Syntax: "vAA, type@BBBB"},
	{Opcode: 0x23, FormatID: "22c", Mnemonic: "new-array", Syntax: "vA, vB, type@CCCC"},
	{Opcode: 0x24, FormatID: "35c", Mnemonic: "filled-new-array", Syntax: "{vC, vD, vE, vF, vG}, type@BBBB"},
	{Opcode: 0x25, FormatID: "3rc", Mnemonic: "filled-new-array/range", Syntax: "{vCCCC .. vNNNN}, type@BBBB"},
	{Opcode: 0x26, FormatID: "31t", Mnemonic: "fill-array-data", Syntax: "vAA, +BBBBBBBB"},
	{Opcode: 0x27, FormatID: "11x", Mnemonic: "throw", Syntax: "vAA"},
	{Opcode: 0x28, FormatID: "10t", Mnemonic: "goto", Syntax: "+AA"},
	{Opcode: 0x29, FormatID: "20t", Mnemonic: "goto/16", Syntax: "+AAAA"},
	{Opcode: 0x2a, FormatID: "30t", Mnemonic: "goto/32", Syntax: "+AAAAAAAA"},
	{Opcode: 0x2b, FormatID: "31t", Mnemonic: "packed-switch", Syntax: "vAA, +BBBBBBBB"},
	{Opcode: 0x2c, FormatID: "31t", Mnemonic: "sparse-switch", Syntax: "vAA, +BBBBBBBB"},
	{Opcode: 0x2d, FormatID: "23x", Mnemonic: "cmpl-float", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x2e, FormatID: "23x", Mnemonic: "cmpg-float", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x2f, FormatID: "23x", Mnemonic: "cmpl-double", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x30, FormatID: "23x", Mnemonic: "cmpg-double", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x31, FormatID: "23x", Mnemonic: "cmp-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x32, FormatID: "22t", Mnemonic: "if-eq", Syntax: "vA, vB, +CCCC"},
	{Opcode: 0x33, FormatID: "22t", Mnemonic: "if-ne", Syntax: "vA, vB, +CCCC"},
	{Opcode: 0x34, FormatID: "22t", Mnemonic: "if-lt", Syntax: "vA, vB, +CCCC"},
	{Opcode: 0x35, FormatID: "22t", Mnemonic: "if-ge", Syntax: "vA, vB, +CCCC"},
	{Opcode: 0x36, FormatID: "22t", Mnemonic: "if-gt", Syntax: "vA, vB, +CCCC"},
	{Opcode: 0x37, FormatID: "22t", Mnemonic: "if-le", Syntax: "vA, vB, +CCCC"},
	{Opcode: 0x38, FormatID: "21t", Mnemonic: "if-eqz", Syntax: "vAA, +BBBB"},
	{Opcode: 0x39, FormatID: "21t", Mnemonic: "if-nez", Syntax: "vAA, +BBBB"},
	{Opcode: 0x3a, FormatID: "21t", Mnemonic: "if-ltz", Syntax: "vAA, +BBBB"},
	{Opcode: 0x3b, FormatID: "21t", Mnemonic: "if-gez", Syntax: "vAA, +BBBB"},
	{Opcode: 0x3c, FormatID: "21t", Mnemonic: "if-gtz", Syntax: "vAA, +BBBB"},
	{Opcode: 0x3d, FormatID: "21t", Mnemonic: "if-lez", Syntax: "vAA, +BBBB"},
	{Opcode: 0x44, FormatID: "23x", Mnemonic: "aget", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x45, FormatID: "23x", Mnemonic: "aget-wide", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x46, FormatID: "23x", Mnemonic: "aget-object", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x47, FormatID: "23x", Mnemonic: "aget-boolean", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x48, FormatID: "23x", Mnemonic: "aget-byte", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x49, FormatID: "23x", Mnemonic: "aget-char", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x4a, FormatID: "23x", Mnemonic: "aget-short", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x4b, FormatID: "23x", Mnemonic: "aput", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x4c, FormatID: "23x", Mnemonic: "aput-wide", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x4d, FormatID: "23x", Mnemonic: "aput-object", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x4e, FormatID: "23x", Mnemonic: "aput-boolean", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x4f, FormatID: "23x", Mnemonic: "aput-byte", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x50, FormatID: "23x", Mnemonic: "aput-char", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x51, FormatID: "23x", Mnemonic: "aput-short", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x52, FormatID: "22c", Mnemonic: "iget", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x53, FormatID: "22c", Mnemonic: "iget-wide", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x54, FormatID: "22c", Mnemonic: "iget-object", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x55, FormatID: "22c", Mnemonic: "iget-boolean", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x56, FormatID: "22c", Mnemonic: "iget-byte", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x57, FormatID: "22c", Mnemonic: "iget-char", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x58, FormatID: "22c", Mnemonic: "iget-short", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x59, FormatID: "22c", Mnemonic: "iput", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x5a, FormatID: "22c", Mnemonic: "iput-wide", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x5b, FormatID: "22c", Mnemonic: "iput-object", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x5c, FormatID: "22c", Mnemonic: "iput-boolean", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x5d, FormatID: "22c", Mnemonic: "iput-byte", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x5e, FormatID: "22c", Mnemonic: "iput-char", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x5f, FormatID: "22c", Mnemonic: "iput-short", Syntax: "vA, vB, field@CCCC"},
	{Opcode: 0x60, FormatID: "21c", Mnemonic: "sget", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x61, FormatID: "21c", Mnemonic: "sget-wide", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x62, FormatID: "21c", Mnemonic: "sget-object", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x63, FormatID: "21c", Mnemonic: "sget-boolean", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x64, FormatID: "21c", Mnemonic: "sget-byte", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x65, FormatID: "21c", Mnemonic: "sget-char", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x66, FormatID: "21c", Mnemonic: "sget-short", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x67, FormatID: "21c", Mnemonic: "sput", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x68, FormatID: "21c", Mnemonic: "sput-wide", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x69, FormatID: "21c", Mnemonic: "sput-object", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x6a, FormatID: "21c", Mnemonic: "sput-boolean", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x6b, FormatID: "21c", Mnemonic: "sput-byte", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x6c, FormatID: "21c", Mnemonic: "sput-char", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x6d, FormatID: "21c", Mnemonic: "sput-short", Syntax: "vAA, field@BBBB"},
	{Opcode: 0x6e, FormatID: "35c", Mnemonic: "invoke-virtual", Syntax: "{vC, vD, vE, vF, vG}, meth@BBBB"},
	{Opcode: 0x6f, FormatID: "35c", Mnemonic: "invoke-super", Syntax: "{vC, vD, vE, vF, vG}, meth@BBBB"},
	{Opcode: 0x70, FormatID: "35c", Mnemonic: "invoke-direct", Syntax: "{vC, vD, vE, vF, vG}, meth@BBBB"},
	{Opcode: 0x71, FormatID: "35c", Mnemonic: "invoke-static", Syntax: "{vC, vD, vE, vF, vG}, meth@BBBB"},
	{Opcode: 0x72, FormatID: "35c", Mnemonic: "invoke-interface", Syntax: "{vC, vD, vE, vF, vG}, meth@BBBB"},
	{Opcode: 0x74, FormatID: "3rc", Mnemonic: "invoke-virtual/range", Syntax: "{vCCCC .. vNNNN}, meth@BBBB"},
	{Opcode: 0x75, FormatID: "3rc", Mnemonic: "invoke-super/range", Syntax: "{vCCCC .. vNNNN}, meth@BBBB"},
	{Opcode: 0x76, FormatID: "3rc", Mnemonic: "invoke-direct/range", Syntax: "{vCCCC .. vNNNN}, meth@BBBB"},
	{Opcode: 0x77, FormatID: "3rc", Mnemonic: "invoke-static/range", Syntax: "{vCCCC .. vNNNN}, meth@BBBB"},
	{Opcode: 0x78, FormatID: "3rc", Mnemonic: "invoke-interface/range", Syntax: "{vCCCC .. vNNNN}, meth@BBBB"},
	{Opcode: 0x7b, FormatID: "12x", Mnemonic: "neg-int", Syntax: "vA, vB"},
	{Opcode: 0x7c, FormatID: "12x", Mnemonic: "not-int", Syntax: "vA, vB"},
	{Opcode: 0x7d, FormatID: "12x", Mnemonic: "neg-long", Syntax: "vA, vB"},
	{Opcode: 0x7e, FormatID: "12x", Mnemonic: "not-long", Syntax: "vA, vB"},
	{Opcode: 0x7f, FormatID: "12x", Mnemonic: "neg-float", Syntax: "vA, vB"},
	{Opcode: 0x80, FormatID: "12x", Mnemonic: "neg-double", Syntax: "vA, vB"},
	{Opcode: 0x81, FormatID: "12x", Mnemonic: "int-to-long", Syntax: "vA, vB"},
	{Opcode: 0x82, FormatID: "12x", Mnemonic: "int-to-float", Syntax: "vA, vB"},
	{Opcode: 0x83, FormatID: "12x", Mnemonic: "int-to-double", Syntax: "vA, vB"},
	{Opcode: 0x84, FormatID: "12x", Mnemonic: "long-to-int", Syntax: "vA, vB"},
	{Opcode: 0x85, FormatID: "12x", Mnemonic: "long-to-float", Syntax: "vA, vB"},
	{Opcode: 0x86, FormatID: "12x", Mnemonic: "long-to-double", Syntax: "vA, vB"},
	{Opcode: 0x87, FormatID: "12x", Mnemonic: "float-to-int", Syntax: "vA, vB"},
	{Opcode: 0x88, FormatID: "12x", Mnemonic: "float-to-long", Syntax: "vA, vB"},
	{Opcode: 0x89, FormatID: "12x", Mnemonic: "float-to-double", Syntax: "vA, vB"},
	{Opcode: 0x8a, FormatID: "12x", Mnemonic: "double-to-int", Syntax: "vA, vB"},
	{Opcode: 0x8b, FormatID: "12x", Mnemonic: "double-to-long", Syntax: "vA, vB"},
	{Opcode: 0x8c, FormatID: "12x", Mnemonic: "double-to-float", Syntax: "vA, vB"},
	{Opcode: 0x8d, FormatID: "12x", Mnemonic: "int-to-byte", Syntax: "vA, vB"},
	{Opcode: 0x8e, FormatID: "12x", Mnemonic: "int-to-char", Syntax: "vA, vB"},
	{Opcode: 0x8f, FormatID: "12x", Mnemonic: "int-to-short", Syntax: "vA, vB"},
	{Opcode: 0x90, FormatID: "23x", Mnemonic: "add-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x91, FormatID: "23x", Mnemonic: "sub-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x92, FormatID: "23x", Mnemonic: "mul-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x93, FormatID: "23x", Mnemonic: "div-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x94, FormatID: "23x", Mnemonic: "rem-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x95, FormatID: "23x", Mnemonic: "and-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x96, FormatID: "23x", Mnemonic: "or-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x97, FormatID: "23x", Mnemonic: "xor-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x98, FormatID: "23x", Mnemonic: "shl-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x99, FormatID: "23x", Mnemonic: "shr-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x9a, FormatID: "23x", Mnemonic: "ushr-int", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x9b, FormatID: "23x", Mnemonic: "add-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x9c, FormatID: "23x", Mnemonic: "sub-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x9d, FormatID: "23x", Mnemonic: "mul-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x9e, FormatID: "23x", Mnemonic: "div-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0x9f, FormatID: "23x", Mnemonic: "rem-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa0, FormatID: "23x", Mnemonic: "and-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa1, FormatID: "23x", Mnemonic: "or-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa2, FormatID: "23x", Mnemonic: "xor-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa3, FormatID: "23x", Mnemonic: "shl-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa4, FormatID: "23x", Mnemonic: "shr-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa5, FormatID: "23x", Mnemonic: "ushr-long", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa6, FormatID: "23x", Mnemonic: "add-float", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa7, FormatID: "23x", Mnemonic: "sub-float", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa8, FormatID: "23x", Mnemonic: "mul-float", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xa9, FormatID: "23x", Mnemonic: "div-float", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xaa, FormatID: "23x", Mnemonic: "rem-float", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xab, FormatID: "23x", Mnemonic: "add-double", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xac, FormatID: "23x", Mnemonic: "sub-double", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xad, FormatID: "23x", Mnemonic: "mul-double", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xae, FormatID: "23x", Mnemonic: "div-double", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xaf, FormatID: "23x", Mnemonic: "rem-double", Syntax: "vAA, vBB, vCC"},
	{Opcode: 0xb0, FormatID: "12x", Mnemonic: "add-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xb1, FormatID: "12x", Mnemonic: "sub-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xb2, FormatID: "12x", Mnemonic: "mul-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xb3, FormatID: "12x", Mnemonic: "div-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xb4, FormatID: "12x", Mnemonic: "rem-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xb5, FormatID: "12x", Mnemonic: "and-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xb6, FormatID: "12x", Mnemonic: "or-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xb7, FormatID: "12x", Mnemonic: "xor-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xb8, FormatID: "12x", Mnemonic: "shl-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xb9, FormatID: "12x", Mnemonic: "shr-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xba, FormatID: "12x", Mnemonic: "ushr-int/2addr", Syntax: "vA, vB"},
	{Opcode: 0xbb, FormatID: "12x", Mnemonic: "add-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xbc, FormatID: "12x", Mnemonic: "sub-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xbd, FormatID: "12x", Mnemonic: "mul-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xbe, FormatID: "12x", Mnemonic: "div-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xbf, FormatID: "12x", Mnemonic: "rem-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc0, FormatID: "12x", Mnemonic: "and-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc1, FormatID: "12x", Mnemonic: "or-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc2, FormatID: "12x", Mnemonic: "xor-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc3, FormatID: "12x", Mnemonic: "shl-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc4, FormatID: "12x", Mnemonic: "shr-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc5, FormatID: "12x", Mnemonic: "ushr-long/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc6, FormatID: "12x", Mnemonic: "add-float/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc7, FormatID: "12x", Mnemonic: "sub-float/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc8, FormatID: "12x", Mnemonic: "mul-float/2addr", Syntax: "vA, vB"},
	{Opcode: 0xc9, FormatID: "12x", Mnemonic: "div-float/2addr", Syntax: "vA, vB"},
	{Opcode: 0xca, FormatID: "12x", Mnemonic: "rem-float/2addr", Syntax: "vA, vB"},
	{Opcode: 0xcb, FormatID: "12x", Mnemonic: "add-double/2addr", Syntax: "vA, vB"},
	{Opcode: 0xcc, FormatID: "12x", Mnemonic: "sub-double/2addr", Syntax: "vA, vB"},
	{Opcode: 0xcd, FormatID: "12x", Mnemonic: "mul-double/2addr", Syntax: "vA, vB"},
	{Opcode: 0xce, FormatID: "12x", Mnemonic: "div-double/2addr", Syntax: "vA, vB"},
	{Opcode: 0xcf, FormatID: "12x", Mnemonic: "rem-double/2addr", Syntax: "vA, vB"},
	{Opcode: 0xd0, FormatID: "22s", Mnemonic: "add-int/lit16", Syntax: "vA, vB, #+CCCC"},
	{Opcode: 0xd1, FormatID: "22s", Mnemonic: "rsub-int", Syntax: "vA, vB, #+CCCC"},
	{Opcode: 0xd2, FormatID: "22s", Mnemonic: "mul-int/lit16", Syntax: "vA, vB, #+CCCC"},
	{Opcode: 0xd3, FormatID: "22s", Mnemonic: "div-int/lit16", Syntax: "vA, vB, #+CCCC"},
	{Opcode: 0xd4, FormatID: "22s", Mnemonic: "rem-int/lit16", Syntax: "vA, vB, #+CCCC"},
	{Opcode: 0xd5, FormatID: "22s", Mnemonic: "and-int/lit16", Syntax: "vA, vB, #+CCCC"},
	{Opcode: 0xd6, FormatID: "22s", Mnemonic: "or-int/lit16", Syntax: "vA, vB, #+CCCC"},
	{Opcode: 0xd7, FormatID: "22s", Mnemonic: "xor-int/lit16", Syntax: "vA, vB, #+CCCC"},
	{Opcode: 0xd8, FormatID: "22b", Mnemonic: "add-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xd9, FormatID: "22b", Mnemonic: "rsub-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xda, FormatID: "22b", Mnemonic: "mul-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xdb, FormatID: "22b", Mnemonic: "div-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xdc, FormatID: "22b", Mnemonic: "rem-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xdd, FormatID: "22b", Mnemonic: "and-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xde, FormatID: "22b", Mnemonic: "or-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xdf, FormatID: "22b", Mnemonic: "xor-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xe0, FormatID: "22b", Mnemonic: "shl-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xe1, FormatID: "22b", Mnemonic: "shr-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xe2, FormatID: "22b", Mnemonic: "ushr-int/lit8", Syntax: "vAA, vBB, #+CC"},
	{Opcode: 0xfa, FormatID: "45cc", Mnemonic: "invoke-polymorphic", Syntax: "{vC, vD, vE, vF, vG}, meth@BBBB, proto@HHHH"},
	{Opcode: 0xfb, FormatID: "4rcc", Mnemonic: "invoke-polymorphic/range", Syntax: "{vCCCC .. vNNNN}, meth@BBBB, proto@HHHH"},
	{Opcode: 0xfc, FormatID: "35c", Mnemonic: "invoke-custom", Syntax: "{vC, vD, vE, vF, vG}, call_site@BBBB"},
	{Opcode: 0xfd, FormatID: "3rc", Mnemonic: "invoke-custom/range", Syntax: "{vCCCC .. vNNNN}, call_site@BBBB"},
	{Opcode: 0xfe, FormatID: "21c", Mnemonic: "const-method-handle", Syntax: "vAA, method_handle@BBBB"},
	{Opcode: 0xff, FormatID: "21c", Mnemonic: "const-method-type", Syntax: "vAA, proto@BBBB"},
}
