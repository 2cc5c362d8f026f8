package diagcat

import (
	"bufio"
	"io"
)

// Converters render the compiled catalog's defaults into translator-facing
// seed files, one record per diagnostic in declared order. They consult no
// existing localization. Output uses CRLF record terminators so the files
// survive translators' tooling on every platform.

// ConvertToYAML emits the structured grammar:
//
//	- id: SYMBOLIC_NAME
//	  msg: "default text"
func ConvertToYAML(cat *Catalog, w io.Writer) error {
	out := bufio.NewWriter(w)
	for i, n := 0, cat.Count(); i < n; i++ {
		id := ID(i)
		out.WriteString("- id: ")
		out.WriteString(cat.Name(id))
		out.WriteString("\n  msg: \"")
		writeEscaped(out, cat.Default(id))
		out.WriteString("\"\r\n")
	}
	return out.Flush()
}

// ConvertToStrings emits the line-oriented grammar:
//
//	"SYMBOLIC_NAME" = "default text";
func ConvertToStrings(cat *Catalog, w io.Writer) error {
	out := bufio.NewWriter(w)
	for i, n := 0, cat.Count(); i < n; i++ {
		id := ID(i)
		out.WriteByte('"')
		out.WriteString(cat.Name(id))
		out.WriteString("\" = \"")
		writeEscaped(out, cat.Default(id))
		out.WriteString("\";\r\n")
	}
	return out.Flush()
}

// writeEscaped copies msg, putting an escape character before a double
// quote or a backslash. Both grammars unescape these two symmetrically.
func writeEscaped(out *bufio.Writer, msg string) {
	for i := 0; i < len(msg); i++ {
		if msg[i] == '"' || msg[i] == '\\' {
			out.WriteByte('\\')
		}
		out.WriteByte(msg[i])
	}
}
