package domtree

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
)

// WriteXML renders tree (as produced by Convert) as an indented XML
// document under a single root element named rootName. Binary fields
// render as upper-case hex strings, the XML counterpart to RawBytes'
// JSON integer-array form.
func WriteXML(rootName string, tree any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xmlWriter{buf: &buf}
	enc.writeElement(rootName, tree, 0)
	return buf.Bytes(), nil
}

type xmlWriter struct {
	buf *bytes.Buffer
}

func (w *xmlWriter) indent(depth int) {
	for i := 0; i < depth; i++ {
		w.buf.WriteString("  ")
	}
}

func (w *xmlWriter) writeElement(name string, value any, depth int) {
	w.indent(depth)
	switch v := value.(type) {
	case nil:
		fmt.Fprintf(w.buf, "<%s/>\n", name)

	case RawBytes:
		fmt.Fprintf(w.buf, "<%s>%s</%s>\n", name, hexUpper(v), name)

	case TimeRealView:
		fmt.Fprintf(w.buf, "<%s>\n", name)
		w.indent(depth + 1)
		fmt.Fprintf(w.buf, "<seconds>%d</seconds>\n", v.Seconds)
		w.indent(depth + 1)
		fmt.Fprintf(w.buf, "<formatted>%s</formatted>\n", xmlEscape(v.Formatted))
		w.indent(depth)
		fmt.Fprintf(w.buf, "</%s>\n", name)

	case map[string]any:
		if len(v) == 0 {
			fmt.Fprintf(w.buf, "<%s/>\n", name)
			return
		}
		fmt.Fprintf(w.buf, "<%s>\n", name)
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.writeElement(k, v[k], depth+1)
		}
		w.indent(depth)
		fmt.Fprintf(w.buf, "</%s>\n", name)

	case []any:
		if len(v) == 0 {
			fmt.Fprintf(w.buf, "<%s/>\n", name)
			return
		}
		fmt.Fprintf(w.buf, "<%s>\n", name)
		for _, item := range v {
			w.writeElement("item", item, depth+1)
		}
		w.indent(depth)
		fmt.Fprintf(w.buf, "</%s>\n", name)

	default:
		fmt.Fprintf(w.buf, "<%s>%s</%s>\n", name, xmlEscape(fmt.Sprintf("%v", v)), name)
	}
}

func hexUpper(b []byte) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = digits[c>>4]
		out[i*2+1] = digits[c&0x0F]
	}
	return string(out)
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
