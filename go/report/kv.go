package report

import (
	"fmt"
	"io"
	"strings"
)

type KV struct {
	Key  string
	Verb string
	Val  interface{}
}

// FprintKVs writes header followed by one indented "key = value" line per
// kv.
func FprintKVs(w io.Writer, header string, kvs []KV) {
	args := make([]interface{}, len(kvs))
	var format strings.Builder
	format.WriteString(header)
	format.WriteString("\n")
	for i, kv := range kvs {
		format.WriteString("\t")
		format.WriteString(kv.Key)
		format.WriteString(" = ")
		format.WriteString(kv.Verb)
		format.WriteString("\n")
		args[i] = kv.Val
	}
	fmt.Fprintf(w, format.String(), args...)
}
