package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// printJSON pretty-prints a raw GraphQL payload for commands whose output
// shape varies by account or household setup.
func printJSON(data json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(buf.String())
}
