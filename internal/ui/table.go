package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes a boxed table with the given header row to w. Rendering
// errors are reported on stderr so the rest of the output is kept.
func PrintTable(w io.Writer, header []string, rows [][]string) {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	str, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(data).
		Srender()
	if err != nil {
		pterm.Error.Printfln("unable to render table: %v", err)
		return
	}

	fmt.Fprintln(w, str)
}
