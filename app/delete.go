package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/homegym/spotter/internal/models"
)

// confirmDeletion lists the routines about to be deleted and waits for the
// user to press ENTER.
func confirmDeletion(r io.Reader, w io.Writer, routines []models.Routine) {
	printRoutinesTable(w, routines)

	warning := pterm.Warning.Sprint(
		"The above routines will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(w, warning)

	reader := bufio.NewReader(r)

	_, _ = reader.ReadString('\n')
}
