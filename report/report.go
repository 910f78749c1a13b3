// Package report prints the outcome of CLI commands
package report

import (
	"os"

	"github.com/pterm/pterm"
)

func WorkoutSaved() {
	pterm.Success.Println("Workout saved")
}

func SettingsSaved() {
	pterm.Success.Println("Settings saved")
}

func RoutineImported(name, id string) {
	pterm.Success.Printfln("Imported %s (%s)", name, id)
}

func RoutineDeleted(name string) {
	pterm.Success.Printfln("Deleted %s", name)
}

func Info(msg string) {
	pterm.Info.Println(msg)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
