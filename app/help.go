package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	examples := fmt.Sprintf(
		"%s\n%s\n",
		pterm.Yellow("EXAMPLES"),
		exampleHelp(),
	)

	return description + usage + version + commands + options + env + examples
}

func exampleHelp() string {
	return `		spotter routine import ~/.local/share/spotter/routines/push_pull_legs.yaml
		spotter start --routine "push pull legs" --day 2 --rest-sets 45
		spotter history --since "last monday" --json`
}

func envHelp() string {
	return `
SPOTTER_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

SPOTTER_ENV: keep the config, database and logs of a separate environment (e.g. SPOTTER_ENV=test).

SPOTTER_DEBUG: set to any value to write debug entries to the log file.`
}
