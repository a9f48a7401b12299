package app

import (
	"strings"

	"github.com/pterm/pterm"
)

type helpSection struct {
	title string
	body  string
}

var envVars = [][2]string{
	{
		"FOCUSWATCH_NO_COLOR, NO_COLOR",
		"set to any value to avoid printing ANSI escape sequences for color output.",
	},
	{
		"FOCUSWATCH_UPDATE_NOTIFIER",
		"set to any value to enable update notifications when using the -v or --version flag.",
	},
	{
		"FOCUSWATCH_DEBUG",
		"set to true to log every terminal event to the log file.",
	},
	{
		"FOCUSWATCH_ENV",
		"keep config, profile and status files for this name separate from the defaults.",
	},
}

func helpText() string {
	flag := pterm.Green("--{{.Name}} {{.DefaultText}}")
	alias := pterm.Green("-{{$alias}}")

	sections := []helpSection{
		{"DESCRIPTION", "\t\t{{.Usage}}\n"},
		{"USAGE", "\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n"},
		{"VERSION", "{{if .Version}}\t\t{{.Version}}{{end}}\n"},
		{
			"COMMANDS",
			"{{range .Commands}}{{if not .HideHelp}}   " +
				pterm.Green("{{join .Names `, `}}") +
				"{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n",
		},
		{
			"OPTIONS",
			"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $alias := .Aliases}}" +
				alias + ",{{end}}{{end}} " + flag + "\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		},
		{"ENVIRONMENTAL VARIABLES", envHelp()},
	}

	var b strings.Builder

	for _, s := range sections {
		b.WriteString(pterm.Yellow(s.title))
		b.WriteString("\n")
		b.WriteString(s.body)
		b.WriteString("\n")
	}

	return b.String()
}

func envHelp() string {
	var b strings.Builder

	for _, v := range envVars {
		b.WriteString("\t\t")
		b.WriteString(v[0])
		b.WriteString(": ")
		b.WriteString(v[1])
		b.WriteString("\n\n")
	}

	return b.String()
}
