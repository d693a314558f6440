package main

// Short messages (one-liners)
const (
	MsgRootShort = "Compose guidance rules for a file path"
	MsgRootLong = `rulebook resolves and composes free-form guidance documents ("rules")
for a given file path. Each rule declares a description, optional path-glob
patterns, an always-apply flag, and a body of guidance text; rules may
reference other rules for inclusion. rulebook selects the applicable rules,
expands references between them, and produces one consolidated document.`

	MsgComposeShort = "Compose the guidance document for a target path"
	MsgComposeLong = `Compose selects every rule applicable to the target path (always-apply
rules first, then glob-matched rules), expands inline @rule references in
place, drops repeated text, and prints the consolidated document.`

	MsgListShort  = "List all rules in the store"
	MsgCheckShort = "Validate the rule store"
	MsgCheckLong = `Check loads the rule store and resolves every rule, reporting reference
cycles, missing references, and non-fatal warnings such as unreachable
rules. Exits non-zero if any rule fails to resolve.`
	MsgWatchShort = "Re-compose on rule changes"
	MsgWatchLong = `Watch composes the guidance document for the target path, then watches
the rules directory and prints a freshly composed document every time the
rules change.`
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir     = "Rules directory (overrides config)"
	MsgFlagJSON    = "Emit the result as JSON"
	MsgFlagRaw     = "Print plain text without terminal rendering"

	// Status messages
	MsgNoRules      = "No rules found."
	MsgNoGuidance   = "No guidance applies to this path."
	MsgCheckOK      = "All %d rules resolve cleanly."
	MsgCheckFailure = "%d of %d rules failed to resolve."
	MsgWatching     = "Watching %s for changes (ctrl-c to stop)..."
)

// MsgUsageTemplate is the usage template for all commands. Section headings
// go through the formatting funcs registered in formatting.go.
const MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Available Commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

{{boldUpper "Additional Help Topics"}}:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{bold .CommandPath}} [command] --help" for more information about a command.{{end}}
`
