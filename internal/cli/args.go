// Package cli interprets the command line and drives a single lookup.
package cli

import "strings"

// InvocationArgs is the interpreted command line of one run.
type InvocationArgs struct {
	ShowHelp    bool
	ShowVersion bool
	// Subject is the account to look up; "" when none was given.
	Subject string
}

// Parse interprets args, which must not include the program name.
//
// -h/--help and -V/--version may appear anywhere and any number of times.
// Other tokens starting with "-" are ignored. The first remaining token is
// the subject; later ones are ignored. Parse never fails.
func Parse(args []string) InvocationArgs {
	var parsed InvocationArgs

	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			parsed.ShowHelp = true
		case arg == "-V" || arg == "--version":
			parsed.ShowVersion = true
		case strings.HasPrefix(arg, "-"):
			// unknown flag
		case parsed.Subject == "":
			parsed.Subject = arg
		}
	}

	return parsed
}
