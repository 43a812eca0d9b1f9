// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates flags and the project configuration file into an app.App and
// dispatches to one of the subcommands.
package cli
