// Package main hosts the lssgen CLI.
//
// Commands pick a configuration (a catalog category, a file or stdin), load the
// split definition registry and hand both to the converter. Config resolution,
// logging setup and asset selection (embedded or --assets DIR) happen once in
// commandContext so subcommands only deal with their own flags and output.
package main
