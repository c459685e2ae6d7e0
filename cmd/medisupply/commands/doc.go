// Package commands defines the medisupply CLI, a thin shell over the
// validator and format packages for checking field data from scripts.
//
// Commands
//
//   - validate <rule> <value>           Exit status 1 when the value fails the rule
//   - format <kind> <value> [--max n]   Print the display form of a value
//   - labels [--lang]                   Print the status and priority labels
//
// The root command loads config.App from the environment (and an optional
// --env-file) and builds the logger before any subcommand runs.
package commands
