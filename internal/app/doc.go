// Package app wires application dependencies for the CLI.
//
// LoadConfig merges the YAML config file and command-line flags. NewWire
// builds the API client, file stores, session and views from the result and
// exposes them to the commands. The Router is the Navigator every flow uses
// to show its next view.
package app
