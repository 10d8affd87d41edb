// Package commands defines the preptogether CLI and wires dependencies for subcommands.
//
// Commands
//
//   - register     Create an account (prompts for anything not given as a flag)
//   - login        Log in and show your profile
//   - logout       End the session
//   - profile      Show your profile
//   - nav          Print the navigation bar, or open a view
//   - status       Show whether you are logged in
//   - professions  List professions and their technologies
//
// # Implementation
//
// The root command loads configuration (config file, then flags), sets up
// logging and builds the dependency graph (API client, file stores, session,
// views) before any subcommand runs. Views render to the command's output.
package commands
