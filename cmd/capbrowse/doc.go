// Package main hosts the capbrowse CLI entrypoint and command graph.
//
// The Cobra-based command tree loads the annotated sample collection once per
// invocation and exposes it as a paged table (list), a single-record dump
// (show), an interactive terminal browser (browse) and a local page server
// (serve). It centralizes .env loading, configuration resolution, command-line
// overrides and logger setup so subcommands only deal with presentation.
//
// Filtering, pagination, rendering and loading live in internal packages;
// commands here translate flags into browse state and print the result.
package main
