// Package app contains the core application logic. It owns the logger and
// the project configuration, runs analyses through the pipeline and turns
// their results into reports, decoupled from any specific entrypoint like
// the CLI or the file watcher.
package app
