// Package cmd implements the command-line interface for dWrite, the
// batched bulk writer for table stores. It provides a hierarchical command
// structure for writing data to a remote table store through the buffered
// writer.
//
// The package is organized into several subpackages:
//
//   - write: Commands for buffered write operations (put, del, load, perf)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See dwrite -help for a list of all commands.
package cmd
