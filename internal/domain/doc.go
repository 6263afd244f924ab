// Package domain contains the core model for uniqr: lines, their comparison
// keys, the run accumulated between flushes, configuration and the error
// taxonomy.
//
// The domain is I/O-agnostic: it does not open files or touch the standard
// streams. Infra adapters produce and consume these types.
package domain
