// Package blstoexec defines an in-memory pool of received BLS-to-execution change objects,
// kept sorted by validator index with at most one pending change per validator.
package blstoexec
