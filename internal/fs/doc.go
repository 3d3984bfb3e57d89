// Package fs abstracts file system access behind a small interface so that
// snapshot I/O can be exercised against injected failures in tests.
package fs
