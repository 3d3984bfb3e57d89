// Package blobstore abstracts snapshot persistence over byte-addressable
// backends: local files, in-memory maps for tests, and S3-compatible object
// storage via the minio subpackage.
package blobstore
