// Package minio persists snapshot blobs to MinIO and other S3-compatible
// object storage.
package minio
