// Package minio provides a blobstore.BlobStore backed by MinIO or any
// S3-compatible object store.
//
//	client, _ := minio.New("play.min.io", &minio.Options{
//		Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := miniostore.NewStore(client, "snapshots", "bitmaps/")
package minio
