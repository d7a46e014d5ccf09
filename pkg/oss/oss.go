package oss

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"vidtube.com/config"
	"vidtube.com/pkg/constants"
)

// Media storage contract: Store returns a permanent URL plus the object name
// used later for delete-by-identifier. Objects are owned by exactly one
// document; the owning document's delete triggers RemoveVideo/RemoveImage.

func UploadVideo(ctx context.Context, localPath string, vid int64) (url, objectName string, err error) {
	if minioClient == nil {
		return "", "", errors.New("minio client not initialized")
	}
	if err := ensureBucket(ctx, constants.VideoBucket); err != nil {
		return "", "", err
	}

	objectName = fmt.Sprintf("video/%d%s", vid, normalizeExt(localPath, ".mp4"))
	_, err = minioClient.FPutObject(ctx, constants.VideoBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		return "", "", errors.WithMessage(err, "failed to upload video")
	}
	return objectURL(constants.VideoBucket, objectName), objectName, nil
}

func UploadImage(ctx context.Context, localPath string, id int64) (url, objectName string, err error) {
	if minioClient == nil {
		return "", "", errors.New("minio client not initialized")
	}
	if err := ensureBucket(ctx, constants.PictureBucket); err != nil {
		return "", "", err
	}

	objectName = fmt.Sprintf("thumbnail/%d%s", id, normalizeExt(localPath, ".jpg"))
	_, err = minioClient.FPutObject(ctx, constants.PictureBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: contentTypeFor(objectName)})
	if err != nil {
		return "", "", errors.WithMessage(err, "failed to upload image")
	}
	return objectURL(constants.PictureBucket, objectName), objectName, nil
}

func RemoveVideo(ctx context.Context, objectName string) error {
	return remove(ctx, constants.VideoBucket, objectName)
}

func RemoveImage(ctx context.Context, objectName string) error {
	return remove(ctx, constants.PictureBucket, objectName)
}

func remove(ctx context.Context, bucket, objectName string) error {
	if minioClient == nil {
		return errors.New("minio client not initialized")
	}
	if objectName == "" {
		return nil
	}
	return minioClient.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

func ensureBucket(ctx context.Context, bucket string) error {
	exists, err := minioClient.BucketExists(ctx, bucket)
	if err != nil {
		return errors.WithMessage(err, "check bucket error")
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.WithMessage(err, "create bucket error")
		}
	}
	return nil
}

func objectURL(bucket, objectName string) string {
	scheme := "http"
	if config.ConfigInfo.Minio.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.ConfigInfo.Minio.Endpoint, bucket, objectName)
}

func normalizeExt(localPath, fallback string) string {
	ext := strings.ToLower(filepath.Ext(localPath))
	if ext == "" {
		return fallback
	}
	return ext
}

func contentTypeFor(objectName string) string {
	switch strings.ToLower(filepath.Ext(objectName)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
