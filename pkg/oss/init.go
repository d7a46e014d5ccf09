package oss

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"vidtube.com/config"
)

var minioClient *minio.Client

func InitMinio() error {
	conf := config.ConfigInfo.Minio

	var err error
	minioClient, err = minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		hlog.Errorf("failed to create minio client: %v", err)
		return err
	}

	hlog.Infof("connected to minio at %s", conf.Endpoint)
	return nil
}
