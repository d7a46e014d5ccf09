package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	playlistdb "vidtube.com/cmd/playlist/dal/db"
	relationdb "vidtube.com/cmd/relation/dal/db"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/config"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"
)

func Init() {
	config.Init()
	if err := utils.InitSnowflake(0, 0); err != nil {
		hlog.Fatalf("snowflake init failed: %v", err)
	}
	videodb.Init()
	userdb.Init()
	interactiondb.Init()
	relationdb.Init()
	playlistdb.Init()
	tweetdb.Init()
	if err := oss.InitMinio(); err != nil {
		hlog.Fatalf("minio init failed: %v", err)
	}
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"statusCode": errno.ServiceErrCode,
				"message":    fmt.Sprintf("internal error: %v", err),
				"success":    false,
			})
		})))

	register(r)

	r.Spin()
}
