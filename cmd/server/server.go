package server

import (
	"context"
	"fmt"
	"log/slog"

	"school-activities-system/config"
	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/logger"
	"school-activities-system/internal/global/middleware"
	internalOtel "school-activities-system/internal/global/otel"
	internalSentry "school-activities-system/internal/global/sentry"
	"school-activities-system/internal/module"
	"school-activities-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := internalSentry.Init(); err != nil {
		log.Error("Failed to init Sentry", "error", err)
	}

	database.Init()

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	if internalSentry.Enabled() {
		r.Use(internalSentry.Middleware())
	}
	r.Use(middleware.Recovery())

	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
		defer func() {
			if err := internalOtel.Shutdown(context.Background()); err != nil {
				log.Error("Failed to shutdown TracerProvider", "error", err)
			}
		}()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
