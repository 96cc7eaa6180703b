package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rosterhub/roster-backend/usecases"
)

func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases) *http.Server {
	addRoutes(router, uc)

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: conf.DefaultTimeout,
		ReadTimeout:  conf.DefaultTimeout,
		IdleTimeout:  conf.DefaultTimeout,
		Handler:      h2c.NewHandler(router, &http2.Server{}),
	}
}
