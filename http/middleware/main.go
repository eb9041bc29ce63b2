package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/delcom/angkasa-api/http/controller"
)

type Middlewares struct {
	CORSMiddleware  gin.HandlerFunc
	ErrorMiddleware gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) *Middlewares {
	return &Middlewares{
		CORSMiddleware:  CORSMiddleware(ctrl.Config.EnvConfig),
		ErrorMiddleware: ErrorMiddleware(ctrl.Infra.Logger),
	}
}
