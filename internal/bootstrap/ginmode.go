package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches gin to release mode outside development, matching the
// APP_ENV values the config layer accepts.
func SetGinMode(env string) {
	switch env {
	case "production", "prod":
		gin.SetMode(gin.ReleaseMode)
	}
}
