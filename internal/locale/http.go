package locale

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register attaches the content route to the given router group.
func Register(rg *gin.RouterGroup) {
	rg.GET("/content/:locale", func(c *gin.Context) {
		content, err := Lookup(c.Param("locale"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown locale"})
			return
		}
		c.JSON(http.StatusOK, content)
	})
}
