package internal

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/BinSquare/inferbench/dao/query"
	docs "github.com/BinSquare/inferbench/docs"
	"github.com/BinSquare/inferbench/internal/handler"
)

type Backend struct {
	R *gin.Engine
}

func Register() *Backend {
	s := new(Backend)
	s.R = gin.Default()

	// Health check
	s.R.GET("/v1/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})

	// Prometheus metrics
	s.R.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register custom routes
	s.RegisterService()

	// Swagger
	docs.SwaggerInfo.BasePath = "/"
	s.R.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return s
}

func (b *Backend) RegisterService() {
	// Enable CORS for http://localhost:XXXX in debug mode
	if gin.Mode() == gin.DebugMode {
		fe := os.Getenv("INFERBENCH_FE_PORT")
		if fe != "" {
			url := "http://localhost:" + fe
			corsConf := cors.DefaultConfig()
			corsConf.AllowOrigins = []string{url}
			b.R.Use(cors.New(corsConf))
		}
	}

	conf := &handler.RegisterConfig{DB: query.GetDB()}
	managers := registerManagers(conf)

	v1 := b.R.Group("/v1")
	for _, mgr := range managers {
		mgr.RegisterPublic(v1.Group("/" + mgr.GetName()))
	}
}
