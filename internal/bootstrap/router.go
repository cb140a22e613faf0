package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rozgar-darpan/go-mgnrega-backend/config"
	httpapi "github.com/rozgar-darpan/go-mgnrega-backend/internal/api/http"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/api/http/middleware"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/districts/catalog"
	districthttp "github.com/rozgar-darpan/go-mgnrega-backend/internal/districts/http"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/gate"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/locale"
	"github.com/rozgar-darpan/go-mgnrega-backend/internal/metrics"
	perfrepo "github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/repository"
	perfservice "github.com/rozgar-darpan/go-mgnrega-backend/internal/performance/service"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Log         *zap.SugaredLogger
	Redis       *redis.Client
	DB          *sql.DB // nil when the snapshot store is disabled
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(gate.SecurityHeaders())

	if len(dep.Config.CORS.Origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.Config.CORS.Origins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			MaxAge:           24 * time.Hour,
			AllowCredentials: false,
		}))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")

	limiter := gate.NewLimiter(dep.Redis, dep.Config.RateLimit.Max, dep.Config.RateLimit.Window, dep.Log)
	api.Use(limiter.Middleware())

	var fetcher perfservice.Fetcher
	if dep.Config.Upstream.APIKey != "" {
		fetcher = perfservice.NewDataGovClient(dep.Config.Upstream.BaseURL, dep.Config.Upstream.APIKey)
	} else {
		dep.Log.Warn("DATA_GOV_API_KEY not set, serving deterministic mock data")
		fetcher = perfservice.NewMockProvider()
	}

	var snapshots perfservice.SnapshotStore
	if dep.DB != nil {
		snapshots = perfrepo.NewSnapshotRepository(dep.DB)
	}

	cache := perfservice.NewResponseCache(dep.Config.Cache.TTL)
	perf := perfservice.New(fetcher, cache, snapshots, dep.Config.Upstream.ResourceID, dep.Log)

	cat := catalog.New()
	districtHandler := districthttp.NewHandler(cat, perf, dep.Log)
	districtHandler.Register(api)

	locale.Register(api)

	return r
}
