package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crestadmit/portal/handlers"
	"github.com/crestadmit/portal/internal/clients"
	"github.com/crestadmit/portal/internal/config"
	"github.com/crestadmit/portal/internal/dashboard/handler"
	"github.com/crestadmit/portal/internal/database"
	"github.com/crestadmit/portal/internal/deadlines"
	docrepo "github.com/crestadmit/portal/internal/documents/repository"
	docservice "github.com/crestadmit/portal/internal/documents/service"
	"github.com/crestadmit/portal/internal/oidc"
	"github.com/crestadmit/portal/internal/sessions"
	"github.com/crestadmit/portal/internal/storage"
	"github.com/crestadmit/portal/internal/users"
	"github.com/crestadmit/portal/pkg/logger"
	"github.com/crestadmit/portal/pkg/metrics"
	"github.com/crestadmit/portal/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: keycloak=%v mongo=%v redis=%v minio=%v", cfg.Keycloak.URL != "", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")

	// Sentry error reporting is optional; the capture middleware is a no-op
	// without a DSN.
	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Environment,
		}); err != nil {
			logger.Warnf("sentry init failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple; production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery + observability
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.PrometheusMetrics(), middleware.SentryCapture())

	// shared runtime vars used by handlers/readiness
	var verifier middleware.Verifier
	var userSvc *users.Service
	var sessionsSvc *sessions.Service

	// Connect to Redis early so the rate-limiter and token blacklist can use it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err == nil {
			sessions.SetBlacklistClient(redisClient)
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		if sessionsSvc == nil {
			deps["storage"] = false
			ready = false
		} else {
			deps["storage"] = true
			deps["users"] = (userSvc != nil)
		}

		if cfg.Keycloak.URL != "" {
			deps["oidc"] = verifier != nil
			if verifier == nil {
				ready = false
			}
		} else {
			deps["oidc"] = true
		}

		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Keycloak OIDC verifier
	ctx := context.Background()
	if cfg.Keycloak.URL != "" && cfg.Keycloak.ClientID != "" && cfg.Keycloak.Realm != "" {
		issuer := strings.TrimRight(cfg.Keycloak.URL, "/") + "/realms/" + cfg.Keycloak.Realm
		ver, err := oidc.NewVerifier(ctx, issuer, cfg.Keycloak.ClientID)
		if err != nil {
			logger.Warnf("failed to initialize OIDC verifier: %v", err)
		} else {
			verifier = ver
		}
	}

	// Optional insecure verifier for integration tests: parse token claims
	// without signature verification
	if verifier == nil && strings.ToLower(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN"))) == "true" {
		logger.Warn("enabling insecure OIDC verifier (integration mode)")
		verifier = oidc.NewInsecureVerifier()
	}

	// Prefer Redis-based sessions when available (fast, in-memory)
	if redisClient != nil {
		srepo := sessions.NewRedisRepository(redisClient, "session:")
		sessionsSvc = sessions.NewService(srepo)
		logger.Infof("Using Redis for session storage")
	}

	// Domain services default to in-memory stores and are swapped to Mongo
	// below when a connection succeeds. The seeded deadline table keeps the
	// dashboard usable in dev runs without Mongo.
	profileSvc := clients.NewService(clients.NewMemoryRepository())
	documentSvc := docservice.NewMemory()
	var deadlineTable deadlines.Repository = deadlines.NewMemoryRepository(deadlines.SeedTable())

	if cfg.MongoDB.URI != "" {
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			db := client.Database(cfg.MongoDB.Database)

			userSvc = users.NewService(users.NewMongoUserRepository(db.Collection("users")))
			profileSvc = clients.NewService(clients.NewMongoRepository(db.Collection("clients")))
			documentSvc = docservice.New(docrepo.NewMongoRepo(db.Collection("documents")))
			deadlineTable = deadlines.NewMongoRepository(db.Collection("deadlines"))

			// only create Mongo-backed session repo when Redis didn't already provide one
			if sessionsSvc == nil {
				sessionsSvc = sessions.NewService(sessions.NewMongoRepository(db.Collection("sessions")))
			}
		}
	}

	// Optional MinIO-backed attachment storage
	var store *storage.MinIOStorage
	if cfg.MinIO.Endpoint != "" {
		mcfg := &storage.MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Bucket:    cfg.MinIO.Bucket,
		}
		st, err := storage.NewMinIOStorage(mcfg)
		if err != nil {
			logger.Warnf("minio storage unavailable: %v", err)
		} else {
			store = st
			logger.Infof("MinIO attachment storage ready (bucket=%s)", cfg.MinIO.Bucket)
		}
	}

	// Register auth handlers if services are available
	if userSvc != nil && sessionsSvc != nil {
		h := handlers.NewAuthHandler(cfg, userSvc, sessionsSvc)
		h.Register(r.Group("/"))
	} else {
		logger.Warnf("auth handlers not registered because user/sessions services are unavailable")
	}
	handlers.RegisterSwagger(r)

	api := r.Group("/api/v1")
	if verifier != nil {
		api.Use(middleware.AuthMiddleware(verifier))
		api.GET("/me", func(c *gin.Context) {
			claims, _ := c.Get("claims")
			if userSvc != nil {
				if cm, ok := claims.(map[string]interface{}); ok {
					u, err := userSvc.UpsertFromClaims(c.Request.Context(), cm)
					if err == nil && u != nil {
						c.JSON(http.StatusOK, gin.H{"user": u})
						return
					}
				}
			}
			// fallback: return claims
			c.JSON(http.StatusOK, gin.H{"claims": claims})
		})
		handler.New(profileSvc, documentSvc, deadlineTable, store).Register(api)
	} else {
		api.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "OIDC not configured"})
		})
		logger.Warnf("dashboard routes not registered because no OIDC verifier is available")
	}

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Config summary: keycloak=%v mongo=%v redis=%v jwt_secret_set=%v", cfg.Keycloak.URL != "", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.JWT.Secret != "")
	logger.Infof("Starting portal service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
