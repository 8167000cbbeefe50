package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ticketboard/internal/infrastructure/auth"
	"ticketboard/internal/infrastructure/config"
	"ticketboard/internal/infrastructure/permission"
	"ticketboard/internal/infrastructure/pubsub"
	"ticketboard/internal/infrastructure/ratelimit"
	"ticketboard/internal/interfaces/http/middleware"
	"ticketboard/internal/shared/db"
	"ticketboard/internal/shared/logger"
	"ticketboard/internal/shared/services/markdown"
)

// Container wires infrastructure, repositories, use cases and handlers, and
// owns the resources released by Shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    ratelimit.RateLimiter

	jwtSvc    *auth.JWTService
	enforcer  *permission.Enforcer
	txManager *db.TransactionManager
	publisher *pubsub.KafkaTicketEventPublisher
	renderer  markdown.Renderer
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gormDB,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.ucs = newUseCases(c)
	c.hdlrs = newHandlers(c.ucs, log)

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	c.repos = newRepositories(c.db)
	c.txManager = db.NewTransactionManager(c.db)
	c.renderer = markdown.NewRenderer()

	enforcer, err := permission.NewEnforcer(c.log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to create ticket enforcer: %w", err)
	}
	c.enforcer = enforcer

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.repos.userRepo, c.log)

	c.publisher = pubsub.NewKafkaTicketEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, c.log.Named("events"))

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
		c.rateLimiter = ratelimit.NewRedisRateLimiter(client)
	} else {
		c.log.Infow("redis disabled, mutation rate limiting is off")
	}

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return client, nil
}

// Shutdown flushes the event producer and closes Redis.
func (c *Container) Shutdown() {
	if err := c.publisher.Close(); err != nil {
		c.log.Errorw("failed to close ticket event publisher", "error", err)
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close Redis client", "error", err)
		}
	}
}
