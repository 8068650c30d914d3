package app

import (
	"context"
	"log"
	"sync"
	"time"

	"portalchat/configs"
	"portalchat/internal/cache"
	"portalchat/internal/handlers"
	"portalchat/internal/repositories"
	"portalchat/internal/servers/database"
	"portalchat/internal/servers/http"
	"portalchat/internal/services"
	"portalchat/internal/tasks"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)

	employeeRepo := repositories.NewEmployeeRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	conversationRepo := repositories.NewConversationRepository(db)

	var identityCache services.IdentityCache
	if redisCache := app.identityCache(); redisCache != nil {
		identityCache = redisCache
		defer redisCache.Close()
	}
	cacheTTL := time.Duration(app.configs.Viper.GetInt("identity_cache.ttl_seconds")) * time.Second
	resolver := services.NewIdentityResolver(employeeRepo, identityCache, cacheTTL)

	chatService := services.NewChatService(messageRepo, conversationRepo, resolver)
	reconcileService := services.NewReconcileService(conversationRepo, resolver)

	runner := tasks.NewRunner(
		app.configs.Viper.GetString("redis.addr"),
		app.configs.Viper.GetInt("reconcile.interval_minutes"),
		app.configs.Viper.GetInt("reconcile.concurrency"),
		tasks.NewReconcileTaskHandler(reconcileService),
	)
	if err := runner.Start(); err != nil {
		log.Println("Background reconcile runner not started:", err)
	} else {
		defer runner.Shutdown()
	}

	restHandler := handlers.NewRestHandler(chatService, app.configs)

	http.NewHttpServer(app.ctx, app.configs, restHandler).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}

// identityCache probes redis once at startup; the resolver runs
// uncached when it is unreachable.
func (app *App) identityCache() *cache.RedisCache {
	redisCache := cache.NewRedisCache(app.redis)
	pingCtx, cancel := context.WithTimeout(app.ctx, 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Println("Redis unreachable, identity cache disabled:", err)
		return nil
	}
	return redisCache
}
