package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"giit-backend/internal/config"
	infraCache "giit-backend/internal/infrastructure/cache"
	"giit-backend/internal/infrastructure/database"
	"giit-backend/internal/infrastructure/seed"
	"giit-backend/internal/shared/approval"
	"giit-backend/pkg/cache"

	authHandler "giit-backend/internal/domains/auth/handler"
	authService "giit-backend/internal/domains/auth/service"
	carruselHandler "giit-backend/internal/domains/carrusel/handler"
	carruselRepo "giit-backend/internal/domains/carrusel/repository"
	carruselService "giit-backend/internal/domains/carrusel/service"
	eventoHandler "giit-backend/internal/domains/evento/handler"
	eventoRepo "giit-backend/internal/domains/evento/repository"
	eventoService "giit-backend/internal/domains/evento/service"
	lineaHandler "giit-backend/internal/domains/linea/handler"
	lineaRepo "giit-backend/internal/domains/linea/repository"
	lineaService "giit-backend/internal/domains/linea/service"
	productoHandler "giit-backend/internal/domains/producto/handler"
	productoRepo "giit-backend/internal/domains/producto/repository"
	productoService "giit-backend/internal/domains/producto/service"
	publicacionHandler "giit-backend/internal/domains/publicacion/handler"
	publicacionRepo "giit-backend/internal/domains/publicacion/repository"
	publicacionService "giit-backend/internal/domains/publicacion/service"
	rolHandler "giit-backend/internal/domains/rol/handler"
	rolRepo "giit-backend/internal/domains/rol/repository"
	rolService "giit-backend/internal/domains/rol/service"
	tipologiaHandler "giit-backend/internal/domains/tipologia/handler"
	tipologiaRepo "giit-backend/internal/domains/tipologia/repository"
	tipologiaService "giit-backend/internal/domains/tipologia/service"
	usuarioHandler "giit-backend/internal/domains/usuario/handler"
	usuarioRepo "giit-backend/internal/domains/usuario/repository"
	usuarioService "giit-backend/internal/domains/usuario/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả dependencies của application.
// Lifecycle: singleton, build một lần trong Serve().
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache // nil khi Redis không kết nối được

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	RolRepo         rolRepo.Repository
	UsuarioRepo     usuarioRepo.Repository
	LineaRepo       lineaRepo.Repository
	TipologiaRepo   tipologiaRepo.Repository
	PublicacionRepo publicacionRepo.Repository
	ProductoRepo    productoRepo.Repository
	EventoRepo      eventoRepo.Repository
	CarruselRepo    carruselRepo.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	Approval *approval.Engine

	RolService         rolService.Service
	UsuarioService     usuarioService.Service
	LineaService       lineaService.Service
	TipologiaService   tipologiaService.Service
	PublicacionService publicacionService.Service
	ProductoService    productoService.Service
	EventoService      eventoService.Service
	CarruselService    carruselService.Service
	AuthService        authService.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	RolHandler         *rolHandler.RolHandler
	UsuarioHandler     *usuarioHandler.UsuarioHandler
	LineaHandler       *lineaHandler.LineaHandler
	TipologiaHandler   *tipologiaHandler.TipologiaHandler
	PublicacionHandler *publicacionHandler.PublicacionHandler
	ProductoHandler    *productoHandler.ProductoHandler
	EventoHandler      *eventoHandler.EventoHandler
	CarruselHandler    *carruselHandler.CarruselHandler
	AuthHandler        *authHandler.AuthHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer build toàn bộ dependency graph theo thứ tự:
// config -> database -> schema -> seed -> redis -> repositories -> services -> handlers
func NewContainer() (*Container, error) {
	log.Info().Msg("[CONTAINER] Initializing...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("[CONTAINER] Config loaded")

	// ========================================
	// STEP 2: DATABASE + SCHEMA
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := database.EnsureSchema(ctx, db.Pool); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	// ========================================
	// STEP 3: DEFAULT DATA
	// ========================================
	// Seed lỗi không chặn startup
	if cfg.Seed.Enabled {
		if _, err := seed.Run(ctx, db.Pool, 0); err != nil {
			log.Error().Err(err).Msg("[SEED] Failed to insert default data")
		}
	}

	// ========================================
	// STEP 4: CACHE
	// ========================================
	c.initCache()

	// ========================================
	// STEP 5-7: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("[CONTAINER] Initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

// initCache để c.Cache là nil interface khi Redis down, carrusel chạy không cache
func (c *Container) initCache() {
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisCache.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("[REDIS] Connection failed (non-critical), caching disabled")
		_ = redisCache.Close()
		return
	}
	c.Cache = redisCache
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.RolRepo = rolRepo.NewPostgresRepository(pool)
	c.UsuarioRepo = usuarioRepo.NewPostgresRepository(pool)
	c.LineaRepo = lineaRepo.NewPostgresRepository(pool)
	c.TipologiaRepo = tipologiaRepo.NewPostgresRepository(pool)
	c.PublicacionRepo = publicacionRepo.NewPostgresRepository(pool)
	c.ProductoRepo = productoRepo.NewPostgresRepository(pool)
	c.EventoRepo = eventoRepo.NewPostgresRepository(pool)
	c.CarruselRepo = carruselRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	// usuario repository là nguồn tên người duyệt cho cả hai state machine
	c.Approval = approval.NewEngine(c.UsuarioRepo)

	c.RolService = rolService.NewRolService(c.RolRepo)
	c.UsuarioService = usuarioService.NewUsuarioService(c.UsuarioRepo, c.RolRepo, usuarioService.Options{
		StrictDelete: c.Config.StrictUserDelete(),
	})
	c.LineaService = lineaService.NewLineaService(c.LineaRepo, c.UsuarioRepo)
	c.TipologiaService = tipologiaService.NewTipologiaService(c.TipologiaRepo)

	c.PublicacionService = publicacionService.NewPublicacionService(
		c.PublicacionRepo,
		c.UsuarioRepo,
		c.LineaService,
		c.UsuarioRepo,
		c.Approval,
	)
	c.ProductoService = productoService.NewProductoService(c.ProductoRepo, productoService.Deps{
		Usuarios:   c.UsuarioRepo,
		Lineas:     c.LineaService,
		Tipologias: c.TipologiaRepo,
		Approvers:  c.UsuarioRepo,
		Engine:     c.Approval,
	})

	c.EventoService = eventoService.NewEventoService(c.EventoRepo, c.UsuarioRepo)
	c.CarruselService = carruselService.NewCarruselService(c.CarruselRepo, c.Cache, c.Config.Redis.CacheTTL)
	c.AuthService = authService.NewAuthService(c.UsuarioRepo)
}

func (c *Container) initHandlers() {
	c.RolHandler = rolHandler.NewRolHandler(c.RolService)
	c.UsuarioHandler = usuarioHandler.NewUsuarioHandler(c.UsuarioService)
	c.LineaHandler = lineaHandler.NewLineaHandler(c.LineaService)
	c.TipologiaHandler = tipologiaHandler.NewTipologiaHandler(c.TipologiaService)
	c.PublicacionHandler = publicacionHandler.NewPublicacionHandler(c.PublicacionService)
	c.ProductoHandler = productoHandler.NewProductoHandler(c.ProductoService)
	c.EventoHandler = eventoHandler.NewEventoHandler(c.EventoService)
	c.CarruselHandler = carruselHandler.NewCarruselHandler(c.CarruselService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("[CONTAINER] Cleaning up resources...")

	if c.DB != nil {
		_ = c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("[REDIS] Failed to close")
		} else {
			log.Info().Msg("[REDIS] Connections closed")
		}
	}
}
