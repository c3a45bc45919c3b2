package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"giit-backend/internal/shared/middleware"
	"giit-backend/pkg/container"
)

const welcomeMessage = "Bienvenido a la API de GIIT"

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares; CORS được gắn ở http.Server
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
	})
	router.GET("/health", healthCheckHandler(c))

	router.POST("/login", c.AuthHandler.Login)

	setupRolRoutes(router, c)
	setupUsuarioRoutes(router, c)
	setupLineaRoutes(router, c)
	setupTipologiaRoutes(router, c)
	setupPublicacionRoutes(router, c)
	setupProductoRoutes(router, c)
	setupEventoRoutes(router, c)
	setupCarruselRoutes(router, c)

	return router
}

// collection đăng ký cả "/x" và "/x/" để client cũ không bị redirect
func collection(g *gin.RouterGroup, list, create gin.HandlerFunc) {
	for _, path := range []string{"", "/"} {
		g.GET(path, list)
		g.POST(path, create)
	}
}

// ========================================
// ROL ROUTES
// ========================================
func setupRolRoutes(r *gin.Engine, c *container.Container) {
	roles := r.Group("/roles")
	collection(roles, c.RolHandler.ListRoles, c.RolHandler.CreateRol)
	roles.GET("/:id", c.RolHandler.GetRol)
	roles.PUT("/:id", c.RolHandler.UpdateRol)
	roles.DELETE("/:id", c.RolHandler.DeleteRol)
}

// ========================================
// USUARIO ROUTES
// ========================================
func setupUsuarioRoutes(r *gin.Engine, c *container.Container) {
	usuarios := r.Group("/usuarios")
	collection(usuarios, c.UsuarioHandler.ListUsuarios, c.UsuarioHandler.CreateUsuario)
	usuarios.GET("/:id", c.UsuarioHandler.GetUsuario)
	usuarios.PUT("/:id", c.UsuarioHandler.UpdateUsuario)
	usuarios.DELETE("/:id", c.UsuarioHandler.DeleteUsuario)
}

// ========================================
// LINEA INVESTIGACION ROUTES
// ========================================
func setupLineaRoutes(r *gin.Engine, c *container.Container) {
	lineas := r.Group("/lineas-investigacion")
	collection(lineas, c.LineaHandler.ListLineas, c.LineaHandler.CreateLinea)
	lineas.GET("/:id", c.LineaHandler.GetLinea)
	lineas.PUT("/:id", c.LineaHandler.UpdateLinea)
	lineas.DELETE("/:id", c.LineaHandler.DeleteLinea)
}

// ========================================
// TIPOLOGIA ROUTES
// ========================================
func setupTipologiaRoutes(r *gin.Engine, c *container.Container) {
	tipologias := r.Group("/tipologias")
	collection(tipologias, c.TipologiaHandler.ListTipologias, c.TipologiaHandler.CreateTipologia)
	tipologias.GET("/:id", c.TipologiaHandler.GetTipologia)
	tipologias.PUT("/:id", c.TipologiaHandler.UpdateTipologia)
	tipologias.DELETE("/:id", c.TipologiaHandler.DeleteTipologia)
}

// ========================================
// PUBLICACION ROUTES
// ========================================
func setupPublicacionRoutes(r *gin.Engine, c *container.Container) {
	h := c.PublicacionHandler
	publicaciones := r.Group("/publicaciones")
	collection(publicaciones, h.ListPublicaciones, h.CreatePublicacion)
	publicaciones.GET("/:id", h.GetPublicacion)
	publicaciones.PUT("/:id", h.UpdatePublicacion)
	publicaciones.DELETE("/:id", h.DeletePublicacion)

	// Approval workflow
	publicaciones.PUT("/:id/aprobar", h.AprobarPublicacion)
	publicaciones.PUT("/:id/rechazar", h.RechazarPublicacion)
	publicaciones.PUT("/:id/estado", h.UpdateEstado)
}

// ========================================
// PRODUCTO ROUTES
// ========================================
func setupProductoRoutes(r *gin.Engine, c *container.Container) {
	h := c.ProductoHandler
	productos := r.Group("/productos")
	collection(productos, h.ListProductos, h.CreateProducto)
	productos.GET("/:id", h.GetProducto)
	productos.PUT("/:id", h.UpdateProducto)
	productos.DELETE("/:id", h.DeleteProducto)

	// estado_desarrollo
	productos.PUT("/:id/estado", h.UpdateEstadoDesarrollo)

	// Approval workflow
	productos.PUT("/:id/aprobar", h.AprobarProducto)
	productos.PUT("/:id/rechazar", h.RechazarProducto)
	productos.PUT("/:id/estado-aprobacion", h.UpdateEstadoAprobacion)
}

// ========================================
// EVENTO ROUTES
// ========================================
func setupEventoRoutes(r *gin.Engine, c *container.Container) {
	eventos := r.Group("/eventos")
	collection(eventos, c.EventoHandler.ListEventos, c.EventoHandler.CreateEvento)
	eventos.GET("/:id", c.EventoHandler.GetEvento)
	eventos.PUT("/:id", c.EventoHandler.UpdateEvento)
	eventos.DELETE("/:id", c.EventoHandler.DeleteEvento)
}

// ========================================
// CARRUSEL ROUTES
// ========================================
func setupCarruselRoutes(r *gin.Engine, c *container.Container) {
	carrusel := r.Group("/carrusel")
	collection(carrusel, c.CarruselHandler.ListFotos, c.CarruselHandler.CreateFoto)
	carrusel.GET("/:id", c.CarruselHandler.GetFoto)
	carrusel.PUT("/:id", c.CarruselHandler.UpdateFoto)
	carrusel.PUT("/:id/orden/:orden", c.CarruselHandler.ChangeOrden)
	carrusel.DELETE("/:id", c.CarruselHandler.DeleteFoto)
}

// ========================================
// HEALTH CHECK
// ========================================

// healthCheckHandler trả 503 khi database lỗi; Redis lỗi chỉ là degraded
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
