package server

import (
	"net/http"

	"shoe-tracker/internal/auth"
	"shoe-tracker/internal/config"
	"shoe-tracker/internal/database"
	"shoe-tracker/internal/handlers"
	"shoe-tracker/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func NewRouter(cfg *config.Config, db *database.Stores, log *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("shoe_session", store))

	h := handlers.New(cfg, db, log)

	// HEALTHCHECK + METRICS
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// AUTH
	r.POST("/api/login",
		middleware.RateLimitPerIP(rate.Limit(cfg.LoginRateRPS), cfg.LoginRateBurst),
		h.Login,
	)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	api.GET("/logout", h.Logout)

	// КАТАЛОГ МОДЕЛЕЙ
	api.GET("/shoe_models", middleware.RequireOp(auth.OpViewModels), h.ListModels)
	api.GET("/shoe_model_details/:model_name", middleware.RequireOp(auth.OpViewModels), h.ModelDetails)
	api.POST("/add_shoe_model", middleware.RequireOp(auth.OpCreateModel), h.AddModel)
	api.PUT("/edit_shoe_model/:id", middleware.RequireOp(auth.OpEditModel), h.EditModel)
	api.DELETE("/delete_shoe_model/:id", middleware.RequireOp(auth.OpDeleteModel), h.DeleteModel)

	// ЖУРНАЛ ВЫПУСКА
	api.POST("/shoe_entry", middleware.RequireOp(auth.OpRecordUnit), h.ShoeEntry)
	api.GET("/view_shoes", middleware.RequireOp(auth.OpViewUnits), h.ViewShoes)

	// ОТЧЁТЫ
	api.GET("/shoe_creation_data", middleware.RequireOp(auth.OpViewReports), h.CreationData)
	api.GET("/shoe_models_and_operators", middleware.RequireOp(auth.OpViewReports), h.ModelsAndOperators)

	// УПРАВЛЕНИЕ УЧЁТКАМИ
	api.POST("/create_account", middleware.RequireOp(auth.OpCreateAccount), h.CreateAccount)
	api.GET("/users", middleware.RequireOp(auth.OpListAccounts), h.ListUsers)
	api.POST("/update_user_role", middleware.RequireOp(auth.OpUpdateRole), h.UpdateUserRole)
	api.POST("/delete_user", middleware.RequireOp(auth.OpDeleteAccount), h.DeleteUser)

	return r
}
