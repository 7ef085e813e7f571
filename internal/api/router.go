package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/melodia-school/melodia-back/docs"
	"github.com/melodia-school/melodia-back/internal/auth"
	"github.com/melodia-school/melodia-back/internal/config"
	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/pkg/response"
)

// @title           Melodia back-office API
// @version         1.0
// @description     Administrative backend for the Melodia music school: registry, lessons, discounts, payments and invoicing reports.
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func SetupRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	auth.InitGoogle(cfg)

	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			response.Internal(c, "db_ping_error")
			return
		}
		response.OK(c, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/login", auth.LoginHandler(cfg, logger))
	r.POST("/auth/refresh", auth.RefreshHandler(cfg, logger))
	r.GET("/auth/google/login", auth.GoogleLoginHandler())
	r.GET("/auth/google/callback", auth.GoogleCallbackHandler(cfg, logger))

	v1 := r.Group("/api/v1")
	v1.Use(auth.Middleware(cfg))
	{
		v1.POST("/schools", CreateSchool)
		v1.GET("/schools", ListSchools)

		v1.POST("/students", CreateStudent)
		v1.GET("/students", ListStudents)
		v1.GET("/students/:id", GetStudent)
		v1.PUT("/students/:id", UpdateStudent)
		v1.DELETE("/students/:id", DeleteStudent)

		v1.POST("/teachers", CreateTeacher)
		v1.GET("/teachers", ListTeachers)
		v1.GET("/teachers/:id", GetTeacher)
		v1.PUT("/teachers/:id", UpdateTeacher)
		v1.DELETE("/teachers/:id", DeleteTeacher)
		v1.GET("/teachers/:id/lessons", ListTeacherLessons)

		v1.POST("/rates", CreateRate)
		v1.GET("/rates", ListRates)
		v1.PUT("/rates/:id", UpdateRate)
		v1.DELETE("/rates/:id", DeleteRate)

		v1.POST("/discount-rules", CreateDiscountRule)
		v1.GET("/discount-rules", ListDiscountRules)
		v1.PUT("/discount-rules/:id", UpdateDiscountRule)
		v1.DELETE("/discount-rules/:id", DeleteDiscountRule)

		v1.POST("/lessons", CreateLesson)
		v1.GET("/lessons/:id", GetLesson)
		v1.PUT("/lessons/:id", UpdateLesson)
		v1.DELETE("/lessons/:id", DeleteLesson)

		v1.GET("/students/:id/lessons", ListStudentLessons)
		v1.GET("/students/:id/ledger", StudentLedger(logger))
		v1.GET("/students/:id/ledger/summary", StudentLedgerSummary(logger))
		v1.GET("/students/:id/export", ExportStudentWorkbook(logger))

		v1.POST("/students/:id/payments", RecordPayment(logger))
		v1.GET("/students/:id/payments", ListStudentPayments)
	}

	return r
}
