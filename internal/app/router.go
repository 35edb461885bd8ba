package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"balanceed_backend/docs"
	"balanceed_backend/internal/config"
	"balanceed_backend/internal/middleware"
	"balanceed_backend/internal/model"
	"balanceed_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// The catalog is browsable without an account; instructors see
		// drafts when they send a token.
		public.GET("/courses", middleware.TryAuthMiddleware(a.Config), c.course.ListCourses)
		public.GET("/courses/:id", c.course.GetCourse)
		public.GET("/courses/:id/lessons", c.course.ListCourseLessons)
		public.GET("/lessons/:id", c.lesson.GetLesson)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.user.GetProfile)
	rg.GET("/users/stats", c.user.GetStats)
	rg.GET("/users/leaderboard", c.user.GetLeaderboard)
	rg.GET("/users/achievements", c.user.ListUserAchievements)
	rg.GET("/achievements", c.user.ListAchievements)

	rg.POST("/courses/:id/enroll", c.progress.Enroll)
	rg.GET("/progress", c.progress.GetProgress)
	rg.GET("/progress/:courseId", c.progress.GetCourseProgress)
	rg.POST("/progress/update", c.progress.UpdateProgress)

	rg.POST("/quiz/submit", c.quiz.SubmitQuiz)
	rg.GET("/quiz/attempts/:lessonId", c.quiz.GetAttempts)

	rg.GET("/search/videos", c.ai.SearchVideos)
}

func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("")
	instructor.Use(middleware.RoleMiddleware(model.Instructor))
	{
		instructor.POST("/courses", c.course.CreateCourse)
		instructor.PUT("/courses/:id", c.course.UpdateCourse)
		instructor.DELETE("/courses/:id", c.course.DeleteCourse)
		instructor.POST("/courses/:id/publish", c.course.PublishCourse)

		instructor.POST("/lessons", c.lesson.CreateLesson)
		instructor.PUT("/lessons/:id", c.lesson.UpdateLesson)
		instructor.DELETE("/lessons/:id", c.lesson.DeleteLesson)

		instructor.POST("/lessons/:id/questions", c.lesson.CreateQuestion)
		instructor.PUT("/questions/:id", c.lesson.UpdateQuestion)
		instructor.DELETE("/questions/:id", c.lesson.DeleteQuestion)

		instructor.POST("/ai/lesson-content", c.ai.GenerateLessonContent)
		instructor.POST("/upload/thumbnail", c.content.UploadThumbnail)
		instructor.POST("/upload/video", c.content.UploadVideo)
	}
}
