package routes

import (
	"DayflowGo/controllers"
	"DayflowGo/middleware"
	"DayflowGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, client *services.DeepseekClient) {
	authController := controllers.AuthController{}
	syncController := controllers.SyncController{}
	taskController := controllers.NewTaskController()
	scheduleController := controllers.NewScheduleController()
	recurringController := controllers.NewRecurringController()
	aiController := controllers.NewAIController(services.NewScheduleService(client))

	// Public routes (no auth)
	public := r.Group("/api/v1")
	{
		public.POST("/auth/test-user", authController.CreateTestUser)
	}

	// Authenticated routes
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/sync/tasks", syncController.SyncTasks)
		private.POST("/sync/events", syncController.SyncEvents)
		private.POST("/sync/time-blocks", syncController.SyncTimeBlocks)
		private.GET("/sync/updates", syncController.GetUpdates)

		private.POST("/tasks/:id/complete", taskController.CompleteTask)
		private.POST("/tasks/split", taskController.SplitTask)
		private.POST("/tasks/:id/merge-subtasks", taskController.MergeSubtasks)
		private.POST("/focus-sessions", taskController.RecordFocusSession)

		private.GET("/schedule/slots", scheduleController.GetSlots)
		private.GET("/schedule/conflicts", scheduleController.GetConflicts)
		private.GET("/schedule/layout", scheduleController.GetLayout)
		private.GET("/schedule/time-blocks", scheduleController.GetTimeBlocks)
		private.GET("/schedule/export.ics", scheduleController.ExportICS)

		private.POST("/recurring/sync", recurringController.SyncForDate)
		private.DELETE("/recurring/:id", recurringController.DeleteRule)
		private.GET("/recurring/:id/next", recurringController.NextOccurrence)

		private.POST("/schedule/proposal", aiController.ProposeSchedule)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
