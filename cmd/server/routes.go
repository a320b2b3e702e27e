package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/darksuei/pitci-server/internal/interfaces/http/handlers"
	"github.com/darksuei/pitci-server/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	pitchHandler   *handlers.PitchHandler
	meetingHandler *handlers.MeetingHandler
	adminHandler   *handlers.AdminHandler
	awardHandler   *handlers.AwardHandler
	alertHandler   *handlers.AlertHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/verify-code", d.authHandler.VerifyCode)
			auth.POST("/login", d.authHandler.Login)
		}

		// User settings and meeting routes (protected)
		user := v1.Group("/user")
		user.Use(d.authMiddleware)
		{
			user.PATCH("/notification-settings", d.userHandler.UpdateNotificationSettings)
			user.POST("/schedule-meeting", d.meetingHandler.ScheduleMeeting)
			user.GET("/get-scheduled-meetings", d.meetingHandler.GetScheduledMeetings)
		}

		// Pitch routes (protected)
		pitch := v1.Group("/pitch")
		pitch.Use(d.authMiddleware)
		{
			pitch.POST("/initiate-pitch", d.pitchHandler.InitiatePitch)
			pitch.PATCH("/update-pitch/:id/:step", d.pitchHandler.UpdatePitchStep)
			pitch.POST("/submit-pitch/:id", d.pitchHandler.SubmitPitch)
			pitch.DELETE("/delete-pitch/:id", d.pitchHandler.DeletePitch)
			pitch.GET("/:id", d.pitchHandler.GetPitch)
		}

		// Award routes: reads and member actions (protected)
		award := v1.Group("/award")
		award.Use(d.authMiddleware)
		{
			award.GET("/:id", d.awardHandler.GetAward)
			award.POST("/nominate-for-award", d.awardHandler.NominateForAward)
			award.PATCH("/vote-for-nominee", d.awardHandler.VoteForNominee)
			// POST kept for clients that predate the PATCH route
			award.POST("/vote-for-nominee", d.awardHandler.VoteForNominee)
		}

		// Award management (admin only)
		awardAdmin := v1.Group("/award")
		awardAdmin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			awardAdmin.POST("/create-award", d.awardHandler.CreateAward)
			awardAdmin.DELETE("/:id", d.awardHandler.DeleteAward)
			awardAdmin.POST("/toggle-award-status", d.awardHandler.ToggleAwardStatus)
		}

		// Alert routes (protected)
		alert := v1.Group("/alert")
		alert.Use(d.authMiddleware)
		{
			alert.GET("", d.alertHandler.ListAlerts)
			alert.PATCH("/read/:id", d.alertHandler.MarkAlertRead)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.PATCH("/review-pitch", d.adminHandler.ReviewPitch)
			admin.PATCH("/review-meeting-schedule", d.adminHandler.ReviewMeeting)
			admin.GET("/get-all-scheduled-meetings", d.adminHandler.GetAllScheduledMeetings)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
