// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nutribalance/internal/delivery/http/middleware"
	"nutribalance/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler      *handler.ProfileHandler
	MealHandler         *handler.MealHandler
	ExerciseHandler     *handler.ExerciseHandler
	SummaryHandler      *handler.SummaryHandler
	AdviceHandler       *handler.AdviceHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler      *handler.ProfileHandler
	mealHandler         *handler.MealHandler
	exerciseHandler     *handler.ExerciseHandler
	summaryHandler      *handler.SummaryHandler
	adviceHandler       *handler.AdviceHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		mealHandler:         params.MealHandler,
		exerciseHandler:     params.ExerciseHandler,
		summaryHandler:      params.SummaryHandler,
		adviceHandler:       params.AdviceHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Body-metrics profile
	e.GET("/profile", r.profileHandler.GetProfile)
	e.PATCH("/profile", r.profileHandler.UpdateProfile)

	// Meal log
	mealGroup := e.Group("/meals")
	{
		mealGroup.GET("", r.mealHandler.ListMeals)
		mealGroup.POST("", r.mealHandler.RecordMeal)
		mealGroup.DELETE("/:id", r.mealHandler.DeleteMeal)
	}

	// Exercise log
	exerciseGroup := e.Group("/exercises")
	{
		exerciseGroup.GET("", r.exerciseHandler.ListExercises)
		exerciseGroup.POST("", r.exerciseHandler.RecordExercise)
		exerciseGroup.DELETE("/:id", r.exerciseHandler.DeleteExercise)
	}

	// Derived energy balance
	e.GET("/summary", r.summaryHandler.GetSummary)

	// Static reference tables
	referenceGroup := e.Group("/reference")
	{
		referenceGroup.GET("/foods", r.summaryHandler.SearchFoods)
		referenceGroup.GET("/exercises", r.summaryHandler.ListExerciseTypes)
		referenceGroup.GET("/activity-levels", r.summaryHandler.ListActivityLevels)
	}

	// Coaching
	adviceGroup := e.Group("/advice")
	{
		adviceGroup.POST("", r.adviceHandler.Ask)
		adviceGroup.POST("/photo", r.adviceHandler.AnalyzeMealPhoto)
	}
}
