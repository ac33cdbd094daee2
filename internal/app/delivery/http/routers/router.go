package routers

import (
	"fmt"
	"time"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	timeSlotController *controllers.TimeSlotController,
	prescriptionController *controllers.PrescriptionController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Global per-IP rate limiting using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	writeLimiter := NewWriteLimiter(internalConfig)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceTimeSlots, func(r chi.Router) {
				attachTimeSlotRoutes(r, middlewares, writeLimiter, timeSlotController)
			})

			r.Route("/"+constvars.ResourcePrescriptions, func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, writeLimiter, prescriptionController)
			})
		})
	})
}

// NewWriteLimiter builds the blocking limiter applied to write endpoints.
func NewWriteLimiter(internalConfig *config.InternalConfig) *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(
		internalConfig.App.WriteRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.WriteBlockTimeInMinute)*time.Minute,
	)
}
