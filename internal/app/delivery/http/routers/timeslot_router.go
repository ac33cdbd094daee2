package routers

import (
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTimeSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, writeLimiter *middlewares.RateLimiter, timeSlotController *controllers.TimeSlotController) {
	router.With(middlewares.Authentication, writeLimiter.Limit).Post("/", timeSlotController.CreateTimeSlot)
	router.With(middlewares.Authentication).Get("/", timeSlotController.FindAllTimeSlots)
	router.With(middlewares.Authentication).Get("/my", timeSlotController.FindMyTimeSlots)
	router.With(middlewares.Authentication).Get("/{timeSlotID}", timeSlotController.FindTimeSlotByID)
	router.With(middlewares.Authentication, writeLimiter.Limit).Patch("/{timeSlotID}", timeSlotController.UpdateTimeSlotByID)
	router.With(middlewares.Authentication, writeLimiter.Limit).Delete("/{timeSlotID}", timeSlotController.DeleteTimeSlotByID)
}
