package routers

import (
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, writeLimiter *middlewares.RateLimiter, prescriptionController *controllers.PrescriptionController) {
	router.With(middlewares.Authentication, writeLimiter.Limit).Post("/", prescriptionController.CreatePrescription)
	router.With(middlewares.Authentication).Get("/", prescriptionController.FindAllPrescriptions)
	router.With(middlewares.Authentication).Get("/patient", prescriptionController.FindMyPrescriptionsAsPatient)
	router.With(middlewares.Authentication).Get("/doctor", prescriptionController.FindMyPrescriptionsAsDoctor)
	router.With(middlewares.Authentication).Get("/{prescriptionID}", prescriptionController.FindPrescriptionByID)
	router.With(middlewares.Authentication, writeLimiter.Limit).Patch("/{prescriptionID}", prescriptionController.UpdatePrescriptionByID)
	router.With(middlewares.Authentication, writeLimiter.Limit).Delete("/{prescriptionID}", prescriptionController.DeletePrescriptionByID)
}
