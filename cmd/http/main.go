package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/delivery/http/controllers"
	"clinicare-service/internal/app/delivery/http/middlewares"
	"clinicare-service/internal/app/delivery/http/routers"
	"clinicare-service/internal/app/drivers/database"
	"clinicare-service/internal/app/drivers/logger"
	"clinicare-service/internal/app/services/core/appointments"
	"clinicare-service/internal/app/services/core/doctors"
	"clinicare-service/internal/app/services/core/patients"
	"clinicare-service/internal/app/services/core/prescriptions"
	"clinicare-service/internal/app/services/core/session"
	"clinicare-service/internal/app/services/core/timeslots"
	"clinicare-service/internal/app/services/shared/persistence"
	"clinicare-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Session
	sessionService := session.NewSessionService(bootstrap.Logger)

	// Shared persistence
	transactionManager := persistence.NewGormTransactionManager(bootstrap.PostgresDB, bootstrap.Logger)

	// Repositories
	doctorRepository := doctors.NewDoctorPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	appointmentRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	timeSlotRepository := timeslots.NewTimeSlotPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	prescriptionRepository := prescriptions.NewPrescriptionPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)

	// TimeSlot
	timeSlotUsecase := timeslots.NewTimeSlotUsecase(timeSlotRepository, doctorRepository, bootstrap.Logger)
	timeSlotController := controllers.NewTimeSlotController(bootstrap.Logger, timeSlotUsecase, sessionService)

	// Prescription
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionRepository,
		appointmentRepository,
		doctorRepository,
		patientRepository,
		transactionManager,
		bootstrap.Logger,
	)
	prescriptionController := controllers.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase, sessionService)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, timeSlotController, prescriptionController)
}
