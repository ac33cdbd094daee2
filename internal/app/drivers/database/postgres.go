package database

import (
	"fmt"
	"log"

	"clinicare-service/internal/app/config"
	"clinicare-service/internal/app/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(driverConfig *config.DriverConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.DBName,
		driverConfig.PostgresDB.SSLMode,
		driverConfig.PostgresDB.Timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	err = db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.DoctorTimeSlot{},
		&models.ScheduleDay{},
		&models.Prescription{},
		&models.Medicine{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate postgres database: %s", err.Error())
	}

	log.Println("Successfully connected to postgres database")

	return db
}
