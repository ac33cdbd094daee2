package prescriptions

import (
	"context"
	"fmt"
	"testing"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/app/services/core/appointments"
	"clinicare-service/internal/app/services/core/doctors"
	"clinicare-service/internal/app/services/core/patients"
	"clinicare-service/internal/app/services/shared/persistence"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Exercises the whole issuance unit against a real database: appointment flag
// update, prescription insert and medicine batch either all commit or none do.
func TestPrescriptionCreateTransaction(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Prescription{},
		&models.Medicine{},
	))

	log := zap.NewNop()
	uc := &prescriptionUsecase{
		PrescriptionRepository: &prescriptionPostgresRepository{DB: db, Log: log},
		AppointmentRepository:  appointments.NewAppointmentPostgresRepository(db, log),
		DoctorRepository:       doctors.NewDoctorPostgresRepository(db, log),
		PatientRepository:      patients.NewPatientPostgresRepository(db, log),
		TransactionManager:     persistence.NewGormTransactionManager(db, log),
		Log:                    log,
	}

	doctor := &models.Doctor{FirstName: "Sarah", LastName: "Connor", Email: "sarah@clinic.test"}
	require.NoError(t, db.Create(doctor).Error)
	patient := &models.Patient{FirstName: "John", LastName: "Smith", Email: "john@clinic.test"}
	require.NoError(t, db.Create(patient).Error)
	appointment := &models.Appointment{
		DoctorID:     doctor.ID,
		PatientID:    patient.ID,
		ScheduleDate: "2026-09-07",
		ScheduleTime: "09:00",
		Status:       "scheduled",
	}
	require.NoError(t, db.Create(appointment).Error)

	session := &models.Session{SessionID: "s1", UserID: doctor.ID, Role: constvars.ClinicareRoleDoctor}
	request := &requests.CreatePrescription{
		AppointmentID: appointment.ID,
		Diseases:      "Migraine",
		Instruction:   "Take with food",
		Status:        "completed",
		Medicine: []requests.MedicineEntry{
			{Medicine: "Sumatriptan", Dosage: "50mg", Duration: "7 days", Frequency: "as needed"},
			{Medicine: "Ibuprofen", Dosage: "400mg", Duration: "5 days", Frequency: "2x daily"},
		},
	}

	t.Run("Commit", func(t *testing.T) {
		require.NoError(t, uc.Create(context.Background(), session, request))

		var prescription models.Prescription
		require.NoError(t, db.Preload("Medicines").First(&prescription, "appointment_id = ?", appointment.ID).Error)
		assert.Equal(t, doctor.ID, prescription.DoctorID)
		assert.Equal(t, patient.ID, prescription.PatientID)
		assert.Len(t, prescription.Medicines, 2)

		var reloaded models.Appointment
		require.NoError(t, db.First(&reloaded, "id = ?", appointment.ID).Error)
		assert.Equal(t, constvars.AppointmentPrescriptionIssued, reloaded.PrescriptionStatus)
		assert.Equal(t, "completed", reloaded.Status)
		assert.False(t, reloaded.IsFollowUp)
	})

	t.Run("Rollback on duplicate appointment", func(t *testing.T) {
		// Reset the flag so a rollback is observable.
		require.NoError(t, db.Model(&models.Appointment{}).
			Where("id = ?", appointment.ID).
			Update("prescription_status", "").Error)

		err := uc.Create(context.Background(), session, request)
		require.Error(t, err, "unique index on appointment_id must reject the second issuance")

		var prescriptionCount int64
		db.Model(&models.Prescription{}).Where("appointment_id = ?", appointment.ID).Count(&prescriptionCount)
		assert.EqualValues(t, 1, prescriptionCount, "no second prescription row")

		var medicineCount int64
		db.Model(&models.Medicine{}).Count(&medicineCount)
		assert.EqualValues(t, 2, medicineCount, "no stray medicine rows")

		var reloaded models.Appointment
		require.NoError(t, db.First(&reloaded, "id = ?", appointment.ID).Error)
		assert.Empty(t, reloaded.PrescriptionStatus, "appointment flag update must be rolled back")
	})
}
