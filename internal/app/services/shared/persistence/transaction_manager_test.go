package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "should open in-memory sqlite")

	err = db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Prescription{},
		&models.Medicine{},
	)
	require.NoError(t, err, "should migrate models")

	return db
}

func TestGormTransactionManagerExecute(t *testing.T) {
	t.Run("Commit", func(t *testing.T) {
		db := newTestDB(t)
		manager := NewGormTransactionManager(db, zap.NewNop())

		err := manager.Execute(context.Background(), func(txCtx context.Context) error {
			tx := DBFromContext(txCtx, db)
			if err := tx.Create(&models.Prescription{
				DoctorID:      "d1",
				PatientID:     "p1",
				AppointmentID: "a1",
			}).Error; err != nil {
				return err
			}
			return tx.Create(&models.Medicine{
				PrescriptionID: "rx1",
				Medicine:       "Paracetamol",
				Dosage:         "500mg",
				Duration:       "5 days",
				Frequency:      "3x daily",
			}).Error
		})
		assert.NoError(t, err, "transaction should commit")

		var prescriptionCount, medicineCount int64
		db.Model(&models.Prescription{}).Count(&prescriptionCount)
		db.Model(&models.Medicine{}).Count(&medicineCount)
		assert.EqualValues(t, 1, prescriptionCount, "prescription row should be committed")
		assert.EqualValues(t, 1, medicineCount, "medicine row should be committed")
	})

	t.Run("Rollback on error", func(t *testing.T) {
		db := newTestDB(t)
		manager := NewGormTransactionManager(db, zap.NewNop())

		boom := errors.New("medicine insert failed")
		err := manager.Execute(context.Background(), func(txCtx context.Context) error {
			tx := DBFromContext(txCtx, db)
			if err := tx.Create(&models.Prescription{
				DoctorID:      "d1",
				PatientID:     "p1",
				AppointmentID: "a1",
			}).Error; err != nil {
				return err
			}
			return boom
		})
		require.Error(t, err, "transaction should fail")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr, "non-custom errors should be wrapped")

		var prescriptionCount int64
		db.Model(&models.Prescription{}).Count(&prescriptionCount)
		assert.EqualValues(t, 0, prescriptionCount, "prescription insert should be rolled back")
	})

	t.Run("Custom error passes through unwrapped", func(t *testing.T) {
		db := newTestDB(t)
		manager := NewGormTransactionManager(db, zap.NewNop())

		original := exceptions.ErrAppointmentNotFound(nil)
		err := manager.Execute(context.Background(), func(txCtx context.Context) error {
			return original
		})
		assert.Equal(t, original, err, "custom error should not be double wrapped")
	})

	t.Run("DBFromContext without transaction returns fallback", func(t *testing.T) {
		db := newTestDB(t)

		got := DBFromContext(context.Background(), db)
		assert.NotNil(t, got, "fallback handle should be returned")

		err := got.Create(&models.Doctor{FirstName: "Jane", LastName: "Doe", Email: "jane@clinic.test"}).Error
		assert.NoError(t, err, "fallback handle should be usable")
	})
}
