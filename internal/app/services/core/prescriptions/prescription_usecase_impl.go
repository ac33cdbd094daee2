package prescriptions

import (
	"context"
	"sync"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/models"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/dto/responses"
	"clinicare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	AppointmentRepository  contracts.AppointmentRepository
	DoctorRepository       contracts.DoctorRepository
	PatientRepository      contracts.PatientRepository
	TransactionManager     contracts.TransactionManager
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	transactionManager contracts.TransactionManager,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		instance := &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			AppointmentRepository:  appointmentRepository,
			DoctorRepository:       doctorRepository,
			PatientRepository:      patientRepository,
			TransactionManager:     transactionManager,
			Log:                    logger,
		}
		prescriptionUsecaseInstance = instance
	})
	return prescriptionUsecaseInstance
}

// Create issues a prescription against an appointment. The appointment flags,
// the prescription row and its medicine lines commit or roll back as one unit.
func (uc *prescriptionUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreatePrescription) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		uc.Log.Warn("prescriptionUsecase.Create appointment not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		)
		return exceptions.ErrAppointmentNotFound(nil)
	}

	changes := map[string]interface{}{
		"is_follow_up":        request.FollowUpDate != nil,
		"prescription_status": constvars.AppointmentPrescriptionIssued,
	}
	if request.Status != "" {
		changes["status"] = request.Status
	}
	if request.PatientType != "" {
		changes["patient_type"] = request.PatientType
	}

	err = uc.TransactionManager.Execute(ctx, func(txCtx context.Context) error {
		if err := uc.AppointmentRepository.Update(txCtx, appointment.ID, changes); err != nil {
			return err
		}

		prescription := &models.Prescription{
			DoctorID:      doctor.ID,
			PatientID:     appointment.PatientID,
			AppointmentID: appointment.ID,
			Diseases:      request.Diseases,
			Test:          request.Test,
			Instruction:   request.Instruction,
			FollowUpDate:  request.FollowUpDate,
		}
		created, err := uc.PrescriptionRepository.Create(txCtx, prescription)
		if err != nil {
			return err
		}

		medicines := make([]models.Medicine, 0, len(request.Medicine))
		for _, entry := range request.Medicine {
			medicines = append(medicines, models.Medicine{
				PrescriptionID: created.ID,
				Medicine:       entry.Medicine,
				Dosage:         entry.Dosage,
				Duration:       entry.Duration,
				Frequency:      entry.Frequency,
			})
		}
		return uc.PrescriptionRepository.CreateMedicines(txCtx, medicines)
	})
	if err != nil {
		uc.Log.Error("prescriptionUsecase.Create transaction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("prescriptionUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}

func (uc *prescriptionUsecase) FindAll(ctx context.Context) ([]responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	prescriptions, err := uc.PrescriptionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Prescription, 0, len(prescriptions))
	for i := range prescriptions {
		response = append(response, buildPrescriptionResponse(&prescriptions[i]))
	}

	uc.Log.Info("prescriptionUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

func (uc *prescriptionUsecase) FindByID(ctx context.Context, prescriptionID string) (*responses.PrescriptionDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	prescription, err := uc.PrescriptionRepository.FindByIDWithRelations(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, nil
	}

	detail := &responses.PrescriptionDetail{
		Prescription: buildPrescriptionResponse(prescription),
		Medicines:    buildMedicineResponses(prescription.Medicines),
	}
	if prescription.Appointment != nil {
		detail.Appointment = &responses.Appointment{
			ID:                 prescription.Appointment.ID,
			DoctorID:           prescription.Appointment.DoctorID,
			PatientID:          prescription.Appointment.PatientID,
			ScheduleDate:       prescription.Appointment.ScheduleDate,
			ScheduleTime:       prescription.Appointment.ScheduleTime,
			Status:             prescription.Appointment.Status,
			PatientType:        prescription.Appointment.PatientType,
			PrescriptionStatus: prescription.Appointment.PrescriptionStatus,
			IsFollowUp:         prescription.Appointment.IsFollowUp,
		}
	}
	if prescription.Doctor != nil {
		detail.Doctor = &responses.DoctorProfile{
			FirstName:      prescription.Doctor.FirstName,
			LastName:       prescription.Doctor.LastName,
			Designation:    prescription.Doctor.Designation,
			Email:          prescription.Doctor.Email,
			College:        prescription.Doctor.College,
			Address:        prescription.Doctor.Address,
			Country:        prescription.Doctor.Country,
			State:          prescription.Doctor.State,
			Specialization: prescription.Doctor.Specialization,
		}
	}
	if prescription.Patient != nil {
		detail.Patient = &responses.PatientProfile{
			FirstName:   prescription.Patient.FirstName,
			LastName:    prescription.Patient.LastName,
			Gender:      prescription.Patient.Gender,
			DateOfBirth: prescription.Patient.DateOfBirth,
			Email:       prescription.Patient.Email,
			BloodGroup:  prescription.Patient.BloodGroup,
			Address:     prescription.Patient.Address,
		}
	}
	return detail, nil
}

func (uc *prescriptionUsecase) FindByPatient(ctx context.Context, session *models.Session) ([]responses.PatientPrescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, session.UserID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	prescriptions, err := uc.PrescriptionRepository.FindByPatient(ctx, patient.ID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.PatientPrescription, 0, len(prescriptions))
	for i := range prescriptions {
		item := responses.PatientPrescription{
			Prescription: buildPrescriptionResponse(&prescriptions[i]),
		}
		if prescriptions[i].Doctor != nil {
			item.Doctor = responses.DoctorSummary{
				FirstName:   prescriptions[i].Doctor.FirstName,
				LastName:    prescriptions[i].Doctor.LastName,
				Designation: prescriptions[i].Doctor.Designation,
			}
		}
		if prescriptions[i].Appointment != nil {
			item.Appointment = responses.AppointmentSchedule{
				ScheduleDate: prescriptions[i].Appointment.ScheduleDate,
				ScheduleTime: prescriptions[i].Appointment.ScheduleTime,
			}
		}
		response = append(response, item)
	}

	uc.Log.Info("prescriptionUsecase.FindByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

func (uc *prescriptionUsecase) FindByDoctor(ctx context.Context, session *models.Session) ([]responses.DoctorPrescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindByDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, session.UserID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	prescriptions, err := uc.PrescriptionRepository.FindByDoctor(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.DoctorPrescription, 0, len(prescriptions))
	for i := range prescriptions {
		item := responses.DoctorPrescription{
			Prescription: buildPrescriptionResponse(&prescriptions[i]),
			Medicines:    buildMedicineResponses(prescriptions[i].Medicines),
		}
		if prescriptions[i].Patient != nil {
			item.Patient = responses.Patient{
				ID:          prescriptions[i].Patient.ID,
				FirstName:   prescriptions[i].Patient.FirstName,
				LastName:    prescriptions[i].Patient.LastName,
				Email:       prescriptions[i].Patient.Email,
				Gender:      prescriptions[i].Patient.Gender,
				DateOfBirth: prescriptions[i].Patient.DateOfBirth,
				BloodGroup:  prescriptions[i].Patient.BloodGroup,
				Address:     prescriptions[i].Patient.Address,
			}
		}
		response = append(response, item)
	}

	uc.Log.Info("prescriptionUsecase.FindByDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	return response, nil
}

func (uc *prescriptionUsecase) Delete(ctx context.Context, prescriptionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	return uc.PrescriptionRepository.Delete(ctx, prescriptionID)
}

func (uc *prescriptionUsecase) Update(ctx context.Context, prescriptionID string, request *requests.UpdatePrescription) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	changes := map[string]interface{}{}
	if request.Diseases != nil {
		changes["diseases"] = *request.Diseases
	}
	if request.Test != nil {
		changes["test"] = *request.Test
	}
	if request.Instruction != nil {
		changes["instruction"] = *request.Instruction
	}
	if request.FollowUpDate != nil {
		changes["follow_up_date"] = *request.FollowUpDate
	}

	prescription, err := uc.PrescriptionRepository.Update(ctx, prescriptionID, changes)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, nil
	}

	response := buildPrescriptionResponse(prescription)
	return &response, nil
}

func buildPrescriptionResponse(prescription *models.Prescription) responses.Prescription {
	return responses.Prescription{
		ID:            prescription.ID,
		DoctorID:      prescription.DoctorID,
		PatientID:     prescription.PatientID,
		AppointmentID: prescription.AppointmentID,
		Diseases:      prescription.Diseases,
		Test:          prescription.Test,
		Instruction:   prescription.Instruction,
		FollowUpDate:  prescription.FollowUpDate,
		CreatedAt:     prescription.CreatedAt,
	}
}

func buildMedicineResponses(medicines []models.Medicine) []responses.Medicine {
	response := make([]responses.Medicine, 0, len(medicines))
	for _, medicine := range medicines {
		response = append(response, responses.Medicine{
			ID:             medicine.ID,
			PrescriptionID: medicine.PrescriptionID,
			Medicine:       medicine.Medicine,
			Dosage:         medicine.Dosage,
			Duration:       medicine.Duration,
			Frequency:      medicine.Frequency,
		})
	}
	return response
}
