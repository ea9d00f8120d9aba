package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"medicare-api/internal/model"
)

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO appointments (id, patient_profile_id, doctor_profile_id, date_time, status)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING created_at, updated_at`,
		a.ID, a.PatientProfileID, a.DoctorProfileID, a.DateTime, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// ListByPatient returns the caller's appointments, newest first, with the
// doctor's display fields joined.
func (s *Store) ListByPatient(ctx context.Context, patientUserID string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.patient_profile_id, a.doctor_profile_id, a.date_time, a.status,
		        a.created_at, a.updated_at, d.name, d.specialization
		 FROM appointments a
		 JOIN patient_profiles p ON p.id = a.patient_profile_id
		 JOIN doctor_profiles d ON d.id = a.doctor_profile_id
		 WHERE p.user_id = $1
		 ORDER BY a.date_time DESC`, patientUserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientProfileID, &a.DoctorProfileID, &a.DateTime, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.DoctorName, &a.Specialization); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListByDoctor returns the doctor's appointments, newest first, optionally
// filtered by exact status, with the patient's name joined.
func (s *Store) ListByDoctor(ctx context.Context, doctorUserID string, status model.Status) ([]model.Appointment, error) {
	q := `SELECT a.id, a.patient_profile_id, a.doctor_profile_id, a.date_time, a.status,
	             a.created_at, a.updated_at, p.name
	      FROM appointments a
	      JOIN doctor_profiles d ON d.id = a.doctor_profile_id
	      JOIN patient_profiles p ON p.id = a.patient_profile_id
	      WHERE d.user_id = $1`

	args := []any{doctorUserID}
	if status != "" {
		q += ` AND a.status = $2`
		args = append(args, status)
	}
	q += ` ORDER BY a.date_time DESC`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientProfileID, &a.DoctorProfileID, &a.DateTime, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.PatientName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) ListAll(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.patient_profile_id, a.doctor_profile_id, a.date_time, a.status,
		        a.created_at, a.updated_at, p.name, d.name, d.specialization
		 FROM appointments a
		 JOIN patient_profiles p ON p.id = a.patient_profile_id
		 JOIN doctor_profiles d ON d.id = a.doctor_profile_id
		 ORDER BY a.date_time DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientProfileID, &a.DoctorProfileID, &a.DateTime, &a.Status,
			&a.CreatedAt, &a.UpdatedAt, &a.PatientName, &a.DoctorName, &a.Specialization); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Decide sets ACCEPTED or REJECTED on a PENDING appointment owned by the
// calling doctor. Returns pgx.ErrNoRows when the appointment does not
// exist or is not theirs, ErrAlreadyDecided when it has left PENDING.
func (s *Store) Decide(ctx context.Context, id, doctorUserID string, status model.Status) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`UPDATE appointments a
		 SET status = $1, updated_at = NOW()
		 FROM doctor_profiles d
		 WHERE a.id = $2 AND d.id = a.doctor_profile_id AND d.user_id = $3
		   AND a.status = 'PENDING'
		 RETURNING a.id, a.patient_profile_id, a.doctor_profile_id, a.date_time, a.status,
		           a.created_at, a.updated_at`,
		status, id, doctorUserID,
	).Scan(&a.ID, &a.PatientProfileID, &a.DoctorProfileID, &a.DateTime, &a.Status,
		&a.CreatedAt, &a.UpdatedAt)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// zero rows: classify missing/foreign vs already decided
	var current model.Status
	err = s.pool.QueryRow(ctx,
		`SELECT a.status FROM appointments a
		 JOIN doctor_profiles d ON d.id = a.doctor_profile_id
		 WHERE a.id = $1 AND d.user_id = $2`, id, doctorUserID,
	).Scan(&current)
	if err != nil {
		return nil, err // pgx.ErrNoRows = not found / not owned
	}
	return nil, ErrAlreadyDecided
}

// DeleteByPatient removes an appointment only when it belongs to the
// calling patient; reports whether a row was deleted.
func (s *Store) DeleteByPatient(ctx context.Context, id, patientUserID string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM appointments a
		 USING patient_profiles p
		 WHERE a.id = $1 AND p.id = a.patient_profile_id AND p.user_id = $2`,
		id, patientUserID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByID is the admin delete: unconditional, no ownership concept.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}
