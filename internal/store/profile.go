package store

import (
	"context"

	"medicare-api/internal/model"
)

// CreatePatient inserts the user and its patient profile in one
// transaction (both-or-neither).
func (s *Store) CreatePatient(ctx context.Context, u *model.User, p *model.PatientProfile) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role) VALUES ($1,$2,$3,$4)`,
		u.ID, u.Email, u.PasswordHash, u.Role,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO patient_profiles (id, user_id, name, age, gender, medical_history)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, u.ID, p.Name, p.Age, p.Gender, p.MedicalHistory,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// CreateDoctor inserts the user and its doctor profile in one transaction.
func (s *Store) CreateDoctor(ctx context.Context, u *model.User, d *model.DoctorProfile) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role) VALUES ($1,$2,$3,$4)`,
		u.ID, u.Email, u.PasswordHash, u.Role,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO doctor_profiles (id, user_id, name, specialization) VALUES ($1,$2,$3,$4)`,
		d.ID, u.ID, d.Name, d.Specialization,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) PatientProfileByUserID(ctx context.Context, userID string) (*model.PatientProfile, error) {
	p := &model.PatientProfile{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, name, age, gender, medical_history
		 FROM patient_profiles WHERE user_id = $1`, userID,
	).Scan(&p.ID, &p.UserID, &p.Name, &p.Age, &p.Gender, &p.MedicalHistory)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) UpdatePatientProfile(ctx context.Context, p *model.PatientProfile) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE patient_profiles SET name=$1, age=$2, gender=$3, medical_history=$4
		 WHERE user_id=$5`,
		p.Name, p.Age, p.Gender, p.MedicalHistory, p.UserID,
	)
	return err
}

func (s *Store) DoctorProfileByUserID(ctx context.Context, userID string) (*model.DoctorProfile, error) {
	d := &model.DoctorProfile{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, name, specialization
		 FROM doctor_profiles WHERE user_id = $1`, userID,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.Specialization)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListDoctors is the patient-facing listing: every doctor, no filter.
func (s *Store) ListDoctors(ctx context.Context) ([]model.DoctorProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, name, specialization FROM doctor_profiles ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DoctorProfile
	for rows.Next() {
		var d model.DoctorProfile
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Specialization); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListDoctorsWithEmail is the admin listing, joined with credentials.
func (s *Store) ListDoctorsWithEmail(ctx context.Context) ([]model.DoctorProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT d.id, d.user_id, d.name, d.specialization, u.email
		 FROM doctor_profiles d JOIN users u ON u.id = d.user_id
		 ORDER BY d.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DoctorProfile
	for rows.Next() {
		var d model.DoctorProfile
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Specialization, &d.Email); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) ListPatientsWithEmail(ctx context.Context) ([]model.PatientProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p.id, p.user_id, p.name, p.age, p.gender, p.medical_history, u.email
		 FROM patient_profiles p JOIN users u ON u.id = p.user_id
		 ORDER BY p.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PatientProfile
	for rows.Next() {
		var p model.PatientProfile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Age, &p.Gender, &p.MedicalHistory, &p.Email); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteDoctorByUserID cascades appointments -> profile -> user in one
// transaction. Unknown ids are a no-op, not an error.
func (s *Store) DeleteDoctorByUserID(ctx context.Context, userID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM appointments WHERE doctor_profile_id IN
		 (SELECT id FROM doctor_profiles WHERE user_id = $1)`, userID)
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM doctor_profiles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeletePatientByUserID cascades the same way; also backs the patient's
// own delete-account operation.
func (s *Store) DeletePatientByUserID(ctx context.Context, userID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM appointments WHERE patient_profile_id IN
		 (SELECT id FROM patient_profiles WHERE user_id = $1)`, userID)
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM patient_profiles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
