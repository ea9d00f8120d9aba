package model

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DoctorProfile struct {
	ID             string
	UserID         string
	Name           string
	Specialization string
	Email          string // joined from users on admin listings
}

type PatientProfile struct {
	ID             string
	UserID         string
	Name           string
	Age            int
	Gender         string
	MedicalHistory string
	Email          string // joined from users on admin listings
}

type Appointment struct {
	ID               string
	PatientProfileID string
	DoctorProfileID  string
	DateTime         time.Time
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// joined display fields, filled by list queries
	PatientName    string
	DoctorName     string
	Specialization string
}
