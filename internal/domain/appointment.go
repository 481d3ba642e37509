package domain

import "time"

// Service is a clinic service offered for appointment booking.
type Service struct {
	ID          int64
	Title       string
	Description string
	Price       Money
	Duration    int // minutes
	Category    string
}

type Appointment struct {
	ID           int64
	BookingCode  string
	PetName      string
	PetSpecies   string
	PetImageURL  string
	ServiceTitle string
	ServicePrice Money
	DoctorName   string
	Date         string // YYYY-MM-DD
	Time         string // HH:mm
	Status       string
	Notes        string
	CreatedAt    time.Time
}

// AppointmentInput books one service for one or more pets in a single visit.
type AppointmentInput struct {
	UserID    int64   `json:"userId"`
	PetIDs    []int64 `json:"petIds" validate:"required,min=1"`
	ServiceID int64   `json:"serviceId" validate:"required"`
	Date      string  `json:"appointmentDate" validate:"required"`
	Time      string  `json:"appointmentTime" validate:"required"`
	Notes     string  `json:"notes"`
}
