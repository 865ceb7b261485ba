package handlers

import (
	"slices"

	"hospital-management-server/internal/models"
	"hospital-management-server/internal/utils"
)

// SignupForm is the account registration form. Only presence is expected;
// nothing about the values is checked.
type SignupForm struct {
	Username string `form:"username"`
	Usertype string `form:"usertype"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f SignupForm) User() models.User {
	return models.User{
		Username: f.Username,
		Usertype: models.UserType(f.Usertype),
		Email:    f.Email,
		Password: f.Password,
	}
}

type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type DoctorForm struct {
	Email      string `form:"email"`
	Doctorname string `form:"doctorname"`
	Dept       string `form:"dept"`
}

func (f DoctorForm) Doctor() models.Doctor {
	return models.Doctor{Email: f.Email, Doctorname: f.Doctorname, Dept: f.Dept}
}

type SearchForm struct {
	Search string `form:"search"`
}

// AppointmentForm carries the nine booking fields. The validate tags apply to
// new bookings only; edits are written unchecked.
type AppointmentForm struct {
	Email   string `form:"email"`
	Name    string `form:"name"`
	Gender  string `form:"gender"`
	Slot    string `form:"slot"`
	Disease string `form:"disease"`
	Time    string `form:"time" validate:"required"`
	Date    string `form:"date" validate:"required"`
	Dept    string `form:"dept"`
	Number  string `form:"number" validate:"len=10"`
}

// Booking messages shown when a new booking is rejected.
const (
	msgInvalidNumber   = "Please provide a 10-digit number"
	msgMissingSchedule = "Please provide the appointment date and time"
)

// Problem returns the warning for a rejected booking, or "" when the form is acceptable.
// The phone number rule is reported first.
func (f AppointmentForm) Problem() string {
	failed := utils.FailedFields(utils.Validate(f))
	switch {
	case len(failed) == 0:
		return ""
	case slices.Contains(failed, "Number"):
		return msgInvalidNumber
	default:
		return msgMissingSchedule
	}
}

func (f AppointmentForm) Patient() models.Patient {
	return models.Patient{
		Email:   f.Email,
		Name:    f.Name,
		Gender:  f.Gender,
		Slot:    f.Slot,
		Disease: f.Disease,
		Time:    f.Time,
		Date:    f.Date,
		Dept:    f.Dept,
		Number:  f.Number,
	}
}
