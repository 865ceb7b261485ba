package models

// Patient is one booked appointment. Email links it to the booking user
// without a foreign key.
type Patient struct {
	PID     uint   `gorm:"column:pid;primaryKey" json:"pid"`
	Email   string `gorm:"size:50" json:"email"`
	Name    string `gorm:"size:50" json:"name"`
	Gender  string `gorm:"size:50" json:"gender"`
	Slot    string `gorm:"size:50" json:"slot"`
	Disease string `gorm:"size:50" json:"disease"`
	Time    string `gorm:"size:50;not null" json:"time"`
	Date    string `gorm:"size:50;not null" json:"date"`
	Dept    string `gorm:"size:50" json:"dept"`
	Number  string `gorm:"size:50" json:"number"`
}

// WithDetails returns a copy of p carrying the editable fields of d.
// The primary key of p is kept.
func (p Patient) WithDetails(d Patient) Patient {
	d.PID = p.PID
	return d
}

func (Patient) TableName() string { return "patients" }
