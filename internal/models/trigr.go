package models

import "time"

// Audit actions recorded against appointments.
const (
	ActionInserted = "INSERTED"
	ActionUpdated  = "UPDATED"
	ActionDeleted  = "DELETED"
)

// TimestampLayout is the format of Trigr.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Trigr is an audit-log entry for an appointment change.
type Trigr struct {
	TID       uint   `gorm:"column:tid;primaryKey" json:"tid"`
	PID       uint   `gorm:"column:pid" json:"pid"`
	Email     string `gorm:"size:50" json:"email"`
	Name      string `gorm:"size:50" json:"name"`
	Action    string `gorm:"size:50" json:"action"`
	Timestamp string `gorm:"size:50" json:"timestamp"`
}

// NewTrigr builds the audit entry for action applied to p at t.
func NewTrigr(p Patient, action string, t time.Time) Trigr {
	return Trigr{
		PID:       p.PID,
		Email:     p.Email,
		Name:      p.Name,
		Action:    action,
		Timestamp: t.Format(TimestampLayout),
	}
}

func (Trigr) TableName() string { return "trigr" }
