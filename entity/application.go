// entity/application.go
package entity

import "time"

const DefaultPassportType = "Ordinary"

// Application is a submitted passport application. Everything except Status
// is fixed at creation.
type Application struct {
	ApplicationID     string    `gorm:"primaryKey;column:application_id;type:varchar(36)" json:"application_id"`
	FullName          string    `gorm:"column:full_name;not null" json:"full_name"`
	DateOfBirth       string    `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Gender            string    `gorm:"column:gender;not null" json:"gender"`
	Address           string    `gorm:"column:address;type:text;not null" json:"address"`
	Phone             string    `gorm:"column:phone;not null" json:"phone"`
	Email             string    `gorm:"column:email;not null" json:"email"`
	CitizenshipNumber string    `gorm:"column:citizenship_number;not null" json:"citizenship_number"`
	EmergencyContact  *string   `gorm:"column:emergency_contact" json:"emergency_contact"`
	PassportType      string    `gorm:"column:passport_type;not null" json:"passport_type"`
	AdditionalNotes   *string   `gorm:"column:additional_notes;type:text" json:"additional_notes"`
	SubmissionDate    time.Time `gorm:"column:submission_date;not null;index" json:"submission_date"`
	Status            Status    `gorm:"column:status;type:varchar(16);not null;default:Pending;index" json:"status"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"-"`
}

func (Application) TableName() string {
	return "passport_applications"
}
