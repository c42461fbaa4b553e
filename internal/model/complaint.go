package model

import "time"

const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Complaint is a submitted complaint. UserID is nil iff the complaint was
// submitted anonymously. Priority and Status are free text.
type Complaint struct {
	ID             string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title          string    `json:"title" gorm:"size:255;not null"`
	Description    string    `json:"description" gorm:"type:text"`
	DepartmentID   uint      `json:"department_id" gorm:"not null;index"`
	Priority       string    `json:"priority" gorm:"size:50;not null"`
	Status         string    `json:"status" gorm:"size:50;not null;index"`
	Anonymous      bool      `json:"anonymous" gorm:"not null"`
	UserID         *uint     `json:"user_id" gorm:"index"`
	SubmissionDate time.Time `json:"submission_date" gorm:"autoCreateTime"`

	// Relations
	Department Department `json:"-" gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	User       *User      `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// ComplaintRecord is a complaint joined with its department name, as
// returned by the read endpoints.
type ComplaintRecord struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DepartmentID   uint      `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	Anonymous      bool      `json:"anonymous"`
	UserID         *uint     `json:"user_id"`
	SubmissionDate time.Time `json:"submission_date"`
}
