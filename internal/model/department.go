package model

// Department is a fixed complaint category seeded at startup.
type Department struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:100;not null"`
}

// DefaultDepartments is the seed list inserted on every startup.
var DefaultDepartments = []string{"Hostel", "IT", "Classroom", "Mess", "Library"}
