package models

// Person is an actor, director, or other credited role holder.
type Person struct {
	ID       int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string  `gorm:"column:name;type:varchar(100);not null"`
	RoleType *string `gorm:"column:role_type;type:varchar(20)"`
}

func (Person) TableName() string { return "people" }
