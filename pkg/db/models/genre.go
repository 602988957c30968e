package models

// Genre is a catalog category with a globally unique name.
type Genre struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:varchar(50);not null;uniqueIndex"`
}

func (Genre) TableName() string { return "genres" }
