package models

// Tag is a reusable label attached to reviews.
type Tag struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Text string `gorm:"column:text;type:varchar(50);not null;uniqueIndex"`
}

func (Tag) TableName() string { return "tags" }
