package models

import "time"

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID        string       `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	Title     string       `gorm:"type:varchar(255);not null" bson:"title" json:"title"`
	Completed bool         `gorm:"not null;default:false" bson:"completed" json:"completed"`
	Priority  TaskPriority `gorm:"type:varchar(10);not null;default:'high'" bson:"priority" json:"priority"`
	OwnerID   string       `gorm:"type:varchar(36);not null;index:idx_tasks_owner_created,priority:1" bson:"owner" json:"owner"`
	CreatedAt time.Time    `gorm:"autoCreateTime:false;index:idx_tasks_owner_created,priority:2" bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime:false" bson:"updated_at" json:"updated_at"`
}
