package models

import "time"

// Lead is a stored lead capture submission.
type Lead struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}

func (Lead) TableName() string { return "leads" }

func (l *Lead) GetID() uint   { return l.ID }
func (l *Lead) SetID(id uint) { l.ID = id }

// Feedback is a stored customer feedback submission. Rating is always within
// [1,5] once stored.
type Feedback struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Rating    int    `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comments  string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Feedback) TableName() string { return "feedbacks" }

func (f *Feedback) GetID() uint   { return f.ID }
func (f *Feedback) SetID(id uint) { f.ID = id }
