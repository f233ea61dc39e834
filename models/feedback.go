package models

import "time"

// Feedback is an append-only user rating entry
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Message   string    `json:"message" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is an anonymous message from the contact page
type ContactMessage struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	Name    string    `json:"name" gorm:"not null"`
	Email   string    `json:"email" gorm:"not null"`
	Subject string    `json:"subject" gorm:"not null"`
	Message string    `json:"message" gorm:"not null"`
	SentAt  time.Time `json:"sent_at" gorm:"autoCreateTime"`
}
