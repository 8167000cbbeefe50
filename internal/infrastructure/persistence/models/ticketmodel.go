package models

import "ticketboard/internal/shared/constants"

// TicketModel is the persistence shape of a ticket.
// reporter_id and assignee_id are set to NULL when the referenced user is deleted.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Type        string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	ReporterID  *uint  `gorm:"index"`
	AssigneeID  *uint  `gorm:"index"`
	AIEnhanced  bool   `gorm:"not null;default:false"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
