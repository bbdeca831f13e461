package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Destination names a durable record sink.
type Destination string

const (
	DestinationRegistrations Destination = "registrations"
	DestinationFeedback      Destination = "feedback"
)

var destinationHeaders = map[Destination][]string{
	DestinationRegistrations: {"Username", "Email", "Password"},
	DestinationFeedback:      {"Company Name", "Reference Link", "Is Real Posting"},
}

// Header returns the column names written as the first row of a new
// destination, or nil for an unknown destination.
func (d Destination) Header() []string {
	return destinationHeaders[d]
}

func (d Destination) Valid() bool {
	_, ok := destinationHeaders[d]
	return ok
}

// Record is one appended row, stored as an ordered list of fields.
type Record struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Destination Destination    `gorm:"type:text;not null;index" json:"destination"`
	Fields      pq.StringArray `gorm:"type:text[]" json:"fields"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (Record) TableName() string {
	return "records"
}
