package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

// ReportMirror is the redacted copy of a committed report kept in the QA
// database. Free-text notes are deliberately not mirrored; MongoID links
// back to the authoritative record.
type ReportMirror struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	MongoID       string     `json:"mongo_id"`
	LocationIDs   StringList `json:"location_ids" gorm:"type:jsonb"`
	Availability  StringList `json:"availability" gorm:"type:jsonb"`
	PendingReview bool       `json:"is_pending_review"`
	WebBanked     bool       `json:"web_banked"`
	ReportedBy    string     `json:"reported_by"`
	CreatedAt     time.Time  `json:"created_at"`
}
