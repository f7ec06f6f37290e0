package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalpoint/callhub-api/schema"
)

// QAMirror is the secondary store QA tooling reads from. Writes to it are
// best effort; the caller logs failures and never surfaces them.
type QAMirror interface {
	Ping() error
	MirrorReport(mongoID primitive.ObjectID, report *schema.Report) error
}

// QAMirrorStore is an implementation of QAMirror on postgres
type QAMirrorStore struct {
	ormDB *gorm.DB
}

func NewQAMirrorStore(ormDB *gorm.DB) *QAMirrorStore {
	return &QAMirrorStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *QAMirrorStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// MirrorReport writes a redacted copy of a committed report, embedding
// the primary store id for traceability.
func (s *QAMirrorStore) MirrorReport(mongoID primitive.ObjectID, report *schema.Report) error {
	m := schema.ReportMirror{
		ID:            uuid.New(),
		MongoID:       mongoID.Hex(),
		LocationIDs:   schema.StringList(report.LocationIDs),
		Availability:  schema.StringList(report.Availability),
		PendingReview: report.PendingReview,
		WebBanked:     report.WebBanked,
		ReportedBy:    report.ReportedBy,
		CreatedAt:     time.Now().UTC(),
	}

	return s.ormDB.Create(&m).Error
}
