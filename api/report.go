package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalpoint/callhub-api/external/identity"
	"github.com/vitalpoint/callhub-api/schema"
	"github.com/vitalpoint/callhub-api/triage"
)

const unknownReporter = "UNKNOWN"

type submitReportRequest struct {
	Location               json.RawMessage `json:"Location"`
	Availability           []string        `json:"Availability"`
	Notes                  string          `json:"Notes"`
	InternalNotes          string          `json:"Internal Notes"`
	InternalNotesUnchanged bool            `json:"internal_notes_unchanged"`
	UnexpectedMinAge       bool            `json:"unexpected_min_age"`
	VaccinesOffered        []string        `json:"vaccines_offered"`
	PlannedClosure         string          `json:"planned_closure"`
	WebBanked              bool            `json:"web_banked"`
	PendingReview          bool            `json:"is_pending_review"`
}

// submitReport accepts an inbound call report, triages it, and commits
// it with the pending-review flag set. The audit write, the QA mirror,
// and the force-priority clear are best effort: their failures are
// logged and never fail the request. An identity outage marks the report
// pending review under an UNKNOWN reporter instead of dropping it.
func (s *Server) submitReport(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	// raw payload goes to the audit channel before any validation, so
	// even rejected submissions leave a trace
	if s.background != nil {
		go func(payload json.RawMessage) {
			if err := s.background.AuditEvent("report_submitted", payload); err != nil {
				log.WithError(err).Warn("audit report submission")
			}
		}(json.RawMessage(raw))
	}

	var params submitReportRequest
	if err := json.Unmarshal(raw, &params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	locationIDs := normalizeLocationRefs(params.Location)
	if len(locationIDs) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingLocation)
		return
	}
	if len(params.Availability) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingAvailability)
		return
	}

	reporter, roles, identityFailed := s.resolveReporter(c)

	report := schema.Report{
		LocationIDs:            locationIDs,
		Availability:           params.Availability,
		Notes:                  params.Notes,
		InternalNotes:          params.InternalNotes,
		InternalNotesUnchanged: params.InternalNotesUnchanged,
		UnexpectedMinAge:       params.UnexpectedMinAge,
		VaccinesOffered:        params.VaccinesOffered,
		PlannedClosure:         params.PlannedClosure,
		WebBanked:              params.WebBanked,
		ReportedBy:             reporter,
		ReporterRoles:          roles,
	}

	verdict := triage.Classify(report)
	if verdict.Blocked() {
		abortWithEncoding(c, http.StatusBadRequest, errorReportBlocked.withIssues(verdict.BlockingIssues))
		return
	}

	report.PendingReview = params.PendingReview ||
		verdict.RequiresReview() ||
		identityFailed ||
		s.sampler.RequiresSampling(roles)

	mongoID, err := s.mongoStore.SaveReport(&report)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorSaveReport, err)
		return
	}

	if s.mirror != nil {
		mirrored := report
		go func() {
			if err := s.mirror.MirrorReport(mongoID, &mirrored); err != nil {
				log.WithError(err).Warn("mirror report to qa store")
			}
		}()
	}

	// a completed call should not be immediately re-selected for calling
	if s.background != nil && !skipOnly(params.Availability) {
		for _, id := range locationIDs {
			if err := s.background.ClearForcePriority(id); err != nil {
				log.WithError(err).Warnf("clear force priority on %s", id)
			}
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":                mongoID.Hex(),
		"is_pending_review": report.PendingReview,
		"warnings":          verdict.WarningIssues,
	})
}

// resolveReporter looks the actor up at the identity service. Lookups
// fail open: call data is never dropped because an auxiliary lookup
// failed, the report is just flagged for review.
func (s *Server) resolveReporter(c *gin.Context) (reporter string, roles []string, failed bool) {
	if s.identity == nil {
		return unknownReporter, nil, true
	}

	id, err := s.identity.Current(c.GetString("token"))
	if err != nil {
		var idErr *identity.Error
		if !errors.As(err, &idErr) {
			log.WithError(err).Error("unexpected identity error")
		}
		log.WithError(err).Warn("identity lookup failed, proceeding as UNKNOWN")
		return unknownReporter, nil, true
	}

	reporter = id.Email
	if reporter == "" {
		reporter = id.Subject
	}
	return reporter, id.Roles, false
}

// normalizeLocationRefs accepts the location reference either as a bare
// string or as a list, and always yields a list for the store.
func normalizeLocationRefs(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		if one == "" {
			return nil
		}
		return []string{one}
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	return nil
}

func skipOnly(availability []string) bool {
	for _, tag := range availability {
		if tag != schema.AvailSkip {
			return false
		}
	}
	return true
}
