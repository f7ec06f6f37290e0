package triage

import (
	"regexp"

	"github.com/vitalpoint/callhub-api/schema"
)

var (
	// tolerant north-american phone shape: optional country code, area
	// code with or without parens, 3 digits, 4 digits
	phonePattern = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const (
	msgInvalidClosureDate = "Planned closure date must use the YYYY-MM-DD format"
	msgContactInNotes     = "Phone numbers and email addresses are not allowed in public notes, please move them to internal notes"

	reasonContactInNotes = "contact info in public notes"
	reasonWalkIn         = "walk-ins accepted"
	reasonOtherVaccine   = `vaccine "Other" offered`
)

// explainAvailability maps the availability tags that require an
// explanation onto the blocking message shown when internal notes were
// left untouched.
var explainAvailability = map[string]string{
	schema.AvailWrongNumber:       "Please put the correct contact information for this location in the internal notes",
	schema.AvailNeverASite:        "Please explain in the internal notes why this will never be a vaccination site",
	schema.AvailPermanentlyClosed: "Please note in the internal notes how you know this location is permanently closed",
	schema.AvailNotOpenToPublic:   "Please describe in the internal notes who this location serves",
	schema.AvailWalkInsAccepted:   "Please describe the walk-in policy in the internal notes",
}

// alwaysReviewAvailability holds the tags routed to QA no matter what the
// internal notes look like.
var alwaysReviewAvailability = map[string]string{
	schema.AvailWalkInsAccepted: reasonWalkIn,
}

// Classify evaluates every triage rule against the report and returns a
// fresh verdict. Rules fire independently; a report can collect several
// blocking issues, warnings, and review reasons in one pass. Absent or
// empty fields simply produce no issue.
func Classify(report schema.Report) schema.ReviewVerdict {
	var verdict schema.ReviewVerdict

	if report.PlannedClosure != "" && !datePattern.MatchString(report.PlannedClosure) {
		verdict.BlockingIssues = append(verdict.BlockingIssues, msgInvalidClosureDate)
	}

	if report.Notes != "" && (phonePattern.MatchString(report.Notes) || emailPattern.MatchString(report.Notes)) {
		verdict.WarningIssues = append(verdict.WarningIssues, msgContactInNotes)
		verdict.ReviewReasons = append(verdict.ReviewReasons, reasonContactInNotes)
	}

	for _, tag := range report.Availability {
		if msg, ok := explainAvailability[tag]; ok && report.InternalNotesUnchanged {
			verdict.BlockingIssues = append(verdict.BlockingIssues, msg)
		}
		if reason, ok := alwaysReviewAvailability[tag]; ok {
			verdict.ReviewReasons = append(verdict.ReviewReasons, reason)
		}
	}

	if report.OffersVaccine(schema.VaccineOther) {
		verdict.ReviewReasons = append(verdict.ReviewReasons, reasonOtherVaccine)
		if report.InternalNotesUnchanged {
			verdict.BlockingIssues = append(verdict.BlockingIssues, `Please describe the "Other" vaccine in the internal notes`)
		}
	}

	// web-banked reports come from automated scraping and are exempt
	// from QA review; their blocking and warning issues still stand
	if report.WebBanked {
		verdict.ReviewReasons = nil
	}

	return verdict
}
