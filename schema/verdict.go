package schema

// ReviewVerdict is the outcome of triaging one report. It is produced
// fresh per classification call and never persisted.
type ReviewVerdict struct {
	BlockingIssues []string `json:"blocking_issues"`
	WarningIssues  []string `json:"warning_issues"`
	ReviewReasons  []string `json:"review_reasons"`
}

// RequiresReview reports whether the verdict routes the report into the
// QA queue: any review reason, or any blocking or warning issue.
func (v ReviewVerdict) RequiresReview() bool {
	return len(v.ReviewReasons) > 0 || len(v.BlockingIssues) > 0 || len(v.WarningIssues) > 0
}

// Blocked reports whether submission must be rejected outright.
func (v ReviewVerdict) Blocked() bool {
	return len(v.BlockingIssues) > 0
}
