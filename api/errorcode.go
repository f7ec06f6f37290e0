package api

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "report is missing a location",
		1101: "report is missing availability",
		1102: "report blocked by triage",
		1103: "cannot save report",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorMissingLocation     = errorJSON(1100)
	errorMissingAvailability = errorJSON(1101)
	errorReportBlocked       = errorJSON(1102)
	errorSaveReport          = errorJSON(1103)
)

type ErrorResponse struct {
	Code    int64    `json:"code"`
	Message string   `json:"message"`
	Issues  []string `json:"issues,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withIssues attaches triage issue detail to an error response.
func (e ErrorResponse) withIssues(issues []string) ErrorResponse {
	e.Issues = issues
	return e
}
