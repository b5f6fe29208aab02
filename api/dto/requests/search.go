// ABOUTME: Request DTOs for history and report endpoints
// ABOUTME: Fields are optional at the schema level so missing values reach the handler and map to 400

package requests

// RecordHistoryRequest is the body of POST /history
type RecordHistoryRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	// Query is the search text to remember
	Query *string `json:"query,omitempty" doc:"Search query"`

	// Threshold is the price threshold the search used
	Threshold *int `json:"threshold,omitempty" doc:"Price threshold in won"`
}

// Missing returns the name of the first absent required field, or ""
func (r *RecordHistoryRequest) Missing() string {
	if r.Query == nil || *r.Query == "" {
		return "query"
	}
	if r.Threshold == nil {
		return "threshold"
	}
	return ""
}

// ReportRequest is the body of POST /report
// Unknown keys are ignored so a /search item can be posted unchanged.
type ReportRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name  string `json:"name,omitempty" doc:"Product name"`
	Mall  string `json:"mall,omitempty" doc:"Mall name"`
	Price int    `json:"price,omitempty" doc:"Price in won"`
	Link  string `json:"link,omitempty" doc:"Product page URL (required)"`
}
