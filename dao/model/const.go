// Constants shared between the handlers and the storage layer.
package model

// VoteType is the kind of community feedback cast on a submission.
type VoteType string

const (
	VoteValidate VoteType = "validate"
	VoteQuestion VoteType = "question"
)

// Sentinel names excluded from aggregation; submitters occasionally type
// these instead of leaving the field empty.
const UnknownName = "unknown"
