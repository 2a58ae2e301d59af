package resputil

type ErrorCode int

const (
	OK ErrorCode = 0

	// General
	InvalidRequest ErrorCode = 40001

	// Submission payload failed validation; Fields carries the details
	ValidationFailed ErrorCode = 40002

	// Requested entity (submission, GPU, CPU, model) does not exist
	NotFound ErrorCode = 40401

	// Indicates laziness of the developer
	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
