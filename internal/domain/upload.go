package domain

// UploadReport is the backend's summary of a CSV applicant import. Parsing
// happens server-side; the client only submits the file and relays the result.
type UploadReport struct {
	Received int
	Imported int
	Rejected int
	Errors   []string
}
