package models

// CIKResponse is the body of POST /api/crypto/generate-cik.
type CIKResponse struct {
	CIK       string `json:"cik"`
	Timestamp string `json:"timestamp"`
}
