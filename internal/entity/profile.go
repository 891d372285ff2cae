package entity

import "time"

// CustomerProfile holds the biographical fields recovered from BRAVO for a
// resolved customer. It only exists when the profile query succeeded; the
// pipeline passes nil around otherwise and rendering falls back to an empty
// block.
type CustomerProfile struct {
	PhoneGroup        string
	BirthDate         time.Time
	DocumentTypeCode  int
	DocumentNumber    string
	CustomerTypeCode  int
	StatusID          int
	AdmissionReasonID int

	// RegisteredOnline is derived from the absence of the inactive-on-web
	// flag in the BRAVO response. Absent flag means registered. The mapping
	// looks inverted but matches the observed behavior of the service;
	// pending product-owner review.
	RegisteredOnline bool
}

// ValueCode is one entry of the document-type reference table.
type ValueCode struct {
	Value string
	Code  string
}
