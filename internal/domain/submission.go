package domain

import "time"

// Submission is a lead-capture record from the public contact form.
type Submission struct {
	ID              string     `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	PhoneNumber     string     `db:"phone_number" json:"phoneNumber"`
	SelectedService string     `db:"selected_service" json:"selectedService"`
	Message         *string    `db:"message" json:"message,omitempty"`
	Contacted       bool       `db:"contacted" json:"contacted"`
	ContactedAt     *time.Time `db:"contacted_at" json:"contactedAt,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
}

// ServiceLabel returns the Arabic display label for the submission's
// requested service, falling back to the raw code for unknown values.
func (s *Submission) ServiceLabel() string {
	return ServiceLabelFor(s.SelectedService)
}

// SubmissionCandidate is an unvalidated submission as received from
// the contact form.
type SubmissionCandidate struct {
	Name            string `json:"name"`
	PhoneNumber     string `json:"phoneNumber"`
	SelectedService string `json:"selectedService"`
	Message         string `json:"message,omitempty"`
}

// SubmissionStats summarizes submissions for the admin dashboard.
type SubmissionStats struct {
	Total     int64 `json:"total"`
	Contacted int64 `json:"contacted"`
	Pending   int64 `json:"pending"`
}
