package archive

import (
	"github.com/google/uuid"
)

type State string

const (
	Queued  State = "Queued"
	Running State = "Running"
	Done    State = "Done"
	Error   State = "Error"
)

// CohortArchiveRequest tracks one archive run of a synthesized cohort
// from the moment it is queued to its terminal state.
type CohortArchiveRequest struct {
	Id        uuid.UUID `json:"id"`
	CohortId  string    `json:"cohortId"`
	State     State     `json:"state"`
	Message   string    `json:"message"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

type CohortArchiveResponseDTO struct {
	Id       uuid.UUID `json:"id"`
	CohortId string    `json:"cohortId"`
	State    State     `json:"state"`
	Message  string    `json:"message"`
}
