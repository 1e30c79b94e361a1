package workflows

import "github.com/yoockh/jobboard/internal/utils"

// ErrBusy is returned when an operation is started while another one on the
// same workflow is still in flight.
var ErrBusy = utils.E(utils.CodeConflict, "Workflow", "operation already in progress", nil)

type LoadState string

const (
	Loading  LoadState = "loading"
	Loaded   LoadState = "loaded"
	NotFound LoadState = "not_found"
)

// LoadStatus is what a screen renders while the profile is fetched.
type LoadStatus struct {
	State   LoadState `json:"state"`
	Message string    `json:"message,omitempty"`
}

type SaveState string

const (
	SaveIdle   SaveState = "idle"
	Saving     SaveState = "saving"
	SaveFailed SaveState = "error"
)

type SaveStatus struct {
	State   SaveState `json:"state"`
	Message string    `json:"message,omitempty"`
}

type SubmitState string

const (
	SubmitIdle   SubmitState = "idle"
	Submitting   SubmitState = "submitting"
	SubmitFailed SubmitState = "error"
)

type SubmitStatus struct {
	State   SubmitState `json:"state"`
	Message string      `json:"message,omitempty"`
}
