package handler

type createClientRequest struct {
	Name   string `json:"name"   validate:"required"`
	Gender string `json:"gender" validate:"required"`
}

type updateClientRequest struct {
	Name             string          `json:"name"              validate:"required"`
	Gender           string          `json:"gender"            validate:"required"`
	Bed              string          `json:"bed"`
	Checks           bool            `json:"checks"`
	ApprovedContacts string          `json:"contacts"`
	WakeupTime       string          `json:"wakeup_time"       validate:"omitempty,hhmm"`
	ReturnTime       string          `json:"return_time"       validate:"omitempty,hhmm"`
	Property         map[string]bool `json:"property"`
}

// moveClientRequest carries the target location plus the operator's
// answers to any prompt the move raises. Leaving return_time empty on a
// move to Away cancels the departure.
type moveClientRequest struct {
	Location           string `json:"location"`
	ReturnTime         string `json:"return_time"`
	ScreeningCompleted bool   `json:"screening_completed"`
}

// dischargeRequest is the discharge checklist. Every item must be
// confirmed.
type dischargeRequest struct {
	PropertyReturned    bool `json:"property_returned"`
	CaseManagerSpokenTo bool `json:"case_manager_spoken_to"`
	MedicalSpokenTo     bool `json:"medical_spoken_to"`
}

type clientResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Gender           string          `json:"gender"`
	Bed              string          `json:"bed"`
	Checks           bool            `json:"checks"`
	ApprovedContacts string          `json:"contacts"`
	Property         map[string]bool `json:"property"`
	ReturnTime       string          `json:"return_time,omitempty"`
	WakeupTime       string          `json:"wakeup_time,omitempty"`
	Location         string          `json:"location"`
	Links            clientLinks     `json:"_links"`
}

type clientLinks struct {
	Self string `json:"self"`
	Move string `json:"move"`
}

type moveClientResponse struct {
	Client    clientResponse `json:"client"`
	NoOp      bool           `json:"no_op,omitempty"`
	Cancelled bool           `json:"cancelled,omitempty"`
}

type listClientsResponse struct {
	Data  []clientResponse `json:"data"`
	Total int              `json:"total"`
}

type bedsResponse struct {
	Available []string `json:"available"`
}

type locationsResponse struct {
	Locations []locationResponse `json:"locations"`
}

type locationResponse struct {
	Name    string   `json:"name"`
	Clients []string `json:"clients"`
}
