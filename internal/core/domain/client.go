package domain

import (
	"fmt"
	"strings"
	"time"
)

// PropertyKeys are the categories of belongings the facility can hold for
// a client, in display order.
var PropertyKeys = []string{"Tray", "Medical", "Bin", "Sharps", "Hot Room", "Money"}

// Property maps each property category to whether the facility currently
// holds it.
type Property map[string]bool

// NewProperty returns a Property with every category set to false.
func NewProperty() Property {
	p := make(Property, len(PropertyKeys))
	for _, k := range PropertyKeys {
		p[k] = false
	}
	return p
}

// NormalizeProperty returns a Property containing exactly the known
// categories. Categories absent from src default to false; unknown keys are
// dropped.
func NormalizeProperty(src map[string]bool) Property {
	p := NewProperty()
	for _, k := range PropertyKeys {
		p[k] = src[k]
	}
	return p
}

// Client is one resident under supervision.
//
// ReturnTime is non-empty only while Location is LocationAway. Times of day
// are stored as 24-hour "HH:MM" strings; empty means unset.
type Client struct {
	ID               string   `json:"id" bson:"id"`
	Name             string   `json:"name" bson:"name"`
	Gender           string   `json:"gender" bson:"gender"`
	Bed              string   `json:"bed" bson:"bed"`
	ChecksEnabled    bool     `json:"checks" bson:"checks"`
	ApprovedContacts string   `json:"contacts" bson:"contacts"`
	PropertyHeld     Property `json:"property" bson:"property"`
	ReturnTime       string   `json:"return_time,omitempty" bson:"return_time,omitempty"`
	WakeupTime       string   `json:"wakeup_time,omitempty" bson:"wakeup_time,omitempty"`
	Location         Location `json:"location" bson:"location"`
}

// NewClient builds a freshly admitted client in the default location.
func NewClient(id, name, gender string) Client {
	return Client{
		ID:           id,
		Name:         name,
		Gender:       gender,
		PropertyHeld: NewProperty(),
		Location:     DefaultLocation,
	}
}

// Clone returns a deep copy of c.
func (c Client) Clone() Client {
	out := c
	out.PropertyHeld = make(Property, len(c.PropertyHeld))
	for k, v := range c.PropertyHeld {
		out.PropertyHeld[k] = v
	}
	return out
}

// IsAway reports whether the client is off-site.
func (c Client) IsAway() bool { return c.Location == LocationAway }

const timeOfDayLayout = "15:04"

// ParseTimeOfDay validates a 24-hour "HH:MM" value and returns it in
// canonical zero-padded form.
func ParseTimeOfDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t.Format(timeOfDayLayout), nil
}
