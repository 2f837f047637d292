package handler

import (
	"github.com/crisiscenter/tracker/internal/core/domain"
	"github.com/crisiscenter/tracker/internal/core/ports"
)

func toClientResponse(c domain.Client) clientResponse {
	property := make(map[string]bool, len(c.PropertyHeld))
	for k, v := range c.PropertyHeld {
		property[k] = v
	}
	return clientResponse{
		ID:               c.ID,
		Name:             c.Name,
		Gender:           c.Gender,
		Bed:              c.Bed,
		Checks:           c.ChecksEnabled,
		ApprovedContacts: c.ApprovedContacts,
		Property:         property,
		ReturnTime:       c.ReturnTime,
		WakeupTime:       c.WakeupTime,
		Location:         string(c.Location),
		Links: clientLinks{
			Self: "/v1/clients/" + c.ID,
			Move: "/v1/clients/" + c.ID + "/move",
		},
	}
}

func toInfoInput(r updateClientRequest) ports.ClientInfoInput {
	return ports.ClientInfoInput{
		Name:             r.Name,
		Gender:           r.Gender,
		Bed:              r.Bed,
		ChecksEnabled:    r.Checks,
		ApprovedContacts: r.ApprovedContacts,
		WakeupTime:       r.WakeupTime,
		ReturnTime:       r.ReturnTime,
		PropertyHeld:     r.Property,
	}
}

// toLocationsResponse groups client names by location, in location order.
func toLocationsResponse(clients []domain.Client) locationsResponse {
	byLoc := make(map[domain.Location][]string, len(domain.Locations))
	for _, c := range clients {
		byLoc[c.Location] = append(byLoc[c.Location], c.Name)
	}
	out := locationsResponse{Locations: make([]locationResponse, 0, len(domain.Locations))}
	for _, loc := range domain.Locations {
		names := byLoc[loc]
		if names == nil {
			names = []string{}
		}
		out.Locations = append(out.Locations, locationResponse{Name: string(loc), Clients: names})
	}
	return out
}
