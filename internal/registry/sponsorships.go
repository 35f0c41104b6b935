package registry

import "github.com/AndreasHiropedi/Events-System-sub000/internal/domain"

// Sponsorships owns every sponsorship request and allocates request
// numbers.
type Sponsorships struct {
	requests   []*domain.SponsorshipRequest
	nextNumber int
}

func NewSponsorships() *Sponsorships {
	return &Sponsorships{nextNumber: 1}
}

// Add allocates the next request number, links the request to the event
// and appends it to the global list. Returns nil without mutation if
// the event is nil or not ticketed.
func (r *Sponsorships) Add(event *domain.Event) *domain.SponsorshipRequest {
	if event == nil || event.Ticketing == nil {
		return nil
	}
	req := &domain.SponsorshipRequest{
		Number: r.nextNumber,
		Event:  event,
		Status: domain.SponsorshipStatusPending,
	}
	r.nextNumber++
	r.requests = append(r.requests, req)
	event.Ticketing.Sponsorship = req
	return req
}

func (r *Sponsorships) FindByNumber(number int) *domain.SponsorshipRequest {
	for _, req := range r.requests {
		if req.Number == number {
			return req
		}
	}
	return nil
}

func (r *Sponsorships) All() []*domain.SponsorshipRequest {
	return r.requests
}

func (r *Sponsorships) Pending() []*domain.SponsorshipRequest {
	var pending []*domain.SponsorshipRequest
	for _, req := range r.requests {
		if req.Status == domain.SponsorshipStatusPending {
			pending = append(pending, req)
		}
	}
	return pending
}

// Copy reconstructs the registry and every request in it field by
// field, rebinding each request to its event in the already copied
// event registry and restoring the event-side link.
func (r *Sponsorships) Copy(events *Events) *Sponsorships {
	c := &Sponsorships{nextNumber: r.nextNumber}
	for _, req := range r.requests {
		event := events.FindByNumber(req.Event.Number)
		copied := req.Copy(event)
		c.requests = append(c.requests, copied)
		if event != nil && event.Ticketing != nil {
			event.Ticketing.Sponsorship = copied
		}
	}
	return c
}
