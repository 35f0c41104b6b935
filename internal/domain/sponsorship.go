package domain

type SponsorshipStatus string

const (
	SponsorshipStatusPending  SponsorshipStatus = "pending"
	SponsorshipStatusAccepted SponsorshipStatus = "accepted"
	SponsorshipStatusRejected SponsorshipStatus = "rejected"
)

// SponsorshipRequest asks the government to subsidise one ticketed
// event. DiscountPercent and SponsorAccount are recorded on acceptance.
type SponsorshipRequest struct {
	Number          int
	Event           *Event
	Status          SponsorshipStatus
	DiscountPercent int
	SponsorAccount  string
}

// Accept transitions the request to accepted. The caller must verify
// the request is still pending and the percent is within range.
func (r *SponsorshipRequest) Accept(percent int, sponsorAccount string) {
	r.Status = SponsorshipStatusAccepted
	r.DiscountPercent = percent
	r.SponsorAccount = sponsorAccount
}

// Reject transitions the request to rejected. The caller must verify
// the request is still pending.
func (r *SponsorshipRequest) Reject() {
	r.Status = SponsorshipStatusRejected
}

// Copy reconstructs the request field by field, binding it to the given
// (already copied) event.
func (r *SponsorshipRequest) Copy(event *Event) *SponsorshipRequest {
	return &SponsorshipRequest{
		Number:          r.Number,
		Event:           event,
		Status:          r.Status,
		DiscountPercent: r.DiscountPercent,
		SponsorAccount:  r.SponsorAccount,
	}
}
