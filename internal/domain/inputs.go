package domain

import "time"

type RegisterConsumerInput struct {
	Name           string
	Email          string
	Phone          string
	Password       string
	PaymentAccount string
}

type RegisterProviderInput struct {
	OrgName        string
	OrgAddress     string
	PaymentAccount string
	MainRepName    string
	MainRepEmail   string
	Password       string
	OtherRepNames  []string
	OtherRepEmails []string
	TelegramChatID *int64
}

type CreateTicketedEventInput struct {
	Title       string
	Category    string
	Price       float64
	TicketCount int
}

type CreatePerformanceInput struct {
	EventNumber      int
	VenueAddress     string
	StartsAt         time.Time
	EndsAt           time.Time
	Performers       []string
	SocialDistancing bool
	AirFiltration    bool
	Outdoors         bool
	Capacity         int
	VenueSize        int
}
