package domain

type Role string

const (
	RoleConsumer   Role = "consumer"
	RoleProvider   Role = "provider"
	RoleGovernment Role = "government"
)

// User is a registered account of any role. Role selects which profile
// pointer is set: Consumer for RoleConsumer, Provider for RoleProvider,
// neither for RoleGovernment.
type User struct {
	Email          string
	PasswordHash   string
	PaymentAccount string
	Role           Role
	Consumer       *ConsumerProfile
	Provider       *ProviderProfile
}

// Preferences are a consumer's search preferences. Boolean flags demand
// the matching amenity; caps of zero or below mean "no cap".
type Preferences struct {
	SocialDistancing bool
	AirFiltration    bool
	OutdoorsOnly     bool
	MaxCapacity      int
	MaxVenueSize     int
}

type ConsumerProfile struct {
	Name        string
	Phone       string
	Bookings    []*Booking
	Preferences *Preferences
}

type ProviderProfile struct {
	OrgName        string
	OrgAddress     string
	MainRepName    string
	OtherRepNames  []string
	OtherRepEmails []string
	Events         []*Event
	TelegramChatID *int64
}

// CanPay reports whether the user has an external payment account to
// charge or credit.
func (u *User) CanPay() bool {
	return u.PaymentAccount != ""
}

// Copy reconstructs the user field by field. Owned entity lists
// (a consumer's bookings, a provider's events) are left empty: they are
// rebound by the registry copies that own those entities.
func (u *User) Copy() *User {
	if u == nil {
		return nil
	}
	c := &User{
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		PaymentAccount: u.PaymentAccount,
		Role:           u.Role,
	}
	if u.Consumer != nil {
		c.Consumer = &ConsumerProfile{
			Name:  u.Consumer.Name,
			Phone: u.Consumer.Phone,
		}
		if u.Consumer.Preferences != nil {
			prefs := *u.Consumer.Preferences
			c.Consumer.Preferences = &prefs
		}
	}
	if u.Provider != nil {
		c.Provider = &ProviderProfile{
			OrgName:        u.Provider.OrgName,
			OrgAddress:     u.Provider.OrgAddress,
			MainRepName:    u.Provider.MainRepName,
			OtherRepNames:  append([]string(nil), u.Provider.OtherRepNames...),
			OtherRepEmails: append([]string(nil), u.Provider.OtherRepEmails...),
		}
		if u.Provider.TelegramChatID != nil {
			chatID := *u.Provider.TelegramChatID
			c.Provider.TelegramChatID = &chatID
		}
	}
	return c
}
