// Package contact describes how visitors reach the office and when it is open.
package contact

import (
	"time"
	_ "time/tzdata"
)

// Details are the public contact points shown on the site.
type Details struct {
	Phone        string `yaml:"phone" koanf:"phone"`
	Email        string `yaml:"email" koanf:"email"`
	Address      string `yaml:"address" koanf:"address"`
	AddressLine2 string `yaml:"address_line2" koanf:"address_line2"`
	MapURL       string `yaml:"map_url" koanf:"map_url"`
}

// TelURL returns the tel: link for the phone number.
func (d Details) TelURL() string {
	var digits []rune
	for _, r := range d.Phone {
		if r == '+' || (r >= '0' && r <= '9') {
			digits = append(digits, r)
		}
	}
	return "tel:" + string(digits)
}

// MailURL returns the mailto: link for the email address.
func (d Details) MailURL() string { return "mailto:" + d.Email }

// Hours is a weekly opening schedule: the same hours on each open day.
type Hours struct {
	Location  *time.Location
	OpenDays  []time.Weekday
	OpenHour  int // inclusive
	CloseHour int // exclusive
}

// DefaultHours is Monday to Saturday, 9 AM to 6 PM India time.
func DefaultHours() Hours {
	h, _ := NewHours("Asia/Kolkata", 9, 18)
	return h
}

// NewHours builds a Monday-to-Saturday schedule in the named zone. An unknown
// zone falls back to IST and is reported as an error.
func NewHours(zone string, openHour, closeHour int) (Hours, error) {
	h := Hours{
		OpenDays:  []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
		OpenHour:  openHour,
		CloseHour: closeHour,
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		h.Location = time.FixedZone("IST", 5*60*60+30*60)
		return h, err
	}
	h.Location = loc
	return h, nil
}

// IsOpen reports whether the office is open at t.
func (h Hours) IsOpen(t time.Time) bool {
	if h.Location != nil {
		t = t.In(h.Location)
	}
	open := false
	for _, d := range h.OpenDays {
		if t.Weekday() == d {
			open = true
			break
		}
	}
	return open && t.Hour() >= h.OpenHour && t.Hour() < h.CloseHour
}

// Summary renders the schedule the way the contact section shows it.
func (h Hours) Summary() string {
	return "Mon - Sat: " + clock(h.OpenHour) + " - " + clock(h.CloseHour)
}

func clock(hour int) string {
	return time.Date(2000, 1, 1, hour, 0, 0, 0, time.UTC).Format("3:04 PM")
}
