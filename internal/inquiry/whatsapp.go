package inquiry

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidNumber is returned when the recipient is not an international
// number made of digits only.
var ErrInvalidNumber = errors.New("invalid WhatsApp number")

const notAvailable = "N/A"

// Message renders the inquiry as the plain-text chat message. brand is
// uppercased into the heading; ref is appended when non-empty.
func (f Form) Message(brand, ref string) string {
	contactType := "Individual"
	if f.UserType == UserCompany {
		contactType = fmt.Sprintf("Company (%s)", orNA(f.Company))
	}
	description := f.Description
	if description == "" {
		description = "No description provided."
	}
	project := notAvailable
	if f.ProjectType != "" {
		project = OptionLabel(ProjectTypes, f.ProjectType)
	}
	budget := notAvailable
	if f.BudgetRange != "" {
		budget = OptionLabel(BudgetRanges, f.BudgetRange)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*NEW %s PROJECT INQUIRY*\n", strings.ToUpper(brand))
	b.WriteString("\n--- Client Details ---\n")
	fmt.Fprintf(&b, "Name: %s\n", orNA(f.FullName))
	fmt.Fprintf(&b, "Contact Type: %s\n", contactType)
	fmt.Fprintf(&b, "Phone: %s\n", orNA(f.Phone))
	fmt.Fprintf(&b, "Email: %s\n", orNA(f.Email))
	b.WriteString("\n--- Project Scope ---\n")
	fmt.Fprintf(&b, "Category: %s\n", project)
	fmt.Fprintf(&b, "Budget: %s\n", budget)
	fmt.Fprintf(&b, "Description: %s", description)
	if ref != "" {
		fmt.Fprintf(&b, "\n\nReference: %s", ref)
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// Link builds the wa.me deep link that opens a chat with number prefilled
// with message. number is in international format without '+' or leading zeros.
func Link(number, message string) (string, error) {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	if number == "" || number[0] == '0' || len(number) < 8 || len(number) > 15 {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidNumber, number)
		}
	}
	return "https://wa.me/" + number + "?text=" + EncodeURIComponent(message), nil
}

// EncodeURIComponent escapes s the way the browser's encodeURIComponent does:
// spaces become %20, never '+', and !*'() are left as they are.
func EncodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}

var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
