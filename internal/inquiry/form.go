// Package inquiry turns the project inquiry form into a WhatsApp chat link.
package inquiry

import (
	"fmt"
	"net/mail"
	"strings"
)

// UserType distinguishes private clients from companies and government bodies.
type UserType string

const (
	UserIndividual UserType = "individual"
	UserCompany    UserType = "company"
)

// Option is one choice of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProjectTypes are the project categories offered by the form.
var ProjectTypes = []Option{
	{Value: "roads_highways", Label: "Roads & Highways"},
	{Value: "interior_design", Label: "Interior Design"},
	{Value: "urban_development", Label: "Urban Development"},
	{Value: "bridges_tunnels", Label: "Bridges & Tunnels"},
	{Value: "other", Label: "Other/Consultation"},
}

// BudgetRanges are the budget brackets offered by the form, in INR.
var BudgetRanges = []Option{
	{Value: "5L-50L", Label: "₹5 Lakh - ₹50 Lakh"},
	{Value: "50L-1CR", Label: "₹50 Lakh - ₹1 Crore"},
	{Value: "1CR-10CR", Label: "₹1 Crore - ₹10 Crore"},
	{Value: "10CR-50CR", Label: "₹10 Crore - ₹50 Crore"},
	{Value: "50CR+", Label: "Above ₹50 Crore"},
}

// Form holds the fields a visitor fills in.
type Form struct {
	FullName    string   `json:"full_name"`
	UserType    UserType `json:"user_type"`
	Company     string   `json:"company,omitempty"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	ProjectType string   `json:"project_type"`
	BudgetRange string   `json:"budget_range"`
	Description string   `json:"project_description"`
}

// FieldErrors maps form field names to a message for the visitor.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range fieldOrder {
		if msg, ok := e[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	return "invalid inquiry: " + strings.Join(parts, "; ")
}

var fieldOrder = []string{"full_name", "user_type", "company", "phone", "email", "project_type", "budget_range", "project_description"}

// Normalize trims whitespace and defaults the user type.
func (f Form) Normalize() Form {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Company = strings.TrimSpace(f.Company)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.ProjectType = strings.TrimSpace(f.ProjectType)
	f.BudgetRange = strings.TrimSpace(f.BudgetRange)
	f.Description = strings.TrimSpace(f.Description)
	if f.UserType == "" {
		f.UserType = UserIndividual
	}
	return f
}

// Validate checks required fields. The company name is only required for
// company inquiries. A nil return means the form is complete.
func (f Form) Validate() error {
	errs := FieldErrors{}
	if f.FullName == "" {
		errs["full_name"] = "is required"
	}
	switch f.UserType {
	case UserIndividual:
	case UserCompany:
		if f.Company == "" {
			errs["company"] = "is required for company inquiries"
		}
	default:
		errs["user_type"] = fmt.Sprintf("unknown type %q", f.UserType)
	}
	if f.Phone == "" {
		errs["phone"] = "is required"
	}
	if f.Email == "" {
		errs["email"] = "is required"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "is not a valid address"
	}
	if f.ProjectType == "" {
		errs["project_type"] = "is required"
	} else if !hasOption(ProjectTypes, f.ProjectType) {
		errs["project_type"] = "is not a known project type"
	}
	if f.BudgetRange == "" {
		errs["budget_range"] = "is required"
	} else if !hasOption(BudgetRanges, f.BudgetRange) {
		errs["budget_range"] = "is not a known budget range"
	}
	if f.Description == "" {
		errs["project_description"] = "is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func hasOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// OptionLabel returns the display label of value, or value itself when it is
// not one of opts.
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
