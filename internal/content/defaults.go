package content

import (
	"fmt"
	"strings"
)

// Default returns the built-in directory served when no content file is configured.
func Default() *Directory {
	d, err := NewDirectory(defaultCategories()...)
	if err != nil {
		panic(fmt.Sprintf("content: built-in directory is invalid: %v", err))
	}
	return d
}

func defaultCategories() []Category {
	return []Category{
		{
			Name:    "Company",
			Tagline: "The JAYSHREE Story.",
			Groups: [][]Topic{
				{
					topic("Corporate Social Responsibility", IconHandshake, "Programmes that give back to the communities around our sites."),
					topic("Leadership", IconUsers, "The people steering JAYSHREE from concept to creation."),
					topic("Awards & Recognitions", IconAward, "Industry recognition earned across two decades of delivery."),
				},
				{
					topic("DBL Journey", IconRoute, "Milestones from our first contract to today's portfolio."),
					topic("Contact", IconPhone, "Reach our Jabalpur office, Monday to Saturday."),
					topic("ISO 27001", IconShieldCheck, "Certified information security management."),
				},
			},
		},
		{
			Name:    "Strengths",
			Tagline: "Engineered for Resilience.",
			Groups: [][]Topic{
				{
					topic("Innovation", IconLightbulb, "Modern analytical techniques applied to every project."),
					topic("Execution", IconHammer, "On-time delivery backed by our own equipment fleet."),
					topic("Environment, Health & Safety", IconLeaf, "Zero-harm sites and a shrinking carbon footprint."),
				},
				{
					topic("Backward Integration", IconPackage, "In-house materials and machinery for dependable supply."),
					topic("Partners", IconHandshake, "Long-standing relationships with clients and suppliers."),
					topic("Sustainability", IconTrendingUp, "Building infrastructure that lasts for generations."),
				},
			},
		},
		{
			Name:    "Projects",
			Tagline: "Portfolio of Progress.",
			Groups: [][]Topic{
				{
					topic("Ongoing Projects", IconWrench, "Roads, bridges and urban works currently under execution."),
					topic("Completed Projects", IconBuilding, "A track record of assets handed over to our clients."),
				},
			},
		},
	}
}

func topic(label string, icon Icon, summary string) Topic {
	return Topic{
		Label:   label,
		Icon:    icon,
		Summary: summary,
		Body:    defaultBody(CleanLabel(label)),
	}
}

func defaultBody(label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "JAYSHREE's commitment to %s is deeply woven into our operational framework. ", strings.ToLower(label))
	b.WriteString("This section details our core principles and practices in this crucial area.\n\n")
	b.WriteString("### Strategic Pillar\n\n")
	b.WriteString("Our approach integrates modern analytical techniques to ensure maximum resilience and long-term viability. ")
	b.WriteString("We focus on continuous improvement and feedback loops to adapt to changing regulatory and environmental landscapes.\n\n")
	b.WriteString("### Impact Metrics\n\n")
	b.WriteString("- Over 95% on-time project completion rate.\n")
	b.WriteString("- Reduction of 15% in operational carbon footprint since 2020.\n")
	b.WriteString("- Zero Lost Time Injury (LTI) rate maintained over the last four quarters.\n")
	return b.String()
}
