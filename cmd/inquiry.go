package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jayshree-infra/website/internal/inquiry"
	"github.com/jayshree-infra/website/internal/server"
)

var inquiryCmd = &cobra.Command{
	Use:   "inquiry",
	Short: "Compose a WhatsApp inquiry link from the command line",
	Long:  `Validates a project inquiry given as flags and prints the WhatsApp link that opens a chat with the message prefilled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		str := func(name string) string {
			v, _ := flags.GetString(name)
			return v
		}
		form := inquiry.Form{
			FullName:    str("name"),
			UserType:    inquiry.UserType(str("type")),
			Company:     str("company"),
			Phone:       str("phone"),
			Email:       str("email"),
			ProjectType: str("project"),
			BudgetRange: str("budget"),
			Description: str("description"),
		}

		res, err := newComposer(cfg).Compose(form)
		if err != nil {
			return err
		}

		if show, _ := flags.GetBool("show-message"); show {
			fmt.Fprintf(os.Stderr, "%s\n\n", res.Message)
		}
		fmt.Println(res.Link)
		if open, _ := flags.GetBool("open"); open {
			server.OpenBrowser(res.Link)
		}
		return nil
	},
}

func init() {
	f := inquiryCmd.Flags()
	f.String("name", "", "client's full name")
	f.String("type", string(inquiry.UserIndividual), "individual or company")
	f.String("company", "", "company name (for company inquiries)")
	f.String("phone", "", "contact phone number")
	f.String("email", "", "contact email address")
	f.String("project", "", "project type: roads_highways, interior_design, urban_development, bridges_tunnels, other")
	f.String("budget", "", "budget range: 5L-50L, 50L-1CR, 1CR-10CR, 10CR-50CR, 50CR+")
	f.String("description", "", "project description")
	f.Bool("show-message", false, "print the composed message to stderr")
	f.Bool("open", false, "open the link in the default browser")
	rootCmd.AddCommand(inquiryCmd)
}
