package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jayshree-infra/website/internal/route"
)

type linkRow struct {
	Category   string `json:"category"`
	CleanLabel string `json:"clean_label"`
	Slug       string `json:"slug"`
	Path       string `json:"path"`
	Icon       string `json:"icon"`
}

var linksCmd = &cobra.Command{
	Use:   "links [category]",
	Short: "List topic links and their URLs",
	Long:  `Prints the flattened topic links of one category, or of every category when none is given. The category may be its name or its path segment.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, err := loadDirectory(cfg)
		if err != nil {
			return err
		}

		categories := dir.Names()
		if len(args) == 1 {
			name := args[0]
			if resolved, ok := route.Resolve(dir.Names(), name); ok {
				name = resolved
			}
			categories = []string{name}
		}

		rows := []linkRow{}
		for _, c := range categories {
			for _, l := range dir.Links(c) {
				rows = append(rows, linkRow{
					Category:   c,
					CleanLabel: l.CleanLabel,
					Slug:       l.Slug,
					Path:       route.TopicPath(c, l.Slug),
					Icon:       string(l.Icon),
				})
			}
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}
		if len(rows) == 0 {
			fmt.Fprintf(os.Stderr, "No topics found for %v\n", categories)
			return nil
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tTOPIC\tSLUG\tPATH")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Category, r.CleanLabel, r.Slug, r.Path)
		}
		return tw.Flush()
	},
}

func init() {
	linksCmd.Flags().Bool("json", false, "print JSON instead of a table")
	rootCmd.AddCommand(linksCmd)
}
