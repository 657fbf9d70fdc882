package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jayshree-infra/website/internal/config"
	"github.com/jayshree-infra/website/internal/content"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes a .jayshree.yml file. With --content it also writes the built-in content to a YAML file you can edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		contentOut, _ := cmd.Flags().GetString("content")

		dir := content.Default()
		cfg, err := config.RunWizard(cfgFile, dir.Names())
		if err != nil {
			return err
		}
		if contentOut == "" {
			return nil
		}

		data, err := content.Marshal(dir)
		if err != nil {
			return err
		}
		if err := os.WriteFile(contentOut, data, 0o644); err != nil {
			return fmt.Errorf("writing content: %w", err)
		}
		cfg.ContentFile = contentOut
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Content written to %s\n", contentOut)
		return nil
	},
}

func init() {
	initCmd.Flags().String("content", "", "also write the built-in content to this YAML file")
	rootCmd.AddCommand(initCmd)
}
