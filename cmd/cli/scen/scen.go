// Package scen holds the scenario library subcommands.
package scen

import (
	"github.com/myrjola/alibi/internal/catalog"
	"github.com/myrjola/alibi/internal/scenario"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "scenario",
	Title: "Scenario library",
}

func init() {
	List.Flags().String("dir", scenario.DefaultDir, "scenario directory")
	Export.Flags().String("dir", scenario.DefaultDir, "scenario directory")
}

var List = &cobra.Command{
	Use:     "list",
	GroupID: "scenario",
	Short:   "List scenarios",
	Long:    `Lists built-in crime types and the authored scenarios found in the scenario directory`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range catalog.CrimeTypeNames() {
			cmd.Printf("%s (built-in)\n", name)
		}
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			return err
		}
		ids, err := scenario.List(dir)
		if err != nil {
			return err
		}
		for _, id := range ids {
			cmd.Println(id)
		}
		return nil
	},
}

var Validate = &cobra.Command{
	Use:     "validate [file]",
	GroupID: "scenario",
	Short:   "Validate a scenario file",
	Long:    `Parses a scenario file and checks it against the configuration rules`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		cmd.Printf("%s: ok (%d evidence templates)\n", config.Name, len(config.EvidenceTemplates))
		return nil
	},
}

var Export = &cobra.Command{
	Use:     "export [crime-type]",
	GroupID: "scenario",
	Short:   "Export a built-in crime type",
	Long:    `Writes a built-in crime type configuration to the scenario directory as a starting point for authoring`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := catalog.CrimeTypeByName(args[0])
		if err != nil {
			return err
		}
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			return err
		}
		path := scenario.Path(args[0], dir)
		if err = scenario.Save(config, path); err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", path)
		return nil
	},
}
