package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/espeon/wordclock/data"
)

func newConfigCmd(a *app) *cobra.Command {
	var example bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration after defaults, the config file, environment
variables and flags are applied. With --example, prints a commented config
file holding the defaults instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if example {
				_, err := a.out.Write(data.ExampleConfig)
				return err
			}
			out, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = a.out.Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&example, "example", false, "print a commented example file")
	return cmd
}
