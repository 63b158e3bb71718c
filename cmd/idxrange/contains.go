package main

import (
	"fmt"
	"strconv"

	"github.com/henderiw/idxrange/pkg/addrset"
	"github.com/henderiw/idxrange/pkg/interval"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newContainsCmd(o *rootOptions) *cobra.Command {
	var ranges []string
	cmd := &cobra.Command{
		Use:   "contains ID...",
		Short: "check ids against a set of ranges",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := interval.ParseRanges(ranges)
			if err != nil {
				return err
			}
			o.log.WithFields(logrus.Fields{"set": set.String()}).Debug("built set")

			for _, arg := range args {
				id, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid id %q: %w", arg, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d %t\n", id, set.Contains(id))
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&ranges, "range", "r", nil, "range in the form from-to, repeatable")
	return cmd
}

func newAddrCmd(o *rootOptions) *cobra.Command {
	var ranges []string
	cmd := &cobra.Command{
		Use:   "addr ADDR...",
		Short: "check ipv4 addresses against a set of address ranges",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := addrset.Build(ranges)
			if err != nil {
				return err
			}
			o.log.WithFields(logrus.Fields{"set": set.String(), "size": set.Size()}).Debug("built address set")

			for _, arg := range args {
				ok, err := set.ContainsString(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %t\n", arg, ok)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&ranges, "range", "r", nil, "address range, prefix or address, repeatable")
	return cmd
}
