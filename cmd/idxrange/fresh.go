package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/henderiw/idxrange/pkg/catalog"
	"github.com/henderiw/idxrange/pkg/inventory"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/labels"
)

func newFreshCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fresh FILE...",
		Short: "count fresh ids in inventory files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runFresh(cmd, args)
		},
	}
	cmd.Flags().StringSlice("label", nil, "extra labels (k=v) attached to every file")
	cmd.Flags().String("selector", "", "label selector restricting the reported files")
	_ = o.v.BindPFlag("label", cmd.Flags().Lookup("label"))
	_ = o.v.BindPFlag("selector", cmd.Flags().Lookup("selector"))
	return cmd
}

func (o *rootOptions) runFresh(cmd *cobra.Command, files []string) error {
	extra, err := labels.ConvertSelectorToLabelsMap(strings.Join(o.v.GetStringSlice("label"), ","))
	if err != nil {
		return fmt.Errorf("invalid labels: %w", err)
	}
	selector, err := labels.Parse(o.v.GetString("selector"))
	if err != nil {
		return fmt.Errorf("invalid selector: %w", err)
	}

	cat := catalog.New()
	inventories := map[string]*inventory.Inventory{}
	for _, file := range files {
		if cat.Has(file) {
			o.log.WithFields(logrus.Fields{"file": file}).Warn("duplicate inventory file, skipping")
			continue
		}
		inv, err := inventory.Load(file)
		if err != nil {
			if inv == nil {
				return err
			}
			o.log.WithFields(logrus.Fields{"file": file}).Warn(err)
		}
		l := labels.Merge(labels.Set{"file": filepath.Base(file)}, extra)
		if err := cat.Add(file, l, inv.Fresh); err != nil {
			return err
		}
		inventories[file] = inv
		o.log.WithFields(logrus.Fields{
			"file":   file,
			"ranges": inv.Fresh.Len(),
			"ids":    len(inv.IDs),
		}).Debug("loaded inventory")
	}

	for _, e := range cat.GetByLabel(selector) {
		inv := inventories[e.Name()]
		fmt.Fprintf(cmd.OutOrStdout(), "%s: fresh=%d total=%d\n", e.Name(), inv.CountFresh(), inv.TotalFresh())
	}
	return nil
}
