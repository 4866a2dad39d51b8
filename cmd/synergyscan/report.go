package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/udisondev/synergy/internal/game/synergy"
	"github.com/udisondev/synergy/internal/model"
)

func writeReport(w io.Writer, tracker *synergy.Tracker, res synergy.RefreshResult, c *model.Character) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "matches: %d\tgroups: %d\trejected: %d\n\n", res.Matches, res.Groups, res.Rejected)

	fmt.Fprintln(tw, "PATTERN\tINSTANCES\tANCHORS\tMULTIPLIER\tPROGRESS")
	for _, g := range tracker.Groups() {
		p := g.Pattern()
		anchors := make([]string, 0, g.InstanceCount())
		for _, inst := range g.Instances() {
			anchors = append(anchors, inst.Anchor().String())
		}
		progress := "-"
		if p.HasSkill() {
			progress = fmt.Sprintf("%.1f/%.0f", tracker.Progress(p.ID()), p.SynergyPointsRequired())
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.2f\t%s\n",
			p.Name(), g.InstanceCount(), strings.Join(anchors, " "), g.TotalMultiplier(), progress)
	}

	if ready := tracker.ReadyToUnlock(); len(ready) > 0 {
		fmt.Fprintln(tw)
		for _, p := range ready {
			fmt.Fprintf(tw, "skill ready:\t%s\t(%s)\n", p.UnlockedSkill(), p.Name())
		}
	}

	if len(res.NewlyDiscovered) > 0 {
		fmt.Fprintf(tw, "\nnew stencils:\t%s\n", strings.Join(res.NewlyDiscovered, ", "))
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "character:\t%s\n", c.Name)
	fmt.Fprintf(tw, "STR/AGI/VIT/MAG:\t%d/%d/%d/%d\n", c.Stats.Strength, c.Stats.Agility, c.Stats.Vitality, c.Stats.Magic)
	fmt.Fprintf(tw, "HP/MP:\t%d/%d\n", c.MaxHP, c.MaxMP)
	fmt.Fprintf(tw, "defense:\t%+d\n", c.DefenseBonus)
	fmt.Fprintf(tw, "deflect:\t%.1f%%\n", c.DeflectChance.Float()*100)
	fmt.Fprintf(tw, "counter:\t%t\n", c.CanCounter())
	fmt.Fprintf(tw, "mp regen:\t%+.2f\n", c.MPRegenPerTick.Float())
	fmt.Fprintf(tw, "heal power:\t×%.2f\n", 1+c.HealPowerMultiplier.Float())
	fmt.Fprintf(tw, "fire damage:\t×%.2f\n", 1+c.FireDamageMultiplier.Float())
	fmt.Fprintf(tw, "mp cost:\t-%.1f%%\n", c.MPCostReduction.Float())

	return tw.Flush()
}
