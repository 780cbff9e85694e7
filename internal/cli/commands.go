package cli

import (
	"context"
	"fmt"

	"crewmirror/internal/common"
)

// runSync sweeps every dataset once and prints one status line each.
// Individual failures are reported but do not fail the command; stale
// reference data is usable.
func (a *App) runSync(ctx context.Context) error {
	for _, status := range a.manager.RefreshAll(ctx) {
		switch {
		case status.Success && status.Message != "":
			fmt.Fprintf(a.out, "%-13s %s\n", status.Dataset, status.Message)
		case status.Success:
			fmt.Fprintf(a.out, "%-13s refreshed, %d rows\n", status.Dataset, status.Rows)
		default:
			fmt.Fprintf(a.out, "%-13s FAILED: %s\n", status.Dataset, status.Message)
		}
	}
	return nil
}

// runProfile prints a summary of the locally cached profile aggregate.
func (a *App) runProfile(ctx context.Context) error {
	p := a.profiles.LoadLocal(ctx)
	if p == nil {
		fmt.Fprintln(a.out, "No local profile. Run 'crewmirror login' first.")
		return nil
	}

	fmt.Fprintf(a.out, "User:         %s <%s> (id %d, status %s)\n", p.User.Name, p.User.Email, p.User.ID, p.User.Status)
	fmt.Fprintf(a.out, "Images:       %d\n", len(p.Images))
	fmt.Fprintf(a.out, "Videos:       %d\n", len(p.Videos))
	fmt.Fprintf(a.out, "Zones:        %v\n", p.ZoneIDs)
	fmt.Fprintf(a.out, "Categories:   %v\n", p.CategoryIDs)
	fmt.Fprintf(a.out, "Services:     %v\n", p.ServiceIDs)
	fmt.Fprintf(a.out, "Designations: %v\n", p.DesignationIDs)
	fmt.Fprintf(a.out, "Time slots:   %v\n", p.TimeSlotIDs)
	fmt.Fprintf(a.out, "Documents:    %v\n", p.Documents != nil)

	for _, day := range common.Weekdays {
		rows := p.DriverAssignments[day]
		assigned := 0
		for _, r := range rows {
			if !r.IsPlaceholder() {
				assigned++
			}
		}
		fmt.Fprintf(a.out, "  %-9s %d assignment(s)\n", day, assigned)
	}
	return nil
}

// runReset clears one dataset's mirror and ledger stamp.
func (a *App) runReset(ctx context.Context, dataset string) error {
	if err := a.manager.Reset(ctx, dataset); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s cleared, next sync will refetch\n", dataset)
	return nil
}
