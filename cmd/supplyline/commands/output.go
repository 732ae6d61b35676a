package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"supplyline/internal/domain"
)

func table(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	_, _ = fmt.Fprintln(tw, strings.Join(parts, "\t"))
}

func when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func printOrders(w io.Writer, orders []domain.Order) error {
	tw := table(w, "ID", "STATUS", "ITEMS", "ADDRESS", "CREATED")
	for _, o := range orders {
		items := make([]string, len(o.Items))
		for i, it := range o.Items {
			name := it.Name
			if name == "" {
				name = it.CargoID.String()
			}
			items[i] = fmt.Sprintf("%dx %s", it.Quantity, name)
		}
		row(tw, o.ID, o.Status, strings.Join(items, ", "), o.Address, when(o.CreatedAt))
	}
	return tw.Flush()
}

func printCargo(w io.Writer, items []domain.CargoItem) error {
	tw := table(w, "ID", "NAME", "CATEGORY", "QUANTITY", "UNIT")
	for _, c := range items {
		row(tw, c.ID, c.Name, c.Category, c.Quantity, c.Unit)
	}
	return tw.Flush()
}

func printApplications(w io.Writer, apps []domain.Application) error {
	tw := table(w, "ID", "USER", "STATUS", "SUBMITTED", "MOTIVATION")
	for _, a := range apps {
		row(tw, a.ID, a.Username, a.Status, when(a.SubmittedAt), a.Motivation)
	}
	return tw.Flush()
}

func printRounds(w io.Writer, rounds []domain.Round) error {
	tw := table(w, "ID", "TITLE", "STARTS", "STATUS", "SIGNUPS", "SELECTED")
	for _, r := range rounds {
		row(tw, r.ID, r.Title, when(r.StartsAt), r.Status,
			fmt.Sprintf("%d/%d", len(r.Signups), r.Capacity), len(r.Selected))
	}
	return tw.Flush()
}

func printFeedback(w io.Writer, fb []domain.Feedback) error {
	tw := table(w, "ID", "ORDER", "RATING", "COMMENT")
	for _, f := range fb {
		order := f.OrderID.String()
		if order == "" {
			order = "-"
		}
		row(tw, f.ID, order, strings.Repeat("*", f.Rating), f.Comment)
	}
	return tw.Flush()
}

func printUsers(w io.Writer, users []domain.User) error {
	tw := table(w, "ID", "USERNAME", "ROLE", "NAME", "EMAIL")
	for _, u := range users {
		row(tw, u.ID, u.Username, u.Role, u.Name, u.Email)
	}
	return tw.Flush()
}
