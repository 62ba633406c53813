// Package cli renders delivery events and rates as text tables.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"deliveryrates/internal/core/application/usecases/queries"
	"deliveryrates/internal/core/domain/model/rate"
)

// Reporter prints the recorded events and their rates.
// It coordinates between the terminal and the query use cases.
type Reporter struct {
	listEventsHandler queries.ListDeliveryEventsQueryHandler
	getRatesHandler   queries.GetDeliveryRatesQueryHandler
}

// NewReporter creates a reporter with the required query handlers.
func NewReporter(
	listEventsHandler queries.ListDeliveryEventsQueryHandler,
	getRatesHandler queries.GetDeliveryRatesQueryHandler,
) *Reporter {
	return &Reporter{
		listEventsHandler: listEventsHandler,
		getRatesHandler:   getRatesHandler,
	}
}

// Report writes every event followed by the rates computed by query.
// Nothing about rates is written when the calculation fails.
func (r *Reporter) Report(ctx context.Context, w io.Writer, query queries.GetDeliveryRatesQuery) error {
	events, err := r.listEventsHandler.Handle(ctx, queries.NewListDeliveryEventsQuery())
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	result, err := r.getRatesHandler.Handle(ctx, query)
	if err != nil {
		return fmt.Errorf("calculate rates with %s policy: %w", result.Policy, err)
	}

	if err = WriteEvents(w, events); err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w); err != nil {
		return err
	}
	return WriteRates(w, result)
}

// WriteEvents writes events as an aligned table.
func WriteEvents(w io.Writer, events []queries.ListDeliveryEventsQueryResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Events (%d):\n", len(events))
	fmt.Fprintln(tw, "ORDER\tDELIVERY\tKIND\tSTATUS\tTIMESTAMP")
	for _, ev := range events {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n",
			ev.OrderID, ev.DeliveryID, ev.Kind, ev.Status, ev.Timestamp.UTC().Format(time.RFC3339))
	}

	return tw.Flush()
}

// WriteRates writes the rates of one run as an aligned table.
func WriteRates(w io.Writer, result queries.GetDeliveryRatesQueryResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Rates (%s policy, %.2f per minute):\n", result.Policy, rate.PayRatePerMinute)
	fmt.Fprintln(tw, "ORDER\tDELIVERY\tFINAL STATUS\tMINUTES\tAMOUNT")
	for _, r := range result.Rates {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.0f\t%.2f\n",
			r.OrderID(), r.DeliveryID(), r.FinalStatus(), r.Minutes(), r.Amount())
	}

	return tw.Flush()
}
