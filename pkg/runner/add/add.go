package add

import (
	"context"
	"time"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/printers"
)

// Add records a log entry on a date and prints the resulting bucket.
type Add struct {
	Service *app.Service

	Date    string
	Message string
	Now     time.Time
}

func (n *Add) Do(ctx context.Context) error {
	if n.Now.IsZero() {
		n.Now = time.Now()
	}
	if n.Date == "" {
		n.Date = n.Service.Today(n.Now)
	}

	e := n.Service.AddLog(n.Date, n.Message, n.Now)
	if e == nil {
		// Blank input is a no-op, not an error.
		return nil
	}
	if err := n.Service.Save(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(n.Date)
	pp.Logs(n.Service.LogsOn(n.Date)...)
	return nil
}
