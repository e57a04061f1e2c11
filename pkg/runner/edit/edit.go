package edit

import (
	"context"
	"errors"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/printers"
)

// Edit rewrites a log entry's time and/or content. A time that does not
// parse leaves the entry untouched and surfaces the error for correction.
type Edit struct {
	Service *app.Service

	ID      string
	Time    string
	Message string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("edit requires an entry id")
	}

	e, err := n.Service.EditLog(n.ID, n.Time, n.Message)
	if err != nil {
		return err
	}
	if err := n.Service.Save(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(e.Date)
	pp.Logs(n.Service.LogsOn(e.Date)...)
	return nil
}
