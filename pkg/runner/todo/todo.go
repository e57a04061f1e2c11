package todo

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/entry"
	"tableflip.dev/daylog/pkg/printers"
)

// Add records a todo on a date and prints the resulting bucket.
type Add struct {
	Service *app.Service

	Date    string
	Message string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Date == "" {
		n.Date = n.Service.Today(time.Now())
	}

	t := n.Service.AddTodo(n.Date, n.Message)
	if t == nil {
		return nil
	}
	if err := n.Service.Save(); err != nil {
		return err
	}

	printBucket(n.Service, n.Date)
	return nil
}

// Toggle pins a todo's completion to the negation of its current effective
// state.
type Toggle struct {
	Service *app.Service

	ID string
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("toggle requires a todo id")
	}
	t, err := n.Service.ToggleTodo(n.ID)
	if err != nil {
		return err
	}
	if err := n.Service.Save(); err != nil {
		return err
	}

	printBucket(n.Service, t.Date)
	return nil
}

// Edit replaces a todo's content; the manual override is untouched.
type Edit struct {
	Service *app.Service

	ID      string
	Message string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.ID == "" {
		return errors.New("edit requires a todo id")
	}
	t, err := n.Service.EditTodo(n.ID, n.Message)
	if err != nil {
		return err
	}
	if err := n.Service.Save(); err != nil {
		return err
	}

	printBucket(n.Service, t.Date)
	return nil
}

func printBucket(svc *app.Service, date string) {
	pp := printers.PrettyPrint{}
	pp.Title(date)
	pp.Todos(svc.TodosOn(date), func(t *entry.TodoEntry) bool {
		return svc.TodoDone(t)
	})
}
