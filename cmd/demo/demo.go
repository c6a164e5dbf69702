package main

import (
	"context"
	"fmt"

	"tableflip.dev/groupdo/pkg/store"
	"tableflip.dev/groupdo/pkg/todo"
)

// demo is a small list that shows off every feature of the UI.
func demo() *todo.List {
	l := todo.New()

	home, _ := l.AddGroup("Home")
	laundry, _ := l.AddTask(home, "Laundry")
	_, _ = l.AddSubTask(home, laundry, "Whites")
	_, _ = l.AddSubTask(home, laundry, "Darks")
	_ = l.SetSubTaskCompleted(home, laundry, 0, true)
	_ = l.SetExpanded(home, laundry, true)
	plants, _ := l.AddTask(home, "Water the plants")
	_ = l.SetCompleted(home, plants, true)
	rent, _ := l.AddTask(home, "Pay rent")
	_ = l.SetUrgency(home, rent, todo.UrgencyCritical)

	work, _ := l.AddGroup("Work")
	review, _ := l.AddTask(work, "Review the release notes")
	_ = l.SetUrgency(work, review, todo.UrgencyHigh)
	_, _ = l.AddTask(work, "Book the team offsite")
	standup, _ := l.AddTask(work, "Standup notes")
	_ = l.SetUrgency(work, standup, todo.UrgencyMedium)

	groceries, _ := l.AddGroup("Groceries")
	for _, item := range []string{"Milk", "Eggs", "Coffee", "Apples"} {
		_, _ = l.AddTask(groceries, item)
	}
	return l
}

func main() {
	p, err := store.Load(nil)
	if err != nil {
		panic(err)
	}
	defer p.Close()

	if err := p.Save(context.Background(), demo()); err != nil {
		panic(err)
	}
	fmt.Println("demo list saved, run: groupdo ui")
}
