package ui

import (
	"time"

	"tableflip.dev/todo/pkg/category"
	"tableflip.dev/todo/pkg/task"
)

// StaticDemo returns a spread of sample tasks stamped over the last week.
func StaticDemo(now time.Time) []task.Task {
	day := 24 * time.Hour
	t := make([]task.Task, 0, 10)

	t = append(t,
		task.New("review the quarterly plan", category.Work, now.Add(-6*day)),
		task.New("reply to the design thread", category.Work, now.Add(-2*day)),
		task.New("prepare standup notes", category.Work, now.Add(-3*time.Hour)),
		task.New("finish chapter 4", category.Study, now.Add(-5*day)),
		task.New("flashcards for the exam", category.Study, now.Add(-1*day)),
		task.New("buy groceries", category.Life, now.Add(-4*day)),
		task.New("call the dentist", category.Life, now.Add(-30*time.Minute)),
		task.New("water the plants", category.Life, now.Add(-3*day)),
		task.New("back up the laptop", category.Other, now.Add(-7*day)),
	)

	t[0].Completed = true
	t[3].Completed = true
	t[5].Completed = true

	return t
}
