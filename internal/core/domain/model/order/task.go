package order

// Task is one checklist item attached to an order. ID is zero until the task
// has been persisted.
type Task struct {
	ID          int64
	Description string
	Completed   bool
}

// NewTasks builds pending tasks from checklist descriptions.
func NewTasks(descriptions []string) []Task {
	tasks := make([]Task, 0, len(descriptions))
	for _, d := range descriptions {
		tasks = append(tasks, Task{Description: d})
	}
	return tasks
}
