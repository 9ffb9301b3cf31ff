package tools

import (
	"encoding/json"

	"github.com/calebhays/devdesk/internal/dispatch"
	"github.com/calebhays/devdesk/internal/taskstore"
)

type TaskAddInput struct {
	TaskName    string `json:"taskName" jsonschema_description:"Unique name of the task."`
	Description string `json:"description" jsonschema_description:"Description of the task."`
}

type TaskListInput struct{}

type TaskCompleteInput struct {
	TaskName         string `json:"taskName" jsonschema_description:"Name of the task to update."`
	CompletionStatus string `json:"completionStatus" jsonschema:"enum=complete,enum=not complete" jsonschema_description:"New completion status."`
}

var (
	TaskAddInputSchema      = dispatch.GenerateSchema[TaskAddInput]()
	TaskListInputSchema     = dispatch.GenerateSchema[TaskListInput]()
	TaskCompleteInputSchema = dispatch.GenerateSchema[TaskCompleteInput]()
)

// TaskAddDefinition inserts a task with status "not complete". A duplicate
// name fails and leaves the existing record untouched.
func TaskAddDefinition(store *taskstore.Store) dispatch.Definition {
	return dispatch.Definition{
		Name:        "task_add",
		Description: "Add a task with a unique name. New tasks start as \"not complete\".",
		InputSchema: TaskAddInputSchema,
		Handler: func(input json.RawMessage) (string, error) {
			var in TaskAddInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}

			task, err := store.Add(in.TaskName, in.Description)
			if err != nil {
				return "", err
			}
			return marshalTask(task)
		},
	}
}

// TaskListDefinition returns all tasks with all fields, newest first.
func TaskListDefinition(store *taskstore.Store) dispatch.Definition {
	return dispatch.Definition{
		Name:        "task_list",
		Description: "List all tasks with their id, name, description, status, and timestamps.",
		InputSchema: TaskListInputSchema,
		Handler: func(input json.RawMessage) (string, error) {
			tasks, err := store.List()
			if err != nil {
				return "", err
			}

			b, err := json.Marshal(tasks)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	}
}

// TaskCompleteDefinition updates the status of an existing task. Repeating
// the current status is an idempotent success.
func TaskCompleteDefinition(store *taskstore.Store) dispatch.Definition {
	return dispatch.Definition{
		Name:        "task_complete",
		Description: "Set the completion status of an existing task to \"complete\" or \"not complete\".",
		InputSchema: TaskCompleteInputSchema,
		Handler: func(input json.RawMessage) (string, error) {
			var in TaskCompleteInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}

			task, err := store.SetStatus(in.TaskName, in.CompletionStatus)
			if err != nil {
				return "", err
			}
			return marshalTask(task)
		},
	}
}

func marshalTask(t *taskstore.Task) (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
