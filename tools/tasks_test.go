package tools_test

import (
	"strings"
	"testing"

	"github.com/calebhays/devdesk/internal/dispatch"
	"github.com/calebhays/devdesk/internal/taskstore"
)

func TestTaskAdd_Basic(t *testing.T) {
	h := newHarness(t)

	var task taskstore.Task
	h.invokeOK(t, "task_add", `{"taskName":"deploy","description":"ship the release"}`, &task)
	if task.Name != "deploy" || task.Status != taskstore.StatusNotComplete {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.ID == 0 || task.CreatedAt.IsZero() {
		t.Fatalf("expected id and created timestamp: %+v", task)
	}
}

func TestTaskAdd_DuplicateIsHandlerError(t *testing.T) {
	h := newHarness(t)
	h.invokeOK(t, "task_add", `{"taskName":"deploy","description":"original"}`, nil)

	res := h.invoke(t, "task_add", `{"taskName":"deploy","description":"impostor"}`)
	if res.OK || res.Kind != dispatch.KindHandlerError {
		t.Fatalf("expected handler_error for duplicate, got %+v", res)
	}
	if !strings.Contains(res.Message, "already exists") {
		t.Fatalf("unexpected message: %q", res.Message)
	}

	// The existing record is untouched.
	var tasks []taskstore.Task
	h.invokeOK(t, "task_list", `{}`, &tasks)
	if len(tasks) != 1 || tasks[0].Description != "original" {
		t.Fatalf("existing record altered: %+v", tasks)
	}
}

func TestTaskList_AllFields(t *testing.T) {
	h := newHarness(t)
	h.invokeOK(t, "task_add", `{"taskName":"a","description":"first"}`, nil)
	h.invokeOK(t, "task_add", `{"taskName":"b","description":"second"}`, nil)

	var tasks []taskstore.Task
	h.invokeOK(t, "task_list", `{}`, &tasks)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Name == "" || task.Description == "" || task.Status == "" || task.CreatedAt.IsZero() {
			t.Fatalf("task missing fields: %+v", task)
		}
	}
}

func TestTaskList_EmptyStoreIsEmptyArray(t *testing.T) {
	h := newHarness(t)
	res := h.invoke(t, "task_list", `{}`)
	if !res.OK {
		t.Fatalf("task_list: %+v", res)
	}
	if res.Payload != "[]" {
		t.Fatalf("payload: got %q want []", res.Payload)
	}
}

func TestTaskComplete_Flow(t *testing.T) {
	h := newHarness(t)
	h.invokeOK(t, "task_add", `{"taskName":"deploy","description":"ship it"}`, nil)

	var task taskstore.Task
	h.invokeOK(t, "task_complete", `{"taskName":"deploy","completionStatus":"complete"}`, &task)
	if task.Status != taskstore.StatusComplete {
		t.Fatalf("status: got %q want complete", task.Status)
	}
}

func TestTaskComplete_IdempotentRepeat(t *testing.T) {
	h := newHarness(t)
	h.invokeOK(t, "task_add", `{"taskName":"deploy","description":"ship it"}`, nil)

	args := `{"taskName":"deploy","completionStatus":"complete"}`
	h.invokeOK(t, "task_complete", args, nil)

	var task taskstore.Task
	h.invokeOK(t, "task_complete", args, &task)
	if task.Status != taskstore.StatusComplete {
		t.Fatalf("repeat left status %q", task.Status)
	}
}

func TestTaskComplete_UnknownTask(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "task_complete", `{"taskName":"ghost","completionStatus":"complete"}`)
	if res.OK || res.Kind != dispatch.KindHandlerError {
		t.Fatalf("expected handler_error, got %+v", res)
	}
	if !strings.Contains(res.Message, "not found") {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestTaskComplete_StatusEnumEnforced(t *testing.T) {
	h := newHarness(t)
	h.invokeOK(t, "task_add", `{"taskName":"deploy","description":"ship it"}`, nil)

	res := h.invoke(t, "task_complete", `{"taskName":"deploy","completionStatus":"done"}`)
	if res.OK || res.Kind != dispatch.KindInvalidParameter {
		t.Fatalf("expected invalid_parameter for bad status, got %+v", res)
	}

	// "not complete" (with the space) is a legal enum value.
	var task taskstore.Task
	h.invokeOK(t, "task_complete", `{"taskName":"deploy","completionStatus":"not complete"}`, &task)
	if task.Status != taskstore.StatusNotComplete {
		t.Fatalf("status: got %q want not complete", task.Status)
	}
}
