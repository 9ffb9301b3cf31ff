package tools

import (
	"github.com/calebhays/devdesk/internal/dispatch"
	"github.com/calebhays/devdesk/internal/fsops"
	"github.com/calebhays/devdesk/internal/taskstore"
	"github.com/calebhays/devdesk/internal/worklog"
)

// Deps carries the collaborators the tool handlers operate on.
type Deps struct {
	Workspace *fsops.Workspace
	WorkLog   *worklog.Log
	Tasks     *taskstore.Store
}

// Registry returns all tool definitions wired for the server.
func Registry(d Deps) []dispatch.Definition {
	return []dispatch.Definition{
		AnalyzeFileDefinition(d.Workspace),
		LogWorkDefinition(d.WorkLog),
		GetWorkLogDefinition(d.WorkLog),
		TaskAddDefinition(d.Tasks),
		TaskListDefinition(d.Tasks),
		TaskCompleteDefinition(d.Tasks),
	}
}
