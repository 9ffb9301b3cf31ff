package tools

import (
	"encoding/json"

	"github.com/calebhays/devdesk/internal/dispatch"
	"github.com/calebhays/devdesk/internal/worklog"
)

type GetWorkLogInput struct{}

var GetWorkLogInputSchema = dispatch.GenerateSchema[GetWorkLogInput]()

// GetWorkLogDefinition returns every logged entry, oldest first, as a JSON
// array. A missing log file reads as an empty array rather than an error.
func GetWorkLogDefinition(log *worklog.Log) dispatch.Definition {
	return dispatch.Definition{
		Name:        "get_work_log",
		Description: "Return the full append-only work log as an ordered list of entries.",
		InputSchema: GetWorkLogInputSchema,
		Handler: func(input json.RawMessage) (string, error) {
			entries, err := log.Entries()
			if err != nil {
				return "", err
			}

			b, err := json.Marshal(entries)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	}
}
