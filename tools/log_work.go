package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/calebhays/devdesk/internal/dispatch"
	"github.com/calebhays/devdesk/internal/worklog"
)

type LogWorkInput struct {
	Description string `json:"description" jsonschema_description:"Description of the work performed."`
}

var LogWorkInputSchema = dispatch.GenerateSchema[LogWorkInput]()

// LogWorkDefinition appends one timestamped entry to the append-only work log
// and returns the entry as written.
func LogWorkDefinition(log *worklog.Log) dispatch.Definition {
	return dispatch.Definition{
		Name:        "log_work",
		Description: "Log work performed with a timestamp. Appends one entry to the append-only work log.",
		InputSchema: LogWorkInputSchema,
		Handler: func(input json.RawMessage) (string, error) {
			var in LogWorkInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			if strings.TrimSpace(in.Description) == "" {
				return "", fmt.Errorf("work description must not be empty")
			}
			// One entry is one line; an embedded newline would read back as
			// several entries.
			if strings.ContainsAny(in.Description, "\r\n") {
				return "", fmt.Errorf("work description must not contain newlines")
			}

			entry, err := log.Append(in.Description)
			if err != nil {
				return "", err
			}

			b, err := json.Marshal(entry)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	}
}
