package tools

import (
	"encoding/json"
	"fmt"

	"github.com/calebhays/devdesk/internal/analyze"
	"github.com/calebhays/devdesk/internal/dispatch"
	"github.com/calebhays/devdesk/internal/fsops"
)

type AnalyzeFileInput struct {
	Path   string `json:"path" jsonschema_description:"Relative path of the file to analyze, resolved under the project root."`
	Option string `json:"option" jsonschema:"enum=lineCount,enum=hasTodos" jsonschema_description:"Analysis option to apply."`
}

const (
	optionLineCount = "lineCount"
	optionHasTodos  = "hasTodos"
)

type analyzeFileResult struct {
	Path      string `json:"path"`
	LineCount *int   `json:"lineCount,omitempty"`
	HasTodos  *bool  `json:"hasTodos,omitempty"`
}

var AnalyzeFileInputSchema = dispatch.GenerateSchema[AnalyzeFileInput]()

// AnalyzeFileDefinition analyzes a file within the project root: lineCount
// returns the number of lines, hasTodos whether the file contains the exact
// case-sensitive marker "TODO". Paths outside the root are rejected.
func AnalyzeFileDefinition(ws *fsops.Workspace) dispatch.Definition {
	return dispatch.Definition{
		Name:        "analyze_file",
		Description: "Analyze a file addressed by a relative path within the project root. Option lineCount returns the line count; hasTodos reports whether the file contains a TODO marker (case-sensitive).",
		InputSchema: AnalyzeFileInputSchema,
		Handler: func(input json.RawMessage) (string, error) {
			var in AnalyzeFileInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}

			content, err := ws.ReadFile(in.Path)
			if err != nil {
				return "", err
			}

			out := analyzeFileResult{Path: in.Path}
			switch in.Option {
			case optionLineCount:
				n := analyze.LineCount(content)
				out.LineCount = &n
			case optionHasTodos:
				b := analyze.HasTodos(content)
				out.HasTodos = &b
			default:
				// The dispatcher enforces the enum; this only fires when the
				// handler is called outside it.
				return "", fmt.Errorf("unknown analysis option %q", in.Option)
			}

			b, err := json.Marshal(out)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
	}
}
