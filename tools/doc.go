// Package tools defines the operation contracts and handlers devdesk serves.
//
// Includes:
//   - Typed Input structs per operation; schemas derived via dispatch.GenerateSchema.
//   - File analysis: analyze_file (lineCount, hasTodos) under the project root.
//   - Work logging: log_work (append-only), get_work_log.
//   - Task management: task_add, task_list, task_complete over the task table.
//   - Handlers close over injected collaborators (Deps); no package globals.
package tools
