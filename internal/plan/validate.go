package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// planSchema is the JSON Schema every plan must satisfy, regardless of the
// on-disk format (non-JSON plans are re-marshalled before validation).
const planSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema_version", "tasks"],
  "properties": {
    "schema_version": {"const": 1},
    "title": {"type": "string"},
    "tasks": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "start_week", "duration", "category"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "start_week": {"type": "integer", "minimum": 1},
          "duration": {"type": "integer", "minimum": 1},
          "category": {"enum": ["Frontend", "Backend", "DevOps", "Testing"]},
          "description": {"type": "string"}
        }
      }
    },
    "milestones": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["week", "task", "label"],
        "properties": {
          "week": {"type": "number", "exclusiveMinimum": 0},
          "task": {"type": "string", "minLength": 1},
          "label": {"type": "string"}
        }
      }
    }
  }
}`

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // path to the error location, e.g. tasks[2].category
	Err  error  // underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Err folds the result into a single error, or nil when valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("invalid plan: %s", strings.Join(msgs, "; "))
}

// Validate checks the plan against the embedded schema plus the cross-field
// rules the schema cannot express (unique task names, milestone references,
// axis bounds). If schema validation is unavailable it falls back to minimal
// per-field checks with a warning.
func (p *Plan) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	p.validateSchema(result)
	if !result.UsedSchema {
		result.Warnings = append(result.Warnings, "JSON Schema validation not available, using minimal checks")
		p.validateMinimal(result)
	}
	p.validateCross(result)

	return result
}

// validateSchema runs JSON Schema validation over the re-marshalled plan.
func (p *Plan) validateSchema(result *ValidationResult) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("plan.schema.json", strings.NewReader(planSchema)); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("schema unavailable: %v", err))
		return
	}
	schema, err := compiler.Compile("plan.schema.json")
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("schema unavailable: %v", err))
		return
	}

	data, err := json.Marshal(p)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("marshal plan for validation: %w", err),
		})
		return
	}
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("unmarshal plan for validation: %w", err),
		})
		return
	}

	result.UsedSchema = true
	if err := schema.Validate(obj); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
}

// validateMinimal performs minimal per-field validation without JSON Schema.
func (p *Plan) validateMinimal(result *ValidationResult) {
	fail := func(path string, format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: path,
			Err:  fmt.Errorf(format, args...),
		})
	}

	if p.SchemaVersion != 1 {
		fail("schema_version", "expected 1, got %d", p.SchemaVersion)
	}
	if len(p.Tasks) == 0 {
		fail("tasks", "plan has no tasks")
		return
	}
	for i, t := range p.Tasks {
		path := fmt.Sprintf("tasks[%d]", i)
		if t.Name == "" {
			fail(path+".name", "missing required field")
			continue
		}
		if t.StartWeek < 1 {
			fail(path+".start_week", "must be at least 1, got %d", t.StartWeek)
		}
		if t.Duration < 1 {
			fail(path+".duration", "must be at least 1, got %d", t.Duration)
		}
		if !t.Category.Valid() {
			fail(path+".category", "invalid category %q, must be one of: Frontend, Backend, DevOps, Testing", t.Category)
		}
	}
	for i, m := range p.Milestones {
		path := fmt.Sprintf("milestones[%d]", i)
		if m.Task == "" {
			fail(path+".task", "missing required field")
		}
		if m.Week <= 0 {
			fail(path+".week", "must be positive, got %g", m.Week)
		}
	}
}

// validateCross checks the rules the schema cannot express.
func (p *Plan) validateCross(result *ValidationResult) {
	fail := func(path string, format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: path,
			Err:  fmt.Errorf(format, args...),
		})
	}

	seen := make(map[string]int)
	for i, t := range p.Tasks {
		if t.Name == "" {
			continue
		}
		if prev, dup := seen[t.Name]; dup {
			fail(fmt.Sprintf("tasks[%d].name", i), "duplicate task name %q (also tasks[%d])", t.Name, prev)
		} else {
			seen[t.Name] = i
		}
	}

	axisMax := float64(p.MaxWeek()) + 1
	for i, m := range p.Milestones {
		if m.Task == "" {
			continue
		}
		path := fmt.Sprintf("milestones[%d]", i)
		if p.TaskIndex(m.Task) < 0 {
			fail(path+".task", "unknown task %q", m.Task)
		}
		if m.Week > axisMax {
			fail(path+".week", "beyond timeline end %g, got %g", axisMax, m.Week)
		}
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	parts := strings.Split(ptr, "/")
	path := ""
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}

	return path
}
