// Package capture turns natural language into scheduler tasks via an LLM.
package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ritmo/internal/dateutil"
	"ritmo/internal/llm"
	"ritmo/internal/task"
)

const systemPrompt = `You are a task capture assistant for a personal scheduler.

Context:
- Today: %s (%s)
- Tomorrow: %s

User request: "%s"

Extract every task the user mentions. For each task determine:
- name: short imperative description
- duration: a positive number
- durationUnit: "hours" or "minutes"
- deadline: "YYYY-MM-DD" or "YYYY-MM-DD HH:MM" (24-hour). Resolve relative
  dates ("today", "tomorrow", "friday", "in 3 days") against today's date.
  If the user gives no deadline, use tomorrow.
- priority: "high", "medium" or "low". Default to "medium" when unstated.

Rules:
- Durations default to 1 hour when unstated.
- Never invent tasks the user did not ask for.
- Add a warning string when you had to guess a duration or deadline.

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "tasks": [
    {
      "name": "string",
      "duration": 1.5,
      "durationUnit": "hours",
      "deadline": "YYYY-MM-DD",
      "priority": "medium"
    }
  ],
  "warnings": ["string"]
}`

// CapturedTask is one task as the model reported it.
type CapturedTask struct {
	Name         string  `json:"name"`
	Duration     float64 `json:"duration"`
	DurationUnit string  `json:"durationUnit"`
	Deadline     string  `json:"deadline"`
	Priority     string  `json:"priority"`
}

// Response is the parsed model reply.
type Response struct {
	Tasks    []CapturedTask `json:"tasks"`
	Warnings []string       `json:"warnings"`
}

// Capturer drives the capture conversation.
type Capturer struct {
	client llm.Client
}

// NewCapturer creates a Capturer backed by the given client.
func NewCapturer(client llm.Client) *Capturer {
	return &Capturer{client: client}
}

// Result holds the validated tasks plus any model warnings.
type Result struct {
	Tasks    []*task.Task
	Warnings []string
}

// Capture asks the model to extract tasks from input and validates them.
// When validation fails, the errors are fed back to the model once before
// giving up.
func (c *Capturer) Capture(ctx context.Context, input string, now time.Time) (*Result, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("nothing to capture")
	}

	messages := []llm.Message{llm.System(buildPrompt(input, now))}

	var resp Response
	if err := c.client.ChatJSON(ctx, messages, &resp); err != nil {
		return nil, fmt.Errorf("capturing tasks: %w", err)
	}

	result, errs := convert(&resp, now)
	if len(errs) == 0 {
		return result, nil
	}

	// One feedback round: show the model its own reply and what was wrong.
	raw, _ := json.Marshal(resp)
	messages = append(messages,
		llm.Message{Role: "assistant", Content: string(raw)},
		llm.User(retryFeedback(errs)),
	)
	if err := c.client.ChatJSON(ctx, messages, &resp); err != nil {
		return nil, fmt.Errorf("capturing tasks (retry): %w", err)
	}

	result, errs = convert(&resp, now)
	if len(errs) > 0 {
		return nil, fmt.Errorf("model produced invalid tasks: %s", strings.Join(errs, "; "))
	}
	return result, nil
}

func buildPrompt(input string, now time.Time) string {
	tomorrow := now.AddDate(0, 0, 1)
	return fmt.Sprintf(systemPrompt,
		dateutil.DayKey(now),
		now.Format("Monday"),
		dateutil.DayKey(tomorrow),
		input,
	)
}

func retryFeedback(errs []string) string {
	var sb strings.Builder
	sb.WriteString("Some tasks were invalid:\n")
	for _, e := range errs {
		sb.WriteString("- ")
		sb.WriteString(e)
		sb.WriteString("\n")
	}
	sb.WriteString("Return the corrected JSON only.")
	return sb.String()
}

// convert validates each captured task and reports every failure so the
// retry round can fix them all at once.
func convert(resp *Response, now time.Time) (*Result, []string) {
	var errs []string
	tasks := make([]*task.Task, 0, len(resp.Tasks))

	for _, ct := range resp.Tasks {
		deadline, err := dateutil.ParseDeadline(ct.Deadline, now)
		if err != nil {
			errs = append(errs, fmt.Sprintf("task %q: bad deadline %q", ct.Name, ct.Deadline))
			continue
		}

		priority := task.Priority(strings.ToLower(strings.TrimSpace(ct.Priority)))
		if ct.Priority == "" {
			priority = task.PriorityMedium
		}
		unit := task.DurationUnit(strings.ToLower(strings.TrimSpace(ct.DurationUnit)))
		if ct.DurationUnit == "" {
			unit = task.UnitHours
		}

		t, err := task.New(ct.Name, ct.Duration, unit, deadline, priority)
		if err != nil {
			errs = append(errs, fmt.Sprintf("task %q: %v", ct.Name, err))
			continue
		}
		tasks = append(tasks, t)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if len(tasks) == 0 {
		return nil, []string{"no tasks were extracted"}
	}
	return &Result{Tasks: tasks, Warnings: resp.Warnings}, nil
}
