// Package wizard provides the interactive prompts that collect an Android
// project configuration.
package wizard

import (
	"errors"

	"github.com/opmodel/droidcraft/internal/project"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeInput is a text input question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Step is one page of the wizard.
type Step struct {
	Title       string
	Description string
}

// Question defines a single wizard question.
type Question struct {
	ID          string       // Answer key passed to Apply
	Step        int          // Index into Steps()
	Type        QuestionType // Input, Select or Confirm
	Title       string
	Description string
	Options     []Option // Options for select questions
	Default     string   // Default answer

	// DefaultFunc computes the default from the answers so far. It takes
	// precedence over Default when set.
	DefaultFunc func(project.Config) string
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Answer IDs that do not map onto a configuration field.
const (
	IDArchitecture = "architecture"
	IDBuildDsl     = "buildDsl"
	IDGenerate     = "generate"
)

// Build script dialect answers.
const (
	DslKotlin = "kotlin"
	DslGroovy = "groovy"
)

var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrUnknownQuestion is returned by Apply for an unknown answer ID.
	ErrUnknownQuestion = errors.New("unknown question")
)

// DefaultFor returns the default answer for q given the answers so far.
func (q Question) DefaultFor(cfg project.Config) string {
	if q.DefaultFunc != nil {
		return q.DefaultFunc(cfg)
	}
	return q.Default
}
