package viewmodels

import (
	"fmt"

	"reqadmin/internal/bulk"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeFilter
	InputModeConfirm
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	formView  string
	pending   *bulk.Action
	targetCnt int
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer() *InputTransformer {
	return &InputTransformer{mode: InputModeNormal}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// SetFormView sets the rendered filter form
func (it *InputTransformer) SetFormView(view string) {
	it.formView = view
}

// SetPending sets the action awaiting confirmation and how many rows it hits
func (it *InputTransformer) SetPending(action *bulk.Action, count int) {
	it.pending = action
	it.targetCnt = count
}

// GetInputView returns the form body for the view
func (it *InputTransformer) GetInputView() string {
	if it.mode == InputModeFilter {
		return it.formView
	}
	return ""
}

// GetConfirmPrompt returns the y/n question for the pending action
func (it *InputTransformer) GetConfirmPrompt() string {
	if it.mode != InputModeConfirm || it.pending == nil {
		return ""
	}
	verb := map[bulk.Action]string{
		bulk.ActionDelete:   "Delete",
		bulk.ActionBlock:    "Block",
		bulk.ActionActivate: "Activate",
	}[*it.pending]
	return fmt.Sprintf("%s %d request(s)? (y/n): ", verb, it.targetCnt)
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeFilter:
		return "filter"
	case InputModeConfirm:
		return "confirm"
	default:
		return ""
	}
}
