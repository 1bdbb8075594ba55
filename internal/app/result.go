package app

import (
	"github.com/hyperifyio/designscan/internal/design"
	"github.com/hyperifyio/designscan/internal/fetch"
)

// Status is the outcome of one run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ErrorKind separates transport failures from everything else. It only
// decides the label of the report line and is not serialized.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindFetch
	KindAnalyze
)

// Result is either a success carrying the analysis and the reference tokens,
// or an error carrying only a message.
type Result struct {
	Status       Status           `json:"status"`
	Analysis     *design.Analysis `json:"analysis,omitempty"`
	DesignTokens design.Tokens    `json:"design_tokens,omitempty"`
	Brief        string           `json:"brief,omitempty"`
	Message      string           `json:"message,omitempty"`

	Kind    ErrorKind             `json:"-"`
	Classes design.ClassInventory `json:"-"`
}

func successResult(a design.Analysis, inv design.ClassInventory) Result {
	return Result{
		Status:       StatusSuccess,
		Analysis:     &a,
		DesignTokens: design.BrandTokens(),
		Classes:      inv,
	}
}

func errorResult(err error) Result {
	kind := KindAnalyze
	if fetch.IsFetchError(err) {
		kind = KindFetch
	}
	return Result{Status: StatusError, Message: err.Error(), Kind: kind}
}
