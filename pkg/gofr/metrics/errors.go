// Package metrics provides the metrics manager used to instrument the application and its HTTP clients.
package metrics

import (
	"errors"
	"fmt"
)

var (
	errInvalidLabels  = errors.New("labels must be given as key value pairs")
	errLabelsMismatch = errors.New("label names differ from the ones the metric was first recorded with")
)

type metricsAlreadyRegistered struct {
	metricsName string
}

type metricsNotRegistered struct {
	metricsName string
}

type metricsTypeMismatch struct {
	metricsName string
	expected    string
}

func (e metricsAlreadyRegistered) Error() string {
	return fmt.Sprintf("Metrics %v already registered", e.metricsName)
}

func (e metricsNotRegistered) Error() string {
	return fmt.Sprintf("Metrics %v is not registered", e.metricsName)
}

func (e metricsTypeMismatch) Error() string {
	return fmt.Sprintf("Metrics %v is not a %v", e.metricsName, e.expected)
}
