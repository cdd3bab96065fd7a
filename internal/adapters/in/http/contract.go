package http

import (
	"errors"
	"strconv"
	"strings"
)

// WebhookRequest is the envelope the NLU frontend posts for every recognized
// utterance. Only the fields the fulfillment logic needs are mapped.
type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult carries the matched intent, the extracted slot parameters and
// the active conversation contexts.
type QueryResult struct {
	Intent         Intent          `json:"intent"`
	Parameters     map[string]any  `json:"parameters"`
	OutputContexts []OutputContext `json:"outputContexts"`
}

// Intent identifies the matched intent by its display name.
type Intent struct {
	DisplayName string `json:"displayName"`
}

// OutputContext is a conversation context; its resource name embeds the
// session token.
type OutputContext struct {
	Name string `json:"name"`
}

// WebhookResponse is the reply envelope: a single user-facing text field.
type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

var (
	errOrderIDAbsent  = errors.New("order id parameter is absent")
	errOrderIDInvalid = errors.New("order id parameter is not an integer")
)

// stringListParam reads a slot that carries a list of strings. A single bare
// string is treated as a one-element list; anything else yields nil.
func stringListParam(parameters map[string]any, name string) []string {
	switch value := parameters[name].(type) {
	case []any:
		items := make([]string, 0, len(value))
		for _, element := range value {
			if item, ok := element.(string); ok {
				items = append(items, item)
			}
		}
		return items
	case string:
		return []string{value}
	default:
		return nil
	}
}

// numberListParam reads a slot that carries a list of numbers. A single bare
// number is treated as a one-element list; anything else yields nil.
func numberListParam(parameters map[string]any, name string) []float64 {
	switch value := parameters[name].(type) {
	case []any:
		numbers := make([]float64, 0, len(value))
		for _, element := range value {
			if number, ok := element.(float64); ok {
				numbers = append(numbers, number)
			}
		}
		return numbers
	case float64:
		return []float64{value}
	default:
		return nil
	}
}

// orderIDParam reads the order-id slot. The frontend delivers it as a JSON
// number or as a free-form string; fractional numbers are truncated the way
// the dialogue flows expect. Missing, empty and zero values all count as
// absent.
func orderIDParam(parameters map[string]any) (int64, error) {
	switch value := parameters["order-id"].(type) {
	case float64:
		if value == 0 {
			return 0, errOrderIDAbsent
		}
		return int64(value), nil
	case string:
		if value == "" {
			return 0, errOrderIDAbsent
		}
		id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, errOrderIDInvalid
		}
		return id, nil
	case nil:
		return 0, errOrderIDAbsent
	default:
		return 0, errOrderIDInvalid
	}
}
