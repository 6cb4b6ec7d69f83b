package websocket

import (
	"encoding/json"

	"github.com/agentstation/ainything/pkg/errors"
	"github.com/agentstation/ainything/pkg/view"
)

// frame is the envelope of an inbound session message. Action fields sit
// next to the type, e.g. {"type":"model_selected","name":"Claude"}.
type frame struct {
	Type string `json:"type"`
}

// DecodeAction turns an inbound frame into a view action.
func DecodeAction(data []byte) (view.Action, error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.NewParseError("json", "session frame", "invalid frame", err)
	}

	var action view.Action
	switch f.Type {
	case view.ActionSearchSubmitted:
		var a view.SearchSubmitted
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, errors.NewParseError("json", "session frame", f.Type, err)
		}
		action = a
	case view.ActionFiltersApplied:
		var a view.FiltersApplied
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, errors.NewParseError("json", "session frame", f.Type, err)
		}
		action = a
	case view.ActionSortChanged:
		var a view.SortChanged
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, errors.NewParseError("json", "session frame", f.Type, err)
		}
		action = a
	case view.ActionModelSelected:
		var a view.ModelSelected
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, errors.NewParseError("json", "session frame", f.Type, err)
		}
		action = a
	case view.ActionURLChanged:
		var a view.URLChanged
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, errors.NewParseError("json", "session frame", f.Type, err)
		}
		action = a
	case view.ActionBackRequested:
		action = view.BackRequested{}
	case view.ActionRetryRequested:
		action = view.RetryRequested{}
	case "":
		return nil, errors.NewValidationError("type", f.Type, "frame type is required")
	default:
		return nil, errors.NewValidationError("type", f.Type, "unknown action")
	}
	return action, nil
}
