package helpers

import "encoding/json"

// ValidationErrorData holds structured validation error information
type ValidationErrorData struct {
	Fields map[string]string `json:"fields"`
}

// EncodeValidationError encodes field validation errors into a JSON string
// that travels as a gRPC status message
func EncodeValidationError(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}

	jsonData, err := json.Marshal(ValidationErrorData{Fields: fields})
	if err != nil {
		for _, msg := range fields {
			return msg
		}
		return "validation error"
	}

	return string(jsonData)
}

// DecodeValidationError decodes a status message produced by EncodeValidationError
func DecodeValidationError(errorMsg string) (map[string]string, bool) {
	var data ValidationErrorData
	if err := json.Unmarshal([]byte(errorMsg), &data); err != nil || len(data.Fields) == 0 {
		return nil, false
	}
	return data.Fields, true
}
