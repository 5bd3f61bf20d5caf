package analysis

// BuildAnalysisJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We send it to the model as a structured-output constraint
// and also use it locally to validate what came back.
func BuildAnalysisJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":   map[string]any{"type": "string"},
			"summary": map[string]any{"type": "string", "minLength": 1},
			"entities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":  map[string]any{"type": "string"},
						"value": map[string]any{"type": "string"},
					},
					"required": []string{"value"},
				},
			},
		},
		"required": []string{"title", "summary"},
	}
}
