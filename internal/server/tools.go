package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to a JPEG or PNG photo",
	}
}

func rgbProperties() map[string]interface{} {
	channel := func(name string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "number",
			"description": name + " channel. Usually 0-255; fractional and out-of-range values are accepted",
		}
	}
	return map[string]interface{}{
		"r": channel("Red"),
		"g": channel("Green"),
		"b": channel("Blue"),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	swatchProps := rgbProperties()
	swatchProps["size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Edge length in pixels of each swatch square. Defaults to the server setting",
	}

	return []Tool{
		// Skin tone recommendation
		{
			Name:        "shade_analyze",
			Description: "Estimate the skin tone in the center of a photo, match it to the nearest MAC NC complexion and list recommended lipsticks. Returns the detected color, the matched tone, the products and a side-by-side swatch PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"include_swatch": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the detected/matched swatch as base64 PNG. Default true",
						"default":     true,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "shade_match_rgb",
			Description: "Match an RGB color to the nearest reference complexion by Euclidean distance and list its products.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": rgbProperties(),
				"required":   []string{"r", "g", "b"},
			},
		},
		{
			Name:        "shade_products",
			Description: "List the recommended products for a complexion identifier such as NC30. Unknown identifiers return a placeholder entry.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"tone": map[string]interface{}{
						"type":        "string",
						"description": "Complexion identifier, e.g. NC30",
					},
				},
				"required": []string{"tone"},
			},
		},
		{
			Name:        "shade_palette",
			Description: "List every reference complexion with its color and products, in palette order.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Visual output
		{
			Name:        "shade_sample_window",
			Description: "Crop the centered region that shade_analyze averages and return it as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 4.0 to enlarge a tiny window). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "shade_swatch",
			Description: "Render an RGB color next to its nearest reference complexion as a base64 PNG swatch.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": swatchProps,
				"required":   []string{"r", "g", "b"},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it is an accepted upload type.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
