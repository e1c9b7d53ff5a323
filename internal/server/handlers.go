package server

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ironsheep/shade-mcp/internal/imaging"
	"github.com/ironsheep/shade-mcp/internal/matcher"
	"github.com/ironsheep/shade-mcp/internal/palette"
	"github.com/ironsheep/shade-mcp/internal/recommend"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "shade_analyze", "shade_palette").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000. A
// result that cannot be encoded returns -32603.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	text, err := marshalJSON(result)
	if err != nil {
		return s.errorResponse(req.ID, -32603, "Internal error", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Skin tone recommendation
	case "shade_analyze":
		return s.handleShadeAnalyze(args)
	case "shade_match_rgb":
		return s.handleShadeMatchRGB(args)
	case "shade_products":
		return s.handleShadeProducts(args)
	case "shade_palette":
		return s.handleShadePalette(args)

	// Visual output
	case "shade_sample_window":
		return s.handleShadeSampleWindow(args)
	case "shade_swatch":
		return s.handleShadeSwatch(args)

	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// marshalJSON converts a value to a pretty-printed JSON string.
func marshalJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tool result: %w", err)
	}
	return string(b), nil
}

// === Skin Tone Handlers ===

type shadeAnalyzeArgs struct {
	Path          string `json:"path"`
	IncludeSwatch *bool  `json:"include_swatch,omitempty"`
}

// shadeAnalyzeResult is recommend.Result plus the optional swatch image.
type shadeAnalyzeResult struct {
	*recommend.Result
	Swatch *imaging.EncodedImage `json:"swatch,omitempty"`
}

func (s *Server) handleShadeAnalyze(args json.RawMessage) (interface{}, error) {
	var a shadeAnalyzeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res, err := s.rec.Analyze(img)
	if err != nil {
		return nil, err
	}

	out := &shadeAnalyzeResult{Result: res}
	if a.IncludeSwatch == nil || *a.IncludeSwatch {
		sw, err := s.rec.Swatch(res, s.swatchSize)
		if err != nil {
			return nil, err
		}
		out.Swatch = sw
	}
	return out, nil
}

type shadeMatchRGBArgs struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
}

func (a *shadeMatchRGBArgs) query() (matcher.Query, error) {
	if a.R == nil || a.G == nil || a.B == nil {
		return matcher.Query{}, fmt.Errorf("r, g and b are required")
	}
	return matcher.Query{R: *a.R, G: *a.G, B: *a.B}, nil
}

func (s *Server) handleShadeMatchRGB(args json.RawMessage) (interface{}, error) {
	var a shadeMatchRGBArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	q, err := a.query()
	if err != nil {
		return nil, err
	}
	return s.rec.MatchRGB(q), nil
}

type shadeProductsArgs struct {
	Tone string `json:"tone"`
}

type shadeProductsResult struct {
	Tone     string   `json:"tone"`
	Known    bool     `json:"known"`
	Products []string `json:"products"`
}

func (s *Server) handleShadeProducts(args json.RawMessage) (interface{}, error) {
	var a shadeProductsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &shadeProductsResult{
		Tone:     a.Tone,
		Known:    s.rec.Palette().Contains(a.Tone),
		Products: s.rec.Products(a.Tone),
	}, nil
}

type shadePaletteResult struct {
	Tones []paletteEntry `json:"tones"`
}

type paletteEntry struct {
	ID       string      `json:"id"`
	Hex      string      `json:"hex"`
	RGB      palette.RGB `json:"rgb"`
	Products []string    `json:"products"`
}

func (s *Server) handleShadePalette(_ json.RawMessage) (interface{}, error) {
	tones := s.rec.Palette().Tones()
	out := &shadePaletteResult{Tones: make([]paletteEntry, len(tones))}
	for i, t := range tones {
		c := imaging.NewColorResult(imaging.RGBColor{R: t.RGB.R, G: t.RGB.G, B: t.RGB.B})
		out.Tones[i] = paletteEntry{
			ID:       t.ID,
			Hex:      c.Hex,
			RGB:      t.RGB,
			Products: t.Products,
		}
	}
	return out, nil
}

type shadeSampleWindowArgs struct {
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleShadeSampleWindow(args json.RawMessage) (interface{}, error) {
	var a shadeSampleWindowArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CropSampleWindow(img, a.Scale)
}

type shadeSwatchArgs struct {
	shadeMatchRGBArgs
	Size int `json:"size"`
}

type shadeSwatchResult struct {
	*recommend.Match
	Swatch *imaging.EncodedImage `json:"swatch"`
}

func (s *Server) handleShadeSwatch(args json.RawMessage) (interface{}, error) {
	var a shadeSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	q, err := a.query()
	if err != nil {
		return nil, err
	}
	if a.Size <= 0 {
		a.Size = s.swatchSize
	}

	m := s.rec.MatchRGB(q)
	sw, err := imaging.RenderSwatch(clampToRGB(q), m.ToneColor.RGB, a.Size)
	if err != nil {
		return nil, err
	}
	return &shadeSwatchResult{Match: m, Swatch: sw}, nil
}

// clampToRGB truncates a query into a displayable 8-bit color.
func clampToRGB(q matcher.Query) imaging.RGBColor {
	ch := func(v float64) uint8 {
		switch {
		case math.IsNaN(v) || v <= 0:
			return 0
		case v >= 255:
			return 255
		default:
			return uint8(v)
		}
	}
	return imaging.RGBColor{R: ch(q.R), G: ch(q.G), B: ch(q.B)}
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}
