package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/ironsheep/shade-mcp/internal/matcher"
	"github.com/ironsheep/shade-mcp/internal/palette"
	"github.com/ironsheep/shade-mcp/internal/recommend"
)

// createTestImageFile creates a test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

// callTool runs a tools/call request and decodes the text content into out.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}, out interface{}) *MCPResponse {
	t.Helper()

	paramsJSON, _ := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil || out == nil {
		return resp
	}

	result := resp.Result.(map[string]interface{})
	content := result["content"].([]map[string]interface{})
	text := content[0]["text"].(string)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		t.Fatalf("failed to decode tool output: %v\n%s", err, text)
	}
	return resp
}

type analyzeOutput struct {
	Tone     string   `json:"tone"`
	Products []string `json:"products"`
	Distance float64  `json:"distance"`
	Detected struct {
		Hex string `json:"hex"`
		RGB struct {
			R, G, B int
		} `json:"rgb"`
	} `json:"detected"`
	Window struct {
		X1, Y1, X2, Y2 int
	} `json:"window"`
	Swatch *struct {
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		ImageBase64 string `json:"image_base64"`
	} `json:"swatch"`
}

func TestHandleToolsCall_ShadeAnalyze(t *testing.T) {
	s := New(WithSwatchSize(10))
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{255, 224, 198, 255})
	defer os.Remove(imgPath)

	var out analyzeOutput
	resp := callTool(t, s, "shade_analyze", map[string]interface{}{"path": imgPath}, &out)
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}

	if out.Tone != "NC10" {
		t.Errorf("tone: got %s, want NC10", out.Tone)
	}
	if want := []string{"Angel", "Creme Cup", "Snob"}; !reflect.DeepEqual(out.Products, want) {
		t.Errorf("products: got %v, want %v", out.Products, want)
	}
	if out.Detected.Hex != "#FFE0C6" {
		t.Errorf("detected hex: got %s, want #FFE0C6", out.Detected.Hex)
	}
	if out.Detected.RGB.R != 255 || out.Detected.RGB.G != 224 || out.Detected.RGB.B != 198 {
		t.Errorf("detected rgb: got %+v", out.Detected.RGB)
	}
	if out.Window.X1 != 40 || out.Window.X2 != 60 {
		t.Errorf("window: got %+v", out.Window)
	}
	if out.Swatch == nil || out.Swatch.Width != 20 || out.Swatch.Height != 10 {
		t.Errorf("swatch: got %+v, want 20x10", out.Swatch)
	}
}

func TestHandleToolsCall_ShadeAnalyze_NoSwatch(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 20, 20, color.RGBA{0, 0, 0, 255})
	defer os.Remove(imgPath)

	var out analyzeOutput
	resp := callTool(t, s, "shade_analyze", map[string]interface{}{"path": imgPath, "include_swatch": false}, &out)
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	if out.Tone != "NC55" {
		t.Errorf("tone: got %s, want NC55", out.Tone)
	}
	if out.Swatch != nil {
		t.Error("swatch should be omitted when include_swatch is false")
	}
}

func TestHandleToolsCall_ShadeAnalyze_Undecodable(t *testing.T) {
	s := New()

	tmpFile, err := os.CreateTemp("", "not-an-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.WriteString("plain text")
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	resp := callTool(t, s, "shade_analyze", map[string]interface{}{"path": tmpFile.Name()}, nil)
	if resp.Error == nil {
		t.Fatal("expected an error for an undecodable image")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("code: got %d, want -32000", resp.Error.Code)
	}
	if data, _ := resp.Error.Data.(string); !strings.Contains(data, "unsupported or unreadable image") {
		t.Errorf("data should explain the decode failure, got %q", data)
	}
}

func TestHandleToolsCall_ShadeAnalyze_MissingPath(t *testing.T) {
	resp := callTool(t, New(), "shade_analyze", map[string]interface{}{}, nil)
	if resp.Error == nil {
		t.Fatal("expected an error for a missing path")
	}
}

func TestHandleToolsCall_ShadeMatchRGB(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"exact", map[string]interface{}{"r": 230, "g": 170, "b": 140}, "NC30"},
		{"black", map[string]interface{}{"r": 0, "g": 0, "b": 0}, "NC55"},
		{"fractional", map[string]interface{}{"r": 169.6, "g": 110.2, "b": 79.9}, "NC42"},
		{"out of range", map[string]interface{}{"r": 400, "g": -20, "b": 999}, "NC10"},
		{"huge negative", map[string]interface{}{"r": -1e200, "g": 0, "b": 0}, "NC55"},
		{"huge positive", map[string]interface{}{"r": 1e200, "g": 0, "b": 0}, "NC10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Tone     string   `json:"tone"`
				Products []string `json:"products"`
			}
			resp := callTool(t, New(), "shade_match_rgb", tt.args, &out)
			if resp.Error != nil {
				t.Fatalf("Unexpected error: %+v", resp.Error)
			}
			if out.Tone != tt.want {
				t.Errorf("tone: got %s, want %s", out.Tone, tt.want)
			}
			if len(out.Products) == 0 {
				t.Error("products should not be empty")
			}
		})
	}
}

func TestHandleToolsCall_ShadeMatchRGB_MissingChannel(t *testing.T) {
	resp := callTool(t, New(), "shade_match_rgb", map[string]interface{}{"r": 1, "g": 2}, nil)
	if resp.Error == nil {
		t.Fatal("expected an error when a channel is missing")
	}
}

func TestHandleToolsCall_ShadeProducts(t *testing.T) {
	var out struct {
		Known    bool     `json:"known"`
		Products []string `json:"products"`
	}

	callTool(t, New(), "shade_products", map[string]interface{}{"tone": "NC45"}, &out)
	if !out.Known || !reflect.DeepEqual(out.Products, []string{"Media", "Ruby Woo", "Heroine"}) {
		t.Errorf("NC45: got %+v", out)
	}

	callTool(t, New(), "shade_products", map[string]interface{}{"tone": "XX"}, &out)
	if out.Known || !reflect.DeepEqual(out.Products, []string{palette.NoRecommendations}) {
		t.Errorf("unknown tone: got %+v", out)
	}
}

func TestHandleToolsCall_ShadePalette(t *testing.T) {
	var out struct {
		Tones []struct {
			ID  string `json:"id"`
			Hex string `json:"hex"`
		} `json:"tones"`
	}

	resp := callTool(t, New(), "shade_palette", nil, &out)
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	if len(out.Tones) != 12 {
		t.Fatalf("tones: got %d, want 12", len(out.Tones))
	}
	if out.Tones[0].ID != "NC10" || out.Tones[0].Hex != "#FFE0C6" {
		t.Errorf("first tone: got %+v", out.Tones[0])
	}
	if out.Tones[11].ID != "NC55" {
		t.Errorf("last tone: got %s, want NC55", out.Tones[11].ID)
	}
}

func TestHandleToolsCall_ShadeSampleWindow(t *testing.T) {
	imgPath := createTestImageFile(t, 50, 50, color.RGBA{200, 100, 50, 255})
	defer os.Remove(imgPath)

	var out struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	resp := callTool(t, New(), "shade_sample_window", map[string]interface{}{"path": imgPath, "scale": 2.0}, &out)
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	if out.Width != 20 || out.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 20x20", out.Width, out.Height)
	}
}

func TestHandleToolsCall_ShadeSwatch(t *testing.T) {
	var out struct {
		Tone   string `json:"tone"`
		Swatch struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"swatch"`
	}
	resp := callTool(t, New(), "shade_swatch", map[string]interface{}{"r": 110, "g": 50, "b": 30, "size": 16}, &out)
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	if out.Tone != "NC50" {
		t.Errorf("tone: got %s, want NC50", out.Tone)
	}
	if out.Swatch.Width != 32 || out.Swatch.Height != 16 {
		t.Errorf("swatch: got %dx%d, want 32x16", out.Swatch.Width, out.Swatch.Height)
	}
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})
	defer os.Remove(imgPath)

	var out struct {
		Width     int  `json:"width"`
		Height    int  `json:"height"`
		Supported bool `json:"supported"`
	}
	resp := callTool(t, New(), "image_load", map[string]interface{}{"path": imgPath}, &out)
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	if out.Width != 100 || out.Height != 80 || !out.Supported {
		t.Errorf("got %+v", out)
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	resp := callTool(t, New(), "image_dimensions", map[string]interface{}{"path": "/nonexistent/image.png"}, nil)
	if resp.Error == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`{invalid`),
	})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("expected -32602, got %+v", resp.Error)
	}
}

func TestWithRecommender(t *testing.T) {
	p, err := palette.New([]palette.Tone{{ID: "only", RGB: palette.RGB{R: 1, G: 1, B: 1}, Products: []string{"One"}}})
	if err != nil {
		t.Fatalf("palette.New failed: %v", err)
	}
	s := New(WithRecommender(recommend.New(p)))

	var out struct {
		Tone string `json:"tone"`
	}
	callTool(t, s, "shade_match_rgb", map[string]interface{}{"r": 255, "g": 255, "b": 255}, &out)
	if out.Tone != "only" {
		t.Errorf("tone: got %s, want only", out.Tone)
	}
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	if _, err := New().executeTool("unknown_tool", json.RawMessage(`{}`)); err == nil {
		t.Error("executeTool should fail for unknown tool")
	}
}

func TestExecuteTool_InvalidJSON(t *testing.T) {
	if _, err := New().executeTool("image_load", json.RawMessage(`{invalid`)); err == nil {
		t.Error("executeTool should fail for invalid JSON")
	}
}

func TestMarshalJSON_Unencodable(t *testing.T) {
	if _, err := marshalJSON(map[string]float64{"distance": math.NaN()}); err == nil {
		t.Error("marshalJSON should fail for NaN")
	}

	text, err := marshalJSON(map[string]string{"tone": "NC55"})
	if err != nil {
		t.Fatalf("marshalJSON failed: %v", err)
	}
	if !strings.Contains(text, "NC55") {
		t.Errorf("got %q", text)
	}
}

func TestClampToRGB(t *testing.T) {
	got := clampToRGB(matcher.Query{R: -5, G: 127.9, B: 300})
	if got.R != 0 || got.G != 127 || got.B != 255 {
		t.Errorf("got %v, want (0, 127, 255)", got)
	}
}
