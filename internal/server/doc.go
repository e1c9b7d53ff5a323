// Package server implements the MCP (Model Context Protocol) server that
// exposes the skin-tone recommender to MCP clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Skin tone recommendation:
//   - shade_analyze: Photo in, detected color, matched tone, products and swatch out
//   - shade_match_rgb: Match an arbitrary RGB triple
//   - shade_products: Products for a tone identifier
//   - shade_palette: The full reference table
//
// Visual output:
//   - shade_sample_window: The centered region that was averaged
//   - shade_swatch: Detected and matched colors side by side
//
// Basic image information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the server process,
// so analyzing a photo and then cropping its sample window decodes it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "unsupported or unreadable image: ..."
package server
