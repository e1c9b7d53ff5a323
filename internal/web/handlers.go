package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ironsheep/shade-mcp/internal/config"
	"github.com/ironsheep/shade-mcp/internal/imaging"
	"github.com/ironsheep/shade-mcp/internal/recommend"
)

// uploadField is the multipart form field carrying the photo.
const uploadField = "image"

// lightingNote is shown with every result.
const lightingNote = "For best results, take photos in natural lighting with a neutral background."

// Handler serves the recommender endpoints.
type Handler struct {
	config *config.Config
	rec    *recommend.Recommender
}

// NewHandler creates a new handler.
func NewHandler(cfg *config.Config, rec *recommend.Recommender) *Handler {
	return &Handler{config: cfg, rec: rec}
}

// sanitizeForLog removes newlines and carriage returns to prevent log injection.
func sanitizeForLog(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Palette lists every reference tone in palette order.
func (h *Handler) Palette(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"tones": h.rec.Palette().Tones(),
	})
}

// ProductsResponse is the body of GET /tones/{tone}/products.
type ProductsResponse struct {
	Tone     string   `json:"tone"`
	Known    bool     `json:"known"`
	Products []string `json:"products"`
}

// Products returns the products for a tone. Unknown tones get the
// placeholder list with status 200.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	tone := chi.URLParam(r, "tone")
	respondJSON(w, http.StatusOK, ProductsResponse{
		Tone:     tone,
		Known:    h.rec.Palette().Contains(tone),
		Products: h.rec.Products(tone),
	})
}

// ToneSwatch renders a solid PNG of a reference tone.
func (h *Handler) ToneSwatch(w http.ResponseWriter, r *http.Request) {
	tone := chi.URLParam(r, "tone")
	c, ok := h.rec.Palette().RGBOf(tone)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown tone")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	img := imaging.SolidSwatch(imaging.RGBColor{R: c.R, G: c.G, B: c.B}, h.config.Swatch.Size)
	if err := imaging.WritePNG(w, img); err != nil {
		log.Printf("Failed to write swatch for %s: %v", sanitizeForLog(tone), err)
	}
}

// AnalyzeResponse is the body of POST /analyze.
type AnalyzeResponse struct {
	ID string `json:"id"`
	*recommend.Result
	Swatch *imaging.EncodedImage `json:"swatch"`
	Note   string                `json:"note"`
}

// Analyze accepts a multipart upload of a JPEG or PNG photo and runs the
// recommender on it.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Web.MaxUploadSize)
	if err := r.ParseMultipartForm(h.config.Web.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "image is too large")
			return
		}
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		respondError(w, http.StatusBadRequest, "image is required")
		return
	}
	defer file.Close()

	if !imaging.IsSupportedUpload(header.Filename) {
		respondError(w, http.StatusUnsupportedMediaType, "only JPG, JPEG and PNG uploads are accepted")
		return
	}

	res, err := h.rec.AnalyzeReader(file)
	if err != nil {
		switch {
		case errors.Is(err, imaging.ErrUnsupportedImage):
			respondError(w, http.StatusUnsupportedMediaType, "could not read the uploaded image; please upload a valid JPG or PNG photo")
		case errors.Is(err, imaging.ErrEmptyImage):
			respondError(w, http.StatusBadRequest, "the uploaded image has no pixels")
		default:
			log.Printf("Analyze %s failed: %v", sanitizeForLog(header.Filename), err)
			respondError(w, http.StatusInternalServerError, "analysis failed")
		}
		return
	}

	sw, err := h.rec.Swatch(res, h.config.Swatch.Size)
	if err != nil {
		log.Printf("Swatch for %s failed: %v", sanitizeForLog(header.Filename), err)
		respondError(w, http.StatusInternalServerError, "failed to render swatch")
		return
	}

	respondJSON(w, http.StatusOK, AnalyzeResponse{
		ID:     uuid.NewString(),
		Result: res,
		Swatch: sw,
		Note:   lightingNote,
	})
}
