package simulation

import (
	"bytes"
	dto "coin_sim/internal/api/dto/simulation"
	"coin_sim/internal/converter"
	"coin_sim/internal/model"
	"coin_sim/internal/render"
	"coin_sim/internal/service"
	"coin_sim/pkg/req"
	"coin_sim/pkg/resp"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv          service.SimulationService
	HistogramBins int
}

type Handler struct {
	serv service.SimulationService
	bins int
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, bins: deps.HistogramBins}
}

// Defaults returns the starting parameters and input limits for the form
func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDefaultsResponse(h.serv.Defaults(), h.serv.Limits()))
}

// Run performs one simulation and returns every result as JSON
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RunRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.serv.Run(r.Context(), converter.ToSimulationParameters(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRunResponse(*report, payload.IncludeFlips))
}

// Distribution returns the theoretical PMF for ?n=&p=
func (h *Handler) Distribution(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil {
		http.Error(w, "n must be an integer", http.StatusBadRequest)
		return
	}
	p, err := strconv.ParseFloat(r.URL.Query().Get("p"), 64)
	if err != nil {
		http.Error(w, "p must be a number", http.StatusBadRequest)
		return
	}

	dist, err := h.serv.Distribution(r.Context(), n, p)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDistributionResponse(*dist))
}

// Chart runs a simulation and renders one of its charts as PNG.
// The seed used is returned in X-Simulation-Seed.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	kind, err := render.ParseChartKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	payload, err := req.Decode[dto.RunRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.serv.Run(r.Context(), converter.ToSimulationParameters(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := render.Chart(report, kind, h.bins)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, p); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Simulation-Seed", strconv.FormatUint(report.Seed, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("failed to write chart: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrInvalidParameter) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Println("simulation error:", err)
	http.Error(w, "simulation failed", http.StatusInternalServerError)
}
