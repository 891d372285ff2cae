package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mycorp/alta-soporte/internal/usecase"
)

type AltaHandler struct {
	CreateTicketUC *usecase.CreateTicketUseCase
}

func NewAltaHandler(uc *usecase.CreateTicketUseCase) *AltaHandler {
	return &AltaHandler{CreateTicketUC: uc}
}

// Handle receives the registration form and runs the ticket pipeline. The
// pipeline never fails outward, so anything past input validation answers
// 200 with the composed summary.
func (h *AltaHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.AltaInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if errs := usecase.ValidateAltaInput(input); len(errs) > 0 {
		msg := "validación fallida:"
		for _, e := range errs {
			msg += " " + e.Error()
		}
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	input.UserAgent = r.UserAgent()

	output := h.CreateTicketUC.Execute(r.Context(), input)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(output)
}
