package api

import (
	"net/http"
	"strconv"

	"kamakpos/m/internal/receipt"
)

func (h *Handler) buildReceipt(r *http.Request) (receipt.Receipt, error) {
	snap, err := terminalFrom(r).Receipt(r.Context())
	if err != nil {
		return receipt.Receipt{}, err
	}
	return receipt.Build(snap, h.opts.Company)
}

func (h *Handler) receiptJSON(w http.ResponseWriter, r *http.Request) {
	rec, err := h.buildReceipt(r)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (h *Handler) receiptHTML(w http.ResponseWriter, r *http.Request) {
	rec, err := h.buildReceipt(r)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	html, err := receipt.RenderHTML(rec)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (h *Handler) receiptPDF(w http.ResponseWriter, r *http.Request) {
	if h.printer == nil {
		respondError(w, http.StatusServiceUnavailable, "receipt printing is not available")
		return
	}
	rec, err := h.buildReceipt(r)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	html, err := receipt.RenderHTML(rec)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	pdf, err := h.printer.PDF(r.Context(), html)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename="+strconv.Quote(rec.Filename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
