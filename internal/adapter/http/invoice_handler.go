package http

import (
	"fmt"
	"net/http"
	"strconv"

	domain "biztime/internal/domain/invoice"
	"biztime/internal/usecase/invoice"

	"github.com/labstack/echo/v4"
)

type InvoiceHandler struct {
	uc     *invoice.Usecase
	status StatusPolicy
}

func NewInvoiceHandler(uc *invoice.Usecase, status StatusPolicy) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, status: status}
}

type createInvoiceReq struct {
	CompCode string   `json:"comp_code" form:"comp_code" validate:"required,max=64"`
	Amt      *float64 `json:"amt"       form:"amt"       validate:"required,dec2"`
}

// Paid omitted means false.
type updateInvoiceReq struct {
	Amt  *float64 `json:"amt"  form:"amt"  validate:"required,dec2"`
	Paid *bool    `json:"paid" form:"paid"`
}

// invoiceID reads :id; anything that is not an integer cannot name an invoice.
func invoiceID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotFound, raw)
	}
	return id, nil
}

func (h *InvoiceHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(h.status.OK(), map[string]any{"invoices": out})
}

func (h *InvoiceHandler) Get(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(h.status.OK(), map[string]any{"invoice": dto})
}

func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceReq
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), invoice.CreateInput{CompCode: req.CompCode, Amt: *req.Amt})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"invoice": dto})
}

func (h *InvoiceHandler) Update(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	var req updateInvoiceReq
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	in := invoice.UpdateInput{Amt: *req.Amt}
	if req.Paid != nil {
		in.Paid = *req.Paid
	}
	dto, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(h.status.OK(), map[string]any{"invoice": dto})
}

func (h *InvoiceHandler) Delete(c echo.Context) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(h.status.OK(), map[string]any{"status": "deleted"})
}
