package http

import (
	"net/http"

	"biztime/internal/usecase/company"

	"github.com/labstack/echo/v4"
)

type CompanyHandler struct {
	uc     *company.Usecase
	status StatusPolicy
}

func NewCompanyHandler(uc *company.Usecase, status StatusPolicy) *CompanyHandler {
	return &CompanyHandler{uc: uc, status: status}
}

type createCompanyReq struct {
	Code        string `json:"code"        form:"code"        validate:"required,max=255"`
	Name        string `json:"name"        form:"name"        validate:"required,max=255"`
	Description string `json:"description" form:"description"`
}

type updateCompanyReq struct {
	Name        string `json:"name"        form:"name"        validate:"required,max=255"`
	Description string `json:"description" form:"description"`
}

func (h *CompanyHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(h.status.OK(), map[string]any{"companies": out})
}

func (h *CompanyHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return c.JSON(h.status.OK(), map[string]any{"company": dto})
}

func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyReq
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), company.CreateInput{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"company": dto})
}

func (h *CompanyHandler) Update(c echo.Context) error {
	var req updateCompanyReq
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("code"), company.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(h.status.OK(), map[string]any{"company": dto})
}

func (h *CompanyHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("code")); err != nil {
		return err
	}
	return c.JSON(h.status.OK(), map[string]any{"status": "deleted"})
}
