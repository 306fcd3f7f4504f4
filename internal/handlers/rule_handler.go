package handlers

import (
	"net/http"
	"strconv"

	"financas-api/internal/dto"
	"financas-api/internal/errors"
	"financas-api/internal/models"
	"financas-api/internal/services"

	"github.com/labstack/echo/v4"
)

// RuleHandler handles categorization rule HTTP requests
type RuleHandler struct {
	ruleService services.RuleServiceInterface
}

// NewRuleHandler creates a new rule handler
func NewRuleHandler(ruleService services.RuleServiceInterface) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
	}
}

// Create adds a new categorization rule
// @Summary Create rule
// @Description Create a keyword-to-category rule, appended to the end of the evaluation order
// @Tags Rules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRuleRequest true "Rule definition"
// @Success 201 {object} dto.RuleResponse "Rule created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "RULE_002 - Empty keyword or RULE_003 - Empty category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /rules [post]
func (h *RuleHandler) Create(c echo.Context) error {
	var req dto.CreateRuleRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	rule, err := h.ruleService.Create(req.Keyword, req.Category)
	if err != nil {
		switch err {
		case models.ErrEmptyRuleKeyword:
			return SendError(c, errors.RuleEmptyKeyword)
		case models.ErrEmptyRuleCategory:
			return SendError(c, errors.RuleEmptyCategory)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toRuleResponse(rule))
}

// List returns all rules in evaluation order
// @Summary List rules
// @Description Retrieve all categorization rules in the order they are evaluated
// @Tags Rules
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListRulesResponse "Stored rules"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /rules [get]
func (h *RuleHandler) List(c echo.Context) error {
	rules, err := h.ruleService.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListRulesResponse{
		Rules: make([]dto.RuleResponse, 0, len(rules)),
	}
	for i := range rules {
		response.Rules = append(response.Rules, toRuleResponse(&rules[i]))
	}

	return c.JSON(http.StatusOK, response)
}

// Delete removes a rule
// @Summary Delete rule
// @Description Remove a categorization rule. Past transactions are recategorized on the next ledger read.
// @Tags Rules
// @Security BearerAuth
// @Produce json
// @Param id path int true "Rule ID"
// @Success 204 "Rule deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid rule ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "RULE_001 - Rule not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /rules/{id} [delete]
func (h *RuleHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid rule ID"))
	}

	if err := h.ruleService.Delete(id); err != nil {
		if err == services.ErrRuleNotFound {
			return SendError(c, errors.RuleNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toRuleResponse(rule *models.Rule) dto.RuleResponse {
	return dto.RuleResponse{
		ID:        rule.ID,
		Keyword:   rule.Keyword,
		Category:  rule.Category,
		CreatedAt: rule.CreatedAt,
	}
}
