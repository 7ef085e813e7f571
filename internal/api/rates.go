package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/melodia-school/melodia-back/internal/db"
	"github.com/melodia-school/melodia-back/internal/models"
	"github.com/melodia-school/melodia-back/pkg/response"
)

// CreateRate godoc
// @Summary      Add a price-list row
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body  models.Rate  true  "Rate"
// @Success      201   {object}  response.Body
// @Security     BearerAuth
// @Router       /rates [post]
func CreateRate(c *gin.Context) {
	var r models.Rate
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := db.CreateRate(context.Background(), &r); err != nil {
		response.Internal(c, "failed to create rate")
		return
	}
	response.Created(c, r)
}

// ListRates godoc
// @Summary      List the price list for a school and academic year
// @Tags         rates
// @Produce      json
// @Param        school_id  query  int     true  "School"
// @Param        year       query  string  true  "Academic year, e.g. 2025/2026"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /rates [get]
func ListRates(c *gin.Context) {
	schoolID := queryUint(c, "school_id")
	year := c.Query("year")
	if schoolID == 0 || year == "" {
		response.BadRequest(c, "missing school_id or year")
		return
	}
	rates, err := db.ListRates(context.Background(), schoolID, year)
	if err != nil {
		response.Internal(c, "failed to fetch rates")
		return
	}
	response.OK(c, rates)
}

// UpdateRate godoc
// @Summary      Update a price-list row
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        id    path  int          true  "Rate ID"
// @Param        body  body  models.Rate  true  "Rate"
// @Success      200   {object}  response.Body
// @Security     BearerAuth
// @Router       /rates/{id} [put]
func UpdateRate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var r models.Rate
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	r.ID = id
	if err := db.UpdateRate(context.Background(), &r); err != nil {
		response.Internal(c, "failed to update rate")
		return
	}
	response.OK(c, r)
}

// DeleteRate godoc
// @Summary      Delete a price-list row
// @Tags         rates
// @Produce      json
// @Param        id  path  int  true  "Rate ID"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /rates/{id} [delete]
func DeleteRate(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := db.DeleteRate(context.Background(), id); err != nil {
		response.Internal(c, "failed to delete rate")
		return
	}
	response.OK(c, gin.H{"message": "rate deleted"})
}

// CreateDiscountRule godoc
// @Summary      Add a discount rule
// @Description  Pairs two lesson types; both in the same ISO week for the same student trigger the credit
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        body  body  models.DiscountRule  true  "Rule"
// @Success      201   {object}  response.Body
// @Security     BearerAuth
// @Router       /discount-rules [post]
func CreateDiscountRule(c *gin.Context) {
	var r models.DiscountRule
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	if err := db.CreateDiscountRule(context.Background(), &r); err != nil {
		response.Internal(c, "failed to create discount rule")
		return
	}
	response.Created(c, r)
}

// ListDiscountRules godoc
// @Summary      List active discount rules
// @Tags         discounts
// @Produce      json
// @Param        school_id  query  int     true  "School"
// @Param        year       query  string  true  "Academic year"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /discount-rules [get]
func ListDiscountRules(c *gin.Context) {
	schoolID := queryUint(c, "school_id")
	year := c.Query("year")
	if schoolID == 0 || year == "" {
		response.BadRequest(c, "missing school_id or year")
		return
	}
	rules, err := db.ListDiscountRules(context.Background(), schoolID, year)
	if err != nil {
		response.Internal(c, "failed to fetch discount rules")
		return
	}
	response.OK(c, rules)
}

// UpdateDiscountRule godoc
// @Summary      Update a discount rule
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "Rule ID"
// @Param        body  body  models.DiscountRule  true  "Rule"
// @Success      200   {object}  response.Body
// @Security     BearerAuth
// @Router       /discount-rules/{id} [put]
func UpdateDiscountRule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var r models.DiscountRule
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, "invalid request")
		return
	}
	r.ID = id
	if err := db.UpdateDiscountRule(context.Background(), &r); err != nil {
		response.Internal(c, "failed to update discount rule")
		return
	}
	response.OK(c, r)
}

// DeleteDiscountRule godoc
// @Summary      Delete a discount rule
// @Tags         discounts
// @Produce      json
// @Param        id  path  int  true  "Rule ID"
// @Success      200  {object}  response.Body
// @Security     BearerAuth
// @Router       /discount-rules/{id} [delete]
func DeleteDiscountRule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := db.DeleteDiscountRule(context.Background(), id); err != nil {
		response.Internal(c, "failed to delete discount rule")
		return
	}
	response.OK(c, gin.H{"message": "discount rule deleted"})
}
