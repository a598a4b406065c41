package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/neski321/E-Store-revamp/internal/domain"
	productrepo "github.com/neski321/E-Store-revamp/internal/repository/product"
	productsvc "github.com/neski321/E-Store-revamp/internal/service/product"
)

func listProductsHandler(products *productsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := productrepo.ListFilter{
			Category: c.Query("category"),
			Brand:    c.Query("brand"),
			Search:   c.Query("q"),
			Sort:     c.Query("sort"),
			Order:    c.Query("order"),
		}
		f.MinPrice = floatQuery(c, "min_price")
		f.MaxPrice = floatQuery(c, "max_price")
		f.MinRating = floatQuery(c, "min_rating")
		f.MaxRating = floatQuery(c, "max_rating")
		f.InStock = c.Query("in_stock") == "true"
		f.HasDiscount = c.Query("discounted") == "true"
		f.Page = intQuery(c, "page", 1)
		f.PageSize = intQuery(c, "page_size", 12)

		page, err := products.List(c.Request.Context(), f)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func getProductHandler(products *productsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "product id must be numeric")
			return
		}
		p, err := products.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func categoriesHandler(products *productsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := products.Categories(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": cats})
	}
}

func brandsHandler(products *productsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		brands, err := products.Brands(c.Request.Context(), c.Query("category"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"brands": brands})
	}
}

func createProductHandler(products *productsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			badRequest(c, "invalid product payload")
			return
		}
		created, err := products.Create(c.Request.Context(), sessionFrom(c), p)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(products *productsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "product id must be numeric")
			return
		}
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			badRequest(c, "invalid product payload")
			return
		}
		p.ID = id
		updated, err := products.Update(c.Request.Context(), sessionFrom(c), p)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProductHandler(products *productsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "product id must be numeric")
			return
		}
		if err := products.Delete(c.Request.Context(), sessionFrom(c), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func floatQuery(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
