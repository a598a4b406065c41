package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	favoritesvc "github.com/neski321/E-Store-revamp/internal/service/favorite"
)

func listFavoritesHandler(favorites *favoritesvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := favorites.List(c.Request.Context(), sessionFrom(c))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": products})
	}
}

func addFavoriteHandler(favorites *favoritesvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			badRequest(c, "product id must be numeric")
			return
		}
		if err := favorites.Add(c.Request.Context(), sessionFrom(c), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func removeFavoriteHandler(favorites *favoritesvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			badRequest(c, "product id must be numeric")
			return
		}
		if err := favorites.Remove(c.Request.Context(), sessionFrom(c), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
