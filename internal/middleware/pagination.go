package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ValidatePagination rejects out-of-range page/limit query parameters before
// any query runs. Absent parameters are fine; the handler applies defaults.
func ValidatePagination() gin.HandlerFunc {
	return func(c *gin.Context) {
		if pageStr, ok := c.GetQuery("page"); ok {
			page, err := strconv.Atoi(pageStr)
			if err != nil || page < 1 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": "Invalid pagination parameter: page must be an integer greater than 0",
				})
				return
			}
		}

		if limitStr, ok := c.GetQuery("limit"); ok {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 1 || limit > 100 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": "Invalid pagination parameter: limit must be an integer between 1 and 100",
				})
				return
			}
		}

		c.Next()
	}
}
