package httpresp

import "github.com/gin-gonic/gin"

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type PagedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Paged[T any](c *gin.Context, data []T, p Pagination) {
	c.JSON(200, PagedResponse[T]{
		Data:       data,
		Pagination: p,
	})
}
