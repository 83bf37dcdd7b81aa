package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bindPagination parses optional limit/offset query parameters.
func bindPagination(c *gin.Context, limit, offset *int) error {
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			return fmt.Errorf("invalid limit: must be an integer between 1 and 200")
		}
		*limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid offset: must be a non-negative integer")
		}
		*offset = n
	}
	return nil
}
